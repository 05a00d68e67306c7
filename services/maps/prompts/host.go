package prompts

import (
	"errors"
	"sync"

	"github.com/piresc/nearbycabs/internal/pkg/logger"
	"github.com/piresc/nearbycabs/internal/pkg/models"
)

// ErrNoPendingPermission is returned when a permission answer arrives without an open prompt
var ErrNoPendingPermission = errors.New("no permission prompt is pending")

// HostPrompts is a prompt service for a headless host. Prompts are recorded and
// answered later through Resolve, never from inside the call that raised them.
type HostPrompts struct {
	mu                sync.Mutex
	granted           bool
	enabled           bool
	pending           *int
	enablementDialogs int
	notices           []string
}

// New creates a prompt service seeded with the device's current answers
func New(granted, enabled bool) *HostPrompts {
	return &HostPrompts{
		granted: granted,
		enabled: enabled,
	}
}

// IsPermissionGranted reports the location permission
func (p *HostPrompts) IsPermissionGranted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.granted
}

// IsLocationEnabled reports the device location-service switch
func (p *HostPrompts) IsLocationEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// RequestPermission opens a permission prompt tagged with requestCode
func (p *HostPrompts) RequestPermission(requestCode int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	code := requestCode
	p.pending = &code
	logger.Info("Permission prompt shown", logger.Int("request_code", requestCode))
}

// ShowEnablementDialog records the location-services dialog
func (p *HostPrompts) ShowEnablementDialog() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enablementDialogs++
	logger.Info("Location services dialog shown", logger.Int("count", p.enablementDialogs))
}

// ShowNotice records a transient notice
func (p *HostPrompts) ShowNotice(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.notices = append(p.notices, message)
	logger.Info("Notice shown", logger.String("message", message))
}

// Resolve answers the open permission prompt. An answer carrying another request
// code is not for this prompt and leaves it open.
func (p *HostPrompts) Resolve(requestCode int, granted bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending == nil {
		return ErrNoPendingPermission
	}
	if *p.pending != requestCode {
		logger.Warn("Permission answer for another prompt",
			logger.Int("request_code", requestCode),
			logger.Int("pending_code", *p.pending))
		return nil
	}
	p.granted = granted
	p.pending = nil

	logger.Info("Permission prompt answered",
		logger.Int("request_code", requestCode),
		logger.Bool("granted", granted))
	return nil
}

// SetPermissionGranted changes the permission outside of a prompt
func (p *HostPrompts) SetPermissionGranted(granted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.granted = granted
}

// SetLocationEnabled flips the device location-service switch
func (p *HostPrompts) SetLocationEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Snapshot returns a copy of the prompt state
func (p *HostPrompts) Snapshot() models.PromptsSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := models.PromptsSnapshot{
		PermissionGranted: p.granted,
		LocationEnabled:   p.enabled,
		EnablementDialogs: p.enablementDialogs,
		Notices:           append([]string{}, p.notices...),
	}
	if p.pending != nil {
		code := *p.pending
		snapshot.PendingRequestCode = &code
	}
	return snapshot
}
