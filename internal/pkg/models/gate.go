package models

// PermissionState is the last observed location permission grant
type PermissionState int

const (
	PermissionUnknown PermissionState = iota
	PermissionGranted
	PermissionDenied
)

func (s PermissionState) String() string {
	switch s {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// MarshalText renders the state as its name in JSON payloads
func (s PermissionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a permission state name; unrecognised names read as unknown
func (s *PermissionState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "granted":
		*s = PermissionGranted
	case "denied":
		*s = PermissionDenied
	default:
		*s = PermissionUnknown
	}
	return nil
}

// LocationEnablementState is the last observed device location-service switch
type LocationEnablementState int

const (
	LocationEnablementUnknown LocationEnablementState = iota
	LocationEnabled
	LocationDisabled
)

func (s LocationEnablementState) String() string {
	switch s {
	case LocationEnabled:
		return "enabled"
	case LocationDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// MarshalText renders the state as its name in JSON payloads
func (s LocationEnablementState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses an enablement state name; unrecognised names read as unknown
func (s *LocationEnablementState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "enabled":
		*s = LocationEnabled
	case "disabled":
		*s = LocationDisabled
	default:
		*s = LocationEnablementUnknown
	}
	return nil
}

// GateDecision is the outcome of evaluating tracking preconditions
type GateDecision int

const (
	// GateProceed means tracking may start
	GateProceed GateDecision = iota
	// GateNeedsPermission means a permission prompt must be shown
	GateNeedsPermission
	// GateNeedsGPS means the location-services enablement dialog must be shown
	GateNeedsGPS
)

func (d GateDecision) String() string {
	switch d {
	case GateProceed:
		return "proceed"
	case GateNeedsPermission:
		return "needs_permission"
	case GateNeedsGPS:
		return "needs_gps"
	default:
		return "unknown"
	}
}

// PromptsSnapshot is what the headless prompt service has shown and been told
type PromptsSnapshot struct {
	PermissionGranted  bool     `json:"permission_granted"`
	LocationEnabled    bool     `json:"location_enabled"`
	PendingRequestCode *int     `json:"pending_request_code,omitempty"`
	EnablementDialogs  int      `json:"enablement_dialogs"`
	Notices            []string `json:"notices"`
}
