package models

import "fmt"

// ScreenState is the map screen's position in its location-acquisition lifecycle
type ScreenState int

const (
	ScreenIdle ScreenState = iota
	ScreenAwaitingPermission
	ScreenAwaitingGPS
	// ScreenTrackingUnset is tracking with no accepted fix yet
	ScreenTrackingUnset
	// ScreenTrackingSet is tracking after the first fix was accepted
	ScreenTrackingSet
)

func (s ScreenState) String() string {
	switch s {
	case ScreenIdle:
		return "idle"
	case ScreenAwaitingPermission:
		return "awaiting_permission"
	case ScreenAwaitingGPS:
		return "awaiting_gps"
	case ScreenTrackingUnset:
		return "tracking_unset"
	case ScreenTrackingSet:
		return "tracking_set"
	default:
		return "unknown"
	}
}

// MarshalText renders the state as its name in JSON payloads
func (s ScreenState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a state name
func (s *ScreenState) UnmarshalText(text []byte) error {
	for candidate := ScreenIdle; candidate <= ScreenTrackingSet; candidate++ {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown screen state %q", text)
}

// MarkerOptions describes a marker to draw on the render surface
type MarkerOptions struct {
	Position Position `json:"position"`
	Flat     bool     `json:"flat"`
	Icon     string   `json:"icon"`
}

// MarkerHandle identifies a marker drawn on the render surface
type MarkerHandle struct {
	ID      string        `json:"id"`
	Options MarkerOptions `json:"options"`
}

// CameraState is the last camera placement requested on the render surface
type CameraState struct {
	Target   *Position `json:"target,omitempty"`
	Zoom     float64   `json:"zoom,omitempty"`
	Animated bool      `json:"animated"`
}

// ScreenSnapshot is what the host API reports about the map screen
type ScreenSnapshot struct {
	State           ScreenState             `json:"state"`
	Attached        bool                    `json:"attached"`
	MapReady        bool                    `json:"map_ready"`
	Permission      PermissionState         `json:"permission"`
	LocationService LocationEnablementState `json:"location_service"`
	CurrentPosition *Position               `json:"current_position,omitempty"`
	Tracking        TrackingSnapshot        `json:"tracking"`
	Markers         []MarkerHandle          `json:"markers"`
	LastNotice      string                  `json:"last_notice,omitempty"`
}

// CanvasSnapshot is the drawn state of a render surface
type CanvasSnapshot struct {
	Camera            CameraState    `json:"camera"`
	CameraMoves       int            `json:"camera_moves"`
	MyLocationEnabled bool           `json:"my_location_enabled"`
	TopPaddingPx      int            `json:"top_padding_px"`
	Markers           []MarkerHandle `json:"markers"`
}
