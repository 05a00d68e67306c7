package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidLocation is returned when coordinates fall outside valid degree ranges
var ErrInvalidLocation = errors.New("invalid location coordinates")

// Position is a point on the map in degrees
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewPosition creates a position from latitude and longitude
func NewPosition(latitude, longitude float64) Position {
	return Position{Latitude: latitude, Longitude: longitude}
}

// Validate checks that the position is within valid degree ranges
func (p Position) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v must be between -90 and 90", ErrInvalidLocation, p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v must be between -180 and 180", ErrInvalidLocation, p.Longitude)
	}
	return nil
}

func (p Position) String() string {
	return fmt.Sprintf("(%v, %v)", p.Latitude, p.Longitude)
}

// Fix is a single position report from the device location subsystem
type Fix struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"` // meters
	Timestamp time.Time `json:"timestamp"`
}

// Position returns the map position of the fix
func (f Fix) Position() Position {
	return Position{Latitude: f.Latitude, Longitude: f.Longitude}
}

// LocationResult is one batch of fixes delivered by a location stream
type LocationResult struct {
	Locations []Fix `json:"locations"`
}

// LocationPriority selects the accuracy/power trade-off of a location stream
type LocationPriority string

const (
	PriorityHighAccuracy  LocationPriority = "high_accuracy"
	PriorityBalancedPower LocationPriority = "balanced_power"
	PriorityLowPower      LocationPriority = "low_power"
	PriorityPassive       LocationPriority = "passive"
)

const (
	DefaultLocationInterval        = 2 * time.Second
	DefaultLocationFastestInterval = 2 * time.Second
)

// LocationRequest describes how often and how accurately fixes are wanted
type LocationRequest struct {
	Interval        time.Duration    `json:"interval"`
	FastestInterval time.Duration    `json:"fastest_interval"`
	Priority        LocationPriority `json:"priority"`
}

// DefaultLocationRequest returns the 2 second high-accuracy request used by the map screen
func DefaultLocationRequest() LocationRequest {
	return LocationRequest{
		Interval:        DefaultLocationInterval,
		FastestInterval: DefaultLocationFastestInterval,
		Priority:        PriorityHighAccuracy,
	}
}

// TrackingSnapshot is a point-in-time view of the tracker session
type TrackingSnapshot struct {
	SessionID        string    `json:"session_id,omitempty"`
	Active           bool      `json:"active"`
	FirstFixCaptured bool      `json:"first_fix_captured"`
	CurrentPosition  *Position `json:"current_position,omitempty"`
	SuppressedFixes  int       `json:"suppressed_fixes"`
}
