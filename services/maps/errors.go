package maps

import "errors"

var (
	// ErrPermissionDenied is returned when the user refuses the location permission prompt
	ErrPermissionDenied = errors.New("location permission denied")
	// ErrLocationServiceDisabled is returned when the device location service is switched off
	ErrLocationServiceDisabled = errors.New("location service disabled")
	// ErrDataSourceUnavailable wraps any failure of a nearby-vehicle data source
	ErrDataSourceUnavailable = errors.New("nearby vehicle data source unavailable")
	// ErrSessionActive is returned when tracking is started twice without a stop
	ErrSessionActive = errors.New("tracking session already active")
	// ErrUnexpectedRequestCode is returned for permission results that answer someone else's prompt
	ErrUnexpectedRequestCode = errors.New("unexpected permission request code")
)
