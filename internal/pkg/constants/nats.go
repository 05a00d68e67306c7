package constants

// NATS Subjects
const (
	// SubjectDeviceLocation carries LocationResult batches for one device.
	// Format: device.location.{device_id}
	SubjectDeviceLocation = "device.location.%s"
)
