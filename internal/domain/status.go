package domain

// StatusProvider reports the current status of a device placed in a room.
// The second return value is false when the provider knows nothing about the pair.
type StatusProvider interface {
	Status(room *Room, device Device) (string, bool)
}

type DeviceStatus struct {
	Room   string
	Device Device
	Status string
	Known  bool
}
