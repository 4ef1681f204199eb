package domain

import "slices"

type Room struct {
	name    string
	devices []Device
}

func NewRoom(name string, devices ...Device) Room {
	return Room{
		name:    name,
		devices: slices.Clone(devices),
	}
}

func (r *Room) Name() string {
	return r.name
}

func (r *Room) Devices() []Device {
	return slices.Clone(r.devices)
}

// DeviceNames maps every device to its display name, keeping order and duplicates.
func (r *Room) DeviceNames() []string {
	names := make([]string, 0, len(r.devices))
	for _, d := range r.devices {
		names = append(names, d.Name())
	}

	return names
}
