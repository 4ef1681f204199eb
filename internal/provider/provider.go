package provider

import "github.com/kurochkinivan/house_reporter/internal/domain"

type key struct {
	room   string
	device domain.Device
}

type table map[key]string

func (t table) lookup(room *domain.Room, device domain.Device) (string, bool) {
	status, ok := t[key{room: room.Name(), device: device}]
	return status, ok
}
