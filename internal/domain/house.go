package domain

import (
	"slices"
	"strings"
)

type House struct {
	name  string
	rooms []Room
}

func NewHouse(name string, rooms ...Room) *House {
	return &House{
		name:  name,
		rooms: slices.Clone(rooms),
	}
}

// DefaultHouse returns the sample house used by the demo and tests.
// Two of its rooms share the name "Спальня".
func DefaultHouse() *House {
	return NewHouse("Дом",
		NewRoom("Спальня", AC, Lamp, Ebook),
		NewRoom("Ельня", Stove, Fridge, Dishwasher),
		NewRoom("Пильня", Stove, Fridge, Dishwasher),
		NewRoom("Спальня", AC, Lamp, Ebook),
		NewRoom("Телевизор смотрельня", TV, Game, Router),
	)
}

func (h *House) Name() string {
	return h.name
}

func (h *House) RoomNames() []string {
	names := make([]string, 0, len(h.rooms))
	for i := range h.rooms {
		names = append(names, h.rooms[i].Name())
	}

	return names
}

// DevicesInRoom returns device names of the first room called roomName.
func (h *House) DevicesInRoom(roomName string) ([]string, error) {
	for i := range h.rooms {
		if h.rooms[i].name == roomName {
			return h.rooms[i].DeviceNames(), nil
		}
	}

	return nil, &RoomNotFoundError{Name: roomName}
}

// Statuses walks rooms and devices in report order and asks provider for each pair.
func (h *House) Statuses(provider StatusProvider) []DeviceStatus {
	var statuses []DeviceStatus

	for i := range h.rooms {
		room := &h.rooms[i]

		for _, device := range room.devices {
			status, ok := provider.Status(room, device)

			statuses = append(statuses, DeviceStatus{
				Room:   room.name,
				Device: device,
				Status: status,
				Known:  ok,
			})
		}
	}

	return statuses
}

func (h *House) CreateReport(provider StatusProvider) string {
	var sb strings.Builder

	sb.WriteString("House: ")
	sb.WriteString(h.name)
	sb.WriteByte('\n')

	for i := range h.rooms {
		room := &h.rooms[i]

		sb.WriteString("\n  Room: ")
		sb.WriteString(room.name)
		sb.WriteByte('\n')

		for _, device := range room.devices {
			sb.WriteString("    Device: ")
			sb.WriteString(device.Name())
			sb.WriteString(" (")
			if status, ok := provider.Status(room, device); ok {
				sb.WriteString(status)
			}
			sb.WriteString(")\n")
		}
	}

	return sb.String()
}
