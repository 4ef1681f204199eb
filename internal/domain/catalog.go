package domain

import "fmt"

type Device int

const (
	AC Device = iota
	Lamp
	Ebook
	Stove
	Fridge
	Dishwasher
	TV
	Game
	Router
)

var deviceNames = [...]string{
	AC:         "Кондиционер",
	Lamp:       "Лампа",
	Ebook:      "Электронная книга",
	Stove:      "Плита",
	Fridge:     "Холодильник",
	Dishwasher: "Посудомоечная машина",
	TV:         "Телевизор",
	Game:       "Игровая приставка",
	Router:     "Маршрутизатор",
}

var deviceIdents = [...]string{
	AC:         "AC",
	Lamp:       "Lamp",
	Ebook:      "Ebook",
	Stove:      "Stove",
	Fridge:     "Fridge",
	Dishwasher: "Dishwasher",
	TV:         "TV",
	Game:       "Game",
	Router:     "Router",
}

// Devices returns every known device kind in declaration order.
func Devices() []Device {
	devices := make([]Device, 0, len(deviceNames))
	for d := range deviceNames {
		devices = append(devices, Device(d))
	}

	return devices
}

// Name returns the display name used in reports.
func (d Device) Name() string {
	if !d.valid() {
		return ""
	}

	return deviceNames[d]
}

func (d Device) String() string {
	if !d.valid() {
		return fmt.Sprintf("Device(%d)", int(d))
	}

	return deviceIdents[d]
}

func (d Device) valid() bool {
	return d >= 0 && int(d) < len(deviceNames)
}
