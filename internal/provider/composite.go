package provider

import (
	"strings"

	"github.com/kurochkinivan/house_reporter/internal/domain"
)

const missingStatus = "none"

type Source struct {
	Label    string
	Provider domain.StatusProvider
}

// Composite merges labeled statuses of several providers into one line,
// e.g. "socket: on, thermo: 25". It always knows a status: a source without
// one is rendered as "none".
type Composite struct {
	sources []Source
}

func NewComposite(sources ...Source) *Composite {
	return &Composite{
		sources: append([]Source(nil), sources...),
	}
}

// NewOwningComposite takes the socket by value, the composite is its only holder.
func NewOwningComposite(socket SmartSocket) *Composite {
	return NewComposite(Source{Label: "socket", Provider: socket})
}

// NewBorrowingComposite shares providers owned by the caller.
func NewBorrowingComposite(socket *SmartSocket, thermo *SmartThermometer) *Composite {
	return NewComposite(
		Source{Label: "socket", Provider: socket},
		Source{Label: "thermo", Provider: thermo},
	)
}

func (c *Composite) Status(room *domain.Room, device domain.Device) (string, bool) {
	var sb strings.Builder

	for i, src := range c.sources {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(src.Label)
		sb.WriteString(": ")

		status, ok := src.Provider.Status(room, device)
		if !ok {
			status = missingStatus
		}
		sb.WriteString(status)
	}

	return sb.String(), true
}
