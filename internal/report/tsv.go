package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/house_reporter/internal/domain"
)

type Row struct {
	Room   string `csv:"room"`
	Device string `csv:"device"`
	Status string `csv:"status"`
}

// TSV renders one tab separated row per device, unknown statuses stay empty.
type TSV struct{}

func NewTSV() *TSV {
	return &TSV{}
}

func (g *TSV) Generate(house *domain.House, provider domain.StatusProvider) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	w.Comma = '\t'

	enc := csvutil.NewEncoder(w)
	enc.AutoHeader = false

	if err := enc.EncodeHeader(Row{}); err != nil {
		return nil, fmt.Errorf("failed to encode header: %w", err)
	}

	for _, s := range house.Statuses(provider) {
		row := Row{
			Room:   s.Room,
			Device: s.Device.Name(),
			Status: s.Status,
		}

		if err := enc.Encode(row); err != nil {
			return nil, fmt.Errorf("failed to encode row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush rows: %w", err)
	}

	return buf.Bytes(), nil
}
