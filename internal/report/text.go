package report

import "github.com/kurochkinivan/house_reporter/internal/domain"

// Text renders the plain house report.
type Text struct{}

func NewText() *Text {
	return &Text{}
}

func (g *Text) Generate(house *domain.House, provider domain.StatusProvider) ([]byte, error) {
	return []byte(house.CreateReport(provider)), nil
}
