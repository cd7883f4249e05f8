package geocode

import (
	"context"

	"fleet-eta-service/internal/domain"
)

// MockGeocoder resolves from a fixed text -> point table.
// Unknown text resolves to ok=false, mirroring a no-match response.
type MockGeocoder struct {
	Points map[string]domain.GeoPoint
}

func NewMockGeocoder(points map[string]domain.GeoPoint) *MockGeocoder {
	return &MockGeocoder{Points: points}
}

func (m *MockGeocoder) Geocode(ctx context.Context, text string) (domain.GeoPoint, bool, error) {
	p, ok := m.Points[text]
	return p, ok, nil
}
