package ports

import (
	"context"

	"fleet-eta-service/internal/domain"
)

// Port: a batch cache mapping normalized location text to coordinates.
// GetMany returns only the hits; a miss is not an error.
type GeocodeCache interface {
	GetMany(ctx context.Context, texts []string) (map[string]domain.GeoPoint, error)
	PutMany(ctx context.Context, points map[string]domain.GeoPoint) error
}
