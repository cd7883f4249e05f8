package ports

import (
	"context"

	"fleet-eta-service/internal/domain"
)

// Travel distance and duration between two points.
type RouteResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Port: driving route metrics between a coordinate pair.
type RouteProvider interface {
	// Return route metrics from a to b, or ok=false when the provider
	// finds no route between them.
	Route(ctx context.Context, a, b domain.GeoPoint) (RouteResult, bool, error)
}
