package ports

import (
	"context"

	"fleet-eta-service/internal/domain"
)

// Port: text location -> coordinates. Only the first/best match is
// returned; there is no disambiguation.
type Geocoder interface {
	// Resolve free text to a point, or ok=false when nothing matches.
	Geocode(ctx context.Context, text string) (domain.GeoPoint, bool, error)
}
