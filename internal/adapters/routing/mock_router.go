package routing

import (
	"context"
	"fmt"

	"fleet-eta-service/internal/domain"
	"fleet-eta-service/internal/ports"
)

type MockPair struct {
	From, To domain.GeoPoint
	Meters   int
	Seconds  int
}

// MockRouter serves fixed route metrics keyed by coordinate pair.
type MockRouter struct {
	m map[string]ports.RouteResult
}

func NewMockRouter(pairs []MockPair) *MockRouter {
	m := make(map[string]ports.RouteResult, len(pairs))
	for _, p := range pairs {
		m[pairKey(p.From, p.To)] = ports.RouteResult{DistanceMeters: p.Meters, DurationSeconds: p.Seconds}
	}
	return &MockRouter{m: m}
}

func (r *MockRouter) Route(ctx context.Context, a, b domain.GeoPoint) (ports.RouteResult, bool, error) {
	result, ok := r.m[pairKey(a, b)]
	if !ok {
		return ports.RouteResult{}, false, fmt.Errorf("missing pair %q -> %q", a.LatLng(), b.LatLng())
	}

	return result, true, nil
}

func pairKey(a, b domain.GeoPoint) string {
	return a.LatLng() + "|" + b.LatLng()
}
