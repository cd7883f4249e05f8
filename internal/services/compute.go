package services

import (
	"context"
	"strings"
	"time"

	"fleet-eta-service/internal/domain"
	"fleet-eta-service/internal/ports"
)

// Request is the normalized compute-itinerary input: a free-text query
// and/or structured fields. A query that parses overrides the vehicle
// identifier, origin city/state, and single-destination fields it
// produces values for; it never overrides an explicit stop list.
type Request struct {
	Query string

	VehicleRef string

	// Legacy single destination.
	City  string
	State string

	OriginCity  string
	OriginState string

	Stops []StopInput
}

// Deps bundles the collaborator ports the computation needs.
type Deps struct {
	Directory ports.FleetDirectory
	Snapshots ports.SnapshotProvider
	Geocoder  ports.Geocoder
	Router    ports.RouteProvider
}

// Result is the computed itinerary plus the resolution context the
// response assembler needs (mode tag, vehicle identity).
type Result struct {
	Mode      domain.IntentMode
	Origin    Origin
	Itinerary *domain.Itinerary
}

// ComputeItinerary runs the full pipeline: query normalization,
// origin and stop resolution, then the sequential leg fold. The first
// failing step aborts the request; no partial itinerary is returned.
func ComputeItinerary(ctx context.Context, deps Deps, req Request, startAt time.Time) (*Result, error) {
	req = applyQuery(req)

	stops := requestedStops(req)
	if len(stops) == 0 {
		return nil, invalidRequest("a destination is required")
	}

	var (
		origin Origin
		mode   domain.IntentMode
		err    error
	)
	switch {
	case strings.TrimSpace(req.VehicleRef) != "":
		mode = domain.IntentVehicle
		origin, err = ResolveVehicleOrigin(ctx, deps.Directory, deps.Snapshots, req.VehicleRef)
	case strings.TrimSpace(req.OriginCity) != "" || strings.TrimSpace(req.OriginState) != "":
		mode = domain.IntentCity
		origin, err = ResolveCityOrigin(ctx, deps.Geocoder, req.OriginCity, req.OriginState)
	default:
		return nil, invalidRequest("a vehicle identifier or an origin city and state is required")
	}
	if err != nil {
		return nil, err
	}

	resolved := make([]domain.ResolvedStop, 0, len(stops))
	for _, stop := range stops {
		rs, err := ResolveStop(ctx, deps.Geocoder, stop)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, rs)
	}

	itinerary, err := BuildItinerary(ctx, deps.Router, origin, resolved, startAt)
	if err != nil {
		return nil, err
	}

	return &Result{Mode: mode, Origin: origin, Itinerary: itinerary}, nil
}

// applyQuery merges a parsed free-text query into the structured
// fields. An unparseable query is not an error; the structured fields
// stand as given.
func applyQuery(req Request) Request {
	if strings.TrimSpace(req.Query) == "" {
		return req
	}

	intent, ok := ParseQuery(req.Query)
	if !ok {
		return req
	}

	switch intent.Mode {
	case domain.IntentVehicle:
		req.VehicleRef = intent.VehicleRef
		req.OriginCity, req.OriginState = "", ""
	case domain.IntentCity:
		req.VehicleRef = ""
		req.OriginCity = intent.OriginCity
		req.OriginState = intent.OriginState
	}

	if intent.HasDestination() {
		req.City = intent.DestinationCity
		req.State = intent.DestinationState
	}

	return req
}

// requestedStops picks the explicit stop list when present, falling
// back to the legacy single city/state destination.
func requestedStops(req Request) []StopInput {
	if len(req.Stops) > 0 {
		return req.Stops
	}
	if strings.TrimSpace(req.City) != "" || strings.TrimSpace(req.State) != "" {
		return []StopInput{{City: req.City, State: req.State}}
	}
	return nil
}
