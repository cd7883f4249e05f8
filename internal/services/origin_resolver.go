package services

import (
	"context"
	"fmt"
	"strings"

	"fleet-eta-service/internal/domain"
	"fleet-eta-service/internal/ports"
)

// Label used when the telemetry provider has no reverse-geocoded
// location string for a snapshot.
const placeholderLocation = "current location"

// Origin is the resolved starting position of an itinerary.
// Vehicle is populated only on the vehicle path.
type Origin struct {
	Point   domain.GeoPoint
	Label   string
	Vehicle *ports.Vehicle
}

// ResolveVehicleOrigin finds a vehicle by name and uses its current GPS
// snapshot as the itinerary origin. The directory is scanned page by
// page until a case-insensitive trimmed name match is found or pages
// are exhausted.
func ResolveVehicleOrigin(
	ctx context.Context,
	directory ports.FleetDirectory,
	snapshots ports.SnapshotProvider,
	vehicleRef string,
) (Origin, error) {
	want := strings.TrimSpace(vehicleRef)
	if want == "" {
		return Origin{}, invalidRequest("vehicle identifier must be non-empty")
	}

	var match *ports.Vehicle
	cursor := ""
	for {
		page, err := directory.ListVehicles(ctx, cursor)
		if err != nil {
			return Origin{}, upstream(err, "vehicle directory is unavailable")
		}

		for _, v := range page.Vehicles {
			if strings.EqualFold(strings.TrimSpace(v.Name), want) {
				match = &v
				break
			}
		}
		if match != nil || page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	if match == nil {
		return Origin{}, notFound("vehicle %q was not found in the fleet", want)
	}

	snap, ok, err := snapshots.GetSnapshot(ctx, match.ID)
	if err != nil {
		return Origin{}, upstream(err, "GPS snapshot for vehicle %q is unavailable", want)
	}
	if !ok {
		return Origin{}, notFound("vehicle %q has no GPS snapshot", want)
	}

	label := strings.TrimSpace(snap.Location)
	if label == "" {
		label = placeholderLocation
	}

	return Origin{
		Point:   domain.GeoPoint{Lat: snap.Lat, Lng: snap.Lng},
		Label:   label,
		Vehicle: match,
	}, nil
}

// ResolveCityOrigin geocodes an origin city/state pair.
func ResolveCityOrigin(
	ctx context.Context,
	geocoder ports.Geocoder,
	city, state string,
) (Origin, error) {
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	if city == "" || state == "" {
		return Origin{}, invalidRequest("origin city and state are both required")
	}

	text := fmt.Sprintf("%s, %s, USA", city, state)
	point, ok, err := geocoder.Geocode(ctx, text)
	if err != nil {
		return Origin{}, upstream(err, "geocoding %q failed", text)
	}
	if !ok {
		return Origin{}, invalidRequest("could not locate origin %q", text)
	}

	return Origin{
		Point: point,
		Label: fmt.Sprintf("%s, %s", city, state),
	}, nil
}
