package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-eta-service/internal/adapters/fleet"
	"fleet-eta-service/internal/adapters/geocode"
	"fleet-eta-service/internal/adapters/routing"
	"fleet-eta-service/internal/domain"
	"fleet-eta-service/internal/ports"
)

var (
	truckPoint  = domain.GeoPoint{Lat: 32.7767, Lng: -96.797}
	dallasPoint = domain.GeoPoint{Lat: 32.7767, Lng: -96.797}
	okcPoint    = domain.GeoPoint{Lat: 35.4676, Lng: -97.5164}
	tulsaPoint  = domain.GeoPoint{Lat: 36.154, Lng: -95.9928}
	chiPoint    = domain.GeoPoint{Lat: 41.8781, Lng: -87.6298}
)

func testDeps() Deps {
	directory := fleet.NewMockDirectory(map[string]ports.VehiclePage{
		"": {
			Vehicles:   []ports.Vehicle{{ID: "101", Name: "4870"}},
			NextCursor: "p2",
		},
		"p2": {
			Vehicles: []ports.Vehicle{{ID: "102", Name: "5051"}, {ID: "103", Name: "5052"}},
		},
	})

	snapshots := fleet.NewMockSnapshots(map[string]ports.Snapshot{
		"102": {Lat: truckPoint.Lat, Lng: truckPoint.Lng, Location: "Dallas, TX"},
		"103": {Lat: truckPoint.Lat, Lng: truckPoint.Lng},
	})

	geocoder := geocode.NewMockGeocoder(map[string]domain.GeoPoint{
		"Oklahoma City, OK, USA": okcPoint,
		"Tulsa, OK, USA":         tulsaPoint,
		"Chicago, IL, USA":       chiPoint,
		"Dallas, TX, USA":        dallasPoint,
		"120 E Sheridan Ave":     okcPoint,
	})

	router := routing.NewMockRouter([]routing.MockPair{
		{From: truckPoint, To: okcPoint, Meters: 330000, Seconds: 11100},
		{From: okcPoint, To: tulsaPoint, Meters: 170000, Seconds: 5700},
		{From: chiPoint, To: dallasPoint, Meters: 1490000, Seconds: 48600},
	})

	return Deps{Directory: directory, Snapshots: snapshots, Geocoder: geocoder, Router: router}
}

func TestComputeItineraryVehiclePath(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	res, err := ComputeItinerary(context.Background(), testDeps(), Request{
		Query: "ETA 5051 to Oklahoma City OK",
	}, start)
	require.NoError(t, err)

	assert.Equal(t, domain.IntentVehicle, res.Mode)
	require.NotNil(t, res.Vehicle())
	assert.Equal(t, "5051", res.Vehicle().Name)
	assert.Equal(t, "Dallas, TX", res.Itinerary.OriginLabel)

	require.Len(t, res.Itinerary.Legs, 1)
	leg := res.Itinerary.Legs[0]
	assert.Equal(t, "Oklahoma City, OK", leg.Destination.Label)
	assert.Equal(t, 330.0, leg.DistanceKm)
	assert.Equal(t, start.Add(11100*time.Second), leg.Arrival)
}

func TestComputeItineraryVehicleNameMatchIsCaseInsensitive(t *testing.T) {
	res, err := ComputeItinerary(context.Background(), testDeps(), Request{
		VehicleRef: "  5051 ",
		City:       "Oklahoma City",
		State:      "OK",
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "102", res.Vehicle().ID)
}

func TestComputeItinerarySnapshotPlaceholderLabel(t *testing.T) {
	res, err := ComputeItinerary(context.Background(), testDeps(), Request{
		VehicleRef: "5052",
		City:       "Oklahoma City",
		State:      "OK",
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "current location", res.Itinerary.OriginLabel)
}

func TestComputeItineraryCityPath(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	res, err := ComputeItinerary(context.Background(), testDeps(), Request{
		Query: "Chicago IL to Dallas TX",
	}, start)
	require.NoError(t, err)

	assert.Equal(t, domain.IntentCity, res.Mode)
	assert.Nil(t, res.Vehicle())
	assert.Equal(t, "Chicago, IL", res.Itinerary.OriginLabel)

	require.Len(t, res.Itinerary.Legs, 1)
	assert.Equal(t, "Dallas, TX", res.Itinerary.Legs[0].Destination.Label)
}

func TestComputeItineraryExplicitStopsBeatQueryDestination(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	// The query's own destination (Chicago) must lose to the stop list.
	res, err := ComputeItinerary(context.Background(), testDeps(), Request{
		Query: "ETA 5051 to Chicago IL",
		Stops: []StopInput{
			{City: "Oklahoma City", State: "OK"},
			{City: "Tulsa", State: "OK"},
		},
	}, start)
	require.NoError(t, err)

	require.Len(t, res.Itinerary.Legs, 2)
	assert.Equal(t, "Oklahoma City, OK", res.Itinerary.Legs[0].Destination.Label)
	assert.Equal(t, "Tulsa, OK", res.Itinerary.Legs[1].Destination.Label)
	assert.Equal(t, start.Add((11100+5700)*time.Second), res.Itinerary.FinalArrival)
}

func TestComputeItineraryAddressStop(t *testing.T) {
	res, err := ComputeItinerary(context.Background(), testDeps(), Request{
		VehicleRef: "5051",
		Stops:      []StopInput{{Address: "120 E Sheridan Ave", City: "ignored", State: "XX"}},
	}, time.Now())
	require.NoError(t, err)

	leg := res.Itinerary.Legs[0]
	assert.Equal(t, "120 E Sheridan Ave", leg.Destination.Label)
	// Structured destination fields are echoed only for city/state stops.
	assert.Empty(t, leg.Destination.City)
	assert.Empty(t, leg.Destination.State)
}

func TestComputeItineraryNoOrigin(t *testing.T) {
	_, err := ComputeItinerary(context.Background(), testDeps(), Request{
		City:  "Oklahoma City",
		State: "OK",
	}, time.Now())
	require.Error(t, err)

	kind, _ := Classify(err)
	assert.Equal(t, KindInvalidRequest, kind)
}

func TestComputeItineraryNoDestination(t *testing.T) {
	_, err := ComputeItinerary(context.Background(), testDeps(), Request{
		VehicleRef: "5051",
	}, time.Now())
	require.Error(t, err)

	kind, _ := Classify(err)
	assert.Equal(t, KindInvalidRequest, kind)
}

func TestComputeItineraryVehicleNotFound(t *testing.T) {
	_, err := ComputeItinerary(context.Background(), testDeps(), Request{
		VehicleRef: "9999",
		City:       "Oklahoma City",
		State:      "OK",
	}, time.Now())
	require.Error(t, err)

	kind, detail := Classify(err)
	assert.Equal(t, KindNotFound, kind)
	assert.Contains(t, detail, "9999")
}

func TestComputeItinerarySnapshotMissing(t *testing.T) {
	_, err := ComputeItinerary(context.Background(), testDeps(), Request{
		VehicleRef: "4870",
		City:       "Oklahoma City",
		State:      "OK",
	}, time.Now())
	require.Error(t, err)

	kind, _ := Classify(err)
	assert.Equal(t, KindNotFound, kind)
}

func TestComputeItineraryGeocodeMiss(t *testing.T) {
	_, err := ComputeItinerary(context.Background(), testDeps(), Request{
		VehicleRef: "5051",
		City:       "Nowhereville",
		State:      "ZZ",
	}, time.Now())
	require.Error(t, err)

	kind, _ := Classify(err)
	assert.Equal(t, KindInvalidRequest, kind)
}
