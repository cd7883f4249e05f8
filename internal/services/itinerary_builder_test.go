package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-eta-service/internal/adapters/routing"
	"fleet-eta-service/internal/domain"
)

var (
	pointO = domain.GeoPoint{Lat: 40, Lng: -75}
	pointA = domain.GeoPoint{Lat: 41, Lng: -74}
	pointB = domain.GeoPoint{Lat: 42, Lng: -73}
	pointC = domain.GeoPoint{Lat: 43, Lng: -72}
)

func threeLegRouter() *routing.MockRouter {
	return routing.NewMockRouter([]routing.MockPair{
		{From: pointO, To: pointA, Meters: 100000, Seconds: 3600},
		{From: pointA, To: pointB, Meters: 50000, Seconds: 1800},
		{From: pointB, To: pointC, Meters: 25000, Seconds: 900},
	})
}

func TestBuildItineraryChainsLegs(t *testing.T) {
	origin := Origin{Point: pointO, Label: "Philadelphia, PA"}
	stops := []domain.ResolvedStop{
		{Point: pointA, Label: "Newark, NJ", City: "Newark", State: "NJ"},
		{Point: pointB, Label: "Kingston, NY", City: "Kingston", State: "NY"},
		{Point: pointC, Label: "Albany, NY", City: "Albany", State: "NY"},
	}

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	it, err := BuildItinerary(context.Background(), threeLegRouter(), origin, stops, start)
	require.NoError(t, err)

	require.Len(t, it.Legs, 3)

	// Each leg starts where the previous one ended.
	for i := 0; i < len(it.Legs)-1; i++ {
		assert.Equal(t, it.Legs[i].Destination.Point, it.Legs[i+1].OriginPoint)
		assert.Equal(t, it.Legs[i].Destination.Label, it.Legs[i+1].OriginLabel)
	}
	assert.Equal(t, pointO, it.Legs[0].OriginPoint)
	assert.Equal(t, "Philadelphia, PA", it.Legs[0].OriginLabel)

	assert.Equal(t, 100.0, it.Legs[0].DistanceKm)
	assert.Equal(t, 62.1, it.Legs[0].DistanceMiles)
	assert.Equal(t, 50.0, it.Legs[1].DistanceKm)
	assert.Equal(t, 31.1, it.Legs[1].DistanceMiles)
	assert.Equal(t, 25.0, it.Legs[2].DistanceKm)
	assert.Equal(t, 15.5, it.Legs[2].DistanceMiles)

	assert.Equal(t, start.Add(1*time.Hour), it.Legs[0].Arrival)
	assert.Equal(t, start.Add(90*time.Minute), it.Legs[1].Arrival)
	assert.Equal(t, start.Add(105*time.Minute), it.Legs[2].Arrival)
}

func TestBuildItineraryTotals(t *testing.T) {
	origin := Origin{Point: pointO, Label: "Philadelphia, PA"}
	stops := []domain.ResolvedStop{
		{Point: pointA, Label: "Newark, NJ"},
		{Point: pointB, Label: "Kingston, NY"},
		{Point: pointC, Label: "Albany, NY"},
	}

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	it, err := BuildItinerary(context.Background(), threeLegRouter(), origin, stops, start)
	require.NoError(t, err)

	var sumKm, sumMiles float64
	sumSeconds := 0
	for _, leg := range it.Legs {
		sumKm += leg.DistanceKm
		sumMiles += leg.DistanceMiles
		sumSeconds += leg.DurationSeconds
	}

	assert.InDelta(t, sumKm, it.TotalDistanceKm, 0.05)
	assert.InDelta(t, sumMiles, it.TotalDistanceMiles, 0.05)
	assert.Equal(t, sumSeconds, it.TotalDurationSeconds)
	assert.Equal(t, it.Legs[2].Arrival, it.FinalArrival)
}

func TestBuildItineraryRouteLink(t *testing.T) {
	origin := Origin{Point: pointO, Label: "Philadelphia, PA"}
	stops := []domain.ResolvedStop{
		{Point: pointA, Label: "Newark, NJ"},
		{Point: pointB, Label: "Kingston, NY"},
		{Point: pointC, Label: "Albany, NY"},
	}

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	it, err := BuildItinerary(context.Background(), threeLegRouter(), origin, stops, start)
	require.NoError(t, err)

	assert.Equal(t, domain.RouteLink(pointO, []domain.GeoPoint{pointA, pointB, pointC}), it.RouteLink)
	assert.Equal(t, domain.DirectionsLink(pointO, pointA), it.Legs[0].DirectionsLink)
}

func TestBuildItineraryNoStops(t *testing.T) {
	origin := Origin{Point: pointO, Label: "Philadelphia, PA"}

	_, err := BuildItinerary(context.Background(), threeLegRouter(), origin, nil, time.Now())
	require.Error(t, err)

	kind, _ := Classify(err)
	assert.Equal(t, KindInvalidRequest, kind)
}

func TestBuildItineraryRoutingFailureAborts(t *testing.T) {
	// Router only knows the first leg; the second leg must abort the build.
	router := routing.NewMockRouter([]routing.MockPair{
		{From: pointO, To: pointA, Meters: 100000, Seconds: 3600},
	})

	origin := Origin{Point: pointO, Label: "Philadelphia, PA"}
	stops := []domain.ResolvedStop{
		{Point: pointA, Label: "Newark, NJ"},
		{Point: pointB, Label: "Kingston, NY"},
	}

	_, err := BuildItinerary(context.Background(), router, origin, stops, time.Now())
	require.Error(t, err)

	kind, _ := Classify(err)
	assert.Equal(t, KindUpstream, kind)
}
