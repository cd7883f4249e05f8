package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"fleet-eta-service/internal/domain"
	"fleet-eta-service/internal/ports"
)

// BuildItinerary chains an origin through an ordered list of stops.
//
// It is a sequential fold carrying {point, label, time, totals}: leg
// i+1 starts from leg i's stop and arrival time, so legs cannot be
// computed out of order. Each leg's distance comes from one routing
// call for that coordinate pair.
func BuildItinerary(
	ctx context.Context,
	router ports.RouteProvider,
	origin Origin,
	stops []domain.ResolvedStop,
	startAt time.Time,
) (*domain.Itinerary, error) {
	if len(stops) == 0 {
		return nil, invalidRequest("at least one stop is required")
	}

	curPoint := origin.Point
	curLabel := origin.Label
	curTime := startAt

	legs := make([]domain.Leg, 0, len(stops))
	var totalKm, totalMiles float64
	totalSeconds := 0

	for i, stop := range stops {
		result, ok, err := router.Route(ctx, curPoint, stop.Point)
		if err != nil {
			return nil, upstream(err, "routing %s -> %s failed", curLabel, stop.Label)
		}
		if !ok {
			return nil, upstream(fmt.Errorf("no route from %s to %s", curPoint.LatLng(), stop.Point.LatLng()),
				"no route found from %s to %s", curLabel, stop.Label)
		}

		km := domain.MetersToKm(float64(result.DistanceMeters))
		miles := domain.KmToMiles(km)
		arrival := curTime.Add(time.Duration(result.DurationSeconds) * time.Second)

		legs = append(legs, domain.Leg{
			Index:           i,
			OriginLabel:     curLabel,
			OriginPoint:     curPoint,
			Destination:     stop,
			DistanceKm:      km,
			DistanceMiles:   miles,
			DurationSeconds: result.DurationSeconds,
			Arrival:         arrival,
			DirectionsLink:  domain.DirectionsLink(curPoint, stop.Point),
		})

		totalKm += km
		totalMiles += miles
		totalSeconds += result.DurationSeconds

		curPoint = stop.Point
		curLabel = stop.Label
		curTime = arrival
	}

	points := make([]domain.GeoPoint, 0, len(stops))
	for _, s := range stops {
		points = append(points, s.Point)
	}

	return &domain.Itinerary{
		OriginLabel:          origin.Label,
		OriginPoint:          origin.Point,
		Legs:                 legs,
		TotalDistanceKm:      math.Round(totalKm*10) / 10,
		TotalDistanceMiles:   math.Round(totalMiles*10) / 10,
		TotalDurationSeconds: totalSeconds,
		FinalArrival:         curTime,
		RouteLink:            domain.RouteLink(origin.Point, points),
	}, nil
}
