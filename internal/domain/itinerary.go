package domain

import "time"

// ResolvedStop is a stop description turned into a routable point.
// City/State are retained only when the stop was specified that way,
// so the response can echo the structured destination fields.
type ResolvedStop struct {
	Point GeoPoint
	Label string
	City  string
	State string
}

// Leg is one origin->stop segment of an itinerary.
// Legs are produced in strict order and are immutable once built;
// the destination of leg i is the origin of leg i+1.
type Leg struct {
	Index int

	OriginLabel string
	OriginPoint GeoPoint

	Destination ResolvedStop

	DistanceKm      float64
	DistanceMiles   float64
	DurationSeconds int

	Arrival        time.Time
	DirectionsLink string
}

// Itinerary is the chained result of routing an origin through an
// ordered list of stops. Totals equal the sum (or last value) across
// all legs, and the leg count equals the stop count.
type Itinerary struct {
	OriginLabel string
	OriginPoint GeoPoint

	Legs []Leg

	TotalDistanceKm      float64
	TotalDistanceMiles   float64
	TotalDurationSeconds int
	FinalArrival         time.Time
	RouteLink            string
}
