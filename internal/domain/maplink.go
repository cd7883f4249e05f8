package domain

import (
	"net/url"
	"strings"
)

const (
	mapsSearchBase     = "https://www.google.com/maps/search/"
	mapsDirectionsBase = "https://www.google.com/maps/dir/"
)

// SearchLink builds a map link centered on a single point.
func SearchLink(p GeoPoint) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", p.LatLng())
	return mapsSearchBase + "?" + q.Encode()
}

// DirectionsLink builds a map link for a single origin->destination leg.
func DirectionsLink(origin, destination GeoPoint) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", origin.LatLng())
	q.Set("destination", destination.LatLng())
	return mapsDirectionsBase + "?" + q.Encode()
}

// RouteLink builds a single directions link covering the whole
// itinerary: origin -> last stop, with every intermediate stop passed
// as an ordered waypoint. With zero stops it degenerates to a
// directions link from the origin to itself.
func RouteLink(origin GeoPoint, stops []GeoPoint) string {
	if len(stops) == 0 {
		return DirectionsLink(origin, origin)
	}

	last := stops[len(stops)-1]

	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", origin.LatLng())
	q.Set("destination", last.LatLng())

	if len(stops) > 1 {
		via := make([]string, 0, len(stops)-1)
		for _, p := range stops[:len(stops)-1] {
			via = append(via, p.LatLng())
		}
		q.Set("waypoints", strings.Join(via, "|"))
	}

	return mapsDirectionsBase + "?" + q.Encode()
}
