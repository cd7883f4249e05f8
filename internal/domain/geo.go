package domain

import "fmt"

// Immutable geographic position (latitude, longitude).
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Return the point as "lat,lng" for map links and routing requests.
func (p GeoPoint) LatLng() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
}

// Return the point as [lng, lat] for external API compatibility.
func (p GeoPoint) CoordsToList() []float64 { return []float64{p.Lng, p.Lat} }
