package dto

import (
	"time"

	"fleet-eta-service/internal/domain"
	"fleet-eta-service/internal/services"
)

// FromResult maps a computed itinerary into the external response
// shape. Mode is "truck" when the origin resolved via a vehicle
// identifier, else "city". A single-leg itinerary additionally gets
// the flattened legacy eta/destination view.
func FromResult(res *services.Result) EtaResponse {
	it := res.Itinerary

	out := EtaResponse{
		Mode: modeTag(res.Mode),
		Origin: OriginResponse{
			Label:   it.OriginLabel,
			Lat:     it.OriginPoint.Lat,
			Lng:     it.OriginPoint.Lng,
			MapLink: domain.SearchLink(it.OriginPoint),
		},
		Legs: make([]LegResponse, 0, len(it.Legs)),
		Summary: SummaryResponse{
			TotalDistanceKm:      it.TotalDistanceKm,
			TotalDistanceMiles:   it.TotalDistanceMiles,
			TotalDurationSeconds: it.TotalDurationSeconds,
			TotalDuration:        domain.FormatDuration(it.TotalDurationSeconds),
			FinalArrivalTime:     isoUTC(it.FinalArrival),
			RouteLink:            it.RouteLink,
		},
	}

	if v := res.Vehicle(); v != nil {
		out.Vehicle = &VehicleResponse{
			ID:       v.ID,
			Name:     v.Name,
			Location: it.OriginLabel,
		}
	}

	for _, leg := range it.Legs {
		out.Legs = append(out.Legs, LegResponse{
			Index: leg.Index,
			Origin: PlaceResponse{
				Label: leg.OriginLabel,
				Lat:   leg.OriginPoint.Lat,
				Lng:   leg.OriginPoint.Lng,
			},
			Destination:     place(leg.Destination),
			DistanceKm:      leg.DistanceKm,
			DistanceMiles:   leg.DistanceMiles,
			DurationSeconds: leg.DurationSeconds,
			Duration:        domain.FormatDuration(leg.DurationSeconds),
			ArrivalTime:     isoUTC(leg.Arrival),
			DirectionsLink:  leg.DirectionsLink,
		})
	}

	if len(it.Legs) == 1 {
		leg := it.Legs[0]
		out.Eta = &EtaFields{
			DistanceKm:      leg.DistanceKm,
			DistanceMiles:   leg.DistanceMiles,
			DurationSeconds: leg.DurationSeconds,
			Duration:        domain.FormatDuration(leg.DurationSeconds),
			ArrivalTime:     isoUTC(leg.Arrival),
			DirectionsLink:  leg.DirectionsLink,
		}
		dest := place(leg.Destination)
		out.Destination = &dest
	}

	return out
}

func place(stop domain.ResolvedStop) PlaceResponse {
	return PlaceResponse{
		Label: stop.Label,
		Lat:   stop.Point.Lat,
		Lng:   stop.Point.Lng,
		City:  stop.City,
		State: stop.State,
	}
}

func modeTag(mode domain.IntentMode) string {
	if mode == domain.IntentVehicle {
		return "truck"
	}
	return "city"
}

func isoUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
