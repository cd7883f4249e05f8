package services

import (
	"fmt"
	"strings"
	"time"

	"fleet-eta-service/internal/domain"
	"fleet-eta-service/internal/ports"
)

// FormatReply renders a computed itinerary as a human-readable chat
// message: one line per leg plus a totals line and the route link.
func FormatReply(res *Result) string {
	it := res.Itinerary

	var b strings.Builder

	if res.Vehicle() != nil {
		fmt.Fprintf(&b, "ETA for truck %s (now near %s)\n", res.Vehicle().Name, it.OriginLabel)
	} else {
		fmt.Fprintf(&b, "ETA from %s\n", it.OriginLabel)
	}

	for _, leg := range it.Legs {
		fmt.Fprintf(&b, "%d. %s -> %s: %.1f km / %.1f mi, %s, arrives %s\n",
			leg.Index+1,
			leg.OriginLabel,
			leg.Destination.Label,
			leg.DistanceKm,
			leg.DistanceMiles,
			domain.FormatDuration(leg.DurationSeconds),
			formatArrival(leg.Arrival),
		)
	}

	if len(it.Legs) > 1 {
		fmt.Fprintf(&b, "Total: %.1f km / %.1f mi, %s, final arrival %s\n",
			it.TotalDistanceKm,
			it.TotalDistanceMiles,
			domain.FormatDuration(it.TotalDurationSeconds),
			formatArrival(it.FinalArrival),
		)
	}

	fmt.Fprintf(&b, "Route: %s", it.RouteLink)
	return b.String()
}

func formatArrival(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 MST")
}

// Vehicle returns the matched vehicle, or nil on the city path.
func (r *Result) Vehicle() *ports.Vehicle { return r.Origin.Vehicle }
