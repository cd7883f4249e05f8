package services

import (
	"context"
	"fmt"
	"strings"

	"fleet-eta-service/internal/domain"
	"fleet-eta-service/internal/ports"
)

// StopInput describes one requested stop: either a free-form address
// or a city/state pair. The address takes priority when both are set.
type StopInput struct {
	Address string
	City    string
	State   string
}

// ResolveStop geocodes a stop description into a routable point with a
// display label. City/State are carried through only when the stop was
// specified that way.
func ResolveStop(ctx context.Context, geocoder ports.Geocoder, stop StopInput) (domain.ResolvedStop, error) {
	address := strings.TrimSpace(stop.Address)
	city := strings.TrimSpace(stop.City)
	state := strings.TrimSpace(stop.State)

	var text, label string
	switch {
	case address != "":
		text = address
		label = address
		city, state = "", ""
	case city != "" && state != "":
		text = fmt.Sprintf("%s, %s, USA", city, state)
		label = fmt.Sprintf("%s, %s", city, state)
	default:
		return domain.ResolvedStop{}, invalidRequest("stop needs an address or a city and state")
	}

	point, ok, err := geocoder.Geocode(ctx, text)
	if err != nil {
		return domain.ResolvedStop{}, upstream(err, "geocoding %q failed", text)
	}
	if !ok {
		return domain.ResolvedStop{}, invalidRequest("could not locate %q", text)
	}

	return domain.ResolvedStop{
		Point: point,
		Label: label,
		City:  city,
		State: state,
	}, nil
}
