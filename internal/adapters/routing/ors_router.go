package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"fleet-eta-service/internal/domain"
	"fleet-eta-service/internal/platform/obs"
	"fleet-eta-service/internal/ports"
)

// ORSRouter retrieves driving distance and duration for a coordinate
// pair using the OpenRouteService matrix endpoint (a single-source,
// single-destination row). One blocking call per leg, no retry.
type ORSRouter struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
}

func NewORSRouter(apiKey string) (*ORSRouter, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSRouter{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		profile: "driving-car",
	}, nil
}

type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
	Sources      []int       `json:"sources"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// Route returns driving metrics from a to b. ok=false means the
// service could not connect the pair.
func (o *ORSRouter) Route(ctx context.Context, a, b domain.GeoPoint) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "ors.route")(&err)

	endpoint := fmt.Sprintf("%s/v2/matrix/%s", o.baseURL, o.profile)

	payload, err := json.Marshal(matrixRequest{
		Locations:    [][]float64{a.CoordsToList(), b.CoordsToList()},
		Destinations: []int{1},
		Metrics:      []string{"distance", "duration"},
		Sources:      []int{0},
	})
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("route: marshal matrix request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("route: create request: %w", err)
	}

	req.Header.Set("Authorization", o.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.session.Do(req)
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("route: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.RouteResult{}, false, fmt.Errorf("route: unexpected status: %d", resp.StatusCode)
	}

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("route: decode matrix response: %w", err)
	}

	if len(mr.Distances) != 1 || len(mr.Durations) != 1 ||
		len(mr.Distances[0]) != 1 || len(mr.Durations[0]) != 1 {
		return ports.RouteResult{}, false, fmt.Errorf(
			"route: expected a 1x1 matrix; got distances=%d durations=%d",
			len(mr.Distances), len(mr.Durations),
		)
	}

	metersPtr := mr.Distances[0][0]
	secondsPtr := mr.Durations[0][0]

	// A null cell means the matrix service found no route for the pair.
	if metersPtr == nil || secondsPtr == nil {
		return ports.RouteResult{}, false, nil
	}

	// ORS returns float metrics; round to nearest integer for domain consistency.
	return ports.RouteResult{
		DistanceMeters:  int(math.Round(*metersPtr)),
		DurationSeconds: int(math.Round(*secondsPtr)),
	}, true, nil
}
