package fleet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fleet-eta-service/internal/platform/obs"
	"fleet-eta-service/internal/ports"
)

// Client implements the FleetDirectory and SnapshotProvider ports
// against the fleet telemetry provider's HTTP API. The bearer token is
// forwarded verbatim on every call; calls are single blocking requests
// with no retry.
type Client struct {
	session *http.Client
	token   string
	baseURL string
}

func NewClient(token string, baseURL string) (*Client, error) {
	if token == "" {
		return nil, errors.New("fleet api token is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.samsara.com"
	}

	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		token:   token,
		baseURL: baseURL,
	}, nil
}

type vehiclesResponse struct {
	Data []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
	Pagination struct {
		EndCursor   string `json:"endCursor"`
		HasNextPage bool   `json:"hasNextPage"`
	} `json:"pagination"`
}

// ListVehicles fetches one page of the vehicle directory.
func (c *Client) ListVehicles(ctx context.Context, cursor string) (_ ports.VehiclePage, err error) {
	defer obs.Time(ctx, "fleet.listVehicles")(&err)

	req, err := c.newRequest(ctx, c.baseURL+"/fleet/vehicles")
	if err != nil {
		return ports.VehiclePage{}, fmt.Errorf("list vehicles: %w", err)
	}

	q := req.URL.Query()
	q.Set("limit", "512")
	if cursor != "" {
		q.Set("after", cursor)
	}
	req.URL.RawQuery = q.Encode()

	var decoded vehiclesResponse
	if err := c.doJSON(req, &decoded); err != nil {
		return ports.VehiclePage{}, fmt.Errorf("list vehicles: %w", err)
	}

	page := ports.VehiclePage{
		Vehicles: make([]ports.Vehicle, 0, len(decoded.Data)),
	}
	for _, v := range decoded.Data {
		page.Vehicles = append(page.Vehicles, ports.Vehicle{ID: v.ID, Name: v.Name})
	}
	if decoded.Pagination.HasNextPage {
		page.NextCursor = decoded.Pagination.EndCursor
	}

	return page, nil
}

type statsResponse struct {
	Data []struct {
		GPS struct {
			Latitude   float64 `json:"latitude"`
			Longitude  float64 `json:"longitude"`
			ReverseGeo struct {
				FormattedLocation string `json:"formattedLocation"`
			} `json:"reverseGeo"`
		} `json:"gps"`
	} `json:"data"`
}

// GetSnapshot fetches the vehicle's latest GPS fix. ok=false means the
// provider has no fix for the vehicle.
func (c *Client) GetSnapshot(ctx context.Context, vehicleID string) (_ ports.Snapshot, _ bool, err error) {
	defer obs.Time(ctx, "fleet.getSnapshot")(&err)

	req, err := c.newRequest(ctx, c.baseURL+"/fleet/vehicles/stats")
	if err != nil {
		return ports.Snapshot{}, false, fmt.Errorf("get snapshot: %w", err)
	}

	q := req.URL.Query()
	q.Set("types", "gps")
	q.Set("vehicleIds", vehicleID)
	req.URL.RawQuery = q.Encode()

	var decoded statsResponse
	if err := c.doJSON(req, &decoded); err != nil {
		return ports.Snapshot{}, false, fmt.Errorf("get snapshot: %w", err)
	}

	if len(decoded.Data) == 0 {
		return ports.Snapshot{}, false, nil
	}

	gps := decoded.Data[0].GPS
	return ports.Snapshot{
		Lat:      gps.Latitude,
		Lng:      gps.Longitude,
		Location: gps.ReverseGeo.FormattedLocation,
	}, true, nil
}

func (c *Client) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.session.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
