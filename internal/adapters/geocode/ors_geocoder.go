package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"fleet-eta-service/internal/domain"
	"fleet-eta-service/internal/platform/obs"
	"fleet-eta-service/internal/ports"
)

// ORSGeocoder resolves location text to coordinates using the
// OpenRouteService geocoding endpoint. Only the first feature is used;
// there is no disambiguation.
//
// An optional GeocodeCache is consulted before the network call and
// written through after it. The cache is nil-safe: without one every
// lookup goes to the API.
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   ports.GeocodeCache
}

func NewORSGeocoder(apiKey string, cache ports.GeocodeCache) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		cache:   cache,
	}, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves text to a point. ok=false means no match.
func (o *ORSGeocoder) Geocode(ctx context.Context, text string) (_ domain.GeoPoint, _ bool, err error) {
	defer obs.Time(ctx, "ors.geocode")(&err)

	norm := normalize(text)
	if norm == "" {
		return domain.GeoPoint{}, false, errors.New("geocode: text must be non-empty")
	}

	if o.cache != nil {
		hits, err := o.cache.GetMany(ctx, []string{norm})
		if err != nil {
			return domain.GeoPoint{}, false, fmt.Errorf("geocode cache read: %w", err)
		}
		if p, ok := hits[norm]; ok {
			return p, true, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/geocode/search", nil)
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("geocode: create request: %w", err)
	}

	req.Header.Set("Authorization", o.apiKey)
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("text", norm)
	q.Set("boundary.country", "US")
	q.Set("size", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := o.session.Do(req)
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("geocode: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.GeoPoint{}, false, fmt.Errorf("geocode: unexpected status: %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("geocode: decode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.GeoPoint{}, false, nil
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.GeoPoint{}, false, fmt.Errorf("geocode: invalid coordinate format for %q", norm)
	}

	point := domain.GeoPoint{Lat: coords[1], Lng: coords[0]}

	if o.cache != nil {
		if err := o.cache.PutMany(ctx, map[string]domain.GeoPoint{norm: point}); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return point, true, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
