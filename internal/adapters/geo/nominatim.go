package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

const defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

// NominatimClient is the external geocoder fallback. Nominatim's usage
// policy requires an identifying User-Agent and modest call rates; the
// gazetteer in front of it keeps traffic negligible.
type NominatimClient struct {
	baseURL string
	client  *http.Client
}

// NewNominatimClient creates a geocoder client. An empty baseURL uses
// the public Nominatim instance.
func NewNominatimClient(baseURL string) *NominatimClient {
	if baseURL == "" {
		baseURL = defaultNominatimBaseURL
	}
	return &NominatimClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text place to coordinates.
func (c *NominatimClient) Geocode(ctx context.Context, query string) (*Location, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", "us")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geo: build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "encore/1.0 (concert-discovery)")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geo: geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo: geocoder returned %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geo: decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrLocationNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geo: parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geo: parse longitude: %w", err)
	}

	display := results[0].DisplayName
	if display == "" {
		display = query
	}

	return &Location{
		Coordinates: Coordinates{Lat: lat, Lng: lng},
		DisplayName: display,
	}, nil
}
