package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Geocoder resolves a postal code to coordinates.
type Geocoder interface {
	// Resolve returns the coordinates of the first match for the pincode.
	// Returns ErrNoCoordinates when nothing matches and ErrUpstream when
	// the lookup itself fails.
	Resolve(ctx context.Context, pincode string) (Coordinates, error)
}

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	countryFilter  = "India"
)

// nominatimGeocoder queries the OpenStreetMap Nominatim search API,
// restricted to Indian postal codes. One outbound call per Resolve;
// no retry, no cache.
type nominatimGeocoder struct {
	baseURL string
	client  *http.Client
}

// NewNominatimGeocoder creates a Geocoder backed by Nominatim.
// baseURL overrides the public endpoint; pass "" for the default.
func NewNominatimGeocoder(baseURL string) Geocoder {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &nominatimGeocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// nominatimResult is the subset of a Nominatim search hit we consume.
// Nominatim returns coordinates as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *nominatimGeocoder) Resolve(ctx context.Context, pincode string) (Coordinates, error) {
	q := url.Values{}
	q.Set("postalcode", pincode)
	q.Set("country", countryFilter)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", "fulfillment-backend/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("%w: geocoder returned status %d", ErrUpstream, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(results) == 0 {
		return Coordinates{}, fmt.Errorf("%w: %s", ErrNoCoordinates, pincode)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: bad latitude %q", ErrUpstream, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: bad longitude %q", ErrUpstream, results[0].Lon)
	}
	return Coordinates{Lat: lat, Lon: lon}, nil
}
