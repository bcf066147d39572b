// Package geocode resolves place names to coordinates and coordinates
// to place names via the Nominatim API.
package geocode

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/savetz/longwalk/internal/geo"
)

// UnknownPlace is the sentinel returned when reverse geocoding cannot
// name a location. The narrative uses it verbatim.
const UnknownPlace = "an unknown place"

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Geocoder resolves place names and coordinates.
type Geocoder interface {
	// Locate returns the coordinate of the first search result for a
	// place name. Errors here are unrecoverable for the caller.
	Locate(place string) (geo.Coordinate, error)

	// PlaceName returns the best available name for a coordinate, or
	// UnknownPlace on any failure.
	PlaceName(c geo.Coordinate) string
}

// Client is a Nominatim-backed Geocoder.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewClient creates a Nominatim client. Nominatim's usage policy
// requires an identifying User-Agent.
func NewClient(userAgent string) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL creates a client against a non-default endpoint
// (self-hosted Nominatim, test servers).
func NewClientWithBaseURL(baseURL, userAgent string) *Client {
	c := NewClient(userAgent)
	c.baseURL = baseURL
	return c
}

// Locate resolves a place name to a coordinate using the search API,
// taking the first result only.
func (c *Client) Locate(place string) (geo.Coordinate, error) {
	params := url.Values{
		"format": {"jsonv2"},
		"q":      {place},
		"limit":  {"1"},
	}

	body, err := c.get("/search", params)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("geocode %q: %w", place, err)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return geo.Coordinate{}, fmt.Errorf("geocode %q: parse response: %w", place, err)
	}
	if len(results) == 0 {
		return geo.Coordinate{}, fmt.Errorf("geocode %q: no results", place)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("geocode %q: bad latitude %q", place, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("geocode %q: bad longitude %q", place, results[0].Lon)
	}

	return geo.Coordinate{Lat: lat, Lon: lon}, nil
}

// PlaceName reverse-geocodes a coordinate, preferring the most specific
// settlement name available. Failures degrade to UnknownPlace.
func (c *Client) PlaceName(coord geo.Coordinate) string {
	params := url.Values{
		"format": {"jsonv2"},
		"lat":    {strconv.FormatFloat(coord.Lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(coord.Lon, 'f', -1, 64)},
	}

	body, err := c.get("/reverse", params)
	if err != nil {
		slog.Warn("reverse geocode failed", "lat", coord.Lat, "lon", coord.Lon, "error", err)
		return UnknownPlace
	}

	var result struct {
		Address struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			Hamlet  string `json:"hamlet"`
			County  string `json:"county"`
		} `json:"address"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		slog.Warn("reverse geocode parse failed", "lat", coord.Lat, "lon", coord.Lon, "error", err)
		return UnknownPlace
	}

	addr := result.Address
	for _, name := range []string{addr.City, addr.Town, addr.Village, addr.Hamlet, addr.County} {
		if name != "" {
			return name
		}
	}
	return UnknownPlace
}

func (c *Client) get(path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequest("GET", c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
