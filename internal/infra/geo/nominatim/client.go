// Package nominatim resolves city names to coordinates using the OpenStreetMap
// Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/minthura/astrologic/internal/domain/synthesis"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "astrologic/1.0"
)

// Client fetches geocoding results from Nominatim.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds an API client. Nominatim's usage policy requires an
// identifying User-Agent, so an empty one falls back to the app default.
func NewClient(baseURL, userAgent string) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	agent := strings.TrimSpace(userAgent)
	if agent == "" {
		agent = defaultUserAgent
	}
	return &Client{
		baseURL:   strings.TrimRight(base, "/"),
		userAgent: agent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Geocode resolves a city name to its best-matching coordinates.
func (c *Client) Geocode(ctx context.Context, city string) (synthesis.Location, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return synthesis.Location{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return synthesis.Location{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return synthesis.Location{}, fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return synthesis.Location{}, fmt.Errorf("read geocode response: %w", err)
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return synthesis.Location{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return synthesis.Location{}, fmt.Errorf("no geocode results for %q", city)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return synthesis.Location{}, fmt.Errorf("parse geocode latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return synthesis.Location{}, fmt.Errorf("parse geocode longitude: %w", err)
	}

	return synthesis.Location{
		City:      city,
		Latitude:  lat,
		Longitude: lon,
		Address:   results[0].DisplayName,
	}, nil
}

// Nominatim serializes coordinates as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

var _ synthesis.Geocoder = (*Client)(nil)
