package openstreetmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=38.72&lon=-9.14&format=json&zoom=10
const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org/reverse"
	DefaultUserAgent = "worldwise/1.0"

	// Nominatim zoom 10 resolves to city level.
	cityZoom = "10"
)

// ErrNoLocation is returned when Nominatim has nothing at the coordinates
// (for example, open sea).
var ErrNoLocation = errors.New("no location found at coordinates")

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

func NewClient(baseURL, userAgent string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger.With("component", "openstreetmap-client"),
	}
}

func (c *Client) Reverse(ctx context.Context, latitude, longitude float64) (*ReverseAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	q.Set("zoom", cityZoom)
	q.Set("addressdetails", "1")
	q.Set("accept-language", "en")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
		"url", u.String(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch OpenStreetMap data",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("OpenStreetMap API returned error",
			"status_code", resp.StatusCode,
			"latitude", latitude,
			"longitude", longitude,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp ReverseAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode OpenStreetMap response",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Nominatim answers 200 with {"error": "Unable to geocode"} for empty areas
	if apiResp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoLocation, apiResp.Error)
	}

	c.logger.Debug("successfully fetched OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
		"display_name", apiResp.DisplayName,
	)

	return &apiResp, nil
}
