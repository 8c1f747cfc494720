package citiesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"worldwise/internal/types"
)

// The backend is a json-server style REST resource:
//
//	GET    /cities       -> []City
//	GET    /cities/{id}  -> City
//	POST   /cities       -> City
//	DELETE /cities/{id}
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 10 * time.Second

	citiesPath = "/cities"
)

// ErrNotFound is returned when the backend answers 404 for a city id.
var ErrNotFound = errors.New("city not found")

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.With("component", "cities-client"),
	}
}

// ListCities fetches every city record.
func (c *Client) ListCities(ctx context.Context) ([]types.City, error) {
	var cities []types.City
	if err := c.do(ctx, http.MethodGet, citiesPath, nil, &cities); err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []types.City{}
	}
	return cities, nil
}

// GetCity fetches a single city record.
func (c *Client) GetCity(ctx context.Context, id types.CityID) (*types.City, error) {
	var city types.City
	if err := c.do(ctx, http.MethodGet, cityPath(id), nil, &city); err != nil {
		return nil, err
	}
	return &city, nil
}

// CreateCity posts a new city and returns the record the backend stored.
func (c *Client) CreateCity(ctx context.Context, newCity types.NewCity) (*types.City, error) {
	var city types.City
	if err := c.do(ctx, http.MethodPost, citiesPath, newCity, &city); err != nil {
		return nil, err
	}
	return &city, nil
}

// DeleteCity removes a city. The response body is ignored.
func (c *Client) DeleteCity(ctx context.Context, id types.CityID) error {
	return c.do(ctx, http.MethodDelete, cityPath(id), nil, nil)
}

func cityPath(id types.CityID) string {
	return citiesPath + "/" + url.PathEscape(id.String())
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath(path)

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("calling cities backend", "method", method, "url", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("cities backend request failed",
			"method", method,
			"url", u.String(),
			"error", err,
		)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("cities backend returned error",
			"method", method,
			"status_code", resp.StatusCode,
			"response_body", string(respBody),
		)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode cities backend response", "method", method, "error", err)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
