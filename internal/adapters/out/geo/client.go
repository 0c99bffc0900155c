// Package geo implements the Geocoder port against an HTTP geocoding provider.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// Client resolves addresses through a provider exposing a JSON lookup
// endpoint. Provider failures are classified into the port's sentinel errors
// so the job layer can decide what to retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoding client for the given provider base URL.
// timeout bounds every lookup; zero means the default of 5 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type geocodeResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Geocode resolves one address to a coordinate.
//
// Classification:
//   - HTTP 429: ports.ErrGeocodeRateLimited
//   - timeouts and HTTP 5xx: ports.ErrGeocodeTransient
//   - other HTTP 4xx: ports.ErrGeocodePermanent
func (c *Client) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	endpoint := fmt.Sprintf("%s/geocode?address=%s", c.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.GeoPoint{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return kernel.GeoPoint{}, fmt.Errorf("%w: %s", ports.ErrGeocodeTransient, err)
		}
		return kernel.GeoPoint{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Decoded below.
	case resp.StatusCode == http.StatusTooManyRequests:
		return kernel.GeoPoint{}, fmt.Errorf("%w: %s", ports.ErrGeocodeRateLimited, resp.Status)
	case resp.StatusCode >= http.StatusInternalServerError:
		return kernel.GeoPoint{}, fmt.Errorf("%w: %s", ports.ErrGeocodeTransient, resp.Status)
	default:
		return kernel.GeoPoint{}, fmt.Errorf("%w: %s", ports.ErrGeocodePermanent, resp.Status)
	}

	var body geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("%w: malformed response: %s", ports.ErrGeocodeTransient, err)
	}

	point, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("%w: %s", ports.ErrGeocodePermanent, err)
	}

	return point, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}
