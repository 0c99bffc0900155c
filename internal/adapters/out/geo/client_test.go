package geo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freight/internal/adapters/out/geo"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Geocode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode", r.URL.Path)
		assert.Equal(t, "1 Kiln St", r.URL.Query().Get("address"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"lat": 48.8566, "lng": 2.3522}`))
	}))
	defer server.Close()

	client := geo.NewClient(server.URL, 0)
	point, err := client.Geocode(t.Context(), "1 Kiln St")

	require.NoError(t, err)
	assert.InDelta(t, 48.8566, point.Latitude(), 1e-9)
	assert.InDelta(t, 2.3522, point.Longitude(), 1e-9)
}

func TestClient_Geocode_Classification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   error
	}{
		{name: "rate limited", statusCode: http.StatusTooManyRequests, expected: ports.ErrGeocodeRateLimited},
		{name: "server error", statusCode: http.StatusInternalServerError, expected: ports.ErrGeocodeTransient},
		{name: "bad gateway", statusCode: http.StatusBadGateway, expected: ports.ErrGeocodeTransient},
		{name: "not found", statusCode: http.StatusNotFound, expected: ports.ErrGeocodePermanent},
		{name: "unprocessable", statusCode: http.StatusUnprocessableEntity, expected: ports.ErrGeocodePermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := geo.NewClient(server.URL, 0)
			_, err := client.Geocode(t.Context(), "somewhere")

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestClient_Geocode_TimeoutIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := geo.NewClient(server.URL, 20*time.Millisecond)
	_, err := client.Geocode(t.Context(), "somewhere")

	assert.ErrorIs(t, err, ports.ErrGeocodeTransient)
}

func TestClient_Geocode_OutOfRangeCoordinatesArePermanent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"lat": 1234.5, "lng": 0}`))
	}))
	defer server.Close()

	client := geo.NewClient(server.URL, 0)
	_, err := client.Geocode(t.Context(), "somewhere")

	assert.ErrorIs(t, err, ports.ErrGeocodePermanent)
}
