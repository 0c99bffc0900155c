package ports

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
)

var (
	// ErrGeocodeRateLimited signals the provider refused the request due to
	// rate limiting. The batch should be retried later with backoff.
	ErrGeocodeRateLimited = errors.New("geocoding rate limited")

	// ErrGeocodeTransient signals a timeout or provider-side failure that is
	// expected to clear on retry.
	ErrGeocodeTransient = errors.New("geocoding transiently unavailable")

	// ErrGeocodePermanent signals the address cannot be resolved. Retrying
	// will not help; the coordinate stays empty.
	ErrGeocodePermanent = errors.New("address cannot be geocoded")
)

// Geocoder resolves a postal address to a geographic coordinate.
// Implementations classify failures into the three sentinel errors above;
// callers decide retry behavior from the classification.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (kernel.GeoPoint, error)
}
