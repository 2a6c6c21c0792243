// Package location resolves device coordinates to one of the supported
// cities. Every failure path degrades to the default city; nothing here
// ever surfaces an error to the user.
package location

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// GeolocateOptions mirrors the platform geolocation hints the demo uses.
type GeolocateOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// DefaultGeolocateOptions requests a high-accuracy fix with a 10 s timeout
// and accepts a cached position up to 30 s old.
var DefaultGeolocateOptions = GeolocateOptions{
	HighAccuracy: true,
	Timeout:      10 * time.Second,
	MaximumAge:   30 * time.Second,
}

// Geolocator is the platform capability that produces device coordinates.
// The HTTP layer satisfies it with coordinates sent by the client.
type Geolocator interface {
	CurrentPosition(ctx context.Context, opts GeolocateOptions) (Coordinates, error)
}

// Provider is one reverse-geocoding backend. It returns a "City, Region"
// string or an error; providers are tried in order, first success wins.
type Provider interface {
	Name() string
	ReverseGeocode(ctx context.Context, coords Coordinates) (string, error)
}

// Resolver runs the full detect-current-location sequence: geolocate,
// reverse-geocode through the provider chain, then normalize against the
// supported city list.
type Resolver struct {
	Geolocator      Geolocator
	Providers       []Provider
	SupportedCities []string
	DefaultCity     string
	Options         GeolocateOptions

	// Timeout bounds each individual provider request.
	Timeout time.Duration
}

// Resolve returns the city for the current device position. It cannot
// fail: denial, timeouts and provider outages all fall back to the
// default city.
func (r *Resolver) Resolve(ctx context.Context) string {
	coords, err := r.Geolocator.CurrentPosition(ctx, r.Options)
	if err != nil {
		slog.Warn("geolocation unavailable, using default city", "error", err)
		return r.DefaultCity
	}

	cityState := r.reverseGeocode(ctx, coords)
	if cityState == "" {
		return r.DefaultCity
	}
	return Normalize(cityState, r.SupportedCities)
}

func (r *Resolver) reverseGeocode(ctx context.Context, coords Coordinates) string {
	for _, p := range r.Providers {
		pctx := ctx
		if r.Timeout > 0 {
			var cancel context.CancelFunc
			pctx, cancel = context.WithTimeout(ctx, r.Timeout)
			defer cancel()
		}
		cityState, err := p.ReverseGeocode(pctx, coords)
		if err != nil {
			slog.Debug("reverse geocode failed", "provider", p.Name(), "error", err)
			continue
		}
		if cityState != "" {
			return cityState
		}
	}
	return ""
}

// Normalize maps a free-form "City, Region" string onto the supported
// city list: exact match first, then the first entry containing the city
// name, then the first containing the region name. When nothing matches
// the raw string is returned unchanged — callers may display it even
// though it is outside the supported list.
func Normalize(cityState string, supported []string) string {
	if cityState == "" {
		return cityState
	}
	for _, c := range supported {
		if c == cityState {
			return cityState
		}
	}

	cityPart, statePart, _ := strings.Cut(cityState, ",")
	cityPart = strings.TrimSpace(cityPart)
	statePart = strings.TrimSpace(statePart)

	if cityPart != "" {
		if match := firstContaining(supported, cityPart); match != "" {
			return match
		}
	}
	if statePart != "" {
		if match := firstContaining(supported, statePart); match != "" {
			return match
		}
	}
	return cityState
}

func firstContaining(cities []string, part string) string {
	lower := strings.ToLower(part)
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c), lower) {
			return c
		}
	}
	return ""
}
