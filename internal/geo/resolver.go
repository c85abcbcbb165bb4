// Package geo works out where the caller is, falling back to a fixed
// location when it cannot.
package geo

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/defaults"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

const (
	SourceDevice   = "device"
	SourceFallback = "fallback"

	PositionTimeout = 10 * time.Second
	PositionMaxAge  = 5 * time.Minute

	defaultCountry = "Indonesia"
)

// Cache keeps recently obtained positions.
type Cache interface {
	GetPosition(ctx context.Context, key string) (Point, bool, error)
	SetPosition(ctx context.Context, key string, p Point, ttl time.Duration) error
}

// Resolution is a resolved location tagged with where it came from.
type Resolution struct {
	Location model.Coordinates `json:"location"`
	Source   string            `json:"source"`
	Reason   string            `json:"reason,omitempty"`
}

type Resolver struct {
	geocoder ReverseGeocoder
	cache    Cache
	timeout  time.Duration
}

// NewResolver builds a resolver. cache may be nil.
func NewResolver(geocoder ReverseGeocoder, cache Cache) *Resolver {
	return &Resolver{geocoder: geocoder, cache: cache, timeout: PositionTimeout}
}

// Resolve makes one attempt to locate src. It never fails: without a
// position it returns the default location, and without a place name it
// keeps the position and labels it "Unknown", "Indonesia".
func (r *Resolver) Resolve(ctx context.Context, src PositionSource) Resolution {
	if src == nil {
		return fallback("position capability unavailable")
	}

	p, err := r.position(ctx, src)
	if err != nil {
		log.Warn().Err(err).Msg("Could not obtain position, using default location")
		return fallback(err.Error())
	}

	loc := model.Coordinates{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		City:      defaults.UnknownCity(),
		Country:   defaultCountry,
	}
	if r.geocoder == nil {
		return Resolution{Location: loc, Source: SourceDevice, Reason: "reverse geocoding unavailable"}
	}

	place, err := r.geocoder.Reverse(ctx, p)
	if err != nil {
		log.Warn().Err(err).Float64("lat", p.Latitude).Float64("lng", p.Longitude).Msg("Reverse geocoding failed")
		return Resolution{Location: loc, Source: SourceDevice, Reason: "reverse geocoding failed"}
	}
	if place.City != "" {
		loc.City = place.City
	}
	if place.Country != "" {
		loc.Country = place.Country
	}
	return Resolution{Location: loc, Source: SourceDevice}
}

func (r *Resolver) position(ctx context.Context, src PositionSource) (Point, error) {
	key := src.Key()
	if r.cache != nil && key != "" {
		p, ok, err := r.cache.GetPosition(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Position cache read failed")
		} else if ok {
			return p, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p, err := src.Position(ctx)
	if err != nil {
		return Point{}, err
	}

	if r.cache != nil && key != "" {
		if err := r.cache.SetPosition(ctx, key, p, PositionMaxAge); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Position cache write failed")
		}
	}
	return p, nil
}

func fallback(reason string) Resolution {
	return Resolution{Location: defaults.Location(), Source: SourceFallback, Reason: reason}
}
