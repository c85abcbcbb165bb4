// Package timings produces the day's labelled prayer board from the Al
// Adhan API, the manually maintained table, or the fixed fallback.
package timings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/aladhan"
	"github.com/Nixie-Tech-LLC/takmir/internal/defaults"
	"github.com/Nixie-Tech-LLC/takmir/internal/geo"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
	"github.com/Nixie-Tech-LLC/takmir/internal/prayer"
)

const (
	SourceAPI      = "api"
	SourceManual   = "manual"
	SourceFallback = "fallback"

	DateLayout = "2006-01-02"
)

// Fetcher is the subset of the Al Adhan client the service needs.
type Fetcher interface {
	TimingsByCoordinates(ctx context.Context, date string, lat, lng float64, method int) (*aladhan.Response, error)
	TimingsByCity(ctx context.Context, date, city, country string, method int) (*aladhan.Response, error)
}

type Locator interface {
	Resolve(ctx context.Context, src geo.PositionSource) geo.Resolution
}

// BoardStore reads the mosque configuration behind the landing board.
type BoardStore interface {
	GetMosqueSettings(ctx context.Context) (*model.MosqueSettings, error)
	ListPrayerTimes(ctx context.Context) ([]model.PrayerTimeRow, error)
}

// Result is a prayer board tagged with where its times came from.
type Result struct {
	Prayers        []model.Prayer     `json:"prayers"`
	Source         string             `json:"source"`
	Reason         string             `json:"reason,omitempty"`
	Location       *model.Coordinates `json:"location,omitempty"`
	LocationSource string             `json:"location_source,omitempty"`
	Method         int                `json:"method"`
	Date           string             `json:"date"`
}

type Service struct {
	client  Fetcher
	locator Locator
	store   BoardStore
	loc     *time.Location
	now     func() time.Time
}

// NewService builds the service. loc is the timezone in which "today" and
// "now" are read; nil means UTC.
func NewService(client Fetcher, locator Locator, store BoardStore, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{client: client, locator: locator, store: store, loc: loc, now: time.Now}
}

func (s *Service) clock() time.Time {
	return s.now().In(s.loc)
}

// Today is the current date in the service timezone, as "YYYY-MM-DD".
func (s *Service) Today() string {
	return s.clock().Format(DateLayout)
}

func normalizeMethod(method int) int {
	if method <= 0 {
		return defaults.DefaultMethod()
	}
	return method
}

// ForCoordinates fetches today's timings at a position. It never fails;
// any problem yields the fallback board.
func (s *Service) ForCoordinates(ctx context.Context, lat, lng float64, method int) Result {
	method = normalizeMethod(method)
	now := s.clock()
	date := now.Format(DateLayout)

	resp, err := s.client.TimingsByCoordinates(ctx, date, lat, lng, method)
	res := s.build(resp, err, now, method)
	if res.Source == SourceFallback {
		log.Error().Str("reason", res.Reason).Float64("lat", lat).Float64("lng", lng).Int("method", method).
			Msg("Prayer times by coordinates unavailable, using fallback")
	}
	res.Location = &model.Coordinates{Latitude: lat, Longitude: lng}
	return res
}

// ForCity fetches today's timings for a named city.
func (s *Service) ForCity(ctx context.Context, city, country string, method int) Result {
	method = normalizeMethod(method)
	now := s.clock()
	date := now.Format(DateLayout)

	resp, err := s.client.TimingsByCity(ctx, date, city, country, method)
	res := s.build(resp, err, now, method)
	if res.Source == SourceFallback {
		log.Error().Str("reason", res.Reason).Str("city", city).Str("country", country).Int("method", method).
			Msg("Prayer times by city unavailable, using fallback")
	}
	res.Location = &model.Coordinates{City: city, Country: country}
	return res
}

// ForCurrentLocation resolves src and then fetches by its coordinates.
func (s *Service) ForCurrentLocation(ctx context.Context, src geo.PositionSource, method int) Result {
	where := s.locator.Resolve(ctx, src)
	res := s.ForCoordinates(ctx, where.Location.Latitude, where.Location.Longitude, method)
	loc := where.Location
	res.Location = &loc
	res.LocationSource = where.Source
	return res
}

// Board is the landing page prayer board, driven by the mosque settings.
// Without a store it is the board for the default location.
func (s *Service) Board(ctx context.Context) Result {
	var settings *model.MosqueSettings
	if s.store != nil {
		var err error
		settings, err = s.store.GetMosqueSettings(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to read mosque settings, using default location")
			settings = nil
		}
	}

	if settings == nil {
		d := defaults.Location()
		return s.ForCity(ctx, d.City, d.Country, defaults.DefaultMethod())
	}
	if !settings.UseAPI {
		return s.manual(ctx, settings.CalculationMethod)
	}
	if settings.Latitude != nil && settings.Longitude != nil {
		res := s.ForCoordinates(ctx, *settings.Latitude, *settings.Longitude, settings.CalculationMethod)
		res.Location.City = settings.City
		res.Location.Country = settings.Country
		return res
	}
	return s.ForCity(ctx, settings.City, settings.Country, settings.CalculationMethod)
}

func (s *Service) manual(ctx context.Context, method int) Result {
	now := s.clock()
	res := Result{Source: SourceManual, Method: normalizeMethod(method), Date: now.Format(DateLayout)}

	rows, err := s.store.ListPrayerTimes(ctx)
	if err == nil {
		var sched prayer.Schedule
		sched, err = scheduleFromRows(rows)
		if err == nil {
			res.Prayers = prayer.ClassifyAt(sched, now)
			return res
		}
	}

	log.Error().Err(err).Msg("Manual prayer times unusable, using fallback")
	res.Source = SourceFallback
	res.Reason = err.Error()
	res.Prayers = prayer.Fallback()
	return res
}

func (s *Service) build(resp *aladhan.Response, err error, now time.Time, method int) Result {
	res := Result{Method: method, Date: now.Format(DateLayout)}
	if err == nil && resp == nil {
		err = errors.New("empty timings response")
	}
	if err == nil {
		var sched prayer.Schedule
		sched, err = prayer.NewSchedule(resp.Data.Timings.Five())
		if err == nil {
			res.Source = SourceAPI
			res.Prayers = prayer.ClassifyAt(sched, now)
			return res
		}
	}
	res.Source = SourceFallback
	res.Reason = err.Error()
	res.Prayers = prayer.Fallback()
	return res
}

func scheduleFromRows(rows []model.PrayerTimeRow) (prayer.Schedule, error) {
	var times [5]string
	found := 0
	for _, row := range rows {
		for i, key := range prayer.Keys {
			if strings.EqualFold(row.Name, key) && times[i] == "" {
				times[i] = row.Time
				found++
			}
		}
	}
	if found != len(times) {
		return prayer.Schedule{}, fmt.Errorf("expected 5 active prayer times, found %d", found)
	}
	return prayer.NewSchedule(times)
}
