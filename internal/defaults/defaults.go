// Package defaults holds the fixed data the site needs before any admin
// edit: the fallback location, the calculation method table, the fallback
// prayer snapshot and the rows seeded into an empty database.
package defaults

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

//go:embed defaults.yaml
var raw []byte

type HeroSeed struct {
	Title               string `yaml:"title"`
	Subtitle            string `yaml:"subtitle"`
	MosqueBadge         string `yaml:"mosque_badge"`
	ButtonPrimaryText   string `yaml:"button_primary_text"`
	ButtonSecondaryText string `yaml:"button_secondary_text"`
}

type SettingsSeed struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Contact string `yaml:"contact"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
}

type PrayerTimeSeed struct {
	Name string `yaml:"name"`
	Time string `yaml:"time"`
}

type Seed struct {
	Hero        HeroSeed         `yaml:"hero"`
	Settings    SettingsSeed     `yaml:"settings"`
	PrayerTimes []PrayerTimeSeed `yaml:"prayer_times"`
}

// Catalog is the decoded contents of defaults.yaml.
type Catalog struct {
	Location        model.Coordinates         `yaml:"location"`
	UnknownCity     string                    `yaml:"unknown_city"`
	DefaultMethod   int                       `yaml:"default_method"`
	Methods         []model.CalculationMethod `yaml:"methods"`
	FallbackPrayers []model.Prayer            `yaml:"fallback_prayers"`
	Seed            Seed                      `yaml:"seed"`
}

var catalog = mustLoad()

func mustLoad() *Catalog {
	c, err := parse(raw)
	if err != nil {
		panic(err)
	}
	return c
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse defaults: %w", err)
	}
	if len(c.FallbackPrayers) != 5 {
		return nil, fmt.Errorf("defaults: expected 5 fallback prayers, got %d", len(c.FallbackPrayers))
	}
	if len(c.Seed.PrayerTimes) != 5 {
		return nil, fmt.Errorf("defaults: expected 5 seeded prayer times, got %d", len(c.Seed.PrayerTimes))
	}
	if _, ok := lookup(c.Methods, c.DefaultMethod); !ok {
		return nil, fmt.Errorf("defaults: default method %d is not in the method table", c.DefaultMethod)
	}
	return &c, nil
}

// Location is the place used when no position can be obtained.
func Location() model.Coordinates { return catalog.Location }

// UnknownCity labels coordinates that could not be reverse-geocoded.
func UnknownCity() string { return catalog.UnknownCity }

// DefaultMethod is the calculation method used when none is configured.
func DefaultMethod() int { return catalog.DefaultMethod }

// Methods returns a copy of the calculation method table.
func Methods() []model.CalculationMethod {
	out := make([]model.CalculationMethod, len(catalog.Methods))
	copy(out, catalog.Methods)
	return out
}

// Method looks up a calculation method by id.
func Method(id int) (model.CalculationMethod, bool) {
	return lookup(catalog.Methods, id)
}

// FallbackPrayers returns a fresh copy of the static prayer snapshot.
func FallbackPrayers() []model.Prayer {
	out := make([]model.Prayer, len(catalog.FallbackPrayers))
	copy(out, catalog.FallbackPrayers)
	return out
}

// Seeds returns the rows inserted into an empty database.
func Seeds() Seed {
	s := catalog.Seed
	s.PrayerTimes = append([]PrayerTimeSeed(nil), catalog.Seed.PrayerTimes...)
	return s
}

func lookup(methods []model.CalculationMethod, id int) (model.CalculationMethod, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return model.CalculationMethod{}, false
}
