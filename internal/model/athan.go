package model

// PrayerStatus is where a prayer sits relative to the current time of day.
type PrayerStatus string

const (
	StatusCompleted PrayerStatus = "completed"
	StatusCurrent   PrayerStatus = "current"
	StatusUpcoming  PrayerStatus = "upcoming"
)

// Prayer is one of the five daily prayers as shown on the landing page.
type Prayer struct {
	ID     int          `json:"id"     yaml:"id"`   // 1..5, Subuh first
	Name   string       `json:"name"   yaml:"name"` // "Subuh", "Dzuhur", ...
	Time   string       `json:"time"   yaml:"time"` // "04:45"
	Status PrayerStatus `json:"status" yaml:"status"`
}

// Coordinates is a resolved position with an optional human label.
type Coordinates struct {
	Latitude  float64 `json:"latitude"  yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	City      string  `json:"city"      yaml:"city"`
	Country   string  `json:"country"   yaml:"country"`
}

// CalculationMethod identifies an Al Adhan calculation convention.
type CalculationMethod struct {
	ID   int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
