// Package prayer turns five daily prayer times into a labelled board.
package prayer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Nixie-Tech-LLC/takmir/internal/defaults"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

// Names are the display names of the five daily prayers, in order.
var Names = [5]string{"Subuh", "Dzuhur", "Ashar", "Maghrib", "Isya"}

// Keys are the names used for the stored prayer_times rows.
var Keys = [5]string{"subuh", "dzuhur", "ashar", "maghrib", "isya"}

var (
	ErrUnordered   = errors.New("prayer times are not strictly increasing")
	ErrInvalidTime = errors.New("invalid prayer time")
)

// Schedule holds five prayer times as minutes since midnight.
// Only NewSchedule builds one, so t[0] < t[1] < ... < t[4] always holds.
type Schedule struct {
	minutes [5]int
}

// NewSchedule parses five "HH:MM" values (annotations such as " (+07)" are
// dropped) in Subuh..Isya order.
func NewSchedule(times [5]string) (Schedule, error) {
	var s Schedule
	for i, raw := range times {
		m, err := ParseClock(raw)
		if err != nil {
			return Schedule{}, fmt.Errorf("%s: %w", Names[i], err)
		}
		if i > 0 && m <= s.minutes[i-1] {
			return Schedule{}, fmt.Errorf("%s %s after %s %s: %w",
				Names[i], StripZone(raw), Names[i-1], Format(s.minutes[i-1]), ErrUnordered)
		}
		s.minutes[i] = m
	}
	return s, nil
}

// Times returns the schedule as "HH:MM" strings.
func (s Schedule) Times() [5]string {
	var out [5]string
	for i, m := range s.minutes {
		out[i] = Format(m)
	}
	return out
}

// StripZone drops anything after the clock value, so "04:45 (+07)" becomes "04:45".
func StripZone(raw string) string {
	s := strings.TrimSpace(raw)
	if idx := strings.IndexAny(s, " \t("); idx != -1 {
		s = s[:idx]
	}
	return s
}

// ParseClock converts "HH:MM" (optionally annotated) into minutes since midnight.
func ParseClock(raw string) (int, error) {
	s := StripZone(raw)
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Format renders minutes since midnight as "HH:MM".
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesOf returns the wall-clock minutes of t in its own location.
func MinutesOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Classify labels each prayer relative to now (minutes since midnight).
//
// The current prayer is the latest one whose time has been reached; before
// Subuh the overnight window still belongs to Subuh. Prayers before the
// current one are completed and those after it are upcoming.
func Classify(s Schedule, now int) []model.Prayer {
	current := 0
	for i, m := range s.minutes {
		if m <= now {
			current = i
		}
	}

	out := make([]model.Prayer, len(s.minutes))
	for i, m := range s.minutes {
		status := model.StatusUpcoming
		switch {
		case i < current:
			status = model.StatusCompleted
		case i == current:
			status = model.StatusCurrent
		}
		out[i] = model.Prayer{
			ID:     i + 1,
			Name:   Names[i],
			Time:   Format(m),
			Status: status,
		}
	}
	return out
}

// ClassifyAt is Classify with the clock read from t.
func ClassifyAt(s Schedule, t time.Time) []model.Prayer {
	return Classify(s, MinutesOf(t))
}

// Fallback is the fixed board shown when no real timings are available.
// Its statuses are a snapshot, not computed from the clock.
func Fallback() []model.Prayer {
	return defaults.FallbackPrayers()
}
