package prayer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

var jakartaDay = [5]string{"04:45", "12:15", "15:30", "18:45", "20:00"}

func mustSchedule(t *testing.T, times [5]string) Schedule {
	t.Helper()
	s, err := NewSchedule(times)
	require.NoError(t, err)
	return s
}

func statuses(prayers []model.Prayer) []model.PrayerStatus {
	out := make([]model.PrayerStatus, len(prayers))
	for i, p := range prayers {
		out[i] = p.Status
	}
	return out
}

func clock(t *testing.T, hhmm string) int {
	t.Helper()
	m, err := ParseClock(hhmm)
	require.NoError(t, err)
	return m
}

func TestStripZone(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"04:45 (+07)", "04:45"},
		{"04:45", "04:45"},
		{"  05:17  (EET) ", "05:17"},
		{"18:01(WIB)", "18:01"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripZone(tt.raw), "StripZone(%q)", tt.raw)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"simple", "15:02", 15*60 + 2, false},
		{"midnight", "00:00", 0, false},
		{"annotated", "04:45 (+07)", 4*60 + 45, false},
		{"last minute", "23:59", 23*60 + 59, false},
		{"garbage", "bad", 0, true},
		{"empty", "", 0, true},
		{"missing minute", "15:", 0, true},
		{"hour out of range", "24:00", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSchedule_RejectsUnordered(t *testing.T) {
	_, err := NewSchedule([5]string{"04:45", "12:15", "12:15", "18:45", "20:00"})
	assert.True(t, errors.Is(err, ErrUnordered))

	_, err = NewSchedule([5]string{"20:00", "12:15", "15:30", "18:45", "04:45"})
	assert.ErrorIs(t, err, ErrUnordered)
}

func TestNewSchedule_RejectsInvalid(t *testing.T) {
	_, err := NewSchedule([5]string{"04:45", "noon", "15:30", "18:45", "20:00"})
	assert.ErrorIs(t, err, ErrInvalidTime)
	assert.Contains(t, err.Error(), "Dzuhur")
}

func TestSchedule_TimesStripped(t *testing.T) {
	s := mustSchedule(t, [5]string{"04:45 (+07)", "12:15 (+07)", "15:30", "18:45", "20:00"})
	assert.Equal(t, jakartaDay, s.Times())
}

func TestClassify_AfterAshar(t *testing.T) {
	got := Classify(mustSchedule(t, jakartaDay), clock(t, "15:31"))
	assert.Equal(t, []model.PrayerStatus{
		model.StatusCompleted, model.StatusCompleted, model.StatusCurrent,
		model.StatusUpcoming, model.StatusUpcoming,
	}, statuses(got))
}

func TestClassify_BeforeSubuh(t *testing.T) {
	got := Classify(mustSchedule(t, jakartaDay), clock(t, "03:00"))
	assert.Equal(t, model.StatusCurrent, got[0].Status)
	for _, p := range got[1:] {
		assert.Equal(t, model.StatusUpcoming, p.Status, p.Name)
	}
}

func TestClassify_AfterIsya(t *testing.T) {
	got := Classify(mustSchedule(t, jakartaDay), clock(t, "22:10"))
	assert.Equal(t, []model.PrayerStatus{
		model.StatusCompleted, model.StatusCompleted, model.StatusCompleted,
		model.StatusCompleted, model.StatusCurrent,
	}, statuses(got))
}

func TestClassify_AtExactBoundary(t *testing.T) {
	got := Classify(mustSchedule(t, jakartaDay), clock(t, "18:45"))
	assert.Equal(t, model.StatusCompleted, got[2].Status)
	assert.Equal(t, model.StatusCurrent, got[3].Status)
	assert.Equal(t, model.StatusUpcoming, got[4].Status)
}

func TestClassify_IdsNamesAndTimes(t *testing.T) {
	got := Classify(mustSchedule(t, jakartaDay), 0)
	require.Len(t, got, 5)
	for i, p := range got {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, Names[i], p.Name)
		assert.Equal(t, jakartaDay[i], p.Time)
	}
}

// Every minute of the day yields exactly one status per prayer and exactly
// one current prayer, with completed prayers strictly before it.
func TestClassify_ExactlyOneCurrentAllDay(t *testing.T) {
	schedules := [][5]string{
		jakartaDay,
		{"00:00", "00:01", "00:02", "00:03", "23:59"},
		{"05:17", "12:13", "15:02", "17:39", "19:10"},
		{"03:01", "13:30", "17:45", "21:50", "23:40"},
	}
	for _, times := range schedules {
		s := mustSchedule(t, times)
		for now := 0; now < 24*60; now++ {
			got := Classify(s, now)
			require.Len(t, got, 5)

			current := -1
			for i, p := range got {
				switch p.Status {
				case model.StatusCurrent:
					require.Equal(t, -1, current, "two current prayers at %s", Format(now))
					current = i
				case model.StatusCompleted, model.StatusUpcoming:
				default:
					t.Fatalf("unexpected status %q at %s", p.Status, Format(now))
				}
			}
			require.NotEqual(t, -1, current, "no current prayer at %s", Format(now))
			for i, p := range got {
				if i < current {
					assert.Equal(t, model.StatusCompleted, p.Status)
				} else if i > current {
					assert.Equal(t, model.StatusUpcoming, p.Status)
				}
			}
		}
	}
}

func TestClassifyAt_UsesWallClock(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2026, 3, 1, 15, 31, 0, 0, loc)
	got := ClassifyAt(mustSchedule(t, jakartaDay), now)
	assert.Equal(t, model.StatusCurrent, got[2].Status)
}

func TestFallback(t *testing.T) {
	got := Fallback()
	require.Len(t, got, 5)
	assert.Equal(t, []model.PrayerStatus{
		model.StatusCompleted, model.StatusCompleted, model.StatusCurrent,
		model.StatusUpcoming, model.StatusUpcoming,
	}, statuses(got))
	assert.Equal(t, "Subuh", got[0].Name)
	assert.Equal(t, "04:45", got[0].Time)
	assert.Equal(t, "Isya", got[4].Name)
	assert.Equal(t, "20:00", got[4].Time)
}
