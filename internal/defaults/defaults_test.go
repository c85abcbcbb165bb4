package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

func TestLocation_Jakarta(t *testing.T) {
	loc := Location()
	assert.Equal(t, -6.2088, loc.Latitude)
	assert.Equal(t, 106.8456, loc.Longitude)
	assert.Equal(t, "Jakarta", loc.City)
	assert.Equal(t, "Indonesia", loc.Country)
}

func TestMethods_NoDuplicateIDs(t *testing.T) {
	seen := map[int]bool{}
	for _, m := range Methods() {
		assert.False(t, seen[m.ID], "duplicate method id %d", m.ID)
		seen[m.ID] = true
		assert.NotEmpty(t, m.Name)
	}
	assert.Len(t, seen, 22)
	assert.False(t, seen[6], "method 6 is not offered")
}

func TestMethod_DefaultIsKemenag(t *testing.T) {
	m, ok := Method(DefaultMethod())
	require.True(t, ok)
	assert.Equal(t, 20, m.ID)
	assert.Equal(t, "Kementerian Agama, Indonesia", m.Name)

	_, ok = Method(99)
	assert.False(t, ok)
}

func TestFallbackPrayers_Snapshot(t *testing.T) {
	got := FallbackPrayers()
	require.Len(t, got, 5)

	names := []string{"Subuh", "Dzuhur", "Ashar", "Maghrib", "Isya"}
	times := []string{"04:45", "12:15", "15:30", "18:45", "20:00"}
	statuses := []model.PrayerStatus{
		model.StatusCompleted, model.StatusCompleted, model.StatusCurrent,
		model.StatusUpcoming, model.StatusUpcoming,
	}
	for i, p := range got {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, names[i], p.Name)
		assert.Equal(t, times[i], p.Time)
		assert.Equal(t, statuses[i], p.Status)
	}
}

func TestFallbackPrayers_ReturnsCopy(t *testing.T) {
	a := FallbackPrayers()
	a[0].Status = model.StatusUpcoming
	assert.Equal(t, model.StatusCompleted, FallbackPrayers()[0].Status)
}

func TestParse_RejectsShortFallback(t *testing.T) {
	_, err := parse([]byte("default_method: 20\nmethods: [{id: 20, name: x}]\nfallback_prayers: []\n"))
	assert.Error(t, err)
}

func TestSeeds(t *testing.T) {
	s := Seeds()
	assert.Equal(t, "Takmir Pinter", s.Hero.Title)
	assert.Equal(t, "Masjid Al-Hidayah", s.Settings.Name)
	require.Len(t, s.PrayerTimes, 5)
	assert.Equal(t, "subuh", s.PrayerTimes[0].Name)
	assert.Equal(t, "20:00", s.PrayerTimes[4].Time)
}
