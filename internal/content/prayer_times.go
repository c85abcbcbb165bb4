package content

import (
	"context"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
	"github.com/Nixie-Tech-LLC/takmir/internal/prayer"
)

const (
	msgPrayerTimeMissing = "Waktu sholat tidak ditemukan"
	msgPrayerTimeFormat  = "Format waktu harus HH:MM"
	msgPrayerTimeOrder   = "Waktu sholat harus berurutan dari Subuh hingga Isya"
)

// PrayerTimeChange sets the time of one stored prayer row.
type PrayerTimeChange struct {
	ID   string `json:"id"   binding:"required"`
	Time string `json:"time" binding:"required"`
}

// PrayerTimes lists the active manual prayer times.
func (s *Service) PrayerTimes(ctx context.Context) ([]model.PrayerTimeRow, error) {
	rows, err := s.store.ListPrayerTimes(ctx)
	if err != nil {
		return nil, storeError("list prayer times", err)
	}
	return rows, nil
}

func (s *Service) UpdatePrayerTime(ctx context.Context, id, hhmm string) (*model.PrayerTimeRow, error) {
	out, err := s.UpdatePrayerTimes(ctx, []PrayerTimeChange{{ID: id, Time: hhmm}})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// UpdatePrayerTimes applies changes one row at a time. The resulting five
// active times must still run Subuh < Dzuhur < Ashar < Maghrib < Isya.
func (s *Service) UpdatePrayerTimes(ctx context.Context, changes []PrayerTimeChange) ([]model.PrayerTimeRow, error) {
	if len(changes) == 0 {
		return nil, invalid("Tidak ada waktu sholat yang diubah")
	}
	normalized := make(map[string]string, len(changes))
	for _, c := range changes {
		t, ok := NormalizeTime(c.Time)
		if !ok {
			return nil, invalid(msgPrayerTimeFormat)
		}
		normalized[c.ID] = t
	}

	rows, err := s.store.ListPrayerTimes(ctx)
	if err != nil {
		return nil, storeError("list prayer times", err)
	}
	known := make(map[string]bool, len(rows))
	for _, r := range rows {
		known[r.ID] = true
	}
	for id := range normalized {
		if !known[id] {
			return nil, notFound(msgPrayerTimeMissing)
		}
	}
	if err := checkOrder(rows, normalized); err != nil {
		return nil, err
	}

	out := make([]model.PrayerTimeRow, 0, len(changes))
	for _, c := range changes {
		row, err := s.store.UpdatePrayerTime(ctx, c.ID, normalized[c.ID])
		if err != nil {
			return nil, fromStore("update prayer time", err, msgPrayerTimeMissing)
		}
		out = append(out, *row)
	}
	return out, nil
}

// checkOrder validates the complete set after the changes are applied.
// Partial sets (fewer than five active rows) are not checked.
func checkOrder(rows []model.PrayerTimeRow, changes map[string]string) error {
	var times [5]string
	found := 0
	for _, r := range rows {
		t := r.Time
		if nt, ok := changes[r.ID]; ok {
			t = nt
		}
		for i, key := range prayer.Keys {
			if r.Name == key && times[i] == "" {
				times[i] = t
				found++
			}
		}
	}
	if found != len(times) {
		return nil
	}
	if _, err := prayer.NewSchedule(times); err != nil {
		return invalid(msgPrayerTimeOrder)
	}
	return nil
}
