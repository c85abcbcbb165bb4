package content

import (
	"context"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

var activityCategories = map[string]bool{
	"kajian": true, "event": true, "pengumuman": true, "kegiatan": true,
}

var announcementPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

func (s *Service) ListActivities(ctx context.Context) ([]model.Activity, error) {
	all, err := s.store.ListActivities(ctx)
	if err != nil {
		return nil, storeError("list activities", err)
	}
	return all, nil
}

func (s *Service) CreateActivity(ctx context.Context, a model.Activity) (*model.Activity, error) {
	if blank(a.Title) {
		return nil, invalid("Judul kegiatan harus diisi")
	}
	if blank(a.Date) {
		return nil, invalid("Tanggal kegiatan harus diisi")
	}
	d, ok := NormalizeDate(a.Date)
	if !ok {
		return nil, invalid("Format tanggal harus YYYY-MM-DD")
	}
	a.Date = d
	if blankPtr(a.Time) {
		a.Time = nil
	} else {
		t, ok := NormalizeTime(*a.Time)
		if !ok {
			return nil, invalid(msgPrayerTimeFormat)
		}
		a.Time = &t
	}
	if a.Category == "" {
		a.Category = "kegiatan"
	}
	if !activityCategories[a.Category] {
		return nil, invalid("Kategori kegiatan tidak valid")
	}

	out, err := s.store.CreateActivity(ctx, a)
	if err != nil {
		return nil, storeError("create activity", err)
	}
	return out, nil
}

// ActiveAnnouncements returns the announcements whose window covers today.
func (s *Service) ActiveAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	all, err := s.store.ListActiveAnnouncements(ctx, s.today())
	if err != nil {
		return nil, storeError("list announcements", err)
	}
	return all, nil
}

func (s *Service) CreateAnnouncement(ctx context.Context, a model.Announcement) (*model.Announcement, error) {
	if blank(a.Title) {
		return nil, invalid("Judul pengumuman harus diisi")
	}
	if blank(a.Content) {
		return nil, invalid("Isi pengumuman harus diisi")
	}
	if blank(a.StartDate) {
		return nil, invalid("Tanggal mulai harus diisi")
	}
	start, ok := NormalizeDate(a.StartDate)
	if !ok {
		return nil, invalid("Format tanggal harus YYYY-MM-DD")
	}
	a.StartDate = start
	if blankPtr(a.EndDate) {
		a.EndDate = nil
	} else {
		end, ok := NormalizeDate(*a.EndDate)
		if !ok {
			return nil, invalid("Format tanggal harus YYYY-MM-DD")
		}
		if end < start {
			return nil, invalid("Tanggal selesai tidak boleh sebelum tanggal mulai")
		}
		a.EndDate = &end
	}
	if a.Priority == "" {
		a.Priority = "medium"
	}
	if !announcementPriorities[a.Priority] {
		return nil, invalid("Prioritas pengumuman tidak valid")
	}

	out, err := s.store.CreateAnnouncement(ctx, a)
	if err != nil {
		return nil, storeError("create announcement", err)
	}
	return out, nil
}
