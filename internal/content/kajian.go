package content

import (
	"context"

	"github.com/Nixie-Tech-LLC/takmir/internal/media"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

const (
	msgKajianMissing   = "Kajian tidak ditemukan"
	msgKajianTitle     = "Judul kajian harus diisi"
	msgKajianSpeaker   = "Nama pemateri harus diisi"
	msgKajianDate      = "Tanggal kajian harus diisi"
	msgKajianTimes     = "Waktu mulai dan selesai harus diisi"
	msgKajianTimeOrder = "Waktu selesai harus lebih besar dari waktu mulai"
	msgKajianStatus    = "Status kajian tidak valid"
)

func validKajianStatus(st model.KajianStatus) bool {
	switch st {
	case model.KajianUpcoming, model.KajianOngoing, model.KajianCompleted, model.KajianCancelled:
		return true
	}
	return false
}

// normalizeKajian checks required fields and rewrites date and times into
// their stored formats.
func normalizeKajian(k *model.Kajian) error {
	if blank(k.Title) {
		return invalid(msgKajianTitle)
	}
	if blank(k.Speaker) {
		return invalid(msgKajianSpeaker)
	}
	if blank(k.Date) {
		return invalid(msgKajianDate)
	}
	d, ok := NormalizeDate(k.Date)
	if !ok {
		return invalid("Format tanggal harus YYYY-MM-DD")
	}
	k.Date = d

	if blank(k.StartTime) || blank(k.EndTime) {
		return invalid(msgKajianTimes)
	}
	start, ok1 := NormalizeTime(k.StartTime)
	end, ok2 := NormalizeTime(k.EndTime)
	if !ok1 || !ok2 {
		return invalid(msgPrayerTimeFormat)
	}
	// "HH:MM" strings compare in clock order.
	if end <= start {
		return invalid(msgKajianTimeOrder)
	}
	k.StartTime, k.EndTime = start, end

	if blankPtr(k.VideoURL) {
		k.VideoURL = nil
	} else if _, err := media.ParseFacebook(*k.VideoURL); err != nil {
		return invalid(err.Error())
	}

	if k.Status == "" {
		k.Status = model.KajianUpcoming
	}
	if !validKajianStatus(k.Status) {
		return invalid(msgKajianStatus)
	}
	return nil
}

// ListKajian returns every kajian, newest date first.
func (s *Service) ListKajian(ctx context.Context) ([]model.Kajian, error) {
	all, err := s.store.ListKajian(ctx)
	if err != nil {
		return nil, storeError("list kajian", err)
	}
	return all, nil
}

func (s *Service) GetKajian(ctx context.Context, id string) (*model.Kajian, error) {
	k, err := s.store.GetKajian(ctx, id)
	if err != nil {
		return nil, fromStore("get kajian", err, msgKajianMissing)
	}
	return k, nil
}

func (s *Service) CreateKajian(ctx context.Context, k model.Kajian) (*model.Kajian, error) {
	if err := normalizeKajian(&k); err != nil {
		return nil, err
	}
	out, err := s.store.CreateKajian(ctx, k)
	if err != nil {
		return nil, storeError("create kajian", err)
	}
	return out, nil
}

// UpdateKajian applies u after checking that the merged record is still valid.
func (s *Service) UpdateKajian(ctx context.Context, id string, u model.KajianUpdate) (*model.Kajian, error) {
	current, err := s.store.GetKajian(ctx, id)
	if err != nil {
		return nil, fromStore("get kajian", err, msgKajianMissing)
	}

	merged := *current
	applyKajianUpdate(&merged, u)
	if err := normalizeKajian(&merged); err != nil {
		return nil, err
	}
	if u.Date != nil {
		u.Date = &merged.Date
	}
	if u.StartTime != nil {
		u.StartTime = &merged.StartTime
	}
	if u.EndTime != nil {
		u.EndTime = &merged.EndTime
	}

	out, err := s.store.UpdateKajian(ctx, id, u)
	if err != nil {
		return nil, fromStore("update kajian", err, msgKajianMissing)
	}
	return out, nil
}

func applyKajianUpdate(k *model.Kajian, u model.KajianUpdate) {
	if u.Title != nil {
		k.Title = *u.Title
	}
	if u.Description != nil {
		k.Description = u.Description
	}
	if u.Speaker != nil {
		k.Speaker = *u.Speaker
	}
	if u.Date != nil {
		k.Date = *u.Date
	}
	if u.StartTime != nil {
		k.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		k.EndTime = *u.EndTime
	}
	if u.Location != nil {
		k.Location = *u.Location
	}
	if u.ImageURL != nil {
		k.ImageURL = u.ImageURL
	}
	if u.VideoURL != nil {
		k.VideoURL = u.VideoURL
	}
	if u.Status != nil {
		k.Status = *u.Status
	}
	if u.IsFeatured != nil {
		k.IsFeatured = *u.IsFeatured
	}
}

func (s *Service) DeleteKajian(ctx context.Context, id string) error {
	if err := s.store.DeleteKajian(ctx, id); err != nil {
		return fromStore("delete kajian", err, msgKajianMissing)
	}
	return nil
}

// FeaturedKajian returns at most FeaturedKajianLimit featured upcoming kajian.
func (s *Service) FeaturedKajian(ctx context.Context) ([]model.Kajian, error) {
	all, err := s.store.ListFeaturedKajian(ctx, FeaturedKajianLimit)
	if err != nil {
		return nil, storeError("list featured kajian", err)
	}
	return all, nil
}

// UpcomingKajian returns at most UpcomingKajianLimit upcoming kajian from today on.
func (s *Service) UpcomingKajian(ctx context.Context) ([]model.Kajian, error) {
	all, err := s.store.ListUpcomingKajian(ctx, s.today(), UpcomingKajianLimit)
	if err != nil {
		return nil, storeError("list upcoming kajian", err)
	}
	return all, nil
}
