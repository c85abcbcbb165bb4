package content

import (
	"context"

	"github.com/Nixie-Tech-LLC/takmir/internal/defaults"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

const (
	msgHeroMissing     = "Konten hero belum dibuat"
	msgSettingsMissing = "Pengaturan masjid belum dibuat"
)

// Hero returns the hero banner, or nil when none exists yet.
func (s *Service) Hero(ctx context.Context) (*model.HeroContent, error) {
	h, err := s.store.GetHeroContent(ctx)
	if err != nil {
		return nil, storeError("get hero content", err)
	}
	return h, nil
}

func (s *Service) CreateHero(ctx context.Context, h model.HeroContent) (*model.HeroContent, error) {
	if blank(h.Title) {
		return nil, invalid("Judul harus diisi")
	}
	if blank(h.ButtonPrimaryText) {
		h.ButtonPrimaryText = defaults.Seeds().Hero.ButtonPrimaryText
	}
	if blank(h.ButtonSecondaryText) {
		h.ButtonSecondaryText = defaults.Seeds().Hero.ButtonSecondaryText
	}
	out, err := s.store.CreateHeroContent(ctx, h)
	if err != nil {
		return nil, storeError("create hero content", err)
	}
	return out, nil
}

// UpdateHero edits the existing hero banner. It reports ErrNotFound when
// there is nothing to edit.
func (s *Service) UpdateHero(ctx context.Context, u model.HeroContentUpdate) (*model.HeroContent, error) {
	if u.Title != nil && blank(*u.Title) {
		return nil, invalid("Judul harus diisi")
	}
	current, err := s.store.GetHeroContent(ctx)
	if err != nil {
		return nil, storeError("get hero content", err)
	}
	if current == nil {
		return nil, notFound(msgHeroMissing)
	}
	out, err := s.store.UpdateHeroContent(ctx, current.ID, u)
	if err != nil {
		return nil, fromStore("update hero content", err, msgHeroMissing)
	}
	return out, nil
}

// Settings returns the mosque settings, or nil when none exist yet.
func (s *Service) Settings(ctx context.Context) (*model.MosqueSettings, error) {
	m, err := s.store.GetMosqueSettings(ctx)
	if err != nil {
		return nil, storeError("get mosque settings", err)
	}
	return m, nil
}

// CreateSettings stores the mosque settings when none exist yet. Blank
// location fields and a zero method take the defaults.
func (s *Service) CreateSettings(ctx context.Context, m model.MosqueSettings) (*model.MosqueSettings, error) {
	if blank(m.Name) {
		return nil, invalid("Nama masjid harus diisi")
	}
	loc := defaults.Location()
	if blank(m.City) {
		m.City = loc.City
	}
	if blank(m.Country) {
		m.Country = loc.Country
	}
	if m.CalculationMethod == 0 {
		m.CalculationMethod = defaults.DefaultMethod()
	}
	if err := validateSettings(model.MosqueSettingsUpdate{
		CalculationMethod: &m.CalculationMethod,
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
	}); err != nil {
		return nil, err
	}

	current, err := s.store.GetMosqueSettings(ctx)
	if err != nil {
		return nil, storeError("get mosque settings", err)
	}
	if current != nil {
		return nil, invalid("Pengaturan masjid sudah ada")
	}
	out, err := s.store.CreateMosqueSettings(ctx, m)
	if err != nil {
		return nil, storeError("create mosque settings", err)
	}
	return out, nil
}

func (s *Service) UpdateSettings(ctx context.Context, u model.MosqueSettingsUpdate) (*model.MosqueSettings, error) {
	if err := validateSettings(u); err != nil {
		return nil, err
	}
	current, err := s.store.GetMosqueSettings(ctx)
	if err != nil {
		return nil, storeError("get mosque settings", err)
	}
	if current == nil {
		return nil, notFound(msgSettingsMissing)
	}
	out, err := s.store.UpdateMosqueSettings(ctx, current.ID, u)
	if err != nil {
		return nil, fromStore("update mosque settings", err, msgSettingsMissing)
	}
	return out, nil
}

func validateSettings(u model.MosqueSettingsUpdate) error {
	if u.Name != nil && blank(*u.Name) {
		return invalid("Nama masjid harus diisi")
	}
	if u.CalculationMethod != nil {
		if _, ok := defaults.Method(*u.CalculationMethod); !ok {
			return invalid("Metode perhitungan tidak dikenal")
		}
	}
	if u.Latitude != nil && (*u.Latitude < -90 || *u.Latitude > 90) {
		return invalid("Latitude harus di antara -90 dan 90")
	}
	if u.Longitude != nil && (*u.Longitude < -180 || *u.Longitude > 180) {
		return invalid("Longitude harus di antara -180 dan 180")
	}
	return nil
}
