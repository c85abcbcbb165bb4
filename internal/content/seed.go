package content

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/defaults"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

// SeedReport counts the rows InitializeDefaults inserted.
type SeedReport struct {
	Hero        bool `json:"hero"`
	Settings    bool `json:"settings"`
	PrayerTimes int  `json:"prayer_times"`
}

// InitializeDefaults inserts the default hero banner, mosque settings and
// prayer times, each only when absent. The three checks are independent and
// not atomic; a second run inserts nothing.
func (s *Service) InitializeDefaults(ctx context.Context) (SeedReport, error) {
	var report SeedReport
	seed := defaults.Seeds()

	hero, err := s.store.GetHeroContent(ctx)
	if err != nil {
		return report, storeError("get hero content", err)
	}
	if hero == nil {
		h := seed.Hero
		if _, err := s.store.CreateHeroContent(ctx, model.HeroContent{
			Title:               h.Title,
			Subtitle:            &h.Subtitle,
			MosqueBadge:         &h.MosqueBadge,
			ButtonPrimaryText:   h.ButtonPrimaryText,
			ButtonSecondaryText: h.ButtonSecondaryText,
		}); err != nil {
			return report, storeError("create hero content", err)
		}
		report.Hero = true
	}

	settings, err := s.store.GetMosqueSettings(ctx)
	if err != nil {
		return report, storeError("get mosque settings", err)
	}
	if settings == nil {
		st := seed.Settings
		if _, err := s.store.CreateMosqueSettings(ctx, model.MosqueSettings{
			Name:              st.Name,
			Address:           &st.Address,
			Contact:           &st.Contact,
			City:              st.City,
			Country:           st.Country,
			CalculationMethod: defaults.DefaultMethod(),
			UseAPI:            true,
		}); err != nil {
			return report, storeError("create mosque settings", err)
		}
		report.Settings = true
	}

	rows, err := s.store.ListPrayerTimes(ctx)
	if err != nil {
		return report, storeError("list prayer times", err)
	}
	if len(rows) == 0 {
		for _, p := range seed.PrayerTimes {
			if _, err := s.store.CreatePrayerTime(ctx, p.Name, p.Time); err != nil {
				return report, storeError("create prayer time", err)
			}
			report.PrayerTimes++
		}
	}

	log.Info().Bool("hero", report.Hero).Bool("settings", report.Settings).
		Int("prayer_times", report.PrayerTimes).Msg("Default content initialized")
	return report, nil
}
