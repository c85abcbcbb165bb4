package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

const prayerTimeColumns = `
	id, name, to_char(time, 'HH24:MI') AS time, is_active, created_at, updated_at`

// ListPrayerTimes returns the active rows in Subuh..Isya order.
func (s *pgStore) ListPrayerTimes(ctx context.Context) ([]model.PrayerTimeRow, error) {
	all := []model.PrayerTimeRow{}
	query := `SELECT` + prayerTimeColumns + `
	FROM prayer_times
	WHERE is_active = TRUE
	ORDER BY CASE name
		WHEN 'subuh' THEN 1
		WHEN 'dzuhur' THEN 2
		WHEN 'ashar' THEN 3
		WHEN 'maghrib' THEN 4
		WHEN 'isya' THEN 5
	END, created_at;`

	if err := s.db.SelectContext(ctx, &all, query); err != nil {
		log.Error().Err(err).Msg("Failed to list prayer times")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) CreatePrayerTime(ctx context.Context, name, time string) (*model.PrayerTimeRow, error) {
	var out model.PrayerTimeRow
	query := `
	INSERT INTO prayer_times (id, name, time, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, TRUE, now(), now())
	RETURNING` + prayerTimeColumns + `;`

	if err := s.db.GetContext(ctx, &out, query, uuid.NewString(), name, time); err != nil {
		log.Error().Err(err).Str("name", name).Msg("Failed to create prayer time")
		return nil, err
	}
	return &out, nil
}

// UpdatePrayerTime changes one row's time. Returns sql.ErrNoRows when id
// does not exist.
func (s *pgStore) UpdatePrayerTime(ctx context.Context, id, time string) (*model.PrayerTimeRow, error) {
	var out model.PrayerTimeRow
	query := `
	UPDATE prayer_times
	SET time = $2,
	updated_at = now()
	WHERE id = $1
	RETURNING` + prayerTimeColumns + `;`

	err := s.db.GetContext(ctx, &out, query, id, time)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("id", id).Msg("Failed to update prayer time")
		}
		return nil, err
	}
	return &out, nil
}
