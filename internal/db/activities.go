package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

const activityColumns = `
	id, title, description, date::text AS date,
	to_char(time, 'HH24:MI') AS time,
	location, category, image_url, is_active, created_at, updated_at`

// ListActivities returns active activities, newest date first.
func (s *pgStore) ListActivities(ctx context.Context) ([]model.Activity, error) {
	all := []model.Activity{}
	query := `SELECT` + activityColumns + `
	FROM activities
	WHERE is_active = TRUE
	ORDER BY date DESC;`

	if err := s.db.SelectContext(ctx, &all, query); err != nil {
		log.Error().Err(err).Msg("Failed to list activities")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) CreateActivity(ctx context.Context, a model.Activity) (*model.Activity, error) {
	var out model.Activity
	query := `
	INSERT INTO activities
	(id, title, description, date, time, location, category, image_url, is_active, created_at, updated_at)
	VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
	RETURNING` + activityColumns + `;`

	if err := s.db.GetContext(ctx, &out, query,
		uuid.NewString(),
		a.Title,
		a.Description,
		a.Date,
		a.Time,
		a.Location,
		a.Category,
		a.ImageURL,
		a.IsActive,
	); err != nil {
		log.Error().Err(err).Msg("Failed to create activity")
		return nil, err
	}
	return &out, nil
}
