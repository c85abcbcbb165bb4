package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

const kajianColumns = `
	id, title, description, speaker, date::text AS date,
	to_char(start_time, 'HH24:MI') AS start_time,
	to_char(end_time, 'HH24:MI') AS end_time,
	location, image_url, video_url, status, is_featured, created_at, updated_at`

// ListKajian returns every kajian, newest date first.
func (s *pgStore) ListKajian(ctx context.Context) ([]model.Kajian, error) {
	all := []model.Kajian{}
	query := `SELECT` + kajianColumns + `
	FROM kajian
	ORDER BY date DESC, start_time DESC;`

	if err := s.db.SelectContext(ctx, &all, query); err != nil {
		log.Error().Err(err).Msg("Failed to list kajian")
		return nil, err
	}
	return all, nil
}

// GetKajian returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetKajian(ctx context.Context, id string) (*model.Kajian, error) {
	var k model.Kajian
	query := `SELECT` + kajianColumns + `
	FROM kajian
	WHERE id = $1;`

	err := s.db.GetContext(ctx, &k, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Str("id", id).Msg("Failed to get kajian by ID")
		return nil, err
	}
	return &k, nil
}

func (s *pgStore) CreateKajian(ctx context.Context, k model.Kajian) (*model.Kajian, error) {
	var out model.Kajian
	query := `
	INSERT INTO kajian
	(id, title, description, speaker, date, start_time, end_time, location,
	 image_url, video_url, status, is_featured, created_at, updated_at)
	VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
	RETURNING` + kajianColumns + `;`

	if err := s.db.GetContext(ctx, &out, query,
		uuid.NewString(),
		k.Title,
		k.Description,
		k.Speaker,
		k.Date,
		k.StartTime,
		k.EndTime,
		k.Location,
		k.ImageURL,
		k.VideoURL,
		k.Status,
		k.IsFeatured,
	); err != nil {
		log.Error().Err(err).Msg("Failed to create kajian")
		return nil, err
	}
	return &out, nil
}

// UpdateKajian applies the non-nil fields of u. Returns sql.ErrNoRows when
// id does not exist.
func (s *pgStore) UpdateKajian(ctx context.Context, id string, u model.KajianUpdate) (*model.Kajian, error) {
	var out model.Kajian
	query := `
	UPDATE kajian
	SET
	title       = COALESCE($2, title),
	description = COALESCE($3, description),
	speaker     = COALESCE($4, speaker),
	date        = COALESCE($5::date, date),
	start_time  = COALESCE($6::time, start_time),
	end_time    = COALESCE($7::time, end_time),
	location    = COALESCE($8, location),
	image_url   = COALESCE($9, image_url),
	video_url   = COALESCE($10, video_url),
	status      = COALESCE($11, status),
	is_featured = COALESCE($12, is_featured),
	updated_at  = now()
	WHERE id = $1
	RETURNING` + kajianColumns + `;`

	err := s.db.GetContext(ctx, &out, query,
		id, u.Title, u.Description, u.Speaker, u.Date, u.StartTime, u.EndTime,
		u.Location, u.ImageURL, u.VideoURL, u.Status, u.IsFeatured,
	)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("id", id).Msg("Failed to update kajian")
		}
		return nil, err
	}
	return &out, nil
}

// DeleteKajian returns sql.ErrNoRows when id does not exist.
func (s *pgStore) DeleteKajian(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM kajian WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to delete kajian")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListFeaturedKajian returns featured upcoming kajian, soonest first.
func (s *pgStore) ListFeaturedKajian(ctx context.Context, limit int) ([]model.Kajian, error) {
	all := []model.Kajian{}
	query := `SELECT` + kajianColumns + `
	FROM kajian
	WHERE is_featured = TRUE AND status = 'upcoming'
	ORDER BY date ASC, start_time ASC
	LIMIT $1;`

	if err := s.db.SelectContext(ctx, &all, query, limit); err != nil {
		log.Error().Err(err).Msg("Failed to list featured kajian")
		return nil, err
	}
	return all, nil
}

// ListUpcomingKajian returns upcoming kajian dated today or later.
func (s *pgStore) ListUpcomingKajian(ctx context.Context, today string, limit int) ([]model.Kajian, error) {
	all := []model.Kajian{}
	query := `SELECT` + kajianColumns + `
	FROM kajian
	WHERE status = 'upcoming' AND date >= $1::date
	ORDER BY date ASC, start_time ASC
	LIMIT $2;`

	if err := s.db.SelectContext(ctx, &all, query, today, limit); err != nil {
		log.Error().Err(err).Msg("Failed to list upcoming kajian")
		return nil, err
	}
	return all, nil
}
