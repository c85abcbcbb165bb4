package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

const announcementColumns = `
	id, title, content, priority, is_active, start_date::text AS start_date,
	end_date::text AS end_date, created_at, updated_at`

// ListActiveAnnouncements returns the announcements showing on today,
// highest priority first and newest first within a priority.
func (s *pgStore) ListActiveAnnouncements(ctx context.Context, today string) ([]model.Announcement, error) {
	all := []model.Announcement{}
	query := `SELECT` + announcementColumns + `
	FROM announcements
	WHERE is_active = TRUE
	AND start_date <= $1::date
	AND (end_date IS NULL OR end_date >= $1::date)
	ORDER BY CASE priority
		WHEN 'high' THEN 3
		WHEN 'medium' THEN 2
		ELSE 1
	END DESC, created_at DESC;`

	if err := s.db.SelectContext(ctx, &all, query, today); err != nil {
		log.Error().Err(err).Msg("Failed to list announcements")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) CreateAnnouncement(ctx context.Context, a model.Announcement) (*model.Announcement, error) {
	var out model.Announcement
	query := `
	INSERT INTO announcements
	(id, title, content, priority, is_active, start_date, end_date, created_at, updated_at)
	VALUES
	($1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING` + announcementColumns + `;`

	if err := s.db.GetContext(ctx, &out, query,
		uuid.NewString(),
		a.Title,
		a.Content,
		a.Priority,
		a.IsActive,
		a.StartDate,
		a.EndDate,
	); err != nil {
		log.Error().Err(err).Msg("Failed to create announcement")
		return nil, err
	}
	return &out, nil
}
