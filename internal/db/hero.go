package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

const heroColumns = `
	id, title, subtitle, mosque_badge, button_primary_text, button_secondary_text,
	created_at, updated_at`

// GetHeroContent returns the hero banner, or nil, nil if none has been created.
func (s *pgStore) GetHeroContent(ctx context.Context) (*model.HeroContent, error) {
	var h model.HeroContent
	query := `SELECT` + heroColumns + `
	FROM hero_content
	ORDER BY created_at
	LIMIT 1;`

	err := s.db.GetContext(ctx, &h, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to get hero content")
		return nil, err
	}
	return &h, nil
}

func (s *pgStore) CreateHeroContent(ctx context.Context, h model.HeroContent) (*model.HeroContent, error) {
	var out model.HeroContent
	query := `
	INSERT INTO hero_content
	(id, title, subtitle, mosque_badge, button_primary_text, button_secondary_text, created_at, updated_at)
	VALUES
	($1, $2,    $3,       $4,           $5,                  $6,                    now(),      now())
	RETURNING` + heroColumns + `;`

	if err := s.db.GetContext(ctx, &out, query,
		uuid.NewString(),
		h.Title,
		h.Subtitle,
		h.MosqueBadge,
		h.ButtonPrimaryText,
		h.ButtonSecondaryText,
	); err != nil {
		log.Error().Err(err).Msg("Failed to create hero content")
		return nil, err
	}
	return &out, nil
}

// UpdateHeroContent applies the non-nil fields of u. Returns sql.ErrNoRows
// when id does not exist.
func (s *pgStore) UpdateHeroContent(ctx context.Context, id string, u model.HeroContentUpdate) (*model.HeroContent, error) {
	var out model.HeroContent
	query := `
	UPDATE hero_content
	SET
	title                 = COALESCE($2, title),
	subtitle              = COALESCE($3, subtitle),
	mosque_badge          = COALESCE($4, mosque_badge),
	button_primary_text   = COALESCE($5, button_primary_text),
	button_secondary_text = COALESCE($6, button_secondary_text),
	updated_at            = now()
	WHERE id = $1
	RETURNING` + heroColumns + `;`

	err := s.db.GetContext(ctx, &out, query,
		id, u.Title, u.Subtitle, u.MosqueBadge, u.ButtonPrimaryText, u.ButtonSecondaryText,
	)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("id", id).Msg("Failed to update hero content")
		}
		return nil, err
	}
	return &out, nil
}
