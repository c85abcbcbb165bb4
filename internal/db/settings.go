package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

const settingsColumns = `
	id, name, address, contact, logo_url, city, country, latitude, longitude,
	calculation_method, use_api, created_at, updated_at`

// GetMosqueSettings returns the settings row, or nil, nil if none exists.
func (s *pgStore) GetMosqueSettings(ctx context.Context) (*model.MosqueSettings, error) {
	var m model.MosqueSettings
	query := `SELECT` + settingsColumns + `
	FROM mosque_settings
	ORDER BY created_at
	LIMIT 1;`

	err := s.db.GetContext(ctx, &m, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to get mosque settings")
		return nil, err
	}
	return &m, nil
}

func (s *pgStore) CreateMosqueSettings(ctx context.Context, m model.MosqueSettings) (*model.MosqueSettings, error) {
	var out model.MosqueSettings
	query := `
	INSERT INTO mosque_settings
	(id, name, address, contact, logo_url, city, country, latitude, longitude,
	 calculation_method, use_api, created_at, updated_at)
	VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
	RETURNING` + settingsColumns + `;`

	if err := s.db.GetContext(ctx, &out, query,
		uuid.NewString(),
		m.Name,
		m.Address,
		m.Contact,
		m.LogoURL,
		m.City,
		m.Country,
		m.Latitude,
		m.Longitude,
		m.CalculationMethod,
		m.UseAPI,
	); err != nil {
		log.Error().Err(err).Msg("Failed to create mosque settings")
		return nil, err
	}
	return &out, nil
}

// UpdateMosqueSettings applies the non-nil fields of u. Returns
// sql.ErrNoRows when id does not exist.
func (s *pgStore) UpdateMosqueSettings(ctx context.Context, id string, u model.MosqueSettingsUpdate) (*model.MosqueSettings, error) {
	var out model.MosqueSettings
	query := `
	UPDATE mosque_settings
	SET
	name               = COALESCE($2, name),
	address            = COALESCE($3, address),
	contact            = COALESCE($4, contact),
	logo_url           = COALESCE($5, logo_url),
	city               = COALESCE($6, city),
	country            = COALESCE($7, country),
	latitude           = COALESCE($8, latitude),
	longitude          = COALESCE($9, longitude),
	calculation_method = COALESCE($10, calculation_method),
	use_api            = COALESCE($11, use_api),
	updated_at         = now()
	WHERE id = $1
	RETURNING` + settingsColumns + `;`

	err := s.db.GetContext(ctx, &out, query,
		id, u.Name, u.Address, u.Contact, u.LogoURL, u.City, u.Country,
		u.Latitude, u.Longitude, u.CalculationMethod, u.UseAPI,
	)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("id", id).Msg("Failed to update mosque settings")
		}
		return nil, err
	}
	return &out, nil
}
