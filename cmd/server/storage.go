package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/config"
	"github.com/Nixie-Tech-LLC/takmir/internal/storage"
)

// InitStorage selects and returns the configured storage backend
func InitStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.UseSpaces {
		spacesStorage, err := storage.NewSpacesStorage(
			cfg.SpacesEndpoint,
			cfg.SpacesRegion,
			cfg.SpacesBucket,
			cfg.SpacesCDNURL,
			cfg.SpacesAccessKey,
			cfg.SpacesSecretKey,
		)
		if err != nil {
			return nil, fmt.Errorf("initialize Spaces storage: %w", err)
		}
		log.Info().Str("cdn", cfg.SpacesCDNURL).Msg("Using DigitalOcean Spaces storage")
		return spacesStorage, nil
	}

	log.Info().Str("dir", cfg.UploadDir).Msg("Using local file storage")
	return storage.NewLocalStorage(cfg.UploadDir, "/uploads"), nil
}
