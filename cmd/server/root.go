package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nixie-Tech-LLC/takmir/internal/config"
)

// loadedConfig holds the config loaded during PersistentPreRunE.
var loadedConfig *config.Config

func newRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "takmir",
		Short:   "Mosque information server",
		Long:    "Takmir serves a mosque landing page: prayer board, kajian, activities and announcements.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv()
			cfg, err := config.LoadOptional()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			config.SetupLogging(cfg)
			loadedConfig = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newAdminCmd())
	root.AddCommand(newTodayCmd())
	root.AddCommand(newMethodsCmd())

	return root
}

// requireDatabase fails early when the variables a database command needs
// are missing.
func requireDatabase(cfg *config.Config, needSecret bool) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if needSecret && cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}
