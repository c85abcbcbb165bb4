package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Nixie-Tech-LLC/takmir/internal/db"
	"github.com/Nixie-Tech-LLC/takmir/internal/defaults"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/takmir/internal/timings"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadedConfig
			if err := requireDatabase(cfg, false); err != nil {
				return err
			}
			if _, err := connectDatabase(cfg, true); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert default hero, settings and prayer times where missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadedConfig
			if err := requireDatabase(cfg, false); err != nil {
				return err
			}
			store, err := connectDatabase(cfg, true)
			if err != nil {
				return err
			}
			a, err := newApp(cfg, store)
			if err != nil {
				return err
			}
			report, err := a.content.InitializeDefaults(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "hero created: %t\nsettings created: %t\nprayer times created: %d\n",
				report.Hero, report.Settings, report.PrayerTimes)
			return nil
		},
	}
}

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	var email, password, name string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadedConfig
			if err := requireDatabase(cfg, false); err != nil {
				return err
			}
			store, err := connectDatabase(cfg, true)
			if err != nil {
				return err
			}
			id, err := createAdmin(cmd, store, email, password, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", email, id)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "Login email")
	create.Flags().StringVar(&password, "password", "", "Password, at least 8 characters")
	create.Flags().StringVar(&name, "name", "", "Display name")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}

func createAdmin(cmd *cobra.Command, store db.Store, email, password, name string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errors.New("email is required")
	}
	if existing, _ := store.GetUserByEmail(cmd.Context(), email); existing != nil {
		return "", fmt.Errorf("%s is already registered", email)
	}
	hashed, err := middleware.HashPassword(password)
	if err != nil {
		return "", err
	}
	var display *string
	if n := strings.TrimSpace(name); n != "" {
		display = &n
	}
	id, err := store.CreateUser(cmd.Context(), email, hashed, display)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	log.Info().Str("email", email).Msg("admin created")
	return id, nil
}

func newTodayCmd() *cobra.Command {
	var (
		city, country string
		lat, lng      float64
		method        int
		asJSON        bool
	)
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's prayer board",
		Long: "Print today's prayer board. With --city or --lat/--lng the board is fetched\n" +
			"for that place; otherwise it follows the mosque settings in the database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadedConfig
			flags := cmd.Flags()
			byCoords := flags.Changed("lat") || flags.Changed("lng")
			if byCoords && !(flags.Changed("lat") && flags.Changed("lng")) {
				return errors.New("--lat and --lng must be given together")
			}

			var store db.Store
			if !byCoords && city == "" && cfg.DatabaseURL != "" {
				s, err := connectDatabase(cfg, false)
				if err != nil {
					return err
				}
				store = s
			}
			a, err := newApp(cfg, store)
			if err != nil {
				return err
			}

			var res timings.Result
			switch {
			case byCoords:
				res = a.timings.ForCoordinates(cmd.Context(), lat, lng, method)
			case city != "":
				if country == "" {
					country = defaults.Location().Country
				}
				res = a.timings.ForCity(cmd.Context(), city, country, method)
			default:
				res = a.timings.Board(cmd.Context())
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return writeBoard(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "City name")
	cmd.Flags().StringVar(&country, "country", "", "Country name (default Indonesia)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude")
	cmd.Flags().IntVar(&method, "method", 0, "Calculation method (0 for the default)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List calculation methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, m := range defaults.Methods() {
				marker := ""
				if m.ID == defaults.DefaultMethod() {
					marker = "(default)"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", m.ID, m.Name, marker)
			}
			return w.Flush()
		},
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeBoard(out io.Writer, res timings.Result) error {
	header := res.Date
	if res.Location != nil && res.Location.City != "" {
		header += "  " + res.Location.City
	}
	fmt.Fprintf(out, "%s  (source: %s, method %d)\n", header, res.Source, res.Method)
	if res.Reason != "" {
		fmt.Fprintf(out, "note: %s\n", res.Reason)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, p := range res.Prayers {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Time, p.Status)
	}
	return w.Flush()
}
