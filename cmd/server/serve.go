package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Nixie-Tech-LLC/takmir/internal/broadcast"
	controlapi "github.com/Nixie-Tech-LLC/takmir/internal/http/api/admin/control/endpoints"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/middleware"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  "Migrate the database, then serve the public and admin API until interrupted.",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig
	if err := requireDatabase(cfg, true); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := connectDatabase(cfg, true)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, store)
	if err != nil {
		return err
	}
	files, err := InitStorage(cfg)
	if err != nil {
		return err
	}

	var notifier controlapi.BoardNotifier
	if cfg.MQTTBrokerURL != "" {
		client, err := broadcast.CreateMQTTClient(cfg.MQTTBrokerURL, cfg.MQTTClientID)
		if err != nil {
			log.Error().Err(err).Msg("MQTT unavailable, prayer board will not be broadcast")
		} else {
			pub := broadcast.NewMQTTPublisher(client)
			defer pub.Close()
			refresher := broadcast.NewRefresher(a.timings, pub, broadcast.DefaultTopic, cfg.RefreshInterval)
			go refresher.Run(ctx)
			notifier = refresher
		}
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	deps := routeDeps{
		SecretKey: cfg.JWTSecret,
		Store:     store,
		Content:   a.content,
		Timings:   a.timings,
		Storage:   files,
		Sources:   a.positionSource,
		Notifier:  notifier,
	}
	if !cfg.UseSpaces {
		deps.UploadDir = cfg.UploadDir
	}
	RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
