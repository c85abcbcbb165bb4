package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/takmir/internal/content"
	"github.com/Nixie-Tech-LLC/takmir/internal/db"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api"
	authapi "github.com/Nixie-Tech-LLC/takmir/internal/http/api/admin/auth/endpoints"
	controlapi "github.com/Nixie-Tech-LLC/takmir/internal/http/api/admin/control/endpoints"
	siteapi "github.com/Nixie-Tech-LLC/takmir/internal/http/api/site/endpoints"
	"github.com/Nixie-Tech-LLC/takmir/internal/storage"
	"github.com/Nixie-Tech-LLC/takmir/internal/timings"
)

// routeDeps is everything RegisterRoutes mounts.
type routeDeps struct {
	SecretKey string
	Store     db.Store
	Content   *content.Service
	Timings   *timings.Service
	Storage   storage.Storage
	Sources   siteapi.SourceFunc
	Notifier  controlapi.BoardNotifier

	// UploadDir is served under /uploads when set.
	UploadDir string
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, deps routeDeps) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/public",
	},
		siteapi.ContentModule(deps.Content),
		siteapi.KajianModule(deps.Content),
		siteapi.PrayerModule(deps.Timings, deps.Sources),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(deps.SecretKey, deps.Store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: deps.SecretKey,
		Users:     deps.Store,
	},
		authapi.AuthSessionModule(deps.SecretKey, deps.Store),
		controlapi.ContentModule(deps.Content, deps.Notifier),
		controlapi.PrayerTimeModule(deps.Content, deps.Notifier),
		controlapi.KajianModule(deps.Content),
		controlapi.ActivityModule(deps.Content),
		controlapi.MediaModule(deps.Storage),
		controlapi.DefaultsModule(deps.Content, deps.Notifier),
	)

	// Static content
	if deps.UploadDir != "" {
		r.Static("/uploads", deps.UploadDir)
	}
}
