package endpoints

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/content"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

// DefaultsModule mounts the one-shot seeding of default content.
func DefaultsModule(svc *content.Service, notifier BoardNotifier) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/defaults", func(ctx *gin.Context, user *model.User) (any, *api.APIError) {
			report, err := svc.InitializeDefaults(ctx.Request.Context())
			if err != nil {
				return nil, api.FromError(err)
			}
			log.Info().Str("user", user.ID).Bool("hero", report.Hero).Bool("settings", report.Settings).
				Int("prayer_times", report.PrayerTimes).Msg("[defaults] initialized")
			notify(notifier)
			return report, nil
		})
	})
}
