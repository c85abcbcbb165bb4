package endpoints

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/content"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api/admin/control/packets"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

// BoardNotifier is told when something behind the prayer board changed.
type BoardNotifier interface {
	Trigger()
}

func notify(n BoardNotifier) {
	if n != nil {
		n.Trigger()
	}
}

type ContentController struct {
	content  *content.Service
	notifier BoardNotifier
}

// ContentModule mounts hero banner and mosque settings editing. notifier
// may be nil.
func ContentModule(svc *content.Service, notifier BoardNotifier) api.Module {
	ctl := &ContentController{content: svc, notifier: notifier}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/hero", ctl.createHero)
		c.PUT("/hero", ctl.updateHero)
		c.POST("/settings", ctl.createSettings)
		c.PUT("/settings", ctl.updateSettings)
	})
}

// POST /api/admin/hero
func (c *ContentController) createHero(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateHeroRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	hero, err := c.content.CreateHero(ctx.Request.Context(), request.ToModel())
	if err != nil {
		return nil, api.FromError(err)
	}
	log.Info().Str("user", user.ID).Str("hero", hero.ID).Msg("[hero] created")
	api.Created(ctx)
	return hero, nil
}

// PUT /api/admin/hero
func (c *ContentController) updateHero(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request model.HeroContentUpdate
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	hero, err := c.content.UpdateHero(ctx.Request.Context(), request)
	if err != nil {
		return nil, api.FromError(err)
	}
	log.Info().Str("user", user.ID).Msg("[hero] updated")
	return hero, nil
}

// POST /api/admin/settings
func (c *ContentController) createSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	settings, err := c.content.CreateSettings(ctx.Request.Context(), request.ToModel())
	if err != nil {
		return nil, api.FromError(err)
	}
	log.Info().Str("user", user.ID).Str("settings", settings.ID).Msg("[settings] created")
	notify(c.notifier)
	api.Created(ctx)
	return settings, nil
}

// PUT /api/admin/settings
func (c *ContentController) updateSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request model.MosqueSettingsUpdate
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	settings, err := c.content.UpdateSettings(ctx.Request.Context(), request)
	if err != nil {
		return nil, api.FromError(err)
	}
	log.Info().Str("user", user.ID).Msg("[settings] updated")
	notify(c.notifier)
	return settings, nil
}
