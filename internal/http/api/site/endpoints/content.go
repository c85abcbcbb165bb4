package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/takmir/internal/content"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api"
)

type ContentController struct {
	content *content.Service
}

func newContentController(svc *content.Service) *ContentController {
	return &ContentController{content: svc}
}

// ContentModule mounts the read-only landing page sections.
func ContentModule(svc *content.Service) api.Module {
	ctl := newContentController(svc)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/hero", ctl.getHero)
		c.PUBLIC_GET("/settings", ctl.getSettings)
		c.PUBLIC_GET("/activities", ctl.listActivities)
		c.PUBLIC_GET("/announcements", ctl.listAnnouncements)
	})
}

// GET /api/public/hero
func (c *ContentController) getHero(ctx *gin.Context) (any, *api.APIError) {
	hero, err := c.content.Hero(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError(err)
	}
	if hero == nil {
		return nil, api.NotFound("hero content not configured")
	}
	return hero, nil
}

// GET /api/public/settings
func (c *ContentController) getSettings(ctx *gin.Context) (any, *api.APIError) {
	settings, err := c.content.Settings(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError(err)
	}
	if settings == nil {
		return nil, api.NotFound("mosque settings not configured")
	}
	return settings, nil
}

func (c *ContentController) listActivities(ctx *gin.Context) (any, *api.APIError) {
	all, err := c.content.ListActivities(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError(err)
	}
	return all, nil
}

// only announcements whose date range covers today
func (c *ContentController) listAnnouncements(ctx *gin.Context) (any, *api.APIError) {
	all, err := c.content.ActiveAnnouncements(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError(err)
	}
	return all, nil
}
