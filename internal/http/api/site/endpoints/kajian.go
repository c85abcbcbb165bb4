package endpoints

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/content"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api"
)

type KajianController struct {
	content *content.Service
}

// KajianModule mounts the public lecture listings.
func KajianModule(svc *content.Service) api.Module {
	ctl := &KajianController{content: svc}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/kajian", ctl.listKajian)
		c.PUBLIC_GET("/kajian/featured", ctl.listFeatured)
		c.PUBLIC_GET("/kajian/upcoming", ctl.listUpcoming)
		c.PUBLIC_GET("/kajian/:id", ctl.getKajian)
	})
}

func (c *KajianController) listKajian(ctx *gin.Context) (any, *api.APIError) {
	all, err := c.content.ListKajian(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError(err)
	}
	return all, nil
}

func (c *KajianController) listFeatured(ctx *gin.Context) (any, *api.APIError) {
	all, err := c.content.FeaturedKajian(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError(err)
	}
	return all, nil
}

func (c *KajianController) listUpcoming(ctx *gin.Context) (any, *api.APIError) {
	all, err := c.content.UpcomingKajian(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError(err)
	}
	return all, nil
}

func (c *KajianController) getKajian(ctx *gin.Context) (any, *api.APIError) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		log.Warn().Str("id", id).Msg("[kajian] malformed id")
		return nil, api.BadRequest("invalid id")
	}
	k, err := c.content.GetKajian(ctx.Request.Context(), id)
	if err != nil {
		return nil, api.FromError(err)
	}
	return k, nil
}
