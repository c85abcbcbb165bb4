package endpoints

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/content"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api/admin/control/packets"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

type KajianController struct {
	content *content.Service
}

// KajianModule mounts lecture editing.
func KajianModule(svc *content.Service) api.Module {
	ctl := &KajianController{content: svc}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/kajian", ctl.createKajian)
		c.PUT("/kajian/:id", ctl.updateKajian)
		c.DELETE("/kajian/:id", ctl.deleteKajian)
	})
}

func kajianID(ctx *gin.Context) (string, *api.APIError) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		log.Warn().Str("id", id).Msg("[kajian] malformed id")
		return "", api.BadRequest("invalid id")
	}
	return id, nil
}

// POST /api/admin/kajian
func (c *KajianController) createKajian(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateKajianRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	k, err := c.content.CreateKajian(ctx.Request.Context(), request.ToModel())
	if err != nil {
		return nil, api.FromError(err)
	}
	log.Info().Str("user", user.ID).Str("kajian", k.ID).Msg("[kajian] created")
	api.Created(ctx)
	return k, nil
}

// PUT /api/admin/kajian/:id
func (c *KajianController) updateKajian(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := kajianID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request model.KajianUpdate
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	k, err := c.content.UpdateKajian(ctx.Request.Context(), id, request)
	if err != nil {
		return nil, api.FromError(err)
	}
	return k, nil
}

// DELETE /api/admin/kajian/:id
func (c *KajianController) deleteKajian(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := kajianID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := c.content.DeleteKajian(ctx.Request.Context(), id); err != nil {
		return nil, api.FromError(err)
	}
	log.Info().Str("user", user.ID).Str("kajian", id).Msg("[kajian] deleted")
	return packets.DeletedResponse{ID: id, Deleted: true}, nil
}
