package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/takmir/internal/content"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api/admin/control/packets"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

type ActivityController struct {
	content *content.Service
}

// ActivityModule mounts creation of activities and announcements.
func ActivityModule(svc *content.Service) api.Module {
	ctl := &ActivityController{content: svc}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/activities", ctl.createActivity)
		c.POST("/announcements", ctl.createAnnouncement)
	})
}

func (c *ActivityController) createActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	a, err := c.content.CreateActivity(ctx.Request.Context(), request.ToModel())
	if err != nil {
		return nil, api.FromError(err)
	}
	api.Created(ctx)
	return a, nil
}

func (c *ActivityController) createAnnouncement(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	a, err := c.content.CreateAnnouncement(ctx.Request.Context(), request.ToModel())
	if err != nil {
		return nil, api.FromError(err)
	}
	api.Created(ctx)
	return a, nil
}
