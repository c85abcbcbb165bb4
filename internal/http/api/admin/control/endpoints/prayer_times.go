package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/takmir/internal/content"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api/admin/control/packets"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

type PrayerTimeController struct {
	content  *content.Service
	notifier BoardNotifier
}

// PrayerTimeModule mounts editing of the manual prayer table.
func PrayerTimeModule(svc *content.Service, notifier BoardNotifier) api.Module {
	ctl := &PrayerTimeController{content: svc, notifier: notifier}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/prayer-times", ctl.listPrayerTimes)
		c.PUT("/prayer-times", ctl.updatePrayerTimes)
		c.PUT("/prayer-times/:id", ctl.updatePrayerTime)
	})
}

func (c *PrayerTimeController) listPrayerTimes(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	rows, err := c.content.PrayerTimes(ctx.Request.Context())
	if err != nil {
		return nil, api.FromError(err)
	}
	return rows, nil
}

// PUT /api/admin/prayer-times
func (c *PrayerTimeController) updatePrayerTimes(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdatePrayerTimesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	rows, err := c.content.UpdatePrayerTimes(ctx.Request.Context(), request.Times)
	if err != nil {
		return nil, api.FromError(err)
	}
	notify(c.notifier)
	return rows, nil
}

// PUT /api/admin/prayer-times/:id
func (c *PrayerTimeController) updatePrayerTime(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdatePrayerTimeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	row, err := c.content.UpdatePrayerTime(ctx.Request.Context(), ctx.Param("id"), request.Time)
	if err != nil {
		return nil, api.FromError(err)
	}
	notify(c.notifier)
	return row, nil
}
