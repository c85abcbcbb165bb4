package endpoints

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/http/api"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api/admin/control/packets"
	"github.com/Nixie-Tech-LLC/takmir/internal/media"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
	"github.com/Nixie-Tech-LLC/takmir/internal/storage"
)

type MediaController struct {
	storage storage.Storage
}

// MediaModule mounts image uploads and Facebook video link checks.
func MediaModule(storage storage.Storage) api.Module {
	ctl := &MediaController{storage: storage}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/uploads", ctl.uploadImage)
		c.POST("/media/video", ctl.parseVideo)
	})
}

// POST /api/admin/uploads (multipart, field "file")
func (c *MediaController) uploadImage(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		log.Warn().Err(err).Msg("[uploads] missing file")
		return nil, api.BadRequest("file is required")
	}
	if err := storage.ValidateImage(fileHeader); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	url, err := c.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("file", fileHeader.Filename).Msg("[uploads] save failed")
		return nil, api.Internal("could not save file")
	}
	log.Info().Str("user", user.ID).Str("url", url).Msg("[uploads] image stored")
	api.Created(ctx)
	return packets.UploadResponse{URL: url}, nil
}

// POST /api/admin/media/video
func (c *MediaController) parseVideo(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.VideoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	video, err := media.ParseFacebook(request.URL)
	if err != nil {
		return nil, api.BadRequest(err.Error())
	}
	return video, nil
}
