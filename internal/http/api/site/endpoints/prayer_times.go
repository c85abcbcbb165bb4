package endpoints

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/defaults"
	"github.com/Nixie-Tech-LLC/takmir/internal/geo"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api/site/packets"
	"github.com/Nixie-Tech-LLC/takmir/internal/timings"
)

// SourceFunc picks a position source for a caller that sent no
// coordinates. clientIP is empty when the caller is on a private network.
// A nil SourceFunc, or a nil result, means no position is available.
type SourceFunc func(clientIP string) geo.PositionSource

type PrayerController struct {
	timings *timings.Service
	sources SourceFunc
}

// PrayerModule mounts the prayer board and method listings.
func PrayerModule(svc *timings.Service, sources SourceFunc) api.Module {
	ctl := &PrayerController{timings: svc, sources: sources}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/prayer-times", ctl.getBoard)
		c.PUBLIC_GET("/prayer-times/location", ctl.getForLocation)
		c.PUBLIC_GET("/prayer-times/city", ctl.getForCity)
		c.PUBLIC_GET("/methods", ctl.listMethods)
	})
}

// GET /api/public/prayer-times
func (c *PrayerController) getBoard(ctx *gin.Context) (any, *api.APIError) {
	return c.timings.Board(ctx.Request.Context()), nil
}

// GET /api/public/prayer-times/location?lat=&lng=&method=
func (c *PrayerController) getForLocation(ctx *gin.Context) (any, *api.APIError) {
	var query packets.LocationQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if (query.Lat == nil) != (query.Lng == nil) {
		return nil, api.BadRequest("lat and lng must be given together")
	}

	var src geo.PositionSource
	if query.Lat != nil {
		if *query.Lat < -90 || *query.Lat > 90 || *query.Lng < -180 || *query.Lng > 180 {
			return nil, api.BadRequest("coordinates out of range")
		}
		src = geo.Fixed{Latitude: *query.Lat, Longitude: *query.Lng}
	} else if c.sources != nil {
		src = c.sources(publicIP(ctx.ClientIP()))
	}

	result := c.timings.ForCurrentLocation(ctx.Request.Context(), src, query.Method)
	log.Debug().Str("source", result.Source).Str("location_source", result.LocationSource).Msg("[prayer] location board")
	return result, nil
}

// GET /api/public/prayer-times/city?city=&country=&method=
func (c *PrayerController) getForCity(ctx *gin.Context) (any, *api.APIError) {
	var query packets.CityQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	city := strings.TrimSpace(query.City)
	if city == "" {
		return nil, api.BadRequest("city is required")
	}
	country := strings.TrimSpace(query.Country)
	if country == "" {
		country = defaults.Location().Country
	}
	return c.timings.ForCity(ctx.Request.Context(), city, country, query.Method), nil
}

// GET /api/public/methods
func (c *PrayerController) listMethods(ctx *gin.Context) (any, *api.APIError) {
	return packets.MethodsResponse{
		Default: defaults.DefaultMethod(),
		Methods: defaults.Methods(),
	}, nil
}

func publicIP(raw string) string {
	ip := net.ParseIP(raw)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() {
		return ""
	}
	return ip.String()
}
