package endpoints

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/db"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/api/admin/auth/packets"
	"github.com/Nixie-Tech-LLC/takmir/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

// AuthPublicModule mounts the login endpoint. Accounts are created from
// the command line, so there is no signup.
func AuthPublicModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/login", ctl.userLogin)
	})
}

// AuthSessionModule mounts private session/profile endpoints (JWT required)
func AuthSessionModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.getCurrentProfile)
		c.PUT("/auth/current_profile", ctl.updateCurrentProfile)
	})
}

type AccountManager struct {
	jwtSecret string
	store     db.Store
}

func newAccountManager(secret string, store db.Store) *AccountManager {
	return &AccountManager{jwtSecret: secret, store: store}
}

// POST /api/admin/auth/login
func (a *AccountManager) userLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	user, err := middleware.Authenticate(ctx.Request.Context(), a.store, request.Email, request.Password)
	if err != nil {
		log.Warn().Str("email", request.Email).Msg("login failed")
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "invalid email or password"}
	}

	token, err := middleware.GenerateJWT(user.ID, a.jwtSecret)
	if err != nil {
		log.Error().Err(err).Str("user", user.ID).Msg("could not generate token")
		return nil, api.Internal("could not generate token")
	}

	return packets.TokenResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(middleware.TokenTTL).UTC().Format(time.RFC3339),
	}, nil
}

// GET /api/admin/auth/current_profile
func (a *AccountManager) getCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return profileResponse(user), nil
}

// PUT /api/admin/auth/current_profile
func (a *AccountManager) updateCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateCurrentProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	email := strings.ToLower(strings.TrimSpace(request.Email))

	if email != user.Email {
		if other, _ := a.store.GetUserByEmail(ctx.Request.Context(), email); other != nil {
			log.Warn().Str("email", email).Msg("profile email already registered")
			return nil, &api.APIError{Code: http.StatusConflict, Message: "email already registered"}
		}
	}

	if err := a.store.UpdateUserProfile(ctx.Request.Context(), user.ID, email, request.Name); err != nil {
		if errors.Is(err, db.ErrNoSuchUser) {
			return nil, api.NotFound("user not found")
		}
		log.Error().Err(err).Str("user", user.ID).Msg("could not update profile")
		return nil, api.Internal("could not update profile")
	}

	updated, err := a.store.GetUserByID(ctx.Request.Context(), user.ID)
	if err != nil {
		log.Error().Err(err).Str("user", user.ID).Msg("could not reload profile")
		return nil, api.Internal("could not load profile")
	}
	return profileResponse(updated), nil
}

func profileResponse(u *model.User) packets.ProfileResponse {
	return packets.ProfileResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
