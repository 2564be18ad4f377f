package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/iaamonline/member-portal/internal/cms"
	"github.com/iaamonline/member-portal/internal/http/api"
	"github.com/iaamonline/member-portal/internal/http/api/auth/packets"
	"github.com/iaamonline/member-portal/internal/http/middleware"
	"github.com/iaamonline/member-portal/internal/model"
	"github.com/iaamonline/member-portal/internal/session"
)

// AuthPublicModule mounts registration and login (public). Both proxy the
// CMS's own auth endpoints and cache the returned session snapshot.
func AuthPublicModule(client *cms.Client, sessions session.Store) api.Module {
	ctl := newAccountManager(client, sessions)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/register", ctl.userRegister)
		c.PUBLIC_POST("/auth/login", ctl.userLogin)
	})
}

// AuthSessionModule mounts private session/profile endpoints (auth required).
func AuthSessionModule(client *cms.Client, sessions session.Store) api.Module {
	ctl := newAccountManager(client, sessions)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.getCurrentProfile)
		c.PUT("/auth/current_profile", ctl.updateCurrentProfile)
		c.POST("/auth/change-password", ctl.changePassword)
		c.POST("/auth/logout", ctl.logout)
	})
}

type AccountManager struct {
	cms      *cms.Client
	sessions session.Store
}

func newAccountManager(client *cms.Client, sessions session.Store) *AccountManager {
	return &AccountManager{cms: client, sessions: sessions}
}

// POST /api/auth/register
func (a *AccountManager) userRegister(ctx *gin.Context) (any, *api.APIError) {
	var request packets.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	sess, err := a.cms.Register(ctx.Request.Context(), request.Username, request.Email, request.Password)
	if err != nil {
		return nil, a.authFailure("registration", err)
	}

	a.cacheSession(ctx, sess)
	return packets.SessionResponse{User: sess.User, JWT: sess.JWT}, nil
}

// POST /api/auth/login
func (a *AccountManager) userLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	sess, err := a.cms.Login(ctx.Request.Context(), request.Identifier, request.Password)
	if err != nil {
		return nil, a.authFailure("login", err)
	}

	a.cacheSession(ctx, sess)
	return packets.SessionResponse{User: sess.User, JWT: sess.JWT}, nil
}

// POST /api/auth/change-password
func (a *AccountManager) changePassword(ctx *gin.Context, user *model.AuthUser) (any, *api.APIError) {
	var request packets.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if request.Password != request.PasswordConfirmation {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "passwords do not match"}
	}

	jwt, _ := middleware.GetSessionJWT(ctx)
	sess, err := a.cms.ChangePassword(ctx.Request.Context(), jwt, request.CurrentPassword, request.Password, request.PasswordConfirmation)
	if err != nil {
		return nil, a.authFailure("password change", err)
	}

	// The CMS rotates the credential, so the old snapshot is stale.
	if err := a.sessions.Clear(ctx.Request.Context(), jwt); err != nil {
		log.Warn().Err(err).Msg("stale session clear failed")
	}
	a.cacheSession(ctx, sess)
	return packets.SessionResponse{User: sess.User, JWT: sess.JWT}, nil
}

// GET /api/auth/current_profile
func (a *AccountManager) getCurrentProfile(ctx *gin.Context, user *model.AuthUser) (any, *api.APIError) {
	return user, nil
}

// PUT /api/auth/current_profile
func (a *AccountManager) updateCurrentProfile(ctx *gin.Context, user *model.AuthUser) (any, *api.APIError) {
	var request packets.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	fields := map[string]any{}
	if request.FirstName != nil {
		fields["FirstName"] = *request.FirstName
	}
	if request.LastName != nil {
		fields["LastName"] = *request.LastName
	}
	if request.Phone != nil {
		fields["Phone"] = *request.Phone
	}
	if request.Biography != nil {
		fields["Biography"] = request.Biography
	}
	if len(fields) == 0 {
		return user, nil
	}

	jwt, _ := middleware.GetSessionJWT(ctx)
	updated, err := a.cms.UpdateProfile(ctx.Request.Context(), jwt, user.ID, fields)
	if err != nil {
		return nil, a.authFailure("profile update", err)
	}

	a.cacheSession(ctx, &cms.AuthSession{User: *updated, JWT: jwt})
	return updated, nil
}

// POST /api/auth/logout
func (a *AccountManager) logout(ctx *gin.Context, user *model.AuthUser) (any, *api.APIError) {
	jwt, _ := middleware.GetSessionJWT(ctx)
	if err := a.sessions.Clear(ctx.Request.Context(), jwt); err != nil {
		log.Warn().Err(err).Msg("session clear failed")
	}
	return gin.H{"success": true}, nil
}

func (a *AccountManager) cacheSession(ctx *gin.Context, sess *cms.AuthSession) {
	snap := session.Snapshot{User: sess.User, JWT: sess.JWT}
	if err := a.sessions.Set(ctx.Request.Context(), sess.JWT, snap, session.DefaultTTL); err != nil {
		log.Warn().Err(err).Msg("session snapshot store failed")
	}
}

// authFailure maps CMS auth errors onto the response taxonomy: the CMS's own
// message passes through as a 400; anything else is upstream unavailability.
func (a *AccountManager) authFailure(action string, err error) *api.APIError {
	var authErr *cms.AuthError
	if errors.As(err, &authErr) {
		return &api.APIError{Code: http.StatusBadRequest, Message: authErr.Message}
	}
	log.Error().Err(err).Str("action", action).Msg("cms auth call failed")
	return &api.APIError{Code: http.StatusBadGateway, Message: "accounts service unavailable, please retry"}
}
