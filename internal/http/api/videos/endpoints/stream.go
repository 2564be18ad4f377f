package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/iaamonline/member-portal/internal/http/api"
	"github.com/iaamonline/member-portal/internal/http/api/videos/packets"
	"github.com/iaamonline/member-portal/internal/stream"
)

// StreamModule mounts the playback-token endpoint (public).
func StreamModule(issuer *stream.Issuer) api.Module {
	ctl := &streamController{issuer: issuer}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/stream-token", ctl.mintToken)
	})
}

type streamController struct {
	issuer *stream.Issuer
}

// POST /api/stream-token
func (s *streamController) mintToken(ctx *gin.Context) (any, *api.APIError) {
	var request packets.StreamTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil || request.VideoID == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "Video ID required"}
	}

	token, err := s.issuer.Issue(request.VideoID)
	if err != nil {
		if errors.Is(err, stream.ErrNotConfigured) {
			log.Error().Msg("playback token requested without signing configuration")
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "stream configuration missing"}
		}
		log.Error().Err(err).Str("videoID", request.VideoID).Msg("playback token signing failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not sign playback token"}
	}

	return packets.StreamTokenResponse{Token: token}, nil
}
