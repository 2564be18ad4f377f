package endpoints

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/iaamonline/member-portal/internal/cms"
	"github.com/iaamonline/member-portal/internal/http/api"
	"github.com/iaamonline/member-portal/internal/http/api/auth/packets"
)

const minUsernameLength = 3

// AvailabilityModule mounts the pre-submission username/email checks
// (public). These are advisory: a race between check and submit remains, and
// the CMS rejects duplicates authoritatively at registration.
func AvailabilityModule(client *cms.Client) api.Module {
	ctl := &availabilityController{cms: client}
	return api.ModuleFunc(func(c *api.Controller) {
		c.RAW_GET("/auth/check-username", ctl.checkUsername)
		c.RAW_GET("/auth/check-email", ctl.checkEmail)
	})
}

type availabilityController struct {
	cms *cms.Client
}

// GET /api/auth/check-username?username=
func (a *availabilityController) checkUsername(ctx *gin.Context) {
	username := strings.TrimSpace(ctx.Query("username"))
	if len(username) < minUsernameLength {
		ctx.JSON(http.StatusBadRequest, packets.AvailabilityResponse{Available: false, Error: "Username too short"})
		return
	}

	taken, err := a.cms.UsernameTaken(ctx.Request.Context(), username)
	if err != nil {
		// Never block a submission on a failed check.
		log.Warn().Err(err).Msg("username availability check degraded")
		ctx.JSON(http.StatusOK, packets.AvailabilityResponse{Available: true, Fallback: true})
		return
	}

	ctx.JSON(http.StatusOK, packets.AvailabilityResponse{Available: !taken})
}

// GET /api/auth/check-email?email=
func (a *availabilityController) checkEmail(ctx *gin.Context) {
	email := strings.TrimSpace(ctx.Query("email"))
	if !strings.Contains(email, "@") {
		ctx.JSON(http.StatusBadRequest, packets.AvailabilityResponse{Available: false, Error: "Invalid email"})
		return
	}

	taken, err := a.cms.EmailTaken(ctx.Request.Context(), email)
	if err != nil {
		log.Warn().Err(err).Msg("email availability check degraded")
		ctx.JSON(http.StatusOK, packets.AvailabilityResponse{Available: true, Fallback: true})
		return
	}

	ctx.JSON(http.StatusOK, packets.AvailabilityResponse{Available: !taken})
}
