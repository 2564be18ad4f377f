package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/iaamonline/member-portal/internal/cms"
	"github.com/iaamonline/member-portal/internal/model"
	"github.com/iaamonline/member-portal/internal/session"
)

// Auth checks "Authorization: Bearer <token>", resolves the account behind
// it (session store first, then the CMS), and sets "currentUser" and
// "sessionJWT" in the request context.
func Auth(sessions session.Store, cmsClient *cms.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid auth header"})
			return
		}
		token := parts[1]

		snap, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			log.Warn().Err(err).Msg("session lookup failed, falling back to cms")
		}
		if snap == nil || snap.JWT == "" {
			user, err := cmsClient.Me(c.Request.Context(), token)
			if err != nil || user == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			snap = &session.Snapshot{User: *user, JWT: token}
			if err := sessions.Set(c.Request.Context(), token, *snap, session.DefaultTTL); err != nil {
				log.Warn().Err(err).Msg("session snapshot store failed")
			}
		}

		c.Set("currentUser", &snap.User)
		c.Set("sessionJWT", snap.JWT)
		c.Next()
	}
}

// GetCurrentUser retrieves *model.AuthUser from the gin context (after Auth has run).
func GetCurrentUser(c *gin.Context) (*model.AuthUser, bool) {
	u, exists := c.Get("currentUser")
	if !exists {
		return nil, false
	}
	user, ok := u.(*model.AuthUser)
	return user, ok
}

// GetSessionJWT retrieves the CMS credential of the current session.
func GetSessionJWT(c *gin.Context) (string, bool) {
	v, exists := c.Get("sessionJWT")
	if !exists {
		return "", false
	}
	jwt, ok := v.(string)
	return jwt, ok
}
