package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iaamonline/member-portal/internal/cms"
	"github.com/iaamonline/member-portal/internal/content"
	"github.com/iaamonline/member-portal/internal/http/api"
	"github.com/iaamonline/member-portal/internal/http/middleware"
	"github.com/iaamonline/member-portal/internal/session"
	"github.com/iaamonline/member-portal/internal/stream"
	"github.com/iaamonline/member-portal/internal/views"

	authapi "github.com/iaamonline/member-portal/internal/http/api/auth/endpoints"
	pagesapi "github.com/iaamonline/member-portal/internal/http/api/pages/endpoints"
	videosapi "github.com/iaamonline/member-portal/internal/http/api/videos/endpoints"
)

// Deps bundles the wired services the route modules need.
type Deps struct {
	CMS      *cms.Client
	Issuer   *stream.Issuer
	Metadata *stream.MetadataClient
	Views    *views.Service
	Composer *content.Composer
	Hero     *content.HeroCache
	Sessions session.Store
}

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.RequestID())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
			"X-Request-ID",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		// public catalog and playback modules
		videosapi.StreamModule(d.Issuer),
		videosapi.ViewsModule(d.Views),
		videosapi.CatalogModule(d.CMS, d.Metadata),
		pagesapi.PagesModule(d.Composer, d.Hero),
		// public auth modules
		authapi.AuthPublicModule(d.CMS, d.Sessions),
		authapi.AvailabilityModule(d.CMS),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:   "/api",
		Auth:     true,
		Sessions: d.Sessions,
		CMS:      d.CMS,
	},
		// session endpoints that require auth
		authapi.AuthSessionModule(d.CMS, d.Sessions),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
