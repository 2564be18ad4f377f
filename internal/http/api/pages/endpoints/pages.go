package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iaamonline/member-portal/internal/content"
	"github.com/iaamonline/member-portal/internal/http/api"
)

// PagesModule mounts the composed-content endpoints (public).
func PagesModule(composer *content.Composer, hero *content.HeroCache) api.Module {
	ctl := &pagesController{composer: composer, hero: hero}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/pages/:slug", ctl.getPage)
		c.PUBLIC_GET("/top-contents/:slug", ctl.getTopContent)
		c.PUBLIC_GET("/home/hero", ctl.getHomeHero)
	})
}

type pagesController struct {
	composer *content.Composer
	hero     *content.HeroCache
}

// GET /api/pages/:slug
// A page the CMS does not have (or cannot serve right now) answers 404 with
// a null body rather than surfacing the upstream failure.
func (p *pagesController) getPage(ctx *gin.Context) (any, *api.APIError) {
	page := p.composer.Page(ctx.Request.Context(), ctx.Param("slug"))
	if page == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "page not found"}
	}
	return page, nil
}

// GET /api/top-contents/:slug
func (p *pagesController) getTopContent(ctx *gin.Context) (any, *api.APIError) {
	page := p.composer.TopContent(ctx.Request.Context(), ctx.Param("slug"))
	if page == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "content not found"}
	}
	return page, nil
}

// GET /api/home/hero
// Served from the in-process cache; a CMS outage yields the last known
// banner, or null when none was ever fetched.
func (p *pagesController) getHomeHero(ctx *gin.Context) (any, *api.APIError) {
	return gin.H{"data": p.hero.Get(ctx.Request.Context())}, nil
}
