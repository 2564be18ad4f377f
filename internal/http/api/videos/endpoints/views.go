package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/iaamonline/member-portal/internal/http/api"
	"github.com/iaamonline/member-portal/internal/http/api/videos/packets"
	"github.com/iaamonline/member-portal/internal/views"
)

// ViewsModule mounts the view-counter endpoints (public).
func ViewsModule(service *views.Service) api.Module {
	ctl := &viewsController{views: service}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/get-views", ctl.getViews)
		c.PUBLIC_POST("/increment-view", ctl.incrementView)
	})
}

type viewsController struct {
	views *views.Service
}

// GET /api/get-views?videoId=
// A missing parameter or unknown video answers zero, not an error.
func (v *viewsController) getViews(ctx *gin.Context) (any, *api.APIError) {
	videoID := ctx.Query("videoId")
	return packets.ViewsResponse{Views: v.views.Views(ctx.Request.Context(), videoID)}, nil
}

// POST /api/increment-view
// Failures at any step collapse into success=false.
func (v *viewsController) incrementView(ctx *gin.Context) (any, *api.APIError) {
	var request packets.IncrementViewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil || request.VideoID == "" {
		return packets.IncrementViewResponse{Success: false}, nil
	}

	ok := v.views.Increment(ctx.Request.Context(), request.VideoID)
	return packets.IncrementViewResponse{Success: ok}, nil
}
