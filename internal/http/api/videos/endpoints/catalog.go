package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iaamonline/member-portal/internal/cms"
	"github.com/iaamonline/member-portal/internal/http/api"
	"github.com/iaamonline/member-portal/internal/http/api/videos/packets"
	"github.com/iaamonline/member-portal/internal/model"
	"github.com/iaamonline/member-portal/internal/stream"
)

const minSearchLength = 3

// CatalogModule mounts the web-talks catalog endpoints (public).
func CatalogModule(client *cms.Client, meta *stream.MetadataClient) api.Module {
	ctl := &catalogController{cms: client, meta: meta}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/search-videos", ctl.searchVideos)
		c.PUBLIC_GET("/video-filters", ctl.videoFilters)
		c.PUBLIC_GET("/web-talks", ctl.listWebTalks)
		c.PUBLIC_GET("/featured-videos", ctl.featuredVideos)
		c.PUBLIC_GET("/web-talks/:videoId", ctl.webTalkDetail)
	})
}

type catalogController struct {
	cms  *cms.Client
	meta *stream.MetadataClient
}

// GET /api/search-videos?q=
// Queries shorter than three characters answer an empty result without
// touching the CMS.
func (c *catalogController) searchVideos(ctx *gin.Context) (any, *api.APIError) {
	query := strings.TrimSpace(ctx.Query("q"))
	if len(query) < minSearchLength {
		return packets.SearchResponse{Data: []model.VideoRecord{}}, nil
	}

	return packets.SearchResponse{Data: c.cms.SearchVideos(ctx.Request.Context(), query)}, nil
}

// GET /api/video-filters
func (c *catalogController) videoFilters(ctx *gin.Context) (any, *api.APIError) {
	return packets.CategoriesResponse{Categories: c.cms.Categories(ctx.Request.Context())}, nil
}

// GET /api/web-talks?page=&pageSize=&category=
func (c *catalogController) listWebTalks(ctx *gin.Context) (any, *api.APIError) {
	page := intQuery(ctx, "page", 1)
	pageSize := intQuery(ctx, "pageSize", 9)
	category := ctx.Query("category")

	var list cms.VideoList
	if category == "" || strings.EqualFold(category, "All") {
		list = c.cms.ListVideos(ctx.Request.Context(), page, pageSize)
	} else {
		list = c.cms.VideosByCategory(ctx.Request.Context(), category, page, pageSize)
	}

	return packets.WebTalkListResponse{Data: list.Data, Meta: list.Meta}, nil
}

// GET /api/featured-videos?page=
func (c *catalogController) featuredVideos(ctx *gin.Context) (any, *api.APIError) {
	list := c.cms.FeaturedVideos(ctx.Request.Context(), intQuery(ctx, "page", 1))
	return packets.WebTalkListResponse{Data: list.Data, Meta: list.Meta}, nil
}

// GET /api/web-talks/:videoId
// Composes the CMS record with platform metadata and the view counter.
// Platform data is optional: absent fields render as placeholders.
func (c *catalogController) webTalkDetail(ctx *gin.Context) (any, *api.APIError) {
	videoID := ctx.Param("videoId")

	record := c.cms.FindVideoByVideoID(ctx.Request.Context(), videoID)
	if record == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "video not found"}
	}

	detail := packets.WebTalkDetailResponse{
		VideoID:         record.VideoID,
		Title:           record.Title,
		Category:        record.VideoCategory,
		HostName:        record.HostName,
		Description:     record.Description,
		DescriptionText: model.PlainText(record.Description),
		Views:           record.ViewCount(),
		Thumbnail:       c.meta.ThumbnailURL(videoID),
	}

	if platform := c.meta.Video(ctx.Request.Context(), videoID); platform != nil {
		detail.Duration = platform.Duration
		detail.DurationLabel = formatDuration(platform.Duration)
		detail.Created = platform.Created
		detail.ReadyToStream = platform.ReadyToStream
		if platform.Thumbnail != "" {
			detail.Thumbnail = platform.Thumbnail
		}
		if detail.Title == "" {
			detail.Title = platform.Meta.Name
		}
	}
	if detail.Title == "" {
		detail.Title = "Untitled Video"
	}
	if detail.DurationLabel == "" {
		detail.DurationLabel = "—"
	}

	return detail, nil
}

func intQuery(ctx *gin.Context, name string, fallback int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func formatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
