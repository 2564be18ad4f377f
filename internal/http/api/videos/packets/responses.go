package packets

import (
	"github.com/iaamonline/member-portal/internal/cms"
	"github.com/iaamonline/member-portal/internal/model"
)

type StreamTokenResponse struct {
	Token string `json:"token"`
}

type ViewsResponse struct {
	Views int `json:"views"`
}

type IncrementViewResponse struct {
	Success bool `json:"success"`
}

type SearchResponse struct {
	Data []model.VideoRecord `json:"data"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type WebTalkListResponse struct {
	Data []model.VideoRecord `json:"data"`
	Meta cms.Meta            `json:"meta"`
}

// WebTalkDetailResponse composes the CMS record with platform metadata and
// the current view counter. Platform fields fall back to placeholders when
// the platform is unavailable.
type WebTalkDetailResponse struct {
	VideoID         string                `json:"videoId"`
	Title           string                `json:"title"`
	Category        string                `json:"category,omitempty"`
	HostName        string                `json:"hostName,omitempty"`
	Description     []model.RichTextBlock `json:"description,omitempty"`
	DescriptionText string                `json:"descriptionText,omitempty"`
	Views           int                   `json:"views"`
	Duration        float64               `json:"duration"`
	DurationLabel   string                `json:"durationLabel"`
	Thumbnail       string                `json:"thumbnail"`
	Created         string                `json:"created,omitempty"`
	ReadyToStream   bool                  `json:"readyToStream"`
}
