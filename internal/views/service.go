// Package views records video plays by incrementing a counter the CMS owns.
package views

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/iaamonline/member-portal/internal/cms"
	"github.com/iaamonline/member-portal/internal/metrics"
)

type Service struct {
	cms *cms.Client
}

func NewService(client *cms.Client) *Service {
	return &Service{cms: client}
}

// Views returns the current counter for a video, zero when the video is
// unknown or the CMS is unavailable.
func (s *Service) Views(ctx context.Context, videoID string) int {
	if videoID == "" {
		return 0
	}
	record := s.cms.FindVideoByVideoID(ctx, videoID)
	if record == nil {
		return 0
	}
	return record.ViewCount()
}

// Increment adds one view to the video's counter and reports success.
//
// Read-modify-write against the CMS: two concurrent increments for the same
// video can both read the same base value and lose one update. Callers
// suppress duplicate submissions per viewing session; the guarantee here is
// that at least one concurrent increment is reflected.
func (s *Service) Increment(ctx context.Context, videoID string) bool {
	if videoID == "" {
		return false
	}

	record := s.cms.FindVideoByVideoID(ctx, videoID)
	if record == nil {
		metrics.ViewIncrements.WithLabelValues("not_found").Inc()
		return false
	}

	current := record.ViewCount()
	if err := s.cms.UpdateVideoViews(ctx, record.DocumentID, current+1); err != nil {
		metrics.ViewIncrements.WithLabelValues("failed").Inc()
		log.Error().Err(err).Str("videoID", videoID).Msg("view increment update failed")
		return false
	}

	metrics.ViewIncrements.WithLabelValues("ok").Inc()
	return true
}
