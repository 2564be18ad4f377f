package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iaamonline/member-portal/internal/cache"
	"github.com/iaamonline/member-portal/internal/model"
)

const metadataCacheTTL = 60 * time.Second

// MetadataClient fetches per-video details from the video platform's
// administrative API. Every failure degrades to a nil result so pages render
// with placeholders instead of erroring.
type MetadataClient struct {
	baseURL   string
	accountID string
	apiToken  string
	subdomain string
	http      *http.Client
	cache     cache.Cache
}

func NewMetadataClient(accountID, apiToken, subdomain string, c cache.Cache) *MetadataClient {
	return &MetadataClient{
		baseURL:   "https://api.cloudflare.com",
		accountID: accountID,
		apiToken:  apiToken,
		subdomain: subdomain,
		http:      http.DefaultClient,
		cache:     c,
	}
}

// WithBaseURL points the client at a different API host, used by tests.
func (m *MetadataClient) WithBaseURL(baseURL string) *MetadataClient {
	m.baseURL = baseURL
	return m
}

// Video returns platform metadata for the video, or nil when the platform is
// unreachable, answers unsuccessfully, or the client is unconfigured.
func (m *MetadataClient) Video(ctx context.Context, videoID string) *model.PlatformVideo {
	if m.accountID == "" || m.apiToken == "" {
		log.Error().Msg("stream metadata client not configured")
		return nil
	}

	cacheKey := "stream:video:" + videoID
	if raw, ok := m.cache.Get(ctx, cacheKey); ok {
		var cached model.PlatformVideo
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached
		}
	}

	url := fmt.Sprintf("%s/client/v4/accounts/%s/stream/%s", m.baseURL, m.accountID, videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error().Err(err).Msg("stream metadata request build failed")
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+m.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("videoID", videoID).Msg("stream metadata fetch failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		log.Error().Int("status", resp.StatusCode).Str("videoID", videoID).Msg("stream metadata api error")
		return nil
	}

	var body struct {
		Success bool                `json:"success"`
		Result  model.PlatformVideo `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Error().Err(err).Str("videoID", videoID).Msg("stream metadata decode failed")
		return nil
	}
	if !body.Success {
		return nil
	}

	if raw, err := json.Marshal(body.Result); err == nil {
		m.cache.Set(ctx, cacheKey, raw, metadataCacheTTL)
	}
	return &body.Result
}

// ThumbnailURL builds the delivery-network thumbnail address for a video.
func (m *MetadataClient) ThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://%s.cloudflarestream.com/%s/thumbnails/thumbnail.jpg", m.subdomain, videoID)
}

// IframeURL builds the token-gated embedded-player address for a video.
func (m *MetadataClient) IframeURL(videoID, token string) string {
	return fmt.Sprintf("https://%s.cloudflarestream.com/%s/iframe?token=%s", m.subdomain, videoID, token)
}
