package content

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/iaamonline/member-portal/internal/cms"
)

// HeroTTL is the freshness window for the home hero banner.
const HeroTTL = 5 * time.Minute

// HeroCache serves the home hero banner from memory within a freshness
// window, collapses concurrent misses into one upstream call, and keeps
// serving the last known banner when the CMS is down.
type HeroCache struct {
	cms *cms.Client
	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	value     *HeroBanner
	fetchedAt time.Time

	group singleflight.Group
}

func NewHeroCache(client *cms.Client) *HeroCache {
	return &HeroCache{cms: client, ttl: HeroTTL, now: time.Now}
}

// WithClock substitutes the time source, used by tests.
func (h *HeroCache) WithClock(now func() time.Time) *HeroCache {
	h.now = now
	return h
}

// Get returns the hero banner, or nil when none has ever been fetched and
// the CMS is unavailable.
func (h *HeroCache) Get(ctx context.Context) *HeroBanner {
	h.mu.Lock()
	if h.value != nil && h.now().Sub(h.fetchedAt) < h.ttl {
		value := h.value
		h.mu.Unlock()
		return value
	}
	h.mu.Unlock()

	fetched, _, _ := h.group.Do("hero", func() (any, error) {
		raw := h.cms.GetHome(ctx)
		if raw == nil {
			// Stale banner beats no banner.
			h.mu.Lock()
			stale := h.value
			h.mu.Unlock()
			return stale, nil
		}

		var banner HeroBanner
		if err := json.Unmarshal(raw, &banner); err != nil {
			log.Warn().Err(err).Msg("hero banner decode failed")
			h.mu.Lock()
			stale := h.value
			h.mu.Unlock()
			return stale, nil
		}

		h.mu.Lock()
		h.value = &banner
		h.fetchedAt = h.now()
		h.mu.Unlock()
		return &banner, nil
	})

	banner, _ := fetched.(*HeroBanner)
	return banner
}
