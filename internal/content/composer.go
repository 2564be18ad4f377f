package content

import (
	"context"
	"encoding/json"
	"time"

	"github.com/iaamonline/member-portal/internal/cache"
	"github.com/iaamonline/member-portal/internal/cms"
)

// Section windows mirror the per-call freshness the site used: most sections
// revalidate after a minute.
const sectionTTL = 60 * time.Second

// ComposedPage is a page's typed sections in CMS-defined order. Sections the
// CMS omitted, or that failed to decode, are simply absent.
type ComposedPage struct {
	Slug     string      `json:"slug"`
	Title    string      `json:"title,omitempty"`
	Hero     *HeroBanner `json:"hero,omitempty"`
	Sections []Section   `json:"sections"`
}

// Composer assembles pages from CMS content, with a per-slug read-through
// cache in front of the fetch.
type Composer struct {
	cms   *cms.Client
	cache cache.Cache
}

func NewComposer(client *cms.Client, c cache.Cache) *Composer {
	return &Composer{cms: client, cache: c}
}

// Page composes the page with the given slug, nil when the CMS has no such
// page or is unavailable.
func (c *Composer) Page(ctx context.Context, slug string) *ComposedPage {
	if cached := c.cached(ctx, "page:"+slug); cached != nil {
		return cached
	}

	page := c.cms.GetPage(ctx, slug)
	if page == nil {
		return nil
	}

	composed := &ComposedPage{
		Slug:     page.Slug,
		Title:    page.Title,
		Sections: decodeSections(page.Sections),
	}
	c.store(ctx, "page:"+slug, composed)
	return composed
}

// TopContent composes a top-contents record: hero banner plus sections.
func (c *Composer) TopContent(ctx context.Context, slug string) *ComposedPage {
	if cached := c.cached(ctx, "top:"+slug); cached != nil {
		return cached
	}

	record := c.cms.GetTopContent(ctx, slug)
	if record == nil {
		return nil
	}

	composed := &ComposedPage{
		Slug:     record.Slug,
		Sections: decodeSections(record.Sections),
	}
	if len(record.HeroBanner) > 0 {
		var hero HeroBanner
		if err := json.Unmarshal(record.HeroBanner, &hero); err == nil {
			composed.Hero = &hero
		}
	}
	c.store(ctx, "top:"+slug, composed)
	return composed
}

func decodeSections(raw []json.RawMessage) []Section {
	sections := make([]Section, 0, len(raw))
	for _, block := range raw {
		if section, ok := DecodeSection(block); ok {
			sections = append(sections, section)
		}
	}
	return sections
}

func (c *Composer) cached(ctx context.Context, key string) *ComposedPage {
	raw, ok := c.cache.Get(ctx, key)
	if !ok {
		return nil
	}
	var page ComposedPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil
	}
	return &page
}

func (c *Composer) store(ctx context.Context, key string, page *ComposedPage) {
	if raw, err := json.Marshal(page); err == nil {
		c.cache.Set(ctx, key, raw, sectionTTL)
	}
}
