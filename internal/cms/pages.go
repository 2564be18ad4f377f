package cms

import (
	"context"
	"encoding/json"
	"time"
)

// Page is a CMS page record. Sections is the raw dynamic zone, decoded into
// typed variants by the content package.
type Page struct {
	ID         int               `json:"id"`
	DocumentID string            `json:"documentId"`
	Slug       string            `json:"slug"`
	Title      string            `json:"Title"`
	Sections   []json.RawMessage `json:"Section"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// TopContent is an entry of the top-contents collection: a hero banner plus
// an ordered dynamic zone of sections.
type TopContent struct {
	ID         int               `json:"id"`
	DocumentID string            `json:"documentId"`
	Slug       string            `json:"slug"`
	HeroBanner json.RawMessage   `json:"HeroBanner"`
	Sections   []json.RawMessage `json:"Section"`
}

// GetPage fetches the page with the given slug, all relations expanded.
// Absence and upstream failure both yield nil.
func (c *Client) GetPage(ctx context.Context, slug string) *Page {
	q := NewQuery().Filter("slug", OpEq, slug).PopulateAll()
	var pages []Page
	if _, err := c.getData(ctx, "/api/pages", q.Values(), &pages); err != nil {
		logDegrade("/api/pages", err)
		return nil
	}
	if len(pages) == 0 {
		return nil
	}
	return &pages[0]
}

// GetTopContent fetches a top-contents record by slug with the hero banner
// and section zone expanded.
func (c *Client) GetTopContent(ctx context.Context, slug string) *TopContent {
	q := NewQuery().
		Filter("slug", OpEq, slug).
		Populate("HeroBanner", "HeroBanner").
		Populate("Section")
	var records []TopContent
	if _, err := c.getData(ctx, "/api/top-contents", q.Values(), &records); err != nil {
		logDegrade("/api/top-contents", err)
		return nil
	}
	if len(records) == 0 {
		return nil
	}
	return &records[0]
}

// GetHome fetches the home single type with the hero banner expanded and
// returns the raw HeroBanner component, or nil.
func (c *Client) GetHome(ctx context.Context) json.RawMessage {
	q := NewQuery().Populate("HeroBanner")
	var home struct {
		HeroBanner json.RawMessage `json:"HeroBanner"`
	}
	if _, err := c.getData(ctx, "/api/home", q.Values(), &home); err != nil {
		logDegrade("/api/home", err)
		return nil
	}
	return home.HeroBanner
}
