package cms

import (
	"context"
	"strings"

	"github.com/iaamonline/member-portal/internal/model"
)

// The video collection path carries the live CMS's historical misspelling.
const videosPath = "/api/vedios"

const categoryWindow = 100

// VideoList is a page of videos plus the CMS pagination meta.
type VideoList struct {
	Data []model.VideoRecord `json:"data"`
	Meta Meta                `json:"meta"`
}

// FindVideoByVideoID returns the record whose VideoID attribute matches, or
// nil when there is no match or the CMS is unavailable.
func (c *Client) FindVideoByVideoID(ctx context.Context, videoID string) *model.VideoRecord {
	q := NewQuery().Filter("VideoID", OpEq, videoID)
	var records []model.VideoRecord
	if _, err := c.getData(ctx, videosPath, q.Values(), &records); err != nil {
		logDegrade(videosPath, err)
		return nil
	}
	if len(records) == 0 {
		return nil
	}
	return &records[0]
}

// ListVideos returns one page of the catalog, newest first.
func (c *Client) ListVideos(ctx context.Context, page, pageSize int) VideoList {
	q := NewQuery().Page(page).PageSize(pageSize).Sort("createdAt:desc")
	return c.listVideos(ctx, q)
}

// FeaturedVideos returns one page of public featured videos, newest first.
func (c *Client) FeaturedVideos(ctx context.Context, page int) VideoList {
	q := NewQuery().
		Filter("FeaturedVideo", OpEq, "true").
		Filter("DisplayRole", OpEq, "Public").
		Page(page).PageSize(6).Sort("createdAt:desc")
	return c.listVideos(ctx, q)
}

// VideosByCategory fetches a window of the catalog and filters/paginates it
// locally, the way the upstream site does. Category "All" means no filter.
func (c *Client) VideosByCategory(ctx context.Context, category string, page, pageSize int) VideoList {
	if pageSize < 1 {
		pageSize = 1
	}
	q := NewQuery().PageSize(categoryWindow).Sort("createdAt:desc")
	window := c.listVideos(ctx, q)

	filtered := window.Data
	if category != "" && !strings.EqualFold(category, "All") {
		filtered = filtered[:0:0]
		for _, v := range window.Data {
			if strings.EqualFold(v.VideoCategory, category) {
				filtered = append(filtered, v)
			}
		}
	}

	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	pageCount := (len(filtered) + pageSize - 1) / pageSize
	return VideoList{
		Data: filtered[start:end],
		Meta: Meta{Pagination: Pagination{
			Page:      page,
			PageSize:  pageSize,
			PageCount: pageCount,
			Total:     len(filtered),
		}},
	}
}

// SearchVideos matches the query case-insensitively against title, host name
// and category. Returns at most 10 records.
func (c *Client) SearchVideos(ctx context.Context, query string) []model.VideoRecord {
	q := NewQuery().
		Or("Title", OpContainsi, query).
		Or("HostName", OpContainsi, query).
		Or("VideoCategory", OpContainsi, query).
		PageSize(10)
	list := c.listVideos(ctx, q)
	return list.Data
}

// Categories returns the distinct video categories with "All" prepended,
// preserving first-seen order.
func (c *Client) Categories(ctx context.Context) []string {
	q := NewQuery().PageSize(categoryWindow)
	list := c.listVideos(ctx, q)

	seen := map[string]bool{}
	categories := []string{"All"}
	for _, v := range list.Data {
		if v.VideoCategory == "" || seen[v.VideoCategory] {
			continue
		}
		seen[v.VideoCategory] = true
		categories = append(categories, v.VideoCategory)
	}
	return categories
}

// UpdateVideoViews writes the counter on the identified CMS document. Unlike
// the read paths this reports the error: the caller turns it into a boolean.
func (c *Client) UpdateVideoViews(ctx context.Context, documentID string, views int) error {
	body := map[string]any{"data": map[string]any{"Views": views}}
	return c.do(ctx, "PUT", videosPath+"/"+documentID, nil, body, c.token, nil)
}

func (c *Client) listVideos(ctx context.Context, q *Query) VideoList {
	var records []model.VideoRecord
	meta, err := c.getData(ctx, videosPath, q.Values(), &records)
	if err != nil {
		logDegrade(videosPath, err)
		return VideoList{Data: []model.VideoRecord{}}
	}
	if records == nil {
		records = []model.VideoRecord{}
	}
	return VideoList{Data: records, Meta: meta}
}
