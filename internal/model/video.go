package model

import "time"

// VideoRecord mirrors an entry of the CMS video collection. Every field is
// optional on the CMS side, so consumers must tolerate zero values.
type VideoRecord struct {
	ID            int             `json:"id"`
	DocumentID    string          `json:"documentId"`
	VideoID       string          `json:"VideoID"`
	Title         string          `json:"Title"`
	VideoCategory string          `json:"VideoCategory"`
	HostName      string          `json:"HostName"`
	Views         any             `json:"Views"`
	FeaturedVideo bool            `json:"FeaturedVideo"`
	DisplayRole   string          `json:"DisplayRole"`
	Description   []RichTextBlock `json:"Description"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ViewCount returns the counter value, defaulting to zero when the field is
// absent or not numeric.
func (v *VideoRecord) ViewCount() int {
	if n, ok := v.Views.(float64); ok {
		return int(n)
	}
	return 0
}

// PlatformVideo is the per-video metadata returned by the video platform's
// administrative API.
type PlatformVideo struct {
	UID           string  `json:"uid"`
	Thumbnail     string  `json:"thumbnail"`
	Duration      float64 `json:"duration"`
	Created       string  `json:"created"`
	ReadyToStream bool    `json:"readyToStream"`
	Meta          struct {
		Name     string `json:"name"`
		Filename string `json:"filename"`
	} `json:"meta"`
	Playback struct {
		HLS  string `json:"hls"`
		DASH string `json:"dash"`
	} `json:"playback"`
}
