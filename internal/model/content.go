package model

// RichTextBlock is one block of CMS rich text (paragraph, heading, ...).
type RichTextBlock struct {
	Type     string          `json:"type"`
	Children []RichTextChild `json:"children"`
}

type RichTextChild struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// PlainText flattens rich-text blocks into a single string.
func PlainText(blocks []RichTextBlock) string {
	var out string
	for _, b := range blocks {
		for _, c := range b.Children {
			out += c.Text
		}
		out += "\n"
	}
	if len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out
}

// Media is a CMS-managed file with optional resized formats.
type Media struct {
	ID              int                    `json:"id"`
	DocumentID      string                 `json:"documentId,omitempty"`
	Name            string                 `json:"name"`
	AlternativeText string                 `json:"alternativeText,omitempty"`
	URL             string                 `json:"url"`
	Formats         map[string]ImageFormat `json:"formats,omitempty"`
}

type ImageFormat struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// BestURL prefers the large rendition, then medium, then the original.
func (m *Media) BestURL() string {
	if m == nil {
		return ""
	}
	if f, ok := m.Formats["large"]; ok && f.URL != "" {
		return f.URL
	}
	if f, ok := m.Formats["medium"]; ok && f.URL != "" {
		return f.URL
	}
	return m.URL
}
