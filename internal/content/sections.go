package content

import (
	"encoding/json"

	"github.com/iaamonline/member-portal/internal/model"
)

// SectionKind tags the variant of a CMS dynamic-zone block.
type SectionKind string

const (
	KindHero          SectionKind = "sections.hero-banner"
	KindAbout         SectionKind = "sections.about"
	KindEvents        SectionKind = "sections.events"
	KindNews          SectionKind = "sections.news"
	KindJoin          SectionKind = "sections.join"
	KindVisionMission SectionKind = "sections.vision-mission"
	KindGlobalImpact  SectionKind = "sections.global-impact"
	KindOurRole       SectionKind = "sections.our-role"
)

// Section is a tagged variant: exactly one of the pointers is set, selected
// by Kind. Unknown or undecodable blocks are omitted from composed pages.
type Section struct {
	Kind          SectionKind           `json:"kind"`
	Hero          *HeroBanner           `json:"hero,omitempty"`
	About         *AboutSection         `json:"about,omitempty"`
	Events        *EventsSection        `json:"events,omitempty"`
	News          *NewsSection          `json:"news,omitempty"`
	Join          *JoinSection          `json:"join,omitempty"`
	VisionMission *VisionMissionSection `json:"visionMission,omitempty"`
	GlobalImpact  *GlobalImpactSection  `json:"globalImpact,omitempty"`
	OurRole       *OurRoleSection       `json:"ourRole,omitempty"`
}

// HeroBanner is the leading banner of a page. Every field is optional on the
// CMS side.
type HeroBanner struct {
	ID          int          `json:"id"`
	Title       string       `json:"HeroBannerTitle"`
	Description string       `json:"HeroBannerDescription"`
	ButtonLabel string       `json:"HeroBannerButtonLabel"`
	Image       *model.Media `json:"HeroBanner"`
}

// ImageURL resolves the banner image through the format fallback chain.
func (h *HeroBanner) ImageURL() string {
	if h == nil {
		return ""
	}
	return h.Image.BestURL()
}

type AboutCard struct {
	ID          int                   `json:"id"`
	Title       string                `json:"title"`
	Description []model.RichTextBlock `json:"description"`
}

type AboutSection struct {
	Title       string                `json:"title"`
	Description []model.RichTextBlock `json:"description"`
	ButtonText  string                `json:"buttonText"`
	ButtonLink  string                `json:"buttonLink"`
	Image       *model.Media          `json:"image"`
	Cards       []AboutCard           `json:"about_cards"`
}

type EventItem struct {
	ID          int    `json:"id"`
	Month       string `json:"month"`
	Day         string `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type EventsSection struct {
	ID     int         `json:"id"`
	Title  string      `json:"title"`
	Events []EventItem `json:"events"`
}

type NewsItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Link  string `json:"link"`
}

type NewsSection struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Items    []NewsItem `json:"news"`
}

type JoinCard struct {
	ID          int    `json:"id"`
	Heading     string `json:"Heading"`
	Description string `json:"Description"`
	Link        string `json:"Link"`
}

type JoinSection struct {
	SectionTitle string     `json:"SectionTitle"`
	Cards        []JoinCard `json:"ThirdCards"`
}

type VisionMissionSection struct {
	Vision  []model.RichTextBlock `json:"vision"`
	Mission []model.RichTextBlock `json:"mission"`
}

type GlobalImpactSection struct {
	Title string                `json:"title"`
	Body  []model.RichTextBlock `json:"body"`
}

type OurRoleSection struct {
	Title string                `json:"title"`
	Body  []model.RichTextBlock `json:"body"`
}

// DecodeSection turns one raw dynamic-zone block into its typed variant.
// The second return is false when the block should be omitted.
func DecodeSection(raw json.RawMessage) (Section, bool) {
	var tag struct {
		Component SectionKind `json:"__component"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil || tag.Component == "" {
		return Section{}, false
	}

	section := Section{Kind: tag.Component}
	var err error
	switch tag.Component {
	case KindHero:
		section.Hero, err = decodeAs[HeroBanner](raw)
	case KindAbout:
		section.About, err = decodeAs[AboutSection](raw)
	case KindEvents:
		section.Events, err = decodeAs[EventsSection](raw)
	case KindNews:
		section.News, err = decodeAs[NewsSection](raw)
	case KindJoin:
		section.Join, err = decodeAs[JoinSection](raw)
	case KindVisionMission:
		section.VisionMission, err = decodeAs[VisionMissionSection](raw)
	case KindGlobalImpact:
		section.GlobalImpact, err = decodeAs[GlobalImpactSection](raw)
	case KindOurRole:
		section.OurRole, err = decodeAs[OurRoleSection](raw)
	default:
		return Section{}, false
	}
	if err != nil {
		return Section{}, false
	}
	return section, true
}

func decodeAs[T any](raw json.RawMessage) (*T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
