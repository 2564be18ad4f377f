package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSection_HeroBanner(t *testing.T) {
	raw := json.RawMessage(`{
		"__component": "sections.hero-banner",
		"id": 7,
		"HeroBannerTitle": "Advancing Materials",
		"HeroBannerDescription": "To a sustainable world",
		"HeroBannerButtonLabel": "Join Us"
	}`)

	section, ok := DecodeSection(raw)
	require.True(t, ok)
	assert.Equal(t, KindHero, section.Kind)
	require.NotNil(t, section.Hero)
	assert.Equal(t, "Advancing Materials", section.Hero.Title)
	assert.Equal(t, "Join Us", section.Hero.ButtonLabel)
	assert.Nil(t, section.About)
}

func TestDecodeSection_Events(t *testing.T) {
	raw := json.RawMessage(`{
		"__component": "sections.events",
		"id": 3,
		"title": "Upcoming Events",
		"events": [
			{"id": 1, "month": "JUN", "day": "12", "title": "Annual Congress"},
			{"id": 2, "month": "SEP", "day": "04", "title": "Materials Forum"}
		]
	}`)

	section, ok := DecodeSection(raw)
	require.True(t, ok)
	assert.Equal(t, KindEvents, section.Kind)
	require.NotNil(t, section.Events)
	require.Len(t, section.Events.Events, 2)
	assert.Equal(t, "Annual Congress", section.Events.Events[0].Title)
}

func TestDecodeSection_Join(t *testing.T) {
	raw := json.RawMessage(`{
		"__component": "sections.join",
		"SectionTitle": "Become a Member",
		"ThirdCards": [{"id": 1, "Heading": "Fellows", "Link": "/fellows"}]
	}`)

	section, ok := DecodeSection(raw)
	require.True(t, ok)
	require.NotNil(t, section.Join)
	assert.Equal(t, "Become a Member", section.Join.SectionTitle)
	require.Len(t, section.Join.Cards, 1)
	assert.Equal(t, "Fellows", section.Join.Cards[0].Heading)
}

func TestDecodeSection_UnknownComponentOmitted(t *testing.T) {
	_, ok := DecodeSection(json.RawMessage(`{"__component": "sections.banner-v2", "id": 1}`))
	assert.False(t, ok)
}

func TestDecodeSection_MissingTagOmitted(t *testing.T) {
	_, ok := DecodeSection(json.RawMessage(`{"id": 1, "title": "untagged"}`))
	assert.False(t, ok)
}

func TestDecodeSection_MalformedOmitted(t *testing.T) {
	_, ok := DecodeSection(json.RawMessage(`{"__component": "sections.events",`))
	assert.False(t, ok)
}

func TestHeroBannerImageURL_NilSafe(t *testing.T) {
	var banner *HeroBanner
	assert.Equal(t, "", banner.ImageURL())
}
