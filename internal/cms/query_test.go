package cms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Filter(t *testing.T) {
	q := NewQuery().Filter("VideoID", OpEq, "abc123")
	assert.Equal(t, "abc123", q.Values().Get("filters[VideoID][$eq]"))
}

func TestQuery_OrClausesAreNumbered(t *testing.T) {
	q := NewQuery().
		Or("Title", OpContainsi, "photon").
		Or("HostName", OpContainsi, "photon").
		Or("VideoCategory", OpContainsi, "photon")

	values := q.Values()
	assert.Equal(t, "photon", values.Get("filters[$or][0][Title][$containsi]"))
	assert.Equal(t, "photon", values.Get("filters[$or][1][HostName][$containsi]"))
	assert.Equal(t, "photon", values.Get("filters[$or][2][VideoCategory][$containsi]"))
}

func TestQuery_FieldsProjection(t *testing.T) {
	q := NewQuery().Filter("username", OpEqi, "jdoe").Fields("username")
	values := q.Values()
	assert.Equal(t, "jdoe", values.Get("filters[username][$eqi]"))
	assert.Equal(t, "username", values.Get("fields[0]"))
}

func TestQuery_Populate(t *testing.T) {
	q := NewQuery().Populate("HeroBanner", "HeroBanner").Populate("Section")
	values := q.Values()
	assert.Equal(t, "HeroBanner", values.Get("populate[HeroBanner][populate]"))
	assert.Equal(t, "*", values.Get("populate[Section][populate]"))

	all := NewQuery().PopulateAll()
	assert.Equal(t, "*", all.Values().Get("populate"))
}

func TestQuery_PaginationAndSort(t *testing.T) {
	q := NewQuery().Page(2).PageSize(9).Sort("createdAt:desc")
	values := q.Values()
	assert.Equal(t, "2", values.Get("pagination[page]"))
	assert.Equal(t, "9", values.Get("pagination[pageSize]"))
	assert.Equal(t, "createdAt:desc", values.Get("sort"))
}
