package cms

import (
	"fmt"
	"net/url"
	"strconv"
)

// Filter operators understood by the CMS query language.
const (
	OpEq        = "$eq"
	OpEqi       = "$eqi"
	OpContainsi = "$containsi"
)

// Query builds the CMS REST query string: filters[field][$op]=value,
// populate[rel][populate]=..., pagination[page]=..., fields[i]=..., sort=...
type Query struct {
	values url.Values
	orIdx  int
}

func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Filter adds filters[field][$op]=value.
func (q *Query) Filter(field, op, value string) *Query {
	q.values.Set(fmt.Sprintf("filters[%s][%s]", field, op), value)
	return q
}

// Or adds the next filters[$or][i][field][$op]=value clause.
func (q *Query) Or(field, op, value string) *Query {
	q.values.Set(fmt.Sprintf("filters[$or][%d][%s][%s]", q.orIdx, field, op), value)
	q.orIdx++
	return q
}

// Fields projects the response to the named attributes.
func (q *Query) Fields(fields ...string) *Query {
	for i, f := range fields {
		q.values.Set(fmt.Sprintf("fields[%d]", i), f)
	}
	return q
}

// PopulateAll expands every first-level relation (populate=*).
func (q *Query) PopulateAll() *Query {
	q.values.Set("populate", "*")
	return q
}

// Populate expands a named relation, optionally nesting a further populate:
// Populate("HeroBanner") -> populate[HeroBanner][populate]=*
// Populate("HeroBanner", "HeroBanner") -> populate[HeroBanner][populate]=HeroBanner
func (q *Query) Populate(relation string, nested ...string) *Query {
	target := "*"
	if len(nested) > 0 {
		target = nested[0]
	}
	q.values.Set(fmt.Sprintf("populate[%s][populate]", relation), target)
	return q
}

func (q *Query) Page(page int) *Query {
	q.values.Set("pagination[page]", strconv.Itoa(page))
	return q
}

func (q *Query) PageSize(size int) *Query {
	q.values.Set("pagination[pageSize]", strconv.Itoa(size))
	return q
}

func (q *Query) Sort(expr string) *Query {
	q.values.Set("sort", expr)
	return q
}

func (q *Query) Values() url.Values {
	return q.values
}

func (q *Query) Encode() string {
	return q.values.Encode()
}
