package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		raw  string
		want SortKey
	}{
		{raw: "recent", want: SortRecent},
		{raw: "oldest", want: SortOldest},
		{raw: "az", want: SortAZ},
		{raw: "ZA", want: SortZA},
		{raw: " nearest ", want: SortNearest},
		{raw: "", want: SortRecent},
		{raw: "cheapest", want: SortRecent},
	}

	for _, tt := range tests {
		t.Run("key "+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortKey(tt.raw))
		})
	}
}

func TestResolveSort(t *testing.T) {
	proximity := &Proximity{Lat: 40, Lng: -3, RadiusMeters: 1000}

	tests := []struct {
		name      string
		key       SortKey
		proximity *Proximity
		want      []SortField
	}{
		{
			name: "recent is created_at desc",
			key:  SortRecent,
			want: []SortField{{Column: "created_at", Desc: true}},
		},
		{
			name: "oldest is created_at asc",
			key:  SortOldest,
			want: []SortField{{Column: "created_at"}},
		},
		{
			name: "az is title asc",
			key:  SortAZ,
			want: []SortField{{Column: "title"}},
		},
		{
			name: "za is title desc",
			key:  SortZA,
			want: []SortField{{Column: "title", Desc: true}},
		},
		{
			name:      "nearest defers to the proximity predicate",
			key:       SortNearest,
			proximity: proximity,
			want:      nil,
		},
		{
			name: "nearest without coordinates degrades to recent",
			key:  SortNearest,
			want: []SortField{{Column: "created_at", Desc: true}},
		},
		{
			name: "unknown key degrades to recent",
			key:  SortKey("price"),
			want: []SortField{{Column: "created_at", Desc: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSort(tt.key, tt.proximity))
		})
	}
}

func TestSortField_Clause(t *testing.T) {
	assert.Equal(t, "title ASC", SortField{Column: "title"}.Clause())
	assert.Equal(t, "created_at DESC", SortField{Column: "created_at", Desc: true}.Clause())
}

func TestParseSortFields(t *testing.T) {
	cols := NewColumns("title", "created_at", "category")

	tests := []struct {
		name string
		raw  string
		want []SortField
	}{
		{
			name: "single ascending",
			raw:  "title",
			want: []SortField{{Column: "title"}},
		},
		{
			name: "descending prefix",
			raw:  "-created_at",
			want: []SortField{{Column: "created_at", Desc: true}},
		},
		{
			name: "multiple with unknown dropped",
			raw:  "category,-score,title",
			want: []SortField{{Column: "category"}, {Column: "title"}},
		},
		{
			name: "empty falls back to recency",
			raw:  "",
			want: []SortField{{Column: "created_at", Desc: true}},
		},
		{
			name: "only unknown columns falls back to recency",
			raw:  "score,-rank",
			want: []SortField{{Column: "created_at", Desc: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortFields(tt.raw, cols))
		})
	}
}
