package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPageMeta(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
		wantNext  *PageRef
		wantPrev  *PageRef
	}{
		{
			name: "first page of many",
			page: 1, limit: 10, total: 45,
			wantPages: 5,
			wantNext:  &PageRef{Page: 2, Limit: 10},
		},
		{
			name: "middle page",
			page: 3, limit: 10, total: 45,
			wantPages: 5,
			wantNext:  &PageRef{Page: 4, Limit: 10},
			wantPrev:  &PageRef{Page: 2, Limit: 10},
		},
		{
			name: "last full page",
			page: 5, limit: 10, total: 45,
			wantPages: 5,
			wantPrev:  &PageRef{Page: 4, Limit: 10},
		},
		{
			name: "exact division has no dangling page",
			page: 2, limit: 10, total: 20,
			wantPages: 2,
			wantPrev:  &PageRef{Page: 1, Limit: 10},
		},
		{
			name: "empty result keeps pages at one with no links",
			page: 1, limit: 10, total: 0,
			wantPages: 1,
		},
		{
			name: "page beyond the end still has prev but no next",
			page: 9, limit: 10, total: 45,
			wantPages: 5,
			wantPrev:  &PageRef{Page: 8, Limit: 10},
		},
		{
			name: "single item single page",
			page: 1, limit: 1, total: 1,
			wantPages: 1,
		},
		{
			name: "limit one pages through everything",
			page: 1, limit: 1, total: 2,
			wantPages: 2,
			wantNext:  &PageRef{Page: 2, Limit: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := BuildPageMeta(PageRequest{Page: tt.page, Limit: tt.limit}, tt.total)

			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.wantPages, meta.Pages)
			assert.Equal(t, tt.wantNext, meta.Next)
			assert.Equal(t, tt.wantPrev, meta.Prev)

			// Structural invariants that hold for every input.
			require.GreaterOrEqual(t, meta.Pages, 1)
			if meta.Total == 0 {
				assert.Nil(t, meta.Next)
				assert.Nil(t, meta.Prev)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 12}.Offset())
	assert.Equal(t, 12, PageRequest{Page: 2, Limit: 12}.Offset())
	assert.Equal(t, 90, PageRequest{Page: 10, Limit: 10}.Offset())
}
