package query

import (
	"strings"
)

// SortKey is a symbolic ordering requested by the client.
type SortKey string

const (
	SortRecent  SortKey = "recent"
	SortOldest  SortKey = "oldest"
	SortAZ      SortKey = "az"
	SortZA      SortKey = "za"
	SortNearest SortKey = "nearest"
)

// ParseSortKey coerces a raw sort parameter. Unknown values fall back to
// recency, the default ordering everywhere.
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(raw))); key {
	case SortRecent, SortOldest, SortAZ, SortZA, SortNearest:
		return key
	default:
		return SortRecent
	}
}

// SortField is one concrete ordering column.
type SortField struct {
	Column string
	Desc   bool
}

// Clause renders the field as an ORDER BY term.
func (s SortField) Clause() string {
	if s.Desc {
		return s.Column + " DESC"
	}
	return s.Column + " ASC"
}

// ResolveSort maps a symbolic key onto concrete sort fields. When the key
// is nearest and a proximity predicate is in play, the result is empty:
// ordering is already implied by the predicate itself. Nearest without
// coordinates (or without a geo index) degrades to recency rather than
// erroring.
func ResolveSort(key SortKey, proximity *Proximity) []SortField {
	switch key {
	case SortOldest:
		return []SortField{{Column: "created_at"}}
	case SortAZ:
		return []SortField{{Column: "title"}}
	case SortZA:
		return []SortField{{Column: "title", Desc: true}}
	case SortNearest:
		if proximity != nil {
			return nil
		}
		return []SortField{{Column: "created_at", Desc: true}}
	default:
		return []SortField{{Column: "created_at", Desc: true}}
	}
}

// ParseSortFields interprets the generic listing sort parameter: a comma
// separated list of column names, each optionally prefixed with "-" for
// descending. Columns outside the collection's set are dropped; an empty
// result falls back to recency.
func ParseSortFields(raw string, cols Columns) []SortField {
	var out []SortField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		column := strings.TrimPrefix(part, "-")
		if column == "" || !cols[column] {
			continue
		}
		out = append(out, SortField{Column: column, Desc: desc})
	}
	if len(out) == 0 {
		return []SortField{{Column: "created_at", Desc: true}}
	}
	return out
}
