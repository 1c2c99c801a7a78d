package query

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Options describe one composed listing query: filter, optional proximity,
// explicit sort fields, page window, projection, and fetch-only scopes
// (typically preloads with restricted column sets).
type Options struct {
	Filter    *Filter
	Proximity *Proximity
	Sort      []SortField
	Page      PageRequest
	Select    []string
	Scopes    []func(*gorm.DB) *gorm.DB
}

// Run executes the composed query against base (a *gorm.DB already scoped
// to a model) and fills dest with the requested page.
//
// Two store round-trips happen in a fixed order: an independent count of
// everything matching the filter, then the paged fetch. Nothing joins them
// transactionally; under concurrent writes the total may be marginally
// stale relative to the page, which is an accepted property of a UI
// pagination count. If either round-trip fails the whole call fails, no
// partial result is returned.
func Run(ctx context.Context, base *gorm.DB, opts Options, dest any) (PageMeta, error) {
	filtered := opts.Filter.Apply(base.WithContext(ctx))
	if opts.Proximity != nil {
		filtered = opts.Proximity.Apply(filtered)
	}

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return PageMeta{}, fmt.Errorf("counting results: %w", err)
	}

	fetch := filtered
	if len(opts.Select) > 0 {
		fetch = fetch.Select(opts.Select)
	}
	for _, scope := range opts.Scopes {
		fetch = scope(fetch)
	}
	fetch = applyOrder(fetch, opts)

	if err := fetch.
		Limit(opts.Page.Limit).
		Offset(opts.Page.Offset()).
		Find(dest).Error; err != nil {
		return PageMeta{}, fmt.Errorf("fetching page: %w", err)
	}

	return BuildPageMeta(opts.Page, total), nil
}

// applyOrder applies the explicit sort fields, or the nearest-first
// ordering implied by the proximity predicate when no explicit sort was
// resolved.
func applyOrder(tx *gorm.DB, opts Options) *gorm.DB {
	if len(opts.Sort) == 0 && opts.Proximity != nil {
		return tx.Order(opts.Proximity.OrderClause())
	}
	for _, field := range opts.Sort {
		tx = tx.Order(field.Clause())
	}
	return tx
}
