package items

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/barterhub/barter-api/internal/models"
	"github.com/barterhub/barter-api/internal/query"
	"gorm.io/gorm"
)

const (
	// geoIndexName is the composite index over the coordinate pair. Its
	// presence is what flips the collection's geo capability on.
	geoIndexName = "idx_items_position"

	// ftsTableName is the FTS5 shadow table backing indexed text search.
	ftsTableName = "items_fts"

	defaultMaxPageSize = 100
)

type Repository struct {
	db          *gorm.DB
	maxPageSize int

	// capability flags resolved once at construction and refreshed when an
	// index is (re)built, so query strategies branch on a known state
	// instead of probing the store per request. Index rebuilds can happen
	// on live admin requests, so reads and refreshes share a lock.
	capsMu sync.RWMutex
	caps   query.Capabilities
}

// Ensure Repository implements ItemRepository interface
var _ ItemRepository = (*Repository)(nil)

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithMaxPageSize caps the page size a client can request.
func WithMaxPageSize(n int) RepositoryOption {
	return func(r *Repository) {
		if n > 0 {
			r.maxPageSize = n
		}
	}
}

func NewRepository(db *gorm.DB, opts ...RepositoryOption) *Repository {
	r := &Repository{db: db, maxPageSize: defaultMaxPageSize}
	for _, opt := range opts {
		opt(r)
	}
	r.caps = r.introspectCapabilities()
	return r
}

// introspectCapabilities asks the schema which indexed features it
// declares right now.
func (r *Repository) introspectCapabilities() query.Capabilities {
	return query.Capabilities{
		HasGeoIndex:    r.db.Migrator().HasIndex(&models.Item{}, geoIndexName),
		HasTextIndex:   r.db.Migrator().HasTable(ftsTableName),
		TextIndexTable: ftsTableName,
		TextFields:     []string{"title", "description"},
	}
}

// Capabilities reports the resolved capability flags.
func (r *Repository) Capabilities() query.Capabilities {
	r.capsMu.RLock()
	defer r.capsMu.RUnlock()
	return r.caps
}

// refreshCapabilities re-introspects the schema after an index build.
func (r *Repository) refreshCapabilities() {
	caps := r.introspectCapabilities()
	r.capsMu.Lock()
	r.caps = caps
	r.capsMu.Unlock()
}

func (r *Repository) Create(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).
		Preload("Owner", ownerProjection).
		Preload("Images").
		First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(id)
		}
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return &item, nil
}

func (r *Repository) Update(ctx context.Context, item *models.Item) error {
	result := r.db.WithContext(ctx).Save(item)
	if result.Error != nil {
		return fmt.Errorf("updating item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError(item.ID)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Item{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError(id)
	}
	return nil
}

func (r *Repository) AddImage(ctx context.Context, image *models.ItemImage) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("attaching image: %w", err)
	}
	return nil
}

// Search composes the item discovery query. Public search always pins
// is_available so withdrawn listings never leak into results.
func (r *Repository) Search(ctx context.Context, params query.SearchParams) ([]models.Item, query.PageMeta, error) {
	caps := r.Capabilities()

	filter := query.NewFilter(query.Eq{Column: "is_available", Value: true})
	if params.Category != "" {
		filter.And(query.Eq{Column: "category", Value: params.Category})
	}
	if params.Condition != "" {
		filter.And(query.Eq{Column: "condition", Value: params.Condition})
	}
	if params.Location != "" {
		filter.And(query.Like{Column: "location", Term: params.Location})
	}
	filter.And(query.TextPredicate(params.Query, caps))

	proximity := query.GeoPredicate(params.Coords, params.RadiusKm, caps)

	var items []models.Item
	meta, err := query.Run(ctx, r.db.Model(&models.Item{}), query.Options{
		Filter:    filter,
		Proximity: proximity,
		Sort:      query.ResolveSort(params.Sort, proximity),
		Page:      params.Page,
		Scopes:    []func(*gorm.DB) *gorm.DB{preloadOwner, preloadImages},
	}, &items)
	if err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("searching items: %w", err)
	}
	return items, meta, nil
}

// List is the generic listing form shared by every resource type: raw
// filter parameters compiled permissively, select/sort/page/limit honored.
func (r *Repository) List(ctx context.Context, values url.Values) ([]models.Item, query.PageMeta, error) {
	cols := query.NewColumns(models.ItemFilterColumns...)

	opts := query.Options{
		Filter: query.Compile(values, cols),
		Sort:   query.ParseSortFields(values.Get(query.KeySort), cols),
		Page:   query.ParsePageRequest(values, query.DefaultListPageSize, r.maxPageSize),
		Select: query.SelectedColumns(values, cols),
	}
	if len(opts.Select) == 0 {
		opts.Scopes = []func(*gorm.DB) *gorm.DB{preloadOwner}
	}

	var items []models.Item
	meta, err := query.Run(ctx, r.db.Model(&models.Item{}), opts, &items)
	if err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("listing items: %w", err)
	}
	return items, meta, nil
}

// EnsureGeoIndex (re)creates the coordinate index. Safe to call
// repeatedly; the capability flag is refreshed afterwards.
func (r *Repository) EnsureGeoIndex(ctx context.Context) error {
	err := r.db.WithContext(ctx).Exec(
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON items(latitude, longitude)", geoIndexName),
	).Error
	if err != nil {
		return fmt.Errorf("creating geo index: %w", err)
	}
	r.refreshCapabilities()
	return nil
}

// EnsureSearchIndex (re)creates the FTS5 table over title+description and
// the triggers keeping it in sync with the content table. Idempotent.
func (r *Repository) EnsureSearchIndex(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`CREATE VIRTUAL TABLE IF NOT EXISTS %s USING fts5(title, description, content='items', content_rowid='id')`, ftsTableName),
		fmt.Sprintf(`CREATE TRIGGER IF NOT EXISTS items_fts_insert AFTER INSERT ON items BEGIN
			INSERT INTO %[1]s(rowid, title, description) VALUES (new.id, new.title, new.description);
		END`, ftsTableName),
		fmt.Sprintf(`CREATE TRIGGER IF NOT EXISTS items_fts_delete AFTER DELETE ON items BEGIN
			INSERT INTO %[1]s(%[1]s, rowid, title, description) VALUES ('delete', old.id, old.title, old.description);
		END`, ftsTableName),
		fmt.Sprintf(`CREATE TRIGGER IF NOT EXISTS items_fts_update AFTER UPDATE ON items BEGIN
			INSERT INTO %[1]s(%[1]s, rowid, title, description) VALUES ('delete', old.id, old.title, old.description);
			INSERT INTO %[1]s(rowid, title, description) VALUES (new.id, new.title, new.description);
		END`, ftsTableName),
		fmt.Sprintf(`INSERT INTO %[1]s(%[1]s) VALUES ('rebuild')`, ftsTableName),
	}
	for _, stmt := range statements {
		if err := r.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			// mattn/go-sqlite3 only ships FTS5 behind the sqlite_fts5
			// build tag; report that as its own condition so callers can
			// degrade explicitly instead of treating it as a store fault.
			if strings.Contains(err.Error(), "fts5") {
				return fmt.Errorf("%w: %v", ErrTextIndexUnsupported, err)
			}
			return fmt.Errorf("creating search index: %w", err)
		}
	}
	r.refreshCapabilities()
	return nil
}

// preloadOwner attaches the contact-safe owner projection, never the full
// account record.
func preloadOwner(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Owner", ownerProjection)
}

func ownerProjection(tx *gorm.DB) *gorm.DB {
	return tx.Select(models.OwnerColumns)
}

func preloadImages(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Images")
}
