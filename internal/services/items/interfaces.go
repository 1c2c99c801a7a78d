package items

import (
	"context"
	"net/url"

	"github.com/barterhub/barter-api/internal/models"
	"github.com/barterhub/barter-api/internal/query"
)

// ItemRepository defines data access for items.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uint) error

	// Search runs the composed discovery query: text, category/condition/
	// location filters, optional geo radius, symbolic sort, pagination.
	Search(ctx context.Context, params query.SearchParams) ([]models.Item, query.PageMeta, error)

	// List is the generic listing form: arbitrary filter parameters plus
	// select/sort/page/limit.
	List(ctx context.Context, values url.Values) ([]models.Item, query.PageMeta, error)

	AddImage(ctx context.Context, image *models.ItemImage) error

	// Capabilities reports which indexed features the items collection
	// currently declares.
	Capabilities() query.Capabilities

	// EnsureGeoIndex and EnsureSearchIndex (re)create the corresponding
	// indexes. Both are idempotent and safe to call repeatedly.
	EnsureGeoIndex(ctx context.Context) error
	EnsureSearchIndex(ctx context.Context) error
}

// ItemService is the behavior exposed to handlers: repository access plus
// ownership enforcement on mutations.
type ItemService interface {
	Search(ctx context.Context, params query.SearchParams) ([]models.Item, query.PageMeta, error)
	List(ctx context.Context, values url.Values) ([]models.Item, query.PageMeta, error)
	Get(ctx context.Context, id uint) (*models.Item, error)
	Create(ctx context.Context, ownerID uint, item *models.Item) error
	Update(ctx context.Context, ownerID uint, item *models.Item) error
	Delete(ctx context.Context, ownerID, id uint) error
	AttachImage(ctx context.Context, ownerID, itemID uint, url, key string) (*models.ItemImage, error)
	RebuildGeoIndex(ctx context.Context) error
	RebuildSearchIndex(ctx context.Context) error
}
