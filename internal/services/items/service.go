package items

import (
	"context"
	"net/url"

	"github.com/barterhub/barter-api/internal/models"
	"github.com/barterhub/barter-api/internal/query"
)

type Service struct {
	repo ItemRepository
}

// Ensure Service implements ItemService interface
var _ ItemService = (*Service)(nil)

func NewService(repo ItemRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(ctx context.Context, params query.SearchParams) ([]models.Item, query.PageMeta, error) {
	return s.repo.Search(ctx, params)
}

func (s *Service) List(ctx context.Context, values url.Values) ([]models.Item, query.PageMeta, error) {
	return s.repo.List(ctx, values)
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, ownerID uint, item *models.Item) error {
	item.OwnerID = ownerID
	return s.repo.Create(ctx, item)
}

// Update replaces the mutable fields of an existing item after checking
// ownership. The owner and identity fields of the stored record win over
// whatever the client sent.
func (s *Service) Update(ctx context.Context, ownerID uint, item *models.Item) error {
	existing, err := s.repo.GetByID(ctx, item.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrNotOwner
	}
	item.OwnerID = existing.OwnerID
	item.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, item)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uint) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) AttachImage(ctx context.Context, ownerID, itemID uint, url, key string) (*models.ItemImage, error) {
	existing, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	image := &models.ItemImage{ItemID: itemID, URL: url, Key: key}
	if err := s.repo.AddImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *Service) RebuildGeoIndex(ctx context.Context) error {
	return s.repo.EnsureGeoIndex(ctx)
}

func (s *Service) RebuildSearchIndex(ctx context.Context) error {
	return s.repo.EnsureSearchIndex(ctx)
}
