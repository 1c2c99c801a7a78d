package items

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/barterhub/barter-api/internal/models"
	"github.com/barterhub/barter-api/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Item{}, &models.ItemImage{})
	require.NoError(t, err)

	return db
}

func seedOwner(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	owner := &models.User{
		DisplayName:  "Ada",
		Email:        "ada@example.com",
		PasswordHash: "not-a-real-hash",
		Location:     "Madrid",
	}
	require.NoError(t, db.Create(owner).Error)
	return owner
}

func f64(v float64) *float64 { return &v }

func TestRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	owner := seedOwner(t, db)

	item := &models.Item{
		Title:       "Mountain Bike",
		Description: "Hardtail, barely used",
		Category:    "sports",
		Condition:   models.ConditionGood,
		Location:    "Madrid",
		IsAvailable: true,
		OwnerID:     owner.ID,
	}
	require.NoError(t, repo.Create(context.Background(), item))
	assert.NotZero(t, item.ID)

	got, err := repo.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mountain Bike", got.Title)
	require.NotNil(t, got.Owner)
	assert.Equal(t, "Ada", got.Owner.DisplayName)
	assert.Empty(t, got.Owner.PasswordHash)
	assert.Empty(t, got.Owner.Email)

	_, err = repo.GetByID(context.Background(), 99999)
	assert.True(t, IsNotFound(err))
}

func TestRepository_SearchPinsAvailability(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	owner := seedOwner(t, db)

	require.NoError(t, repo.Create(context.Background(), &models.Item{
		Title: "Visible", IsAvailable: true, OwnerID: owner.ID,
	}))
	withdrawn := &models.Item{Title: "Withdrawn", OwnerID: owner.ID}
	require.NoError(t, repo.Create(context.Background(), withdrawn))
	require.NoError(t, db.Model(withdrawn).Update("is_available", false).Error)

	items, meta, err := repo.Search(context.Background(), query.ParseSearchParams(url.Values{}, 100))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Visible", items[0].Title)
	assert.EqualValues(t, 1, meta.Total)
}

func TestRepository_SearchScenario_RecentPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	owner := seedOwner(t, db)

	bike := &models.Item{Title: "Bike", IsAvailable: true, OwnerID: owner.ID}
	require.NoError(t, repo.Create(context.Background(), bike))
	bike.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Save(bike).Error)

	book := &models.Item{Title: "Book", IsAvailable: true, OwnerID: owner.ID}
	require.NoError(t, repo.Create(context.Background(), book))
	book.CreatedAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Save(book).Error)

	params := query.ParseSearchParams(url.Values{
		"sort":  {"recent"},
		"page":  {"1"},
		"limit": {"1"},
	}, 100)

	items, meta, err := repo.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Book", items[0].Title)
	assert.EqualValues(t, 2, meta.Total)
	require.NotNil(t, meta.Next)
	assert.Equal(t, query.PageRef{Page: 2, Limit: 1}, *meta.Next)
	assert.Nil(t, meta.Prev)
}

func TestRepository_SearchFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	owner := seedOwner(t, db)

	seed := []models.Item{
		{Title: "Bike", Category: "sports", Condition: models.ConditionGood, Location: "Madrid Centro", IsAvailable: true, OwnerID: owner.ID},
		{Title: "Book", Category: "media", Condition: models.ConditionLikeNew, Location: "Barcelona", IsAvailable: true, OwnerID: owner.ID},
		{Title: "Tent", Category: "sports", Condition: models.ConditionFair, Location: "Valencia", IsAvailable: true, OwnerID: owner.ID},
	}
	for i := range seed {
		require.NoError(t, repo.Create(context.Background(), &seed[i]))
	}

	search := func(params url.Values) []models.Item {
		items, _, err := repo.Search(context.Background(), query.ParseSearchParams(params, 100))
		require.NoError(t, err)
		return items
	}

	t.Run("category", func(t *testing.T) {
		items := search(url.Values{"category": {"sports"}})
		assert.Len(t, items, 2)
	})

	t.Run("condition", func(t *testing.T) {
		items := search(url.Values{"condition": {"like-new"}})
		require.Len(t, items, 1)
		assert.Equal(t, "Book", items[0].Title)
	})

	t.Run("location substring", func(t *testing.T) {
		items := search(url.Values{"location": {"madrid"}})
		require.Len(t, items, 1)
		assert.Equal(t, "Bike", items[0].Title)
	})

	t.Run("free text over title and description", func(t *testing.T) {
		items := search(url.Values{"q": {"bike"}})
		require.Len(t, items, 1)
		assert.Equal(t, "Bike", items[0].Title)
	})

	t.Run("zero category matches is empty success", func(t *testing.T) {
		items, meta, err := repo.Search(context.Background(),
			query.ParseSearchParams(url.Values{"category": {"electronics"}}, 100))
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.EqualValues(t, 0, meta.Total)
		assert.Equal(t, 1, meta.Pages)
		assert.Nil(t, meta.Next)
		assert.Nil(t, meta.Prev)
	})
}

func TestRepository_GeoCapabilityLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	owner := seedOwner(t, db)

	near := &models.Item{Title: "Near", IsAvailable: true, OwnerID: owner.ID, Latitude: f64(40.4268), Longitude: f64(-3.7038)}
	far := &models.Item{Title: "Far", IsAvailable: true, OwnerID: owner.ID, Latitude: f64(41.3874), Longitude: f64(2.1686)}
	require.NoError(t, repo.Create(context.Background(), near))
	require.NoError(t, repo.Create(context.Background(), far))

	geoQuery := url.Values{"lat": {"40.4168"}, "lng": {"-3.7038"}, "distance": {"5"}}

	// Before the index exists the schema declares no geo capability, so
	// the coordinate parameters are silently ignored.
	assert.False(t, repo.Capabilities().HasGeoIndex)
	items, _, err := repo.Search(context.Background(), query.ParseSearchParams(geoQuery, 100))
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, repo.EnsureGeoIndex(context.Background()))
	assert.True(t, repo.Capabilities().HasGeoIndex)

	// Idempotent: re-running the maintenance operation is safe.
	require.NoError(t, repo.EnsureGeoIndex(context.Background()))

	items, _, err = repo.Search(context.Background(), query.ParseSearchParams(geoQuery, 100))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Near", items[0].Title)
}

func TestRepository_ConcurrentRebuildAndSearch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	owner := seedOwner(t, db)
	require.NoError(t, repo.Create(context.Background(), &models.Item{Title: "Bike", IsAvailable: true, OwnerID: owner.ID}))

	// Searches keep running while an admin rebuilds the geo index. The
	// race detector verifies the capability snapshot is safely shared.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.EnsureGeoIndex(context.Background())
		}()
		go func() {
			defer wg.Done()
			_, _, _ = repo.Search(context.Background(), query.ParseSearchParams(url.Values{"q": {"bike"}}, 100))
		}()
	}
	wg.Wait()

	assert.True(t, repo.Capabilities().HasGeoIndex)
}

func TestRepository_NearestSort(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	owner := seedOwner(t, db)
	require.NoError(t, repo.EnsureGeoIndex(context.Background()))

	farther := &models.Item{Title: "Farther", IsAvailable: true, OwnerID: owner.ID, Latitude: f64(40.47), Longitude: f64(-3.70)}
	closest := &models.Item{Title: "Closest", IsAvailable: true, OwnerID: owner.ID, Latitude: f64(40.4170), Longitude: f64(-3.7040)}
	require.NoError(t, repo.Create(context.Background(), farther))
	require.NoError(t, repo.Create(context.Background(), closest))

	items, _, err := repo.Search(context.Background(), query.ParseSearchParams(url.Values{
		"lat": {"40.4168"}, "lng": {"-3.7038"}, "distance": {"10"}, "sort": {"nearest"},
	}, 100))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Closest", items[0].Title)
	assert.Equal(t, "Farther", items[1].Title)
}

func TestRepository_GenericList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db, WithMaxPageSize(50))
	owner := seedOwner(t, db)

	for _, item := range []models.Item{
		{Title: "Bike", Category: "sports", IsAvailable: true, OwnerID: owner.ID},
		{Title: "Book", Category: "media", IsAvailable: true, OwnerID: owner.ID},
		{Title: "Tent", Category: "sports", IsAvailable: false, OwnerID: owner.ID},
	} {
		it := item
		require.NoError(t, repo.Create(context.Background(), &it))
	}

	t.Run("filter plus sort", func(t *testing.T) {
		items, meta, err := repo.List(context.Background(), url.Values{
			"category": {"sports"},
			"sort":     {"title"},
		})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Bike", items[0].Title)
		assert.Equal(t, "Tent", items[1].Title)
		assert.EqualValues(t, 2, meta.Total)
		assert.Equal(t, query.DefaultListPageSize, meta.Limit)
	})

	t.Run("select projection", func(t *testing.T) {
		items, _, err := repo.List(context.Background(), url.Values{
			"select": {"id,title"},
		})
		require.NoError(t, err)
		require.Len(t, items, 3)
		for _, item := range items {
			assert.NotZero(t, item.ID)
			assert.NotEmpty(t, item.Title)
			assert.Empty(t, item.Category)
		}
	})

	t.Run("unknown filter key matches nothing", func(t *testing.T) {
		items, meta, err := repo.List(context.Background(), url.Values{
			"price": {"100"},
		})
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.EqualValues(t, 0, meta.Total)
	})
}
