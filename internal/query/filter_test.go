package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/barterhub/barter-api/internal/models"
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

func seedItem(t *testing.T, db *gorm.DB, item *models.Item) *models.Item {
	t.Helper()
	if item.OwnerID == 0 {
		item.OwnerID = 1
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func itemCols() Columns {
	return NewColumns(models.ItemFilterColumns...)
}

func countWith(t *testing.T, db *gorm.DB, f *Filter) int64 {
	t.Helper()
	var total int64
	require.NoError(t, f.Apply(db.Model(&models.Item{})).Count(&total).Error)
	return total
}

func TestCompile_EqualityAndReservedKeys(t *testing.T) {
	db := setupTestDB(t)
	seedItem(t, db, &models.Item{Title: "Bike", Category: "sports", IsAvailable: true})
	seedItem(t, db, &models.Item{Title: "Book", Category: "media", IsAvailable: true})

	values := url.Values{
		"category": {"sports"},
		// Reserved keys must be stripped, not treated as entity filters.
		"select": {"title"},
		"sort":   {"-created_at"},
		"page":   {"1"},
		"limit":  {"10"},
	}

	f := Compile(values, itemCols())
	assert.Equal(t, 1, f.Len())
	assert.EqualValues(t, 1, countWith(t, db, f))
}

func TestCompile_ComparatorRewrite(t *testing.T) {
	db := setupTestDB(t)
	old := seedItem(t, db, &models.Item{Title: "Old"})
	old.CreatedAt = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Save(old).Error)
	newer := seedItem(t, db, &models.Item{Title: "New"})
	newer.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Save(newer).Error)

	tests := []struct {
		name string
		key  string
		val  string
		want int64
	}{
		{name: "gt", key: "created_at[gt]", val: "2024-01-01", want: 1},
		{name: "gte", key: "created_at[gte]", val: "2023-01-01", want: 2},
		{name: "lt", key: "created_at[lt]", val: "2024-01-01", want: 1},
		{name: "lte", key: "created_at[lte]", val: "2022-01-01", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Compile(url.Values{tt.key: {tt.val}}, itemCols())
			assert.Equal(t, tt.want, countWith(t, db, f))
		})
	}
}

func TestCompile_InMembership(t *testing.T) {
	db := setupTestDB(t)
	seedItem(t, db, &models.Item{Title: "Bike", Category: "sports"})
	seedItem(t, db, &models.Item{Title: "Book", Category: "media"})
	seedItem(t, db, &models.Item{Title: "Lamp", Category: "home"})

	t.Run("comma separated in token", func(t *testing.T) {
		f := Compile(url.Values{"category[in]": {"sports,media"}}, itemCols())
		assert.EqualValues(t, 2, countWith(t, db, f))
	})

	t.Run("repeated key becomes membership", func(t *testing.T) {
		f := Compile(url.Values{"category": {"sports", "home"}}, itemCols())
		assert.EqualValues(t, 2, countWith(t, db, f))
	})
}

func TestCompile_UnknownFieldMatchesNothing(t *testing.T) {
	db := setupTestDB(t)
	seedItem(t, db, &models.Item{Title: "Bike"})

	// Filters on fields the collection does not declare return zero
	// matches, they do not error.
	f := Compile(url.Values{"warranty": {"lifetime"}}, itemCols())
	assert.EqualValues(t, 0, countWith(t, db, f))

	t.Run("unknown comparator token", func(t *testing.T) {
		f := Compile(url.Values{"title[near]": {"Bike"}}, itemCols())
		assert.EqualValues(t, 0, countWith(t, db, f))
	})

	t.Run("hostile key is inert", func(t *testing.T) {
		f := Compile(url.Values{"title; DROP TABLE items--": {"x"}}, itemCols())
		assert.EqualValues(t, 0, countWith(t, db, f))
	})
}

func TestSelectedColumns(t *testing.T) {
	values := url.Values{"select": {"title, category, password_hash"}}
	got := SelectedColumns(values, itemCols())
	assert.Equal(t, []string{"title", "category"}, got)

	assert.Nil(t, SelectedColumns(url.Values{}, itemCols()))
}

func TestFilter_AndNilIsNoop(t *testing.T) {
	f := NewFilter().And(nil).And(Eq{Column: "category", Value: "sports"})
	assert.Equal(t, 1, f.Len())
}
