package slug_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/slug"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sunsilk Shampoo", "sunsilk-shampoo"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Hair Care & Styling!", "hair-care-styling"},
		{"a -- b", "a-b"},
		{"---", ""},
		{"", ""},
		{"Crème Brûlée", "creme-brulee"},
		{"SKU_123 / 2024", "sku123-2024"},
		{"tab\tand\nnewline", "tab-and-newline"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Slugify(tc.in))
		})
	}
}

func TestSlugify_Properties(t *testing.T) {
	inputs := []string{
		"Wardah Lightening Series", "-edge-", "multi   space", "Ünïcödé Nâmé",
		"!!!", "100% Cotton - Extra", "a-b--c---d", strings.Repeat("long name ", 30),
		"emoji 🚀 rocket", "MiXeD-CaSe_With.Dots",
	}

	for _, in := range inputs {
		once := slug.Slugify(in)
		assert.Equal(t, once, slug.Slugify(once), "idempotent for %q", in)
		assert.False(t, strings.HasPrefix(once, "-"), "leading hyphen for %q", in)
		assert.False(t, strings.HasSuffix(once, "-"), "trailing hyphen for %q", in)
		assert.NotContains(t, once, "--", "double hyphen for %q", in)
		assert.LessOrEqual(t, len([]rune(once)), slug.MaxLen)
	}
}

func TestDeslugify(t *testing.T) {
	assert.Equal(t, "hair care", slug.Deslugify("hair-care"))
	// stripped punctuation cannot come back
	assert.Equal(t, "hair care styling", slug.Deslugify(slug.Slugify("Hair Care & Styling")))
}

type row struct {
	ID       uint `gorm:"primaryKey"`
	ParentID uint
	Slug     string
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Table("rows").AutoMigrate(&row{}))
	return db
}

func TestUniqueInScope(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	require.NoError(t, db.Table("rows").Create(&row{ID: 1, ParentID: 1, Slug: "shampoo"}).Error)
	require.NoError(t, db.Table("rows").Create(&row{ID: 2, ParentID: 1, Slug: "shampoo-2"}).Error)
	require.NoError(t, db.Table("rows").Create(&row{ID: 3, ParentID: 2, Slug: "shampoo"}).Error)

	t.Run("suffixes within the same parent", func(t *testing.T) {
		got, err := slug.UniqueInScope(ctx, db, "rows", "shampoo", slug.ByColumn("parent_id", 1), nil)
		require.NoError(t, err)
		assert.Equal(t, "shampoo-3", got)
	})

	t.Run("other parent scope is independent", func(t *testing.T) {
		got, err := slug.UniqueInScope(ctx, db, "rows", "conditioner", slug.ByColumn("parent_id", 2), nil)
		require.NoError(t, err)
		assert.Equal(t, "conditioner", got)
	})

	t.Run("update keeps its own slug", func(t *testing.T) {
		got, err := slug.UniqueInScope(ctx, db, "rows", "shampoo", slug.ByColumn("parent_id", 2), 3)
		require.NoError(t, err)
		assert.Equal(t, "shampoo", got)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got, err := slug.UniqueInScope(ctx, db, "rows", "SHAMPOO", slug.ByColumn("parent_id", 2), nil)
		require.NoError(t, err)
		assert.Equal(t, "SHAMPOO-2", got)
	})

	t.Run("empty base falls back", func(t *testing.T) {
		got, err := slug.UniqueInScope(ctx, db, "rows", "", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "item", got)
	})
}
