package catalog_test

import (
	"context"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/catalog"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type catalogFixture struct {
	brand       catalog.Brand
	category    catalog.Category
	subcategory catalog.Subcategory
	subProduct  catalog.Product
	catProduct  catalog.Product
}

func seedCatalog(t *testing.T, db *gorm.DB) catalogFixture {
	t.Helper()

	var f catalogFixture
	f.brand = catalog.Brand{Name: "Wardah", Slug: "wardah"}
	require.NoError(t, db.Create(&f.brand).Error)

	f.category = catalog.Category{BrandID: f.brand.ID, Name: "Skincare", Slug: "skincare"}
	require.NoError(t, db.Create(&f.category).Error)

	f.subcategory = catalog.Subcategory{CategoryID: f.category.ID, Name: "Serum", Slug: "serum"}
	require.NoError(t, db.Create(&f.subcategory).Error)

	f.subProduct = catalog.Product{
		Name:          "Crystal Secret Serum",
		Slug:          "crystal-secret-serum",
		Status:        catalog.StatusActive,
		SubcategoryID: &f.subcategory.ID,
		Details: []catalog.ProductDetail{
			{Name: "Ingredients", Detail: "Niacinamide"},
			{Name: "Usage", Detail: "Twice daily"},
		},
	}
	require.NoError(t, db.Create(&f.subProduct).Error)

	f.catProduct = catalog.Product{
		Name:       "Sunscreen Gel",
		Slug:       "sunscreen-gel",
		Status:     catalog.StatusNew,
		CategoryID: &f.category.ID,
	}
	require.NoError(t, db.Create(&f.catProduct).Error)

	return f
}

func TestRepository_FindProductByPath(t *testing.T) {
	db := testdb.Open(t, catalog.Models()...)
	f := seedCatalog(t, db)
	repo := catalog.NewRepository(db)
	ctx := context.Background()

	t.Run("through subcategory", func(t *testing.T) {
		p, err := repo.FindProductByPath(ctx, "Wardah", "skincare", "SERUM", "crystal-secret-serum")
		require.NoError(t, err)
		assert.Equal(t, f.subProduct.ID, p.ID)
		require.NotNil(t, p.Subcategory)
		require.NotNil(t, p.Subcategory.Category)
		require.NotNil(t, p.Subcategory.Category.Brand)
		assert.Equal(t, "Wardah", p.Subcategory.Category.Brand.Name)
		require.Len(t, p.Details, 2)
		assert.ElementsMatch(t, []string{"Ingredients", "Usage"}, []string{p.Details[0].Name, p.Details[1].Name})
	})

	t.Run("directly under category", func(t *testing.T) {
		p, err := repo.FindProductByPath(ctx, "wardah", "skincare", "", "sunscreen-gel")
		require.NoError(t, err)
		assert.Equal(t, f.catProduct.ID, p.ID)
		require.NotNil(t, p.Category)
		assert.Equal(t, "Skincare", p.Category.Name)
	})

	t.Run("ancestor mismatch", func(t *testing.T) {
		_, err := repo.FindProductByPath(ctx, "other-brand", "skincare", "serum", "crystal-secret-serum")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("subcategory product is not category direct", func(t *testing.T) {
		_, err := repo.FindProductByPath(ctx, "wardah", "skincare", "", "crystal-secret-serum")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestRepository_Reads(t *testing.T) {
	db := testdb.Open(t, catalog.Models()...)
	f := seedCatalog(t, db)
	repo := catalog.NewRepository(db)
	ctx := context.Background()

	brands, err := repo.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 1)
	require.Len(t, brands[0].Categories, 1)
	require.Len(t, brands[0].Categories[0].Subcategories, 1)
	require.Len(t, brands[0].Categories[0].Subcategories[0].Products, 1)
	summary := brands[0].Categories[0].Subcategories[0].Products[0]
	assert.Equal(t, "crystal-secret-serum", summary.Slug)
	assert.Empty(t, summary.Description)
	require.Len(t, brands[0].Categories[0].Products, 1)

	brand, err := repo.FindBrandBySlug(ctx, "WARDAH")
	require.NoError(t, err)
	assert.Equal(t, f.brand.ID, brand.ID)

	category, err := repo.FindCategoryBySlug(ctx, "wardah", "Skincare")
	require.NoError(t, err)
	assert.Equal(t, f.category.ID, category.ID)
	require.NotNil(t, category.Brand)

	_, err = repo.FindCategoryBySlug(ctx, "nope", "skincare")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	sub, err := repo.FindSubcategoryBySlug(ctx, "wardah", "skincare", "serum")
	require.NoError(t, err)
	assert.Equal(t, f.subcategory.ID, sub.ID)
	require.Len(t, sub.Products, 1)
}

func TestRepository_ReplaceProductDetails(t *testing.T) {
	db := testdb.Open(t, catalog.Models()...)
	f := seedCatalog(t, db)
	repo := catalog.NewRepository(db)
	ctx := context.Background()

	err := repo.ReplaceProductDetails(ctx, f.subProduct.ID, []catalog.ProductDetail{{Name: "Size", Detail: "30ml"}})
	require.NoError(t, err)

	p, err := repo.FindProductByID(ctx, f.subProduct.ID)
	require.NoError(t, err)
	require.Len(t, p.Details, 1)
	assert.Equal(t, "Size", p.Details[0].Name)
}

func TestRepository_ReplaceProductDetails_KeepsOrder(t *testing.T) {
	db := testdb.Open(t, catalog.Models()...)
	f := seedCatalog(t, db)
	repo := catalog.NewRepository(db)
	ctx := context.Background()

	names := []string{"Size", "Shade", "Finish", "Texture", "Scent", "Usage"}
	details := make([]catalog.ProductDetail, len(names))
	for i, n := range names {
		details[i] = catalog.ProductDetail{Name: n, Detail: "-"}
	}
	require.NoError(t, repo.ReplaceProductDetails(ctx, f.subProduct.ID, details))

	p, err := repo.FindProductByID(ctx, f.subProduct.ID)
	require.NoError(t, err)
	require.Len(t, p.Details, len(names))

	got := make([]string, len(p.Details))
	for i, d := range p.Details {
		got[i] = d.Name
	}
	assert.Equal(t, names, got)
	for i := 1; i < len(p.Details); i++ {
		assert.True(t, p.Details[i].CreatedAt.After(p.Details[i-1].CreatedAt), "created_at must grow per row")
	}
}
