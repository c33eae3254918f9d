package catalog

import (
	"context"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/slug"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=catalog_repo.go -destination=mock/catalog_repo_mock.go -package=mock
type Repository interface {
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	ListBrands(ctx context.Context) ([]Brand, error)
	FindBrandBySlug(ctx context.Context, brandSlug string) (*Brand, error)
	FindCategoryBySlug(ctx context.Context, brandSlug, categorySlug string) (*Category, error)
	FindSubcategoryBySlug(ctx context.Context, brandSlug, categorySlug, subcategorySlug string) (*Subcategory, error)
	// FindProductByPath resolves a product through its ownership chain. An
	// empty subcategorySlug means the product hangs directly off the category.
	FindProductByPath(ctx context.Context, brandSlug, categorySlug, subcategorySlug, productSlug string) (*Product, error)

	FindBrandByID(ctx context.Context, id uuid.UUID) (*Brand, error)
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*Subcategory, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*Product, error)
	Exists(ctx context.Context, table string, id uuid.UUID) (bool, error)
	UniqueSlug(ctx context.Context, table, base string, scope slug.Scope, excludeID *uuid.UUID) (string, error)

	Create(ctx context.Context, value any) error
	Save(ctx context.Context, value any) error
	Delete(ctx context.Context, model any, id uuid.UUID) error
	ReplaceProductDetails(ctx context.Context, productID uuid.UUID, details []ProductDetail) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(ctx context.Context, fn func(repo Repository) error) error {
	return cache.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func byCreatedAt(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// productSummary keeps descendant products in list payloads to id/name/slug/status.
func productSummary(db *gorm.DB) *gorm.DB {
	return db.
		Select("id", "name", "slug", "status", "brand_id", "category_id", "subcategory_id", "created_at").
		Order("created_at ASC")
}

func (r *repository) ListBrands(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	err := r.db.WithContext(ctx).
		Preload("Categories", byCreatedAt).
		Preload("Categories.Subcategories", byCreatedAt).
		Preload("Categories.Subcategories.Products", productSummary).
		Preload("Categories.Products", productSummary).
		Preload("Products", productSummary).
		Order("name ASC").
		Find(&brands).Error
	return brands, err
}

func (r *repository) FindBrandBySlug(ctx context.Context, brandSlug string) (*Brand, error) {
	var brand Brand
	err := r.db.WithContext(ctx).
		Preload("Categories", byCreatedAt).
		Preload("Categories.Subcategories", byCreatedAt).
		Preload("Categories.Subcategories.Products", byCreatedAt).
		Preload("Categories.Products", byCreatedAt).
		Preload("Products", byCreatedAt).
		Where("LOWER(slug) = ?", slug.Normalize(brandSlug)).
		First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *repository) FindCategoryBySlug(ctx context.Context, brandSlug, categorySlug string) (*Category, error) {
	var category Category
	err := r.db.WithContext(ctx).
		Select("categories.*").
		Joins("JOIN brands ON brands.id = categories.brand_id").
		Where("LOWER(brands.slug) = ? AND LOWER(categories.slug) = ?",
			slug.Normalize(brandSlug), slug.Normalize(categorySlug)).
		Preload("Brand").
		Preload("Subcategories", byCreatedAt).
		Preload("Subcategories.Products", byCreatedAt).
		Preload("Products", byCreatedAt).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) FindSubcategoryBySlug(ctx context.Context, brandSlug, categorySlug, subcategorySlug string) (*Subcategory, error) {
	var sub Subcategory
	err := r.db.WithContext(ctx).
		Select("subcategories.*").
		Joins("JOIN categories ON categories.id = subcategories.category_id").
		Joins("JOIN brands ON brands.id = categories.brand_id").
		Where("LOWER(brands.slug) = ? AND LOWER(categories.slug) = ? AND LOWER(subcategories.slug) = ?",
			slug.Normalize(brandSlug), slug.Normalize(categorySlug), slug.Normalize(subcategorySlug)).
		Preload("Category.Brand").
		Preload("Products", byCreatedAt).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repository) FindProductByPath(ctx context.Context, brandSlug, categorySlug, subcategorySlug, productSlug string) (*Product, error) {
	q := r.db.WithContext(ctx).Select("products.*")

	if subcategorySlug != "" {
		q = q.
			Joins("JOIN subcategories ON subcategories.id = products.subcategory_id").
			Joins("JOIN categories ON categories.id = subcategories.category_id").
			Joins("JOIN brands ON brands.id = categories.brand_id").
			Where("LOWER(subcategories.slug) = ?", slug.Normalize(subcategorySlug)).
			Preload("Subcategory.Category.Brand")
	} else {
		q = q.
			Joins("JOIN categories ON categories.id = products.category_id").
			Joins("JOIN brands ON brands.id = categories.brand_id").
			Preload("Category.Brand")
	}

	var product Product
	err := q.
		Where("LOWER(products.slug) = ? AND LOWER(categories.slug) = ? AND LOWER(brands.slug) = ?",
			slug.Normalize(productSlug), slug.Normalize(categorySlug), slug.Normalize(brandSlug)).
		Preload("Details", byCreatedAt).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) FindBrandByID(ctx context.Context, id uuid.UUID) (*Brand, error) {
	var brand Brand
	if err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *repository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*Subcategory, error) {
	var sub Subcategory
	if err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repository) FindProductByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).
		Preload("Details", byCreatedAt).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) Exists(ctx context.Context, table string, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) UniqueSlug(ctx context.Context, table, base string, scope slug.Scope, excludeID *uuid.UUID) (string, error) {
	var exclude any
	if excludeID != nil {
		exclude = *excludeID
	}
	return slug.UniqueInScope(ctx, r.db, table, base, scope, exclude)
}

func (r *repository) Create(ctx context.Context, value any) error {
	return r.db.WithContext(ctx).Create(value).Error
}

// Save updates the row only; child collections are written separately.
func (r *repository) Save(ctx context.Context, value any) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(value).Error
}

func (r *repository) Delete(ctx context.Context, model any, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(model, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ReplaceProductDetails(ctx context.Context, productID uuid.UUID, details []ProductDetail) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("product_id = ?", productID).Delete(&ProductDetail{}).Error; err != nil {
		return err
	}
	// row by row: a batch insert stamps every row with the same created_at
	for i := range details {
		details[i].ProductID = productID
		if err := db.Create(&details[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
