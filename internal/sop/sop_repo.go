package sop

import (
	"context"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/slug"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=sop_repo.go -destination=mock/sop_repo_mock.go -package=mock
type Repository interface {
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	ListCategories(ctx context.Context) ([]Category, error)
	FindCategoryBySlug(ctx context.Context, categorySlug string) (*Category, error)
	FindSOPBySlug(ctx context.Context, categorySlug, sopSlug string) (*SOP, error)
	FindVariantBySlug(ctx context.Context, categorySlug, sopSlug, variantSlug string) (*Variant, error)

	FindCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindSOPByID(ctx context.Context, id uuid.UUID) (*SOP, error)
	FindVariantByID(ctx context.Context, id uuid.UUID) (*Variant, error)
	Exists(ctx context.Context, table string, id uuid.UUID) (bool, error)
	UniqueSlug(ctx context.Context, table, base string, scope slug.Scope, excludeID *uuid.UUID) (string, error)

	Create(ctx context.Context, value any) error
	Save(ctx context.Context, value any) error
	Delete(ctx context.Context, model any, id uuid.UUID) error
	ReplaceSteps(ctx context.Context, variantID uuid.UUID, steps []Step) error
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

func (r *repository) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.WithContext(ctx).
		Select("sop_categories.*, (SELECT COUNT(*) FROM sops WHERE sops.sop_category_id = sop_categories.id) AS sop_count").
		Order("sop_categories.name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *repository) FindCategoryBySlug(ctx context.Context, categorySlug string) (*Category, error) {
	var category Category
	err := r.db.WithContext(ctx).
		Preload("SOPs", byCreatedAt).
		Where("LOWER(slug) = ?", slug.Normalize(categorySlug)).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	category.SOPCount = int64(len(category.SOPs))
	return &category, nil
}

func (r *repository) FindSOPBySlug(ctx context.Context, categorySlug, sopSlug string) (*SOP, error) {
	var s SOP
	err := r.db.WithContext(ctx).
		Select("sops.*").
		Joins("JOIN sop_categories ON sop_categories.id = sops.sop_category_id").
		Where("LOWER(sop_categories.slug) = ? AND LOWER(sops.slug) = ?",
			slug.Normalize(categorySlug), slug.Normalize(sopSlug)).
		Preload("Category").
		Preload("Variants", byCreatedAt).
		Preload("Variants.Steps", byCreatedAt).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindVariantBySlug(ctx context.Context, categorySlug, sopSlug, variantSlug string) (*Variant, error) {
	var v Variant
	err := r.db.WithContext(ctx).
		Select("sop_variants.*").
		Joins("JOIN sops ON sops.id = sop_variants.sop_id").
		Joins("JOIN sop_categories ON sop_categories.id = sops.sop_category_id").
		Where("LOWER(sop_categories.slug) = ? AND LOWER(sops.slug) = ? AND LOWER(sop_variants.slug) = ?",
			slug.Normalize(categorySlug), slug.Normalize(sopSlug), slug.Normalize(variantSlug)).
		Preload("SOP.Category").
		Preload("Steps", byCreatedAt).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) FindSOPByID(ctx context.Context, id uuid.UUID) (*SOP, error) {
	var s SOP
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindVariantByID(ctx context.Context, id uuid.UUID) (*Variant, error) {
	var v Variant
	err := r.db.WithContext(ctx).
		Preload("Steps", byCreatedAt).
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
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

func (r *repository) ReplaceSteps(ctx context.Context, variantID uuid.UUID, steps []Step) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("sop_variant_id = ?", variantID).Delete(&Step{}).Error; err != nil {
		return err
	}
	// one insert per step so created_at keeps the submitted order
	for i := range steps {
		steps[i].VariantID = variantID
		if err := db.Create(&steps[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
