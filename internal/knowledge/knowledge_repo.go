package knowledge

import (
	"context"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/slug"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=knowledge_repo.go -destination=mock/knowledge_repo_mock.go -package=mock
type Repository interface {
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	List(ctx context.Context) ([]Knowledge, error)
	FindBySlug(ctx context.Context, knowledgeSlug string) (*Knowledge, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Knowledge, error)
	UniqueSlug(ctx context.Context, base string, excludeID *uuid.UUID) (string, error)

	Create(ctx context.Context, k *Knowledge) error
	Save(ctx context.Context, k *Knowledge) error
	ReplaceDetails(ctx context.Context, knowledgeID uuid.UUID, details []Detail) error
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *repository) List(ctx context.Context) ([]Knowledge, error) {
	var list []Knowledge
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindBySlug(ctx context.Context, knowledgeSlug string) (*Knowledge, error) {
	var k Knowledge
	err := r.db.WithContext(ctx).
		Preload("Details", byCreatedAt).
		Preload("Details.Variants", byCreatedAt).
		Preload("Details.Variants.Items", byCreatedAt).
		Where("LOWER(slug) = ?", slug.Normalize(knowledgeSlug)).
		First(&k).Error
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Knowledge, error) {
	var k Knowledge
	if err := r.db.WithContext(ctx).First(&k, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *repository) UniqueSlug(ctx context.Context, base string, excludeID *uuid.UUID) (string, error) {
	var exclude any
	if excludeID != nil {
		exclude = *excludeID
	}
	return slug.UniqueInScope(ctx, r.db, "knowledges", base, nil, exclude)
}

// Create stores the row only; the tree goes through ReplaceDetails.
func (r *repository) Create(ctx context.Context, k *Knowledge) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(k).Error
}

func (r *repository) Save(ctx context.Context, k *Knowledge) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(k).Error
}

func (r *repository) deleteTree(db *gorm.DB, knowledgeID uuid.UUID) error {
	details := db.Model(&Detail{}).Select("id").Where("knowledge_id = ?", knowledgeID)
	variants := db.Model(&DetailVariant{}).Select("id").Where("knowledge_detail_id IN (?)", details)

	if err := db.Where("knowledge_detail_variant_id IN (?)", variants).Delete(&DetailVariantItem{}).Error; err != nil {
		return err
	}
	if err := db.Where("knowledge_detail_id IN (?)", details).Delete(&DetailVariant{}).Error; err != nil {
		return err
	}
	return db.Where("knowledge_id = ?", knowledgeID).Delete(&Detail{}).Error
}

// ReplaceDetails drops the current tree and inserts details depth-first, one
// row at a time, so created_at follows the submitted order at every level.
func (r *repository) ReplaceDetails(ctx context.Context, knowledgeID uuid.UUID, details []Detail) error {
	db := r.db.WithContext(ctx)
	if err := r.deleteTree(db, knowledgeID); err != nil {
		return err
	}

	for i := range details {
		d := &details[i]
		d.KnowledgeID = knowledgeID
		if err := db.Omit(clause.Associations).Create(d).Error; err != nil {
			return err
		}
		for j := range d.Variants {
			v := &d.Variants[j]
			v.DetailID = d.ID
			if err := db.Omit(clause.Associations).Create(v).Error; err != nil {
				return err
			}
			for k := range v.Items {
				v.Items[k].VariantID = v.ID
				if err := db.Create(&v.Items[k]).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := r.deleteTree(db, id); err != nil {
		return err
	}
	res := db.Delete(&Knowledge{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
