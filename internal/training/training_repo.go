package training

import (
	"context"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/slug"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=training_repo.go -destination=mock/training_repo_mock.go -package=mock
type Repository interface {
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	List(ctx context.Context) ([]QualityTraining, error)
	FindBySlug(ctx context.Context, trainingSlug string) (*QualityTraining, error)
	FindByID(ctx context.Context, id uuid.UUID) (*QualityTraining, error)
	UniqueSlug(ctx context.Context, base string, excludeID *uuid.UUID) (string, error)

	Create(ctx context.Context, t *QualityTraining) error
	Save(ctx context.Context, t *QualityTraining) error
	ReplaceVariants(ctx context.Context, trainingID uuid.UUID, variants []Variant) error
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

func oldestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func (r *repository) List(ctx context.Context) ([]QualityTraining, error) {
	var list []QualityTraining
	err := r.db.WithContext(ctx).Order("title ASC").Find(&list).Error
	return list, err
}

func (r *repository) FindBySlug(ctx context.Context, trainingSlug string) (*QualityTraining, error) {
	var t QualityTraining
	err := r.db.WithContext(ctx).
		Preload("Variants", oldestFirst).
		Preload("Variants.Details", oldestFirst).
		Preload("Variants.Details.Subdetails", oldestFirst).
		Where("LOWER(slug) = ?", slug.Normalize(trainingSlug)).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*QualityTraining, error) {
	var t QualityTraining
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) UniqueSlug(ctx context.Context, base string, excludeID *uuid.UUID) (string, error) {
	var exclude any
	if excludeID != nil {
		exclude = *excludeID
	}
	return slug.UniqueInScope(ctx, r.db, "quality_trainings", base, nil, exclude)
}

func (r *repository) Create(ctx context.Context, t *QualityTraining) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(t).Error
}

func (r *repository) Save(ctx context.Context, t *QualityTraining) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(t).Error
}

func clearTree(db *gorm.DB, trainingID uuid.UUID) error {
	variants := db.Model(&Variant{}).Select("id").Where("quality_training_id = ?", trainingID)
	details := db.Model(&Detail{}).Select("id").Where("quality_training_variant_id IN (?)", variants)

	if err := db.Where("quality_training_detail_id IN (?)", details).Delete(&Subdetail{}).Error; err != nil {
		return err
	}
	if err := db.Where("quality_training_variant_id IN (?)", variants).Delete(&Detail{}).Error; err != nil {
		return err
	}
	return db.Where("quality_training_id = ?", trainingID).Delete(&Variant{}).Error
}

// ReplaceVariants rewrites the whole tree under a training, preserving the
// submitted order through created_at.
func (r *repository) ReplaceVariants(ctx context.Context, trainingID uuid.UUID, variants []Variant) error {
	db := r.db.WithContext(ctx)
	if err := clearTree(db, trainingID); err != nil {
		return err
	}

	for i := range variants {
		v := &variants[i]
		v.TrainingID = trainingID
		if err := db.Omit(clause.Associations).Create(v).Error; err != nil {
			return err
		}
		for j := range v.Details {
			d := &v.Details[j]
			d.VariantID = v.ID
			if err := db.Omit(clause.Associations).Create(d).Error; err != nil {
				return err
			}
			for k := range d.Subdetails {
				d.Subdetails[k].DetailID = d.ID
				if err := db.Create(&d.Subdetails[k]).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := clearTree(db, id); err != nil {
		return err
	}
	res := db.Delete(&QualityTraining{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
