package training

import (
	"context"
	"strings"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/slug"
	trainingerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/training/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const cacheTrainingList = "quality-training-list"

//go:generate mockgen -source=training_service.go -destination=mock/training_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]QualityTraining, error)
	GetBySlug(ctx context.Context, trainingSlug string) (*QualityTraining, error)
	Create(ctx context.Context, req TrainingRequest) (*QualityTraining, error)
	Update(ctx context.Context, id string, req TrainingRequest) (*QualityTraining, error)
	Delete(ctx context.Context, id string) error
}

type Options struct {
	CacheTTL    time.Duration
	ReadTimeout time.Duration
}

type service struct {
	repo   Repository
	cache  *cache.Cache
	opts   Options
	logger *zap.Logger
}

func NewService(repo Repository, c *cache.Cache, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("training.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("training.service")
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = cache.DefaultTTL
	}
	return &service{repo: repo, cache: c, opts: opts, logger: l}
}

func (s *service) readCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.ReadTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.ReadTimeout)
}

func mapRepositoryError(err error) error {
	return apperror.FromStore(err, trainingerrors.ErrTrainingNotFound)
}

func (s *service) List(ctx context.Context) ([]QualityTraining, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	list, err := cache.Remember(ctx, s.cache, cacheTrainingList, nil, s.opts.CacheTTL,
		[]string{cache.TagQualityTraining},
		func(ctx context.Context) ([]QualityTraining, error) {
			return s.repo.List(ctx)
		})
	if err != nil {
		s.logger.Error("list quality training failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return list, nil
}

func (s *service) GetBySlug(ctx context.Context, trainingSlug string) (*QualityTraining, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	t, err := s.repo.FindBySlug(ctx, trainingSlug)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return t, nil
}

func toVariants(reqs []VariantRequest) []Variant {
	variants := make([]Variant, 0, len(reqs))
	for _, v := range reqs {
		details := make([]Detail, 0, len(v.Details))
		for _, d := range v.Details {
			subs := make([]Subdetail, 0, len(d.Subdetails))
			for _, sd := range d.Subdetails {
				subs = append(subs, Subdetail{Name: strings.TrimSpace(sd.Name), Description: sd.Description})
			}
			details = append(details, Detail{Name: strings.TrimSpace(d.Name), Description: d.Description, Subdetails: subs})
		}
		variants = append(variants, Variant{Name: strings.TrimSpace(v.Name), Description: v.Description, Details: details})
	}
	return variants
}

func (s *service) Create(ctx context.Context, req TrainingRequest) (*QualityTraining, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.FieldErrors{"title": {"Title is required"}}.Err()
	}

	var t QualityTraining
	err := s.repo.WithTx(ctx, func(repo Repository) error {
		sl, err := repo.UniqueSlug(ctx, slug.Slugify(title), nil)
		if err != nil {
			return err
		}
		t = QualityTraining{Title: title, Slug: sl, Description: req.Description}
		if err := repo.Create(ctx, &t); err != nil {
			return err
		}
		variants := toVariants(req.Variants)
		if err := repo.ReplaceVariants(ctx, t.ID, variants); err != nil {
			return err
		}
		t.Variants = variants
		return nil
	})
	if err != nil {
		s.logger.Error("create quality training failed", zap.String("title", title), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("create quality training success", zap.String("training_id", t.ID.String()))
	return &t, nil
}

func (s *service) Update(ctx context.Context, id string, req TrainingRequest) (*QualityTraining, error) {
	trainingID, err := uuid.Parse(id)
	if err != nil {
		return nil, trainingerrors.ErrInvalidID
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.FieldErrors{"title": {"Title is required"}}.Err()
	}

	var t *QualityTraining
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		t, err = repo.FindByID(ctx, trainingID)
		if err != nil {
			return err
		}
		if title != t.Title {
			sl, err := repo.UniqueSlug(ctx, slug.Slugify(title), &trainingID)
			if err != nil {
				return err
			}
			t.Slug = sl
		}
		t.Title = title
		t.Description = req.Description
		if err := repo.Save(ctx, t); err != nil {
			return err
		}
		variants := toVariants(req.Variants)
		if err := repo.ReplaceVariants(ctx, trainingID, variants); err != nil {
			return err
		}
		t.Variants = variants
		return nil
	})
	if err != nil {
		s.logger.Error("update quality training failed", zap.String("training_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	trainingID, err := uuid.Parse(id)
	if err != nil {
		return trainingerrors.ErrInvalidID
	}
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		return repo.Delete(ctx, trainingID)
	})
	if err != nil {
		s.logger.Error("delete quality training failed", zap.String("training_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}
