package sop

import (
	"context"
	"strings"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/contextutil"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/slug"
	soperrors "github.com/ccparagoncorp/customercare-web-sub001/internal/sop/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const cacheCategoryList = "sop-category-list"

//go:generate mockgen -source=sop_service.go -destination=mock/sop_service_mock.go -package=mock
type Service interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, categorySlug string) (*Category, error)
	GetSOP(ctx context.Context, categorySlug, sopSlug string) (*SOP, error)
	GetVariant(ctx context.Context, categorySlug, sopSlug, variantSlug string) (*Variant, error)

	CreateCategory(ctx context.Context, req CategoryRequest) (*Category, error)
	UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateSOP(ctx context.Context, req SOPRequest) (*SOP, error)
	UpdateSOP(ctx context.Context, id string, req SOPRequest) (*SOP, error)
	DeleteSOP(ctx context.Context, id string) error
	CreateVariant(ctx context.Context, req VariantRequest) (*Variant, error)
	UpdateVariant(ctx context.Context, id string, req VariantRequest) (*Variant, error)
	DeleteVariant(ctx context.Context, id string) error
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
	l := zap.L().Named("sop.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sop.service")
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

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	categories, err := cache.Remember(ctx, s.cache, cacheCategoryList, nil, s.opts.CacheTTL,
		[]string{cache.TagSOP},
		func(ctx context.Context) ([]Category, error) {
			return s.repo.ListCategories(ctx)
		})
	if err != nil {
		s.logger.Error("list sop categories failed", zap.Error(err))
		return nil, mapRepositoryError(err, soperrors.ErrCategoryNotFound)
	}
	return categories, nil
}

func (s *service) GetCategory(ctx context.Context, categorySlug string) (*Category, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	category, err := s.repo.FindCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, mapRepositoryError(err, soperrors.ErrCategoryNotFound)
	}
	return category, nil
}

func (s *service) GetSOP(ctx context.Context, categorySlug, sopSlug string) (*SOP, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	sop, err := s.repo.FindSOPBySlug(ctx, categorySlug, sopSlug)
	if err != nil {
		return nil, mapRepositoryError(err, soperrors.ErrSOPNotFound)
	}
	return sop, nil
}

func (s *service) GetVariant(ctx context.Context, categorySlug, sopSlug, variantSlug string) (*Variant, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	variant, err := s.repo.FindVariantBySlug(ctx, categorySlug, sopSlug, variantSlug)
	if err != nil {
		return nil, mapRepositoryError(err, soperrors.ErrVariantNotFound)
	}
	return variant, nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, soperrors.ErrInvalidID
	}
	return parsed, nil
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.FieldErrors{"name": {"Name is required"}}.Err()
	}
	return name, nil
}

func (s *service) CreateCategory(ctx context.Context, req CategoryRequest) (*Category, error) {
	rid := contextutil.GetRequestID(ctx)
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var category Category
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		sl, err := repo.UniqueSlug(ctx, "sop_categories", slug.Slugify(name), nil, nil)
		if err != nil {
			return err
		}
		category = Category{Name: name, Slug: sl, Description: req.Description}
		return repo.Create(ctx, &category)
	})
	if err != nil {
		s.logger.Error("create sop category failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err, soperrors.ErrCategoryNotFound)
	}

	s.logger.Info("create sop category success", zap.String("request_id", rid), zap.String("category_id", category.ID.String()))
	return &category, nil
}

func (s *service) UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*Category, error) {
	categoryID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var category *Category
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		category, err = repo.FindCategoryByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if name != category.Name {
			sl, err := repo.UniqueSlug(ctx, "sop_categories", slug.Slugify(name), nil, &categoryID)
			if err != nil {
				return err
			}
			category.Slug = sl
		}
		category.Name = name
		category.Description = req.Description
		return repo.Save(ctx, category)
	})
	if err != nil {
		s.logger.Error("update sop category failed", zap.String("category_id", id), zap.Error(err))
		return nil, mapRepositoryError(err, soperrors.ErrCategoryNotFound)
	}
	return category, nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	categoryID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, &Category{}, categoryID); err != nil {
		s.logger.Error("delete sop category failed", zap.String("category_id", id), zap.Error(err))
		return mapRepositoryError(err, soperrors.ErrCategoryNotFound)
	}
	return nil
}

func (s *service) CreateSOP(ctx context.Context, req SOPRequest) (*SOP, error) {
	categoryID, err := parseID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var sop SOP
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		ok, err := repo.Exists(ctx, "sop_categories", categoryID)
		if err != nil {
			return err
		}
		if !ok {
			return soperrors.ErrCategoryNotFound
		}
		sl, err := repo.UniqueSlug(ctx, "sops", slug.Slugify(name), slug.ByColumn("sop_category_id", categoryID), nil)
		if err != nil {
			return err
		}
		sop = SOP{CategoryID: categoryID, Name: name, Slug: sl, Description: req.Description}
		return repo.Create(ctx, &sop)
	})
	if err != nil {
		s.logger.Error("create sop failed", zap.String("category_id", req.CategoryID), zap.Error(err))
		return nil, mapRepositoryError(err, soperrors.ErrSOPNotFound)
	}

	s.logger.Info("create sop success", zap.String("sop_id", sop.ID.String()))
	return &sop, nil
}

func (s *service) UpdateSOP(ctx context.Context, id string, req SOPRequest) (*SOP, error) {
	sopID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var sop *SOP
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		sop, err = repo.FindSOPByID(ctx, sopID)
		if err != nil {
			return err
		}
		if categoryID != sop.CategoryID {
			ok, err := repo.Exists(ctx, "sop_categories", categoryID)
			if err != nil {
				return err
			}
			if !ok {
				return soperrors.ErrCategoryNotFound
			}
		}
		if name != sop.Name || categoryID != sop.CategoryID {
			sl, err := repo.UniqueSlug(ctx, "sops", slug.Slugify(name), slug.ByColumn("sop_category_id", categoryID), &sopID)
			if err != nil {
				return err
			}
			sop.Slug = sl
		}
		sop.CategoryID = categoryID
		sop.Name = name
		sop.Description = req.Description
		return repo.Save(ctx, sop)
	})
	if err != nil {
		s.logger.Error("update sop failed", zap.String("sop_id", id), zap.Error(err))
		return nil, mapRepositoryError(err, soperrors.ErrSOPNotFound)
	}
	return sop, nil
}

func (s *service) DeleteSOP(ctx context.Context, id string) error {
	sopID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, &SOP{}, sopID); err != nil {
		s.logger.Error("delete sop failed", zap.String("sop_id", id), zap.Error(err))
		return mapRepositoryError(err, soperrors.ErrSOPNotFound)
	}
	return nil
}

func toSteps(reqs []StepRequest) []Step {
	steps := make([]Step, 0, len(reqs))
	for _, st := range reqs {
		steps = append(steps, Step{Name: strings.TrimSpace(st.Name), Value: st.Value})
	}
	return steps
}

func (s *service) CreateVariant(ctx context.Context, req VariantRequest) (*Variant, error) {
	sopID, err := parseID(req.SOPID)
	if err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var variant Variant
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		ok, err := repo.Exists(ctx, "sops", sopID)
		if err != nil {
			return err
		}
		if !ok {
			return soperrors.ErrSOPNotFound
		}
		sl, err := repo.UniqueSlug(ctx, "sop_variants", slug.Slugify(name), slug.ByColumn("sop_id", sopID), nil)
		if err != nil {
			return err
		}
		variant = Variant{
			SOPID:   sopID,
			Name:    name,
			Slug:    sl,
			Content: req.Content,
			Images:  datatypes.JSONSlice[string](req.Images),
		}
		if err := repo.Create(ctx, &variant); err != nil {
			return err
		}
		steps := toSteps(req.Steps)
		if err := repo.ReplaceSteps(ctx, variant.ID, steps); err != nil {
			return err
		}
		variant.Steps = steps
		return nil
	})
	if err != nil {
		s.logger.Error("create sop variant failed", zap.String("sop_id", req.SOPID), zap.Error(err))
		return nil, mapRepositoryError(err, soperrors.ErrVariantNotFound)
	}

	s.logger.Info("create sop variant success", zap.String("variant_id", variant.ID.String()), zap.Int("steps", len(variant.Steps)))
	return &variant, nil
}

func (s *service) UpdateVariant(ctx context.Context, id string, req VariantRequest) (*Variant, error) {
	variantID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	sopID, err := parseID(req.SOPID)
	if err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var variant *Variant
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		variant, err = repo.FindVariantByID(ctx, variantID)
		if err != nil {
			return err
		}
		if sopID != variant.SOPID {
			ok, err := repo.Exists(ctx, "sops", sopID)
			if err != nil {
				return err
			}
			if !ok {
				return soperrors.ErrSOPNotFound
			}
		}
		if name != variant.Name || sopID != variant.SOPID {
			sl, err := repo.UniqueSlug(ctx, "sop_variants", slug.Slugify(name), slug.ByColumn("sop_id", sopID), &variantID)
			if err != nil {
				return err
			}
			variant.Slug = sl
		}
		variant.SOPID = sopID
		variant.Name = name
		variant.Content = req.Content
		variant.Images = datatypes.JSONSlice[string](req.Images)
		if err := repo.Save(ctx, variant); err != nil {
			return err
		}
		steps := toSteps(req.Steps)
		if err := repo.ReplaceSteps(ctx, variantID, steps); err != nil {
			return err
		}
		variant.Steps = steps
		return nil
	})
	if err != nil {
		s.logger.Error("update sop variant failed", zap.String("variant_id", id), zap.Error(err))
		return nil, mapRepositoryError(err, soperrors.ErrVariantNotFound)
	}

	s.logger.Info("update sop variant success", zap.String("variant_id", id))
	return variant, nil
}

func (s *service) DeleteVariant(ctx context.Context, id string) error {
	variantID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, &Variant{}, variantID); err != nil {
		s.logger.Error("delete sop variant failed", zap.String("variant_id", id), zap.Error(err))
		return mapRepositoryError(err, soperrors.ErrVariantNotFound)
	}
	return nil
}
