package knowledge

import (
	"context"
	"strings"
	"time"

	knowledgeerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/knowledge/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/contextutil"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const cacheKnowledgeList = "knowledge-list"

//go:generate mockgen -source=knowledge_service.go -destination=mock/knowledge_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]Knowledge, error)
	GetBySlug(ctx context.Context, knowledgeSlug string) (*Knowledge, error)
	Create(ctx context.Context, req KnowledgeRequest) (*Knowledge, error)
	Update(ctx context.Context, id string, req KnowledgeRequest) (*Knowledge, error)
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
	l := zap.L().Named("knowledge.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("knowledge.service")
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

func (s *service) List(ctx context.Context) ([]Knowledge, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	list, err := cache.Remember(ctx, s.cache, cacheKnowledgeList, nil, s.opts.CacheTTL,
		[]string{cache.TagKnowledge},
		func(ctx context.Context) ([]Knowledge, error) {
			return s.repo.List(ctx)
		})
	if err != nil {
		s.logger.Error("list knowledge failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return list, nil
}

func (s *service) GetBySlug(ctx context.Context, knowledgeSlug string) (*Knowledge, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	k, err := s.repo.FindBySlug(ctx, knowledgeSlug)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return k, nil
}

func toDetails(reqs []DetailRequest) []Detail {
	details := make([]Detail, 0, len(reqs))
	for _, d := range reqs {
		variants := make([]DetailVariant, 0, len(d.Variants))
		for _, v := range d.Variants {
			items := make([]DetailVariantItem, 0, len(v.Items))
			for _, it := range v.Items {
				items = append(items, DetailVariantItem{
					Name:        strings.TrimSpace(it.Name),
					Description: it.Description,
					Images:      datatypes.JSONSlice[string](it.Images),
				})
			}
			variants = append(variants, DetailVariant{
				Name:        strings.TrimSpace(v.Name),
				Description: v.Description,
				Images:      datatypes.JSONSlice[string](v.Images),
				Items:       items,
			})
		}
		details = append(details, Detail{
			Name:        strings.TrimSpace(d.Name),
			Description: d.Description,
			Images:      datatypes.JSONSlice[string](d.Images),
			Variants:    variants,
		})
	}
	return details
}

func requireTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperror.FieldErrors{"title": {"Title is required"}}.Err()
	}
	return title, nil
}

func (s *service) Create(ctx context.Context, req KnowledgeRequest) (*Knowledge, error) {
	meta := contextutil.ExtractMetadata(ctx)
	title, err := requireTitle(req.Title)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("create knowledge requested", zap.String("request_id", meta.RequestID), zap.String("title", title))

	var k Knowledge
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		sl, err := repo.UniqueSlug(ctx, slug.Slugify(title), nil)
		if err != nil {
			return err
		}
		k = Knowledge{
			Title:       title,
			Slug:        sl,
			Description: req.Description,
			Images:      datatypes.JSONSlice[string](req.Images),
			UpdateNotes: req.UpdateNotes,
			CreatedBy:   meta.UserID,
			UpdatedBy:   meta.UserID,
		}
		if err := repo.Create(ctx, &k); err != nil {
			return err
		}
		details := toDetails(req.Details)
		if err := repo.ReplaceDetails(ctx, k.ID, details); err != nil {
			return err
		}
		k.Details = details
		return nil
	})
	if err != nil {
		s.logger.Error("create knowledge failed", zap.String("request_id", meta.RequestID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("create knowledge success", zap.String("request_id", meta.RequestID), zap.String("knowledge_id", k.ID.String()))
	return &k, nil
}

func (s *service) Update(ctx context.Context, id string, req KnowledgeRequest) (*Knowledge, error) {
	knowledgeID, err := uuid.Parse(id)
	if err != nil {
		return nil, knowledgeerrors.ErrInvalidID
	}
	title, err := requireTitle(req.Title)
	if err != nil {
		return nil, err
	}
	userID := contextutil.GetUserID(ctx)

	var k *Knowledge
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		k, err = repo.FindByID(ctx, knowledgeID)
		if err != nil {
			return err
		}
		if title != k.Title {
			sl, err := repo.UniqueSlug(ctx, slug.Slugify(title), &knowledgeID)
			if err != nil {
				return err
			}
			k.Slug = sl
		}
		k.Title = title
		k.Description = req.Description
		k.Images = datatypes.JSONSlice[string](req.Images)
		k.UpdateNotes = req.UpdateNotes
		k.UpdatedBy = userID
		if err := repo.Save(ctx, k); err != nil {
			return err
		}
		details := toDetails(req.Details)
		if err := repo.ReplaceDetails(ctx, knowledgeID, details); err != nil {
			return err
		}
		k.Details = details
		return nil
	})
	if err != nil {
		s.logger.Error("update knowledge failed", zap.String("knowledge_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("update knowledge success", zap.String("knowledge_id", id), zap.String("updated_by", userID))
	return k, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	knowledgeID, err := uuid.Parse(id)
	if err != nil {
		return knowledgeerrors.ErrInvalidID
	}
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		return repo.Delete(ctx, knowledgeID)
	})
	if err != nil {
		s.logger.Error("delete knowledge failed", zap.String("knowledge_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}
