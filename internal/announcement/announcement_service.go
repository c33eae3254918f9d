package announcement

import (
	"context"
	"strings"
	"time"

	announcementerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/announcement/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const cacheAnnouncementList = "announcement-list"

//go:generate mockgen -source=announcement_service.go -destination=mock/announcement_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]Announcement, error)
	GetByID(ctx context.Context, id string) (*Announcement, error)
	Create(ctx context.Context, req AnnouncementRequest) (*Announcement, error)
	Update(ctx context.Context, id string, req AnnouncementRequest) (*Announcement, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	cache    *cache.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewService(repo Repository, c *cache.Cache, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("announcement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("announcement.service")
	}
	return &service{repo: repo, cache: c, cacheTTL: cacheTTL, logger: l}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, announcementerrors.ErrInvalidID
	}
	return parsed, nil
}

func (s *service) List(ctx context.Context) ([]Announcement, error) {
	list, err := cache.Remember(ctx, s.cache, cacheAnnouncementList, nil, s.cacheTTL,
		[]string{cache.TagAnnouncements},
		func(ctx context.Context) ([]Announcement, error) {
			return s.repo.List(ctx)
		})
	if err != nil {
		s.logger.Error("list announcements failed", zap.Error(err))
		return nil, apperror.FromStore(err, announcementerrors.ErrAnnouncementNotFound)
	}
	return list, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Announcement, error) {
	announcementID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	a, err := s.repo.FindByID(ctx, announcementID)
	if err != nil {
		return nil, apperror.FromStore(err, announcementerrors.ErrAnnouncementNotFound)
	}
	return a, nil
}

func (s *service) Create(ctx context.Context, req AnnouncementRequest) (*Announcement, error) {
	meta := contextutil.ExtractMetadata(ctx)
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.FieldErrors{"title": {"Title is required"}}.Err()
	}

	a := Announcement{
		Title:       title,
		Description: req.Description,
		Link:        req.Link,
		Image:       req.Image,
		CreatedBy:   meta.UserID,
		UpdatedBy:   meta.UserID,
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		s.logger.Error("create announcement failed", zap.String("request_id", meta.RequestID), zap.Error(err))
		return nil, apperror.FromStore(err, announcementerrors.ErrAnnouncementNotFound)
	}

	s.logger.Info("create announcement success",
		zap.String("request_id", meta.RequestID),
		zap.String("announcement_id", a.ID.String()),
	)
	return &a, nil
}

func (s *service) Update(ctx context.Context, id string, req AnnouncementRequest) (*Announcement, error) {
	announcementID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.FieldErrors{"title": {"Title is required"}}.Err()
	}

	a, err := s.repo.FindByID(ctx, announcementID)
	if err != nil {
		return nil, apperror.FromStore(err, announcementerrors.ErrAnnouncementNotFound)
	}
	a.Title = title
	a.Description = req.Description
	a.Link = req.Link
	a.Image = req.Image
	a.UpdatedBy = contextutil.GetUserID(ctx)

	if err := s.repo.Save(ctx, a); err != nil {
		s.logger.Error("update announcement failed", zap.String("announcement_id", id), zap.Error(err))
		return nil, apperror.FromStore(err, announcementerrors.ErrAnnouncementNotFound)
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	announcementID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, announcementID); err != nil {
		s.logger.Error("delete announcement failed", zap.String("announcement_id", id), zap.Error(err))
		return apperror.FromStore(err, announcementerrors.ErrAnnouncementNotFound)
	}
	return nil
}
