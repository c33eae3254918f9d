package agent

import (
	"context"
	"errors"
	"io"
	"strings"

	agenterrors "github.com/ccparagoncorp/customercare-web-sub001/internal/agent/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/identity"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/contextutil"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MaxPhotoSize = 5 << 20

//go:generate mockgen -source=agent_service.go -destination=mock/agent_service_mock.go -package=mock
type Service interface {
	GetProfile(ctx context.Context, userID string) (*Agent, error)
	UpdateProfile(ctx context.Context, userID string, req ProfileRequest) (*Agent, error)
	UploadPhoto(ctx context.Context, userID string, file io.Reader) (*Agent, error)
	SyncIdentity(ctx context.Context, info identity.UserInfo) (*Agent, error)

	ListAgents(ctx context.Context, filter AgentFilter) ([]Agent, error)
	GetPerformance(ctx context.Context, agentID string) (*PerformanceSummary, error)

	CreateAgent(ctx context.Context, req AgentRequest) (*Agent, error)
	UpdateAgent(ctx context.Context, id string, req AgentRequest) (*Agent, error)
	DeleteAgent(ctx context.Context, id string) error
	CreatePerformance(ctx context.Context, agentID string, req PerformanceRequest) (*PerformanceRecord, error)
	UpdatePerformance(ctx context.Context, id string, req PerformanceRequest) (*PerformanceRecord, error)
	DeletePerformance(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	provider identity.Provider
	images   storage.ImageUploader
	logger   *zap.Logger
}

func NewService(repo Repository, provider identity.Provider, images storage.ImageUploader, logger ...*zap.Logger) Service {
	l := zap.L().Named("agent.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("agent.service")
	}
	return &service{repo: repo, provider: provider, images: images, logger: l}
}

func (s *service) GetProfile(ctx context.Context, userID string) (*Agent, error) {
	a, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	return a, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req ProfileRequest) (*Agent, error) {
	rid := contextutil.GetRequestID(ctx)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.FieldErrors{"name": {"Name is required"}}.Err()
	}
	if req.NewPassword != "" && req.CurrentPassword == "" {
		return nil, apperror.FieldErrors{"currentPassword": {"Current password is required"}}.Err()
	}

	a, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}

	// password goes first so a rejected change leaves the profile untouched
	if req.NewPassword != "" {
		if err := s.changePassword(ctx, a, req.CurrentPassword, req.NewPassword); err != nil {
			return nil, err
		}
	}

	a.Name = name
	a.NIP = req.NIP
	a.TL = req.TL
	a.QA = req.QA
	if err := s.repo.Save(ctx, a); err != nil {
		s.logger.Error("update profile failed", zap.String("request_id", rid), zap.String("user_id", userID), zap.Error(err))
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}

	s.logger.Info("update profile success",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
		zap.Bool("password_changed", req.NewPassword != ""),
	)
	return a, nil
}

func (s *service) changePassword(ctx context.Context, a *Agent, current, next string) error {
	if _, err := s.provider.Login(ctx, a.Email, current); err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return agenterrors.ErrWrongPassword
		}
		return err
	}
	if err := s.provider.SetPassword(ctx, a.ID, next); err != nil {
		s.logger.Error("set password failed", zap.String("user_id", a.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) UploadPhoto(ctx context.Context, userID string, file io.Reader) (*Agent, error) {
	if file == nil {
		return nil, agenterrors.ErrPhotoMissing
	}
	data, err := io.ReadAll(io.LimitReader(file, MaxPhotoSize+1))
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrInvalidInput)
	}
	if len(data) == 0 {
		return nil, agenterrors.ErrPhotoMissing
	}
	if len(data) > MaxPhotoSize {
		return nil, agenterrors.ErrPhotoTooLarge
	}
	mime := storage.SniffImage(data)
	if !storage.IsAllowedImage(mime) {
		s.logger.Debug("photo rejected", zap.String("user_id", userID), zap.String("mime", mime))
		return nil, agenterrors.ErrPhotoType
	}
	if err := storage.CheckDimensions(data, mime); err != nil {
		s.logger.Debug("photo rejected", zap.String("user_id", userID), zap.Error(err))
		if errors.Is(err, storage.ErrImageDimensions) {
			return nil, agenterrors.ErrPhotoDimensions
		}
		return nil, agenterrors.ErrPhotoType
	}

	a, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}

	if s.images == nil {
		return nil, apperror.ErrUnavailable
	}
	url, err := s.images.UploadImage(ctx, "agents/"+userID, data, mime)
	if err != nil {
		s.logger.Error("photo upload failed", zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.Wrap(err, apperror.ErrUnavailable)
	}
	if err := s.repo.UpdatePhoto(ctx, userID, url); err != nil {
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	a.PhotoURL = &url

	s.logger.Info("photo upload success", zap.String("user_id", userID), zap.String("url", url))
	return a, nil
}

// SyncIdentity makes sure a local profile exists for a provider user.
func (s *service) SyncIdentity(ctx context.Context, info identity.UserInfo) (*Agent, error) {
	name := strings.TrimSpace(info.Name)
	if name == "" {
		name, _, _ = strings.Cut(info.Email, "@")
	}
	a := &Agent{ID: info.UserID, Name: name, Email: info.Email, Active: true}
	if err := s.repo.UpsertIdentity(ctx, a); err != nil {
		s.logger.Error("sync identity failed", zap.String("user_id", info.UserID), zap.Error(err))
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	return s.GetProfile(ctx, info.UserID)
}

func (s *service) ListAgents(ctx context.Context, filter AgentFilter) ([]Agent, error) {
	agents, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list agents failed", zap.Error(err))
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	return agents, nil
}

func (s *service) GetPerformance(ctx context.Context, agentID string) (*PerformanceSummary, error) {
	a, err := s.repo.FindByID(ctx, agentID)
	if err != nil {
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	records, err := s.repo.ListPerformance(ctx, agentID)
	if err != nil {
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	avg, err := s.repo.AveragePerformance(ctx, agentID)
	if err != nil {
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	if records == nil {
		records = []PerformanceRecord{}
	}
	return &PerformanceSummary{Agent: a, Records: records, Averages: avg}, nil
}

func (s *service) CreateAgent(ctx context.Context, req AgentRequest) (*Agent, error) {
	a := &Agent{
		ID:       strings.TrimSpace(req.ID),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Category: req.Category,
		Active:   req.Active == nil || *req.Active,
		NIP:      req.NIP,
		TL:       req.TL,
		QA:       req.QA,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("create agent failed", zap.String("agent_id", a.ID), zap.Error(err))
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	s.logger.Info("create agent success", zap.String("agent_id", a.ID))
	return a, nil
}

func (s *service) UpdateAgent(ctx context.Context, id string, req AgentRequest) (*Agent, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	a.Name = strings.TrimSpace(req.Name)
	a.Email = strings.ToLower(strings.TrimSpace(req.Email))
	a.Category = req.Category
	if req.Active != nil {
		a.Active = *req.Active
	}
	a.NIP, a.TL, a.QA = req.NIP, req.TL, req.QA

	if err := s.repo.Save(ctx, a); err != nil {
		s.logger.Error("update agent failed", zap.String("agent_id", id), zap.Error(err))
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	return a, nil
}

func (s *service) DeleteAgent(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete agent failed", zap.String("agent_id", id), zap.Error(err))
		return mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	return nil
}

func (s *service) CreatePerformance(ctx context.Context, agentID string, req PerformanceRequest) (*PerformanceRecord, error) {
	if _, err := s.repo.FindByID(ctx, agentID); err != nil {
		return nil, mapRepositoryError(err, agenterrors.ErrAgentNotFound)
	}
	rec := &PerformanceRecord{AgentID: agentID}
	req.apply(rec)
	if err := s.repo.CreatePerformance(ctx, rec); err != nil {
		s.logger.Error("create performance failed", zap.String("agent_id", agentID), zap.Error(err))
		return nil, mapRepositoryError(err, agenterrors.ErrPerformanceNotFound)
	}
	return rec, nil
}

func (s *service) UpdatePerformance(ctx context.Context, id string, req PerformanceRequest) (*PerformanceRecord, error) {
	recID, err := uuid.Parse(id)
	if err != nil {
		return nil, agenterrors.ErrInvalidID
	}
	rec, err := s.repo.FindPerformanceByID(ctx, recID)
	if err != nil {
		return nil, mapRepositoryError(err, agenterrors.ErrPerformanceNotFound)
	}
	req.apply(rec)
	if err := s.repo.SavePerformance(ctx, rec); err != nil {
		return nil, mapRepositoryError(err, agenterrors.ErrPerformanceNotFound)
	}
	return rec, nil
}

func (s *service) DeletePerformance(ctx context.Context, id string) error {
	recID, err := uuid.Parse(id)
	if err != nil {
		return agenterrors.ErrInvalidID
	}
	if err := s.repo.DeletePerformance(ctx, recID); err != nil {
		return mapRepositoryError(err, agenterrors.ErrPerformanceNotFound)
	}
	return nil
}
