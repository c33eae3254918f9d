package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/agent"
	autherrors "github.com/ccparagoncorp/customercare-web-sub001/internal/auth/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/auth/session"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/identity"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Login authenticates against the identity provider and issues a session.
	Login(ctx context.Context, email, password string) (*SessionResult, error)
	// Establish exchanges a provider access token for a session.
	Establish(ctx context.Context, accessToken string, maxAge time.Duration) (*SessionResult, error)
}

// ProfileSyncer keeps the local agent row in step with the provider user.
type ProfileSyncer interface {
	SyncIdentity(ctx context.Context, info identity.UserInfo) (*agent.Agent, error)
}

type service struct {
	provider identity.Provider
	profiles ProfileSyncer
	sessions *session.Manager
	logger   *zap.Logger
}

func NewService(provider identity.Provider, profiles ProfileSyncer, sessions *session.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{provider: provider, profiles: profiles, sessions: sessions, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (*SessionResult, error) {
	rid := contextutil.GetRequestID(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	tok, err := s.provider.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			s.logger.Info("login rejected", zap.String("request_id", rid), zap.String("email", email))
			return nil, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	info, err := s.provider.UserInfo(ctx, tok.AccessToken)
	if err != nil {
		return nil, s.mapProviderError(rid, err)
	}
	return s.issue(ctx, rid, info, 0)
}

func (s *service) Establish(ctx context.Context, accessToken string, maxAge time.Duration) (*SessionResult, error) {
	rid := contextutil.GetRequestID(ctx)
	if strings.TrimSpace(accessToken) == "" {
		return nil, autherrors.ErrTokenNotFound
	}

	info, err := s.provider.UserInfo(ctx, accessToken)
	if err != nil {
		return nil, s.mapProviderError(rid, err)
	}
	return s.issue(ctx, rid, info, maxAge)
}

func (s *service) mapProviderError(rid string, err error) error {
	if errors.Is(err, identity.ErrInvalidToken) {
		return autherrors.ErrInvalidToken
	}
	s.logger.Error("userinfo failed", zap.String("request_id", rid), zap.Error(err))
	return err
}

func (s *service) issue(ctx context.Context, rid string, info *identity.UserInfo, maxAge time.Duration) (*SessionResult, error) {
	profile, err := s.profiles.SyncIdentity(ctx, *info)
	if err != nil {
		return nil, err
	}

	lifetime := s.sessions.MaxAge(maxAge)
	token, exp, err := s.sessions.Issue(session.Identity{
		UserID: info.UserID,
		Email:  info.Email,
		Role:   info.Role,
	}, lifetime)
	if err != nil {
		s.logger.Error("issue session failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	s.logger.Info("session issued",
		zap.String("request_id", rid),
		zap.String("user_id", info.UserID),
		zap.String("role", info.Role),
	)
	return &SessionResult{
		Token:     token,
		ExpiresAt: exp.Unix(),
		MaxAge:    int(lifetime / time.Second),
		User: UserResponse{
			ID:        info.UserID,
			Email:     info.Email,
			Name:      profile.Name,
			Role:      info.Role,
			PhotoURL:  profile.PhotoURL,
			ExpiresAt: exp.Unix(),
		},
	}, nil
}
