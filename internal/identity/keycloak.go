package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"

	"github.com/Nerzal/gocloak/v13"
	"go.uber.org/zap"
)

type KeycloakConfig struct {
	URL           string
	Realm         string
	ClientID      string
	ClientSecret  string
	AdminUser     string
	AdminPassword string
	Timeout       time.Duration
}

type Keycloak struct {
	client *gocloak.GoCloak
	cfg    KeycloakConfig
	logger *zap.Logger
}

func NewKeycloak(cfg KeycloakConfig, logger ...*zap.Logger) *Keycloak {
	l := zap.L().Named("identity.keycloak")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("identity.keycloak")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	return &Keycloak{client: gocloak.NewClient(cfg.URL), cfg: cfg, logger: l}
}

func (k *Keycloak) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, k.cfg.Timeout)
}

// mapError turns gocloak failures into the app taxonomy. 400/401 from the token
// endpoint mean bad credentials, anything transport-level is unavailability.
func mapError(err error, unauthorized *apperror.AppError) error {
	if err == nil {
		return nil
	}
	var apiErr *gocloak.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return apperror.Wrap(err, unauthorized)
		case 0:
			return apperror.Wrap(err, ErrUnavailable)
		}
		if apiErr.Code >= http.StatusInternalServerError {
			return apperror.Wrap(err, ErrUnavailable)
		}
		return err
	}
	if apperror.IsUnavailable(err) {
		return apperror.Wrap(err, ErrUnavailable)
	}
	return err
}

func (k *Keycloak) Login(ctx context.Context, email, password string) (*Token, error) {
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	jwt, err := k.client.Login(ctx, k.cfg.ClientID, k.cfg.ClientSecret, k.cfg.Realm, email, password)
	if err != nil {
		k.logger.Warn("keycloak login failed", zap.String("email", email), zap.Error(err))
		return nil, mapError(err, ErrInvalidCredentials)
	}
	return &Token{AccessToken: jwt.AccessToken, ExpiresIn: jwt.ExpiresIn}, nil
}

func (k *Keycloak) UserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	info, err := k.client.GetUserInfo(ctx, accessToken, k.cfg.Realm)
	if err != nil {
		k.logger.Warn("keycloak userinfo failed", zap.Error(err))
		return nil, mapError(err, ErrInvalidToken)
	}
	if info.Sub == nil || *info.Sub == "" {
		return nil, apperror.Wrap(errMissingSubject, ErrInvalidToken)
	}

	user := &UserInfo{UserID: *info.Sub, Role: defaultRole}
	if info.Email != nil {
		user.Email = *info.Email
	}
	switch {
	case info.Name != nil && *info.Name != "":
		user.Name = *info.Name
	case info.PreferredUsername != nil:
		user.Name = *info.PreferredUsername
	}

	role, err := k.realmRole(ctx, user.UserID)
	if err != nil {
		// role lookup needs admin credentials; fall back to the default role
		k.logger.Warn("keycloak role lookup failed", zap.String("user_id", user.UserID), zap.Error(err))
	} else {
		user.Role = role
	}
	return user, nil
}

func (k *Keycloak) adminToken(ctx context.Context) (string, error) {
	token, err := k.client.LoginAdmin(ctx, k.cfg.AdminUser, k.cfg.AdminPassword, "master")
	if err != nil {
		return "", fmt.Errorf("keycloak admin login: %w", err)
	}
	return token.AccessToken, nil
}

func (k *Keycloak) realmRole(ctx context.Context, userID string) (string, error) {
	token, err := k.adminToken(ctx)
	if err != nil {
		return "", err
	}
	roles, err := k.client.GetRealmRolesByUserID(ctx, token, k.cfg.Realm, userID)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		if r != nil && r.Name != nil {
			names = append(names, *r.Name)
		}
	}
	return pickRole(names), nil
}

func (k *Keycloak) SetPassword(ctx context.Context, userID, password string) error {
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	token, err := k.adminToken(ctx)
	if err != nil {
		k.logger.Error("keycloak admin login failed", zap.Error(err))
		return apperror.Wrap(err, ErrUnavailable)
	}
	if err := k.client.SetPassword(ctx, token, userID, k.cfg.Realm, password, false); err != nil {
		k.logger.Error("keycloak set password failed", zap.String("user_id", userID), zap.Error(err))
		return mapError(err, ErrPasswordRejected)
	}
	k.logger.Info("keycloak password updated", zap.String("user_id", userID))
	return nil
}
