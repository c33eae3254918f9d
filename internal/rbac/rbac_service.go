package rbac

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/domain"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)

	ListPermissions(ctx context.Context) ([]RolePermission, error)
	GrantPermission(ctx context.Context, req PermissionRequest) (*RolePermission, error)
	RevokePermission(ctx context.Context, id string) error
}

var errPermissionNotFound = apperror.New(apperror.CodeNotFound, "Permission not found", http.StatusNotFound)

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadPolicy(ctx context.Context) error {
	rows, err := s.repo.ListRolePermissions(ctx)
	if err != nil {
		return apperror.FromStore(err, errPermissionNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, pair := range DefaultRoleInheritance {
		if _, err := s.enforcer.AddGroupingPolicy(pair[0], pair[1]); err != nil {
			return err
		}
	}

	policies := make([][]string, 0, len(DefaultPermissions)+len(rows))
	seen := make(map[string]struct{})
	for _, p := range append(append([]RolePermission{}, DefaultPermissions...), rows...) {
		key := p.Role + "|" + p.Resource + "|" + p.Action
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		policies = append(policies, []string{p.Role, p.Resource, p.Action})
	}
	if _, err := s.enforcer.AddPolicies(policies); err != nil {
		return err
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("stored", len(rows)),
		zap.Int("total", len(policies)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	role := strings.TrimSpace(req.Role)
	if role == "" {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListPermissions(ctx context.Context) ([]RolePermission, error) {
	rows, err := s.repo.ListRolePermissions(ctx)
	if err != nil {
		return nil, apperror.FromStore(err, errPermissionNotFound)
	}
	return rows, nil
}

func (s *service) GrantPermission(ctx context.Context, req PermissionRequest) (*RolePermission, error) {
	p := &RolePermission{
		Role:     strings.ToLower(strings.TrimSpace(req.Role)),
		Resource: strings.TrimSpace(req.Resource),
		Action:   strings.TrimSpace(req.Action),
	}
	if err := s.repo.CreateRolePermission(ctx, p); err != nil {
		return nil, apperror.FromStore(err, errPermissionNotFound)
	}
	if err := s.LoadPolicy(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) RevokePermission(ctx context.Context, id string) error {
	pid, err := uuid.Parse(id)
	if err != nil {
		return apperror.InvalidField("id")
	}
	if err := s.repo.DeleteRolePermission(ctx, pid); err != nil {
		return apperror.FromStore(err, errPermissionNotFound)
	}
	return s.LoadPolicy(ctx)
}
