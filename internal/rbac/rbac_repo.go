package rbac

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListRolePermissions(ctx context.Context) ([]RolePermission, error)
	CreateRolePermission(ctx context.Context, p *RolePermission) error
	DeleteRolePermission(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRolePermissions(ctx context.Context) ([]RolePermission, error) {
	var result []RolePermission
	err := r.db.WithContext(ctx).Order("role, resource, action").Find(&result).Error
	return result, err
}

func (r *repository) CreateRolePermission(ctx context.Context, p *RolePermission) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) DeleteRolePermission(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&RolePermission{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
