package rbac

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RolePermission grants role the action on resource. "*" matches any action or resource.
type RolePermission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Role      string    `gorm:"not null;uniqueIndex:uq_role_permission,priority:1" json:"role"`
	Resource  string    `gorm:"not null;uniqueIndex:uq_role_permission,priority:2" json:"resource"`
	Action    string    `gorm:"not null;uniqueIndex:uq_role_permission,priority:3" json:"action"`
	CreatedAt time.Time `json:"createdAt"`
}

func (RolePermission) TableName() string { return "role_permissions" }

func (p *RolePermission) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DefaultPermissions are always loaded, before any stored rows.
var DefaultPermissions = []RolePermission{
	{Role: "admin", Resource: "*", Action: "*"},
	{Role: "qa", Resource: "training", Action: "write"},
	{Role: "qa", Resource: "agent", Action: "write"},
	{Role: "agent", Resource: "*", Action: "read"},
}

// DefaultRoleInheritance: qa can do everything agent can.
var DefaultRoleInheritance = [][2]string{
	{"qa", "agent"},
}
