package rbac

type PermissionRequest struct {
	Role     string `json:"role" binding:"required,max=50"`
	Resource string `json:"resource" binding:"required,max=100"`
	Action   string `json:"action" binding:"required,max=50"`
}
