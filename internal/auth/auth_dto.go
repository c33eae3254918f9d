package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

const (
	SessionActionSet   = "set"
	SessionActionClear = "clear"
)

type SessionRequest struct {
	Action string `json:"action" binding:"required"`
	// MaxAge is in seconds, zero or negative uses the configured default.
	MaxAge int `json:"maxAge"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name,omitempty"`
	Role      string  `json:"role"`
	PhotoURL  *string `json:"photoUrl,omitempty"`
	ExpiresAt int64   `json:"expiresAt,omitempty"`
}

type SessionResult struct {
	Token     string
	ExpiresAt int64
	MaxAge    int
	User      UserResponse
}
