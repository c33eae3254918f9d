package announcement

type AnnouncementRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required"`
	Link        *string `json:"link" binding:"omitempty,url"`
	Image       *string `json:"image" binding:"omitempty,max=2048"`
}
