package announcement

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Announcement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Link        *string   `json:"link,omitempty"`
	Image       *string   `json:"image,omitempty"`
	CreatedBy   string    `gorm:"type:varchar(64)" json:"createdBy,omitempty"`
	UpdatedBy   string    `gorm:"type:varchar(64)" json:"updatedBy,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
