package training

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QualityTraining struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"not null;uniqueIndex:uq_quality_training_slug" json:"slug"`
	Description string    `json:"description,omitempty"`
	Variants    []Variant `gorm:"foreignKey:TrainingID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (QualityTraining) TableName() string { return "quality_trainings" }

type Variant struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TrainingID  uuid.UUID `gorm:"column:quality_training_id;type:uuid;not null;index" json:"qualityTrainingId"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	Details     []Detail  `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Variant) TableName() string { return "quality_training_variants" }

type Detail struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	VariantID   uuid.UUID   `gorm:"column:quality_training_variant_id;type:uuid;not null;index" json:"variantId"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `json:"description,omitempty"`
	Subdetails  []Subdetail `gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE" json:"subdetails,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (Detail) TableName() string { return "quality_training_details" }

type Subdetail struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DetailID    uuid.UUID `gorm:"column:quality_training_detail_id;type:uuid;not null;index" json:"detailId"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Subdetail) TableName() string { return "quality_training_subdetails" }

func (t *QualityTraining) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

func (d *Detail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (s *Subdetail) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func Models() []any {
	return []any{&QualityTraining{}, &Variant{}, &Detail{}, &Subdetail{}}
}
