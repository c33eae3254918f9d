package sop

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"not null;uniqueIndex:uq_sop_category_slug" json:"slug"`
	Description string    `json:"description,omitempty"`
	SOPs        []SOP     `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"sops,omitempty"`
	SOPCount    int64     `gorm:"column:sop_count;->;-:migration" json:"sopCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Category) TableName() string { return "sop_categories" }

type SOP struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID  uuid.UUID `gorm:"column:sop_category_id;type:uuid;not null;uniqueIndex:uq_sop_category_sop_slug,priority:1" json:"categoryId"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"not null;uniqueIndex:uq_sop_category_sop_slug,priority:2" json:"slug"`
	Description string    `json:"description,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Variants    []Variant `gorm:"foreignKey:SOPID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (SOP) TableName() string { return "sops" }

type Variant struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	SOPID     uuid.UUID                   `gorm:"column:sop_id;type:uuid;not null;uniqueIndex:uq_sop_variant_slug,priority:1" json:"sopId"`
	Name      string                      `gorm:"not null" json:"name"`
	Slug      string                      `gorm:"not null;uniqueIndex:uq_sop_variant_slug,priority:2" json:"slug"`
	Content   *string                     `json:"content,omitempty"`
	Images    datatypes.JSONSlice[string] `json:"images,omitempty"`
	SOP       *SOP                        `gorm:"foreignKey:SOPID" json:"sop,omitempty"`
	Steps     []Step                      `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

func (Variant) TableName() string { return "sop_variants" }

// Step is one titled paragraph of a variant, shown in creation order.
type Step struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VariantID uuid.UUID `gorm:"column:sop_variant_id;type:uuid;not null;index" json:"variantId"`
	Name      string    `gorm:"not null" json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Step) TableName() string { return "sop_steps" }

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

func (s *SOP) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	ensureID(&v.ID)
	return nil
}

func (s *Step) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

func Models() []any {
	return []any{&Category{}, &SOP{}, &Variant{}, &Step{}}
}
