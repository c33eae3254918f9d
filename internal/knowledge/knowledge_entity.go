package knowledge

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Knowledge struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                      `gorm:"not null" json:"title"`
	Slug        string                      `gorm:"not null;uniqueIndex:uq_knowledge_slug" json:"slug"`
	Description string                      `json:"description,omitempty"`
	Images      datatypes.JSONSlice[string] `json:"images,omitempty"`
	UpdateNotes string                      `json:"updateNotes,omitempty"`
	CreatedBy   string                      `gorm:"type:varchar(64)" json:"createdBy,omitempty"`
	UpdatedBy   string                      `gorm:"type:varchar(64)" json:"updatedBy,omitempty"`
	Details     []Detail                    `gorm:"foreignKey:KnowledgeID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (Knowledge) TableName() string { return "knowledges" }

type Detail struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	KnowledgeID uuid.UUID                   `gorm:"type:uuid;not null;index" json:"knowledgeId"`
	Name        string                      `gorm:"not null" json:"name"`
	Description string                      `json:"description,omitempty"`
	Images      datatypes.JSONSlice[string] `json:"images,omitempty"`
	Variants    []DetailVariant             `gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (Detail) TableName() string { return "knowledge_details" }

type DetailVariant struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	DetailID    uuid.UUID                   `gorm:"column:knowledge_detail_id;type:uuid;not null;index" json:"detailId"`
	Name        string                      `gorm:"not null" json:"name"`
	Description string                      `json:"description,omitempty"`
	Images      datatypes.JSONSlice[string] `json:"images,omitempty"`
	Items       []DetailVariantItem         `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (DetailVariant) TableName() string { return "knowledge_detail_variants" }

type DetailVariantItem struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	VariantID   uuid.UUID                   `gorm:"column:knowledge_detail_variant_id;type:uuid;not null;index" json:"variantId"`
	Name        string                      `gorm:"not null" json:"name"`
	Description string                      `json:"description,omitempty"`
	Images      datatypes.JSONSlice[string] `json:"images,omitempty"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (DetailVariantItem) TableName() string { return "knowledge_detail_variant_items" }

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (k *Knowledge) BeforeCreate(tx *gorm.DB) error {
	ensureID(&k.ID)
	return nil
}

func (d *Detail) BeforeCreate(tx *gorm.DB) error {
	ensureID(&d.ID)
	return nil
}

func (v *DetailVariant) BeforeCreate(tx *gorm.DB) error {
	ensureID(&v.ID)
	return nil
}

func (i *DetailVariantItem) BeforeCreate(tx *gorm.DB) error {
	ensureID(&i.ID)
	return nil
}

func Models() []any {
	return []any{&Knowledge{}, &Detail{}, &DetailVariant{}, &DetailVariantItem{}}
}
