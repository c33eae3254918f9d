package search

import "time"

const (
	TypeBrand                      = "Brand"
	TypeCategory                   = "Category"
	TypeSubcategory                = "Subcategory"
	TypeProduct                    = "Product"
	TypeSOPCategory                = "SOP Category"
	TypeSOP                        = "SOP"
	TypeSOPVariant                 = "SOP Variant"
	TypeSOPStep                    = "SOP Step"
	TypeKnowledge                  = "Knowledge"
	TypeKnowledgeDetail            = "Knowledge Detail"
	TypeKnowledgeDetailVariant     = "Knowledge Detail Variant"
	TypeKnowledgeDetailVariantItem = "Knowledge Detail Variant Item"
	TypeQualityTraining            = "Quality Training"
	TypeQualityTrainingVariant     = "Quality Training Variant"
	TypeQualityTrainingDetail      = "Quality Training Detail"
	TypeQualityTrainingSubdetail   = "Quality Training Subdetail"
	TypeAgent                      = "Agent"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Hit is one normalized search match. Metadata carries ancestor names for
// display grouping only.
type Hit struct {
	Type        string            `json:"type"`
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Link        string            `json:"link"`
	Metadata    map[string]string `json:"metadata"`

	score     int
	updatedAt time.Time
	typeOrder int
	position  int
}

type Result struct {
	Results []Hit `json:"results"`
	Total   int   `json:"total"`
}

// Row is what every source query scans into. Ancestors are ordered from the
// root down (brand, category, subcategory / kategori, sop, variant / ...).
type Row struct {
	ID          string    `gorm:"column:id"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Slug        string    `gorm:"column:slug"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
	P1Name      string    `gorm:"column:p1_name"`
	P1Slug      string    `gorm:"column:p1_slug"`
	P2Name      string    `gorm:"column:p2_name"`
	P2Slug      string    `gorm:"column:p2_slug"`
	P3Name      string    `gorm:"column:p3_name"`
	P3Slug      string    `gorm:"column:p3_slug"`
}
