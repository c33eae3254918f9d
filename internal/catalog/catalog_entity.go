package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductStatus string

const (
	StatusNew         ProductStatus = "NEW"
	StatusRevamp      ProductStatus = "REVAMP"
	StatusDiscontinue ProductStatus = "DISCONTINUE"
	StatusActive      ProductStatus = "ACTIVE"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case StatusNew, StatusRevamp, StatusDiscontinue, StatusActive:
		return true
	}
	return false
}

type Brand struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string                      `gorm:"not null;uniqueIndex:uq_brand_name" json:"name"`
	Slug        string                      `gorm:"not null;uniqueIndex:uq_brand_slug" json:"slug"`
	Description string                      `json:"description,omitempty"`
	Images      datatypes.JSONSlice[string] `json:"images,omitempty"`
	VideoURL    *string                     `json:"videoUrl,omitempty"`
	Color       *string                     `json:"color,omitempty"`
	Categories  []Category                  `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	Products    []Product                   `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (Brand) TableName() string { return "brands" }

type Category struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID       uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:uq_category_brand_slug,priority:1" json:"brandId"`
	Name          string                      `gorm:"not null" json:"name"`
	Slug          string                      `gorm:"not null;uniqueIndex:uq_category_brand_slug,priority:2" json:"slug"`
	Description   string                      `json:"description,omitempty"`
	Images        datatypes.JSONSlice[string] `json:"images,omitempty"`
	Brand         *Brand                      `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Subcategories []Subcategory               `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"`
	Products      []Product                   `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

func (Category) TableName() string { return "categories" }

type Subcategory struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID  uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:uq_subcategory_category_slug,priority:1" json:"categoryId"`
	Name        string                      `gorm:"not null" json:"name"`
	Slug        string                      `gorm:"not null;uniqueIndex:uq_subcategory_category_slug,priority:2" json:"slug"`
	Description string                      `json:"description,omitempty"`
	Images      datatypes.JSONSlice[string] `json:"images,omitempty"`
	Category    *Category                   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Products    []Product                   `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (Subcategory) TableName() string { return "subcategories" }

// Product hangs off exactly one of brand, category or subcategory; see ProductParent.
type Product struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID       *uuid.UUID                  `gorm:"type:uuid;uniqueIndex:uq_product_brand_slug,priority:1" json:"brandId,omitempty"`
	CategoryID    *uuid.UUID                  `gorm:"type:uuid;uniqueIndex:uq_product_category_slug,priority:1" json:"categoryId,omitempty"`
	SubcategoryID *uuid.UUID                  `gorm:"type:uuid;uniqueIndex:uq_product_subcategory_slug,priority:1" json:"subcategoryId,omitempty"`
	Name          string                      `gorm:"not null" json:"name"`
	Slug          string                      `gorm:"not null;uniqueIndex:uq_product_brand_slug,priority:2;uniqueIndex:uq_product_category_slug,priority:2;uniqueIndex:uq_product_subcategory_slug,priority:2" json:"slug"`
	Description   string                      `json:"description,omitempty"`
	Status        ProductStatus               `gorm:"type:varchar(20);not null;default:ACTIVE" json:"status"`
	Images        datatypes.JSONSlice[string] `json:"images,omitempty"`
	Price         *float64                    `json:"price,omitempty"`
	Capacity      *string                     `json:"capacity,omitempty"`
	Details       []ProductDetail             `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
	Brand         *Brand                      `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Category      *Category                   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Subcategory   *Subcategory                `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

type ProductDetail struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID                   `gorm:"type:uuid;not null;index" json:"productId"`
	Name      string                      `gorm:"not null" json:"name"`
	Detail    string                      `json:"detail"`
	Images    datatypes.JSONSlice[string] `json:"images,omitempty"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

func (ProductDetail) TableName() string { return "product_details" }

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	ensureID(&b.ID)
	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

func (d *ProductDetail) BeforeCreate(tx *gorm.DB) error {
	ensureID(&d.ID)
	return nil
}

// Models lists every catalog table for AutoMigrate.
func Models() []any {
	return []any{&Brand{}, &Category{}, &Subcategory{}, &Product{}, &ProductDetail{}}
}
