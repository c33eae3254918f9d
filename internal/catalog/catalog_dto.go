package catalog

type BrandRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	Images      []string `json:"images" binding:"omitempty,dive,max=2048"`
	VideoURL    *string  `json:"videoUrl" binding:"omitempty,url"`
	Color       *string  `json:"color" binding:"omitempty,max=20"`
}

type CategoryRequest struct {
	BrandID     string   `json:"brandId" binding:"required,uuid"`
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	Images      []string `json:"images" binding:"omitempty,dive,max=2048"`
}

type SubcategoryRequest struct {
	CategoryID  string   `json:"categoryId" binding:"required,uuid"`
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	Images      []string `json:"images" binding:"omitempty,dive,max=2048"`
}

type ProductDetailRequest struct {
	Name   string   `json:"name" binding:"required,max=200"`
	Detail string   `json:"detail"`
	Images []string `json:"images" binding:"omitempty,dive,max=2048"`
}

// ProductRequest carries the parent as three optional ids; exactly one must be set.
type ProductRequest struct {
	Name          string                 `json:"name" binding:"required,max=200"`
	Description   string                 `json:"description"`
	Status        ProductStatus          `json:"status" binding:"omitempty,oneof=NEW REVAMP DISCONTINUE ACTIVE"`
	Images        []string               `json:"images" binding:"omitempty,dive,max=2048"`
	Price         *float64               `json:"price" binding:"omitempty,min=0"`
	Capacity      *string                `json:"capacity"`
	BrandID       *string                `json:"brandId"`
	CategoryID    *string                `json:"categoryId"`
	SubcategoryID *string                `json:"subcategoryId"`
	Details       []ProductDetailRequest `json:"details" binding:"omitempty,dive"`
}
