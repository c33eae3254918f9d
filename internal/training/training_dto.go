package training

type SubdetailRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

type DetailRequest struct {
	Name        string             `json:"name" binding:"required,max=200"`
	Description string             `json:"description"`
	Subdetails  []SubdetailRequest `json:"subdetails" binding:"omitempty,dive"`
}

type VariantRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description"`
	Details     []DetailRequest `json:"details" binding:"omitempty,dive"`
}

type TrainingRequest struct {
	Title       string           `json:"title" binding:"required,max=200"`
	Description string           `json:"description"`
	Variants    []VariantRequest `json:"variants" binding:"omitempty,dive"`
}
