package sop

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

type SOPRequest struct {
	CategoryID  string `json:"categoryId" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

type StepRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Value string `json:"value"`
}

// VariantRequest carries the full ordered step list; updates replace it.
type VariantRequest struct {
	SOPID   string        `json:"sopId" binding:"required,uuid"`
	Name    string        `json:"name" binding:"required,max=200"`
	Content *string       `json:"content"`
	Images  []string      `json:"images" binding:"omitempty,dive,max=2048"`
	Steps   []StepRequest `json:"steps" binding:"omitempty,dive"`
}
