package knowledge

type ItemRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	Images      []string `json:"images" binding:"omitempty,dive,max=2048"`
}

type VariantRequest struct {
	Name        string        `json:"name" binding:"required,max=200"`
	Description string        `json:"description"`
	Images      []string      `json:"images" binding:"omitempty,dive,max=2048"`
	Items       []ItemRequest `json:"items" binding:"omitempty,dive"`
}

type DetailRequest struct {
	Name        string           `json:"name" binding:"required,max=200"`
	Description string           `json:"description"`
	Images      []string         `json:"images" binding:"omitempty,dive,max=2048"`
	Variants    []VariantRequest `json:"variants" binding:"omitempty,dive"`
}

// KnowledgeRequest is the whole document. Updates replace the detail tree.
type KnowledgeRequest struct {
	Title       string          `json:"title" binding:"required,max=200"`
	Description string          `json:"description"`
	Images      []string        `json:"images" binding:"omitempty,dive,max=2048"`
	UpdateNotes string          `json:"updateNotes"`
	Details     []DetailRequest `json:"details" binding:"omitempty,dive"`
}
