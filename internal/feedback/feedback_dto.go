package feedback

type SubmitRequest struct {
	Source  string `json:"source"`
	Name    string `json:"name" binding:"max=200"`
	Email   string `json:"email" binding:"max=320"`
	Subject string `json:"subject" binding:"max=300"`
	Role    string `json:"role" binding:"max=100"`
	Message string `json:"message" binding:"max=5000"`
	Rating  *int   `json:"rating" binding:"omitempty,min=1,max=5"`
}

type SubmitResponse struct {
	Ok bool `json:"ok"`
}
