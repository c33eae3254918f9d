package knowledgeerrors

import (
	"net/http"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
)

var (
	ErrKnowledgeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Knowledge not found",
		http.StatusNotFound,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid knowledge id",
		http.StatusBadRequest,
	)
)
