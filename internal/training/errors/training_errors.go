package trainingerrors

import (
	"net/http"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
)

var (
	ErrTrainingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Quality training not found",
		http.StatusNotFound,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid quality training id",
		http.StatusBadRequest,
	)
)
