package soperrors

import (
	"net/http"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
)

var (
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"SOP category not found",
		http.StatusNotFound,
	)
	ErrSOPNotFound = apperror.New(
		apperror.CodeNotFound,
		"SOP not found",
		http.StatusNotFound,
	)
	ErrVariantNotFound = apperror.New(
		apperror.CodeNotFound,
		"SOP variant not found",
		http.StatusNotFound,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid id",
		http.StatusBadRequest,
	)
)
