package catalogerrors

import (
	"net/http"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
)

var (
	ErrBrandNotFound = apperror.New(
		apperror.CodeNotFound,
		"Brand not found",
		http.StatusNotFound,
	)
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Category not found",
		http.StatusNotFound,
	)
	ErrSubcategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Subcategory not found",
		http.StatusNotFound,
	)
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)
	ErrInvalidProductPath = apperror.New(
		apperror.CodeInvalidInput,
		"Product path must have one or two segments after the category",
		http.StatusBadRequest,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid id",
		http.StatusBadRequest,
	)
	ErrParentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product parent not found",
		http.StatusNotFound,
	)
	ErrBrandNameTaken = apperror.New(
		apperror.CodeConflict,
		"A brand with this name already exists",
		http.StatusConflict,
	)
)
