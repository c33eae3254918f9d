package agenterrors

import (
	"net/http"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
)

var (
	ErrAgentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Agent not found",
		http.StatusNotFound,
	)
	ErrPerformanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Performance record not found",
		http.StatusNotFound,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email sudah digunakan agent lain",
		http.StatusConflict,
	)
	ErrWrongPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Password saat ini salah",
		http.StatusBadRequest,
	)
	ErrPhotoTooLarge = apperror.New(
		apperror.CodeTooLarge,
		"Ukuran foto maksimal 5MB",
		http.StatusRequestEntityTooLarge,
	)
	ErrPhotoType = apperror.New(
		apperror.CodeUnsupported,
		"Format foto harus jpeg, png, webp atau gif",
		http.StatusUnsupportedMediaType,
	)
	ErrPhotoDimensions = apperror.New(
		apperror.CodeInvalidInput,
		"Resolusi foto maksimal 40 megapiksel",
		http.StatusBadRequest,
	)
	ErrPhotoMissing = apperror.New(
		apperror.CodeValidation,
		"File foto wajib diisi",
		http.StatusBadRequest,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid id",
		http.StatusBadRequest,
	)
)
