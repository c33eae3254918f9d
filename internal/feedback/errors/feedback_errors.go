package feedbackerrors

import (
	"net/http"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
)

var (
	ErrUnknownSource = apperror.New(
		apperror.CodeInvalidInput,
		"Sumber feedback tidak dikenal",
		http.StatusBadRequest,
	)
	ErrUnknownChannel = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown delivery channel",
		http.StatusBadRequest,
	)
	ErrSheetNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"Spreadsheet is not configured",
		http.StatusServiceUnavailable,
	)
	ErrMailNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"Email transport is not configured",
		http.StatusServiceUnavailable,
	)
)
