package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldErrors is the {field: [message]} shape returned to forms.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// Err wraps the field errors into a 400 AppError, or nil when there are none.
func (f FieldErrors) Err() error {
	if f.Empty() {
		return nil
	}
	return New(CodeValidation, "Validation failed", http.StatusBadRequest).
		WithDetails(map[string]any{"errors": f})
}

func formatFieldName(s string) string {
	// recipient_phone -> Recipient Phone
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func messageFor(e validator.FieldError) string {
	field := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// MapValidationError converts binding errors into a VALIDATION_ERROR carrying
// every failing field, so the UI can render messages next to inputs.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		fields := FieldErrors{}
		for _, e := range errs {
			fields.Add(e.Field(), messageFor(e))
		}
		return fields.Err()
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	).WithDetails(map[string]any{"errors": FieldErrors{"_": {"Request body is malformed"}}})
}
