package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// phone_number -> phone number
	s = strings.ReplaceAll(s, "_", " ")

	// phone number -> Phone Number
	caser := cases.Title(language.English)
	return caser.String(s)
}

func messageFor(e validator.FieldError) string {
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "username":
		return fmt.Sprintf("%s may contain only letters, numbers, and @/./+/-/_ characters", field)
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// MapValidationError turns binding / validation failures into a field-level
// AppError. Every failing field is reported, keyed by its json name.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		fields := FieldErrors{}
		for _, e := range errs {
			fields.Add(e.Field(), messageFor(e))
		}
		return NewValidation(fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return FieldError(typeErr.Field, fmt.Sprintf("%s has an invalid type", formatFieldName(typeErr.Field)))
	}

	return New(
		CodeInvalidInput,
		"Malformed request body",
		http.StatusBadRequest,
	)
}
