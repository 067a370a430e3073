package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int         `json:"-"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Fields  FieldErrors `json:"-"`
}

// ToHTTP resolves any error into the status/code/message triple written to the
// client. Errors that are not *AppError never leak their text.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return HTTPError{
			Status:  status,
			Code:    appErr.Code,
			Message: appErr.Message,
			Fields:  appErr.Fields,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}

// IsValidation reports whether err carries field-level validation details.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && len(appErr.Fields) > 0
}
