package departmenterrors

import (
	"go-ems/internal/shared/apperror"
	"net/http"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
)

// ErrUnknownCompany reports a company reference that resolves to nothing.
func ErrUnknownCompany(id uint) error {
	return apperror.FieldError("company", apperror.InvalidPK(id))
}
