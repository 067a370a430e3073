package employeeerrors

import (
	"fmt"
	"go-ems/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee profile not found",
		http.StatusNotFound,
	)

	ErrProfileAlreadyExists = apperror.FieldError(
		"user",
		"Employee with this User already exists.",
	)
)

func ErrUnknownUser(id uint) error {
	return apperror.FieldError("user", apperror.InvalidPK(id))
}

func ErrUnknownCompany(id uint) error {
	return apperror.FieldError("company", apperror.InvalidPK(id))
}

func ErrUnknownDepartment(id uint) error {
	return apperror.FieldError("department", apperror.InvalidPK(id))
}

// ErrDepartmentOutsideCompany rejects a department that belongs to a
// different company than the one referenced.
func ErrDepartmentOutsideCompany(departmentID, companyID uint) error {
	return apperror.FieldError(
		"department",
		fmt.Sprintf("Department %d does not belong to company %d.", departmentID, companyID),
	)
}
