package employee

import (
	"errors"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/database"

	"gorm.io/gorm"
)

func mapRepositoryError(err error, e *Employee) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	switch {
	case database.IsUniqueViolation(err, database.ConstraintEmployeesUser):
		return employeeerrors.ErrProfileAlreadyExists
	case e != nil && database.IsForeignKeyViolation(err, database.ConstraintEmployeesUserFK):
		return employeeerrors.ErrUnknownUser(e.UserID)
	case e != nil && database.IsForeignKeyViolation(err, database.ConstraintEmployeesCompanyFK):
		return employeeerrors.ErrUnknownCompany(e.CompanyID)
	case e != nil && database.IsForeignKeyViolation(err, database.ConstraintEmployeesDeptFK):
		return employeeerrors.ErrUnknownDepartment(e.DepartmentID)
	}

	return err
}
