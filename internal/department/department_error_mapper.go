package department

import (
	"errors"

	departmenterrors "go-ems/internal/department/errors"
	"go-ems/internal/shared/database"

	"gorm.io/gorm"
)

func mapRepositoryError(err error, companyID uint) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	// The company disappeared between the existence check and the write.
	if database.IsForeignKeyViolation(err, database.ConstraintDepartmentCompanyFK) {
		return departmenterrors.ErrUnknownCompany(companyID)
	}

	return err
}
