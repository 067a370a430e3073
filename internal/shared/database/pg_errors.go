package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names created by the migrations.
const (
	ConstraintUsersUsername       = "uq_users_username"
	ConstraintEmployeesUser       = "uq_employees_user_id"
	ConstraintEmployeesUserFK     = "fk_employees_user"
	ConstraintEmployeesCompanyFK  = "fk_employees_company"
	ConstraintEmployeesDeptFK     = "fk_employees_department"
	ConstraintDepartmentCompanyFK = "fk_departments_company"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsUniqueViolation reports a 23505 error, optionally on a specific
// constraint (empty matches any).
func IsUniqueViolation(err error, constraint string) bool {
	return isCode(err, pgerrcode.UniqueViolation, constraint)
}

// IsForeignKeyViolation reports a 23503 error, optionally on a specific
// constraint (empty matches any).
func IsForeignKeyViolation(err error, constraint string) bool {
	return isCode(err, pgerrcode.ForeignKeyViolation, constraint)
}

func isCode(err error, code, constraint string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
