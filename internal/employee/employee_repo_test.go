package employee_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/database"
	"go-ems/internal/shared/database/databasetest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_Create(t *testing.T) {
	ctx := context.Background()
	newEmployee := func() *employee.Employee {
		return &employee.Employee{
			FirstName: "Alice", LastName: "Smith", UserID: 1,
			PhoneNumber: "555", Address: "X",
			CompanyID: 1, DepartmentID: 999,
			DateHired: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Salary:    decimal.RequireFromString("50000.00"),
		}
	}

	t.Run("inserts without touching associations", func(t *testing.T) {
		db, mock := databasetest.NewGormMock(t)
		repo := employee.NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "employees"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		e := newEmployee()
		require.NoError(t, repo.Create(ctx, e))
		assert.Equal(t, uint(5), e.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("department foreign key violation", func(t *testing.T) {
		db, mock := databasetest.NewGormMock(t)
		repo := employee.NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "employees"`)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: database.ConstraintEmployeesDeptFK})

		err := repo.Create(ctx, newEmployee())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, []string{`Invalid pk "999" - object does not exist.`}, appErr.Fields["department"])
	})

	t.Run("credential removed before the profile insert", func(t *testing.T) {
		db, mock := databasetest.NewGormMock(t)
		repo := employee.NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "employees"`)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: database.ConstraintEmployeesUserFK})

		err := repo.Create(ctx, newEmployee())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, []string{`Invalid pk "1" - object does not exist.`}, appErr.Fields["user"])
	})

	t.Run("second profile for the same user", func(t *testing.T) {
		db, mock := databasetest.NewGormMock(t)
		repo := employee.NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "employees"`)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: database.ConstraintEmployeesUser})

		err := repo.Create(ctx, newEmployee())

		assert.ErrorIs(t, err, employeeerrors.ErrProfileAlreadyExists)
	})
}

func TestEmployeeRepository_FindByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("preloads company and department", func(t *testing.T) {
		db, mock := databasetest.NewGormMock(t)
		mock.MatchExpectationsInOrder(false)
		repo := employee.NewRepository(db)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "employees" WHERE user_id = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "first_name", "last_name", "user_id", "phone_number", "address",
				"company_id", "department_id", "date_hired", "salary", "creation_time", "last_updated",
			}).AddRow(3, "Alice", "Smith", 1, "555", "X", 1, 2, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "50000.00", now, now))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "companies" WHERE "companies"."id" = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Acme"))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "departments" WHERE "departments"."id" = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "company_id"}).AddRow(2, "Eng", 1))

		e, err := repo.FindByUserID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, uint(3), e.ID)
		require.NotNil(t, e.Company)
		require.NotNil(t, e.Department)
		assert.Equal(t, "Acme", e.Company.Name)
		assert.Equal(t, "Eng", e.Department.Name)
		assert.Equal(t, "50000.00", e.Salary.StringFixed(2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no profile", func(t *testing.T) {
		db, mock := databasetest.NewGormMock(t)
		repo := employee.NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "employees"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		e, err := repo.FindByUserID(ctx, 1)

		assert.Nil(t, e)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
