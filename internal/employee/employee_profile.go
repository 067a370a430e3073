package employee

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-ems/internal/shared/apperror"

	"github.com/shopspring/decimal"
)

const (
	salaryMaxDigits     = 10
	salaryDecimalPlaces = 2
)

// Build validates the field-level rules of p and returns the unsaved record
// for userID. References to company and department are not resolved here.
func (p Profile) Build(userID uint) (*Employee, apperror.FieldErrors) {
	fields := apperror.FieldErrors{}

	if err := apperror.Validate(p); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
			fields.Merge(appErr.Fields)
		} else {
			fields.Add("non_field_errors", err.Error())
		}
	}

	var hired time.Time
	if !fields.Has("date_hired") {
		t, err := time.Parse(DateLayout, p.DateHired)
		if err != nil {
			fields.Add("date_hired", "Date Hired must be a date in YYYY-MM-DD format")
		}
		hired = t
	}

	var salary decimal.Decimal
	if !fields.Has("salary") {
		d, msg := ParseSalary(string(p.Salary))
		if msg != "" {
			fields.Add("salary", msg)
		}
		salary = d
	}

	if len(fields) > 0 {
		return nil, fields
	}

	return &Employee{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		UserID:       userID,
		PhoneNumber:  p.PhoneNumber,
		Address:      p.Address,
		CompanyID:    uint(p.Company),
		DepartmentID: uint(p.Department),
		DateHired:    hired,
		Salary:       salary,
	}, nil
}

// ParseSalary applies numeric(10,2) rules: non-negative, at most 2 decimal
// places and 10 digits in total. A non-empty message means invalid.
func ParseSalary(raw string) (decimal.Decimal, string) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, "A valid number is required."
	}
	if d.IsNegative() {
		return decimal.Decimal{}, "Ensure this value is greater than or equal to 0."
	}

	digits, decimals := digitCounts(d)
	wholeDigits := digits - decimals

	switch {
	case digits > salaryMaxDigits:
		return decimal.Decimal{}, fmt.Sprintf("Ensure that there are no more than %d digits in total.", salaryMaxDigits)
	case decimals > salaryDecimalPlaces:
		return decimal.Decimal{}, fmt.Sprintf("Ensure that there are no more than %d decimal places.", salaryDecimalPlaces)
	case wholeDigits > salaryMaxDigits-salaryDecimalPlaces:
		return decimal.Decimal{}, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", salaryMaxDigits-salaryDecimalPlaces)
	}

	return d, ""
}

// digitCounts counts digits the way the literal was written: "1.50" has
// three digits, two of them decimal.
func digitCounts(d decimal.Decimal) (digits, decimals int) {
	coeff := d.Coefficient()
	digits = len(coeff.Abs(coeff).String())
	exp := int(d.Exponent())

	if exp >= 0 {
		if coeff.Sign() != 0 {
			digits += exp
		}
		return digits, 0
	}

	decimals = -exp
	if decimals > digits {
		digits = decimals
	}
	return digits, decimals
}
