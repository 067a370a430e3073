package employee

import (
	"time"

	"go-ems/internal/company"
	"go-ems/internal/department"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format of DateHired.
const DateLayout = "2006-01-02"

type Employee struct {
	ID           uint                   `gorm:"column:id;primaryKey"`
	FirstName    string                 `gorm:"column:first_name;size:30;not null"`
	LastName     string                 `gorm:"column:last_name;size:30;not null"`
	UserID       uint                   `gorm:"column:user_id;not null;uniqueIndex:uq_employees_user_id"`
	PhoneNumber  string                 `gorm:"column:phone_number;size:15;not null"`
	Address      string                 `gorm:"column:address;size:300;not null"`
	CompanyID    uint                   `gorm:"column:company_id;not null;index"`
	Company      *company.Company       `gorm:"foreignKey:CompanyID"`
	DepartmentID uint                   `gorm:"column:department_id;not null;index"`
	Department   *department.Department `gorm:"foreignKey:DepartmentID"`
	DateHired    time.Time              `gorm:"column:date_hired;type:date;not null"`
	Salary       decimal.Decimal        `gorm:"column:salary;type:numeric(10,2);not null"`
	CreationTime time.Time              `gorm:"column:creation_time;autoCreateTime"`
	LastUpdated  time.Time              `gorm:"column:last_updated;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
