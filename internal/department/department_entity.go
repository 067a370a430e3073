package department

import "time"

type Department struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;size:30;not null"`
	Description  string    `gorm:"column:description;size:200;not null"`
	CompanyID    uint      `gorm:"column:company_id;not null;index"`
	CreationTime time.Time `gorm:"column:creation_time;autoCreateTime"`
	LastUpdated  time.Time `gorm:"column:last_updated;autoUpdateTime"`
}

func (Department) TableName() string {
	return "departments"
}
