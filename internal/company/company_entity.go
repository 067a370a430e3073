package company

import "time"

type Company struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;size:50;not null"`
	Address      string    `gorm:"column:address;size:50;not null"`
	Email        string    `gorm:"column:email;size:50;not null"`
	CreationTime time.Time `gorm:"column:creation_time;autoCreateTime"`
	LastUpdated  time.Time `gorm:"column:last_updated;autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}
