package user

import "time"

// User is the login credential. Password only ever holds a bcrypt hash.
type User struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Username  string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uq_users_username"`
	Email     string    `gorm:"column:email;type:varchar(254);not null"`
	Password  string    `gorm:"column:password;type:varchar(128);not null"`
	IsActive  bool      `gorm:"column:is_active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
