package models

import "time"

type User struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:idx_username" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"` // bcrypt hash
	Email     string    `gorm:"column:emailaddress;type:varchar(255)" json:"email"`
	Name      string    `gorm:"column:name;type:varchar(128)" json:"name"`
	Status    string    `gorm:"column:accountStatus;type:varchar(32);default:active" json:"status"`
	Role      string    `gorm:"column:role;type:varchar(32);default:user" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
