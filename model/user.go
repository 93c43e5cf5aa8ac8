// model/user.go
package model

import (
	"strings"
	"time"
)

type User struct {
	UserID         uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex" json:"username"`
	Email          string    `gorm:"column:email;type:varchar(254)" json:"email"`
	FirstName      string    `gorm:"column:first_name;type:varchar(150)" json:"first_name"`
	LastName       string    `gorm:"column:last_name;type:varchar(150)" json:"last_name"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(255);not null" json:"-"`
	IsActive       bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// Relations
	Sessions []Session `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName is the full name, or the username when no name is set.
func (u User) DisplayName() string {
	if full := strings.TrimSpace(u.FirstName + " " + u.LastName); full != "" {
		return full
	}
	return u.Username
}
