// model/session.go
package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	SessionID  string    `gorm:"column:session_id;type:varchar(36);primaryKey"`
	UserID     uint      `gorm:"column:user_id;not null;index"`
	ExpiresAt  time.Time `gorm:"column:expires_at;not null;index"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	LastSeenAt time.Time `gorm:"column:last_seen_at"`

	// Loaded by services.LookupSession; the foreign key is declared on User.Sessions.
	User User `gorm:"-"`
}

func (Session) TableName() string {
	return "sessions"
}

// SessionClaims is the payload of the session cookie; RegisteredClaims.ID carries Session.SessionID.
type SessionClaims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}
