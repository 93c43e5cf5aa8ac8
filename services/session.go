package services

import (
	"context"
	"errors"
	"gestionforestal/model"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CreateSession(ctx context.Context, db *gorm.DB, userID uint, ttl time.Duration) (*model.Session, error) {
	now := time.Now().UTC()
	session := model.Session{
		SessionID:  uuid.NewString(),
		UserID:     userID,
		ExpiresAt:  now.Add(ttl),
		LastSeenAt: now,
	}
	if err := db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// LookupSession returns an unexpired session with its active user loaded.
func LookupSession(ctx context.Context, db *gorm.DB, sessionID string) (*model.Session, error) {
	var session model.Session
	err := db.WithContext(ctx).
		Where("session_id = ? AND expires_at > ?", sessionID, time.Now().UTC()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	user, err := GetUser(ctx, db, session.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidSession
	}
	session.User = *user
	return &session, nil
}

// TouchSession slides the expiry of a session forward by ttl.
func TouchSession(ctx context.Context, db *gorm.DB, session *model.Session, ttl time.Duration) error {
	now := time.Now().UTC()
	session.LastSeenAt = now
	session.ExpiresAt = now.Add(ttl)
	return db.WithContext(ctx).Model(&model.Session{}).
		Where("session_id = ?", session.SessionID).
		Updates(map[string]interface{}{
			"last_seen_at": session.LastSeenAt,
			"expires_at":   session.ExpiresAt,
		}).Error
}

func RevokeSession(ctx context.Context, db *gorm.DB, sessionID string) error {
	return db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&model.Session{}).Error
}

func PurgeExpiredSessions(ctx context.Context, db *gorm.DB) (int64, error) {
	result := db.WithContext(ctx).Where("expires_at <= ?", time.Now().UTC()).Delete(&model.Session{})
	return result.RowsAffected, result.Error
}
