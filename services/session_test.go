package services

import (
	"context"
	"errors"
	"gestionforestal/model"
	"testing"
	"time"
)

const sessionTTL = time.Hour

func TestSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, db, "ana", "secreto123")

	session, err := CreateSession(ctx, db, user.UserID, sessionTTL)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(session.SessionID) != 36 {
		t.Fatalf("expected uuid session id, got %q", session.SessionID)
	}

	got, err := LookupSession(ctx, db, session.SessionID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.User.Username != "ana" {
		t.Fatalf("expected user preloaded, got %+v", got.User)
	}

	previous := got.ExpiresAt
	time.Sleep(10 * time.Millisecond)
	if err := TouchSession(ctx, db, got, sessionTTL); err != nil {
		t.Fatalf("touch: %v", err)
	}
	again, err := LookupSession(ctx, db, session.SessionID)
	if err != nil {
		t.Fatalf("lookup after touch: %v", err)
	}
	if !again.ExpiresAt.After(previous) {
		t.Fatalf("expected expiry to slide forward")
	}

	if err := RevokeSession(ctx, db, session.SessionID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := LookupSession(ctx, db, session.SessionID); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after revoke, got %v", err)
	}
}

func TestLookupSessionRejectsExpiredAndInactive(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, db, "ana", "secreto123")

	expired, err := CreateSession(ctx, db, user.UserID, -time.Minute)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := LookupSession(ctx, db, expired.SessionID); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected expired session rejected, got %v", err)
	}

	live, err := CreateSession(ctx, db, user.UserID, sessionTTL)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	db.Model(&model.User{}).Where("user_id = ?", user.UserID).Update("is_active", false)
	if _, err := LookupSession(ctx, db, live.SessionID); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected inactive user session rejected, got %v", err)
	}

	if _, err := LookupSession(ctx, db, "no-such-session"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected unknown session rejected, got %v", err)
	}
}

func TestPurgeExpiredSessions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, db, "ana", "secreto123")

	for i := 0; i < 2; i++ {
		if _, err := CreateSession(ctx, db, user.UserID, -time.Minute); err != nil {
			t.Fatalf("create expired: %v", err)
		}
	}
	live, err := CreateSession(ctx, db, user.UserID, sessionTTL)
	if err != nil {
		t.Fatalf("create live: %v", err)
	}

	n, err := PurgeExpiredSessions(ctx, db)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 purged, got %d", n)
	}
	if _, err := LookupSession(ctx, db, live.SessionID); err != nil {
		t.Fatalf("live session must survive purge: %v", err)
	}
}

func TestLookupSessionLoadsUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, db, "ana", "secreto123")

	session, err := CreateSession(ctx, db, user.UserID, sessionTTL)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := LookupSession(ctx, db, session.SessionID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.User.UserID != user.UserID || got.User.DisplayName() != "ana" {
		t.Fatalf("expected session user loaded, got %+v", got.User)
	}

	if err := db.Delete(&model.User{}, user.UserID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := LookupSession(ctx, db, session.SessionID); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected deleted user's session rejected, got %v", err)
	}
}
