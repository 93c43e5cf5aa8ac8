package middleware

import (
	"gestionforestal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testSession(ttl time.Duration) *model.Session {
	now := time.Now().UTC()
	return &model.Session{
		SessionID:  "0b6f4f5e-6a4e-4d5c-9a43-2f0c1e7d9b11",
		UserID:     7,
		ExpiresAt:  now.Add(ttl),
		LastSeenAt: now,
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("secret")
	session := testSession(time.Hour)

	token, err := SignSessionToken(secret, session)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := ParseSessionToken(secret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.ID != session.SessionID || claims.UserID != 7 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseSessionTokenRejects(t *testing.T) {
	secret := []byte("secret")

	valid, _ := SignSessionToken(secret, testSession(time.Hour))
	expired, _ := SignSessionToken(secret, testSession(-time.Minute))

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &model.SessionClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "abc",
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	foreignToken, _ := foreign.SignedString(secret)

	noID := jwt.NewWithClaims(jwt.SigningMethodHS256, &model.SessionClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noIDToken, _ := noID.SignedString(secret)

	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "abc", Issuer: issuer},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := map[string]struct {
		secret []byte
		token  string
	}{
		"wrong secret":   {[]byte("other"), valid},
		"expired":        {secret, expired},
		"foreign issuer": {secret, foreignToken},
		"missing id":     {secret, noIDToken},
		"alg none":       {secret, unsigned},
		"garbage":        {secret, "not.a.token"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseSessionToken(tc.secret, tc.token); err == nil {
				t.Fatalf("expected %s token to be rejected", name)
			}
		})
	}
}
