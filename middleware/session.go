package middleware

import (
	"errors"
	"fmt"
	"gestionforestal/config"
	"gestionforestal/model"
	"gestionforestal/services"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	SessionCookieName = "sessionid"
	LoginPath         = "/login/"
	issuer            = "gestionforestal"
)

func SignSessionToken(secret []byte, session *model.Session) (string, error) {
	claims := &model.SessionClaims{
		UserID: session.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.SessionID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(session.LastSeenAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseSessionToken(secret []byte, tokenString string) (*model.SessionClaims, error) {
	claims := &model.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ID == "" {
		return nil, errors.New("invalid session claims")
	}
	return claims, nil
}

// SetSessionCookie writes the HTTP-only session cookie for session.
func SetSessionCookie(c *gin.Context, cfg *config.Config, session *model.Session) error {
	token, err := SignSessionToken(cfg.JWTSecret, session)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(cfg.SessionTTL.Seconds()), "/", "", cfg.SessionCookieSecure, true)
	return nil
}

func ExpireSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", cfg.SessionCookieSecure, true)
}

// CurrentSession resolves the session cookie on the request, if any.
func CurrentSession(c *gin.Context, db *gorm.DB, cfg *config.Config) (*model.Session, error) {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		return nil, services.ErrInvalidSession
	}
	claims, err := ParseSessionToken(cfg.JWTSecret, raw)
	if err != nil {
		return nil, services.ErrInvalidSession
	}
	session, err := services.LookupSession(c.Request.Context(), db, claims.ID)
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, services.ErrInvalidSession
	}
	return session, nil
}

// SessionMiddleware guards protected routes. Requests without a valid session
// are redirected to the login page before any handler runs; valid sessions get
// their expiry renewed.
func SessionMiddleware(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := CurrentSession(c, db, cfg)
		if err != nil {
			if !errors.Is(err, services.ErrInvalidSession) {
				log.Printf("session lookup failed: %v", err)
			}
			ExpireSessionCookie(c, cfg)
			c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}

		if err := services.TouchSession(c.Request.Context(), db, session, cfg.SessionTTL); err != nil {
			log.Printf("session renew failed: %v", err)
		} else if err := SetSessionCookie(c, cfg, session); err != nil {
			log.Printf("session cookie renew failed: %v", err)
		}

		c.Set("userId", session.UserID)
		c.Set("username", session.User.Username)
		c.Set("displayName", session.User.DisplayName())
		c.Set("sessionId", session.SessionID)
		c.Next()
	}
}
