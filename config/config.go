package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port                 string
	GinMode              string
	DBDriver             string
	DBDSN                string
	JWTSecret            []byte
	SessionTTL           time.Duration
	SessionCookieSecure  bool
	Location             *time.Location
	CORSAllowedOrigins   []string
	SessionPurgeSchedule string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using process environment")
	}

	cfg := &Config{
		Port:                 getenv("PORT", "8080"),
		GinMode:              getenv("GIN_MODE", "release"),
		DBDriver:             strings.ToLower(getenv("DB_DRIVER", DriverMySQL)),
		DBDSN:                getenv("DB_DSN", "root:@tcp(localhost:3306)/gestion_forestal_db?charset=utf8mb4&parseTime=True&loc=UTC"),
		JWTSecret:            []byte(os.Getenv("JWT_SECRET_KEY")),
		SessionPurgeSchedule: getenv("SESSION_PURGE_SCHEDULE", "0 */10 * * * *"),
	}

	if cfg.DBDriver != DriverMySQL && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	ttl, err := strconv.Atoi(getenv("SESSION_TTL_SECONDS", "3600"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_SECONDS: %q", os.Getenv("SESSION_TTL_SECONDS"))
	}
	cfg.SessionTTL = time.Duration(ttl) * time.Second

	secure, err := strconv.ParseBool(getenv("SESSION_COOKIE_SECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_COOKIE_SECURE: %w", err)
	}
	cfg.SessionCookieSecure = secure

	loc, err := time.LoadLocation(getenv("TIME_ZONE", "America/Santiago"))
	if err != nil {
		log.Printf("Warning: unknown TIME_ZONE, falling back to UTC: %v", err)
		loc = time.UTC
	}
	cfg.Location = loc

	if origins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

// RequireSecret fails when no signing key is configured; only the HTTP server needs one.
func (c *Config) RequireSecret() error {
	if len(c.JWTSecret) == 0 {
		return fmt.Errorf("JWT_SECRET_KEY is not set")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
