package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// App holds the active configuration. Populated by Load() at startup;
// tests may swap it out wholesale.
var App *Config

type Config struct {
	Port           string
	Env            string
	DB             DatabaseConfig
	Auth           AuthConfig
	Media          MediaConfig
	SMTP           SMTPConfig
	AllowedOrigins []string
	LogToken       string
}

type DatabaseConfig struct {
	Driver   string // "sqlite" (default) or "mysql"
	Path     string // sqlite file path
	Host     string
	Port     string
	Database string
	Username string
	Password string
}

type AuthConfig struct {
	JWTSecret   string
	ExpireHours int
}

type MediaConfig struct {
	UploadPath    string // admin-side upload tree
	PublicPath    string // public assets tree mirrored for the front-end
	MaxUploadSize int64  // bytes
	ImageMaxWidth int    // px, wider images are downscaled for the public copy
	JPEGQuality   int
}

type SMTPConfig struct {
	Host          string
	Port          int
	User          string
	Pass          string
	From          string
	NotifyTo      []string // recipients for inquiry/quote notifications
	SkipTLSVerify bool
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads configuration from environment variables with development
// defaults. Secrets have no defaults in production.
func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", getEnv("SERVER_PORT", "8080")),
		Env:  getEnv("ENVIRONMENT", "development"),
		DB: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			Path:     getEnv("DB_PATH", "led_admin.db"),
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnv("DB_PORT", "3306"),
			Database: getEnv("DB_DATABASE", "led_admin"),
			Username: getEnv("DB_USERNAME", "root"),
			Password: getEnv("DB_PASSWORD", ""),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", "dev-only-secret"),
			ExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),
		},
		Media: MediaConfig{
			UploadPath:    getEnv("UPLOAD_PATH", "./uploads"),
			PublicPath:    getEnv("PUBLIC_ASSETS_PATH", "./assets"),
			MaxUploadSize: int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 50)) * 1024 * 1024,
			ImageMaxWidth: getEnvInt("IMAGE_MAX_WIDTH", 1920),
			JPEGQuality:   getEnvInt("JPEG_QUALITY", 85),
		},
		SMTP: SMTPConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          getEnvInt("SMTP_PORT", 587),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			From:          os.Getenv("SMTP_FROM"),
			NotifyTo:      splitList(os.Getenv("NOTIFY_EMAILS")),
			SkipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",
		},
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		LogToken:       os.Getenv("LOG_ACCESS_TOKEN"),
	}

	App = cfg
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v == 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// TokenExpiry returns the configured JWT lifetime.
func (a AuthConfig) TokenExpiry() time.Duration {
	return time.Duration(a.ExpireHours) * time.Hour
}
