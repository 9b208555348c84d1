package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Redis    RedisConfig
	Login    LoginConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is
	// believed. Empty means the peer address is the client address.
	TrustedProxies []string
}

type DatabaseConfig struct {
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig carries the signing secret and the claims every token is checked against.
type JWTConfig struct {
	Key              string
	Issuer           string
	Audience         string
	ExpiryMinutes    int
	ClockSkewSeconds int
}

// AdminConfig seeds the single admin account on first boot.
// SeedFile, when set, takes precedence over Username/Password.
type AdminConfig struct {
	Username string
	Password string
	SeedFile string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoginConfig bounds failed login attempts per client. MaxAttempts <= 0 disables throttling.
type LoginConfig struct {
	MaxAttempts   int
	WindowMinutes int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			TrustedProxies: getEnvAsList("TRUSTED_PROXIES", nil),
		},
		Database: DatabaseConfig{
			DSN:      getEnv("DB_DSN", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "portfolio"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Key:              getEnv("JWT_KEY", ""),
			Issuer:           getEnv("JWT_ISSUER", "portfolio-api"),
			Audience:         getEnv("JWT_AUDIENCE", "portfolio-client"),
			ExpiryMinutes:    getEnvAsInt("JWT_EXPIRY_MINUTES", 60),
			ClockSkewSeconds: getEnvAsInt("JWT_CLOCK_SKEW_SECONDS", 0),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
			SeedFile: getEnv("ADMIN_SEED_FILE", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Login: LoginConfig{
			MaxAttempts:   getEnvAsInt("LOGIN_MAX_ATTEMPTS", 10),
			WindowMinutes: getEnvAsInt("LOGIN_WINDOW_MINUTES", 15),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.DSN == "" && c.Database.Host == "" {
		return fmt.Errorf("DB_DSN or DB_HOST is required")
	}

	if strings.TrimSpace(c.JWT.Key) == "" {
		return fmt.Errorf("JWT_KEY is required")
	}

	if c.JWT.ExpiryMinutes <= 0 {
		return fmt.Errorf("JWT_EXPIRY_MINUTES must be positive")
	}

	if c.JWT.ClockSkewSeconds < 0 {
		return fmt.Errorf("JWT_CLOCK_SKEW_SECONDS must not be negative")
	}

	if c.Admin.SeedFile == "" && (c.Admin.Username == "" || c.Admin.Password == "") {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}

	if c.Login.MaxAttempts > 0 && c.Login.WindowMinutes <= 0 {
		return fmt.Errorf("LOGIN_WINDOW_MINUTES must be positive when throttling is enabled")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.WithField("key", key).Warnf("invalid integer, using default %d", defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
