package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Storage drivers
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Storage driver selection
	Storage StorageConfig

	// Database configuration
	Database DatabaseConfig

	// JWT configuration
	JWT JWTConfig

	// Google OAuth configuration
	GoogleOAuth GoogleOAuthConfig

	// CORS configuration
	CORS CORSConfig

	// External AI service configuration
	AI AIConfig

	// Redis cache configuration
	Redis RedisConfig

	// Rate limiting for credential endpoints
	RateLimit RateLimitConfig

	// Logging configuration
	Log LogConfig

	// FrontendURL is where OAuth logins are redirected
	FrontendURL string
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// StorageConfig selects the repository implementation
type StorageConfig struct {
	Driver string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConns       int32
	MinConns       int32
	MaxLifetime    time.Duration
	ConnTimeout    time.Duration
	QueryTimeout   time.Duration
	SimpleProtocol bool
	AutoMigrate    bool
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret          string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// GoogleOAuthConfig holds Google OAuth configuration
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// AIConfig holds the external AI service configuration
type AIConfig struct {
	BaseURL string
	Timeout time.Duration
	TopK    int
}

// RedisConfig holds the recommendation cache configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration

	// CacheEnabled turns recommendation caching off entirely when false
	CacheEnabled bool
}

// RateLimitConfig holds per-client limits for auth endpoints
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int

	// TrustProxy keys clients on X-Forwarded-For; only safe behind a reverse proxy
	TrustProxy bool
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables
func Load(log *logrus.Logger) (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Warnf(".env file not found: %v", err)
		}
	}

	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	frontendURL := getEnv("FRONTEND_URL", "http://localhost:3000")

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", getEnv("SERVER_PORT", "5000")),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
			MaxBodyBytes:    int64(getIntEnv("SERVER_MAX_BODY_BYTES", 25<<20)),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getEnv("STORAGE", StoragePostgres)),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", ""),
			Name:           getEnv("DB_NAME", "fashion_recommendation"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       getInt32Env("DB_MAX_CONNS", 5),
			MinConns:       getInt32Env("DB_MIN_CONNS", 0),
			MaxLifetime:    getDurationEnv("DB_MAX_LIFETIME", time.Hour),
			ConnTimeout:    getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
			QueryTimeout:   getDurationEnv("DB_QUERY_TIMEOUT", 30*time.Second),
			SimpleProtocol: getBoolEnv("DB_SIMPLE_PROTOCOL", true),
			AutoMigrate:    getBoolEnv("DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:          jwtSecret,
			RefreshSecret:   getEnv("JWT_REFRESH_SECRET", jwtSecret),
			AccessTokenTTL:  getDurationEnv("JWT_EXPIRES_IN", 24*time.Hour),
			RefreshTokenTTL: getDurationEnv("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
		},
		GoogleOAuth: GoogleOAuthConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:5000/api/auth/google/callback"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{frontendURL}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
		AI: AIConfig{
			BaseURL: strings.TrimRight(getEnv("AI_SERVICE_URL", ""), "/"),
			Timeout: getDurationEnv("AI_SERVICE_TIMEOUT", 10*time.Second),
			TopK:    getIntEnv("AI_TOP_K", 10),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			CacheTTL: getDurationEnv("RECOMMENDATION_CACHE_TTL", 10*time.Minute),

			CacheEnabled: getBoolEnv("RECOMMENDATION_CACHE_ENABLED", true),
		},
		RateLimit: RateLimitConfig{
			Enabled:    getBoolEnv("RATE_LIMIT_ENABLED", true),
			RPS:        getFloatEnv("RATE_LIMIT_RPS", 5),
			Burst:      getIntEnv("RATE_LIMIT_BURST", 10),
			TrustProxy: getBoolEnv("RATE_LIMIT_TRUST_PROXY", false),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		FrontendURL: strings.TrimRight(frontendURL, "/"),
	}

	// Validate required configuration
	if err := config.Validate(log); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate(log *logrus.Logger) error {
	switch c.Storage.Driver {
	case StoragePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case StorageMemory:
		log.Warn("STORAGE=memory: data is kept in process and lost on restart")
	default:
		return fmt.Errorf("unknown STORAGE driver %q", c.Storage.Driver)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if !c.IsAIConfigured() {
		log.Warn("AI_SERVICE_URL not configured. Quiz analysis will use the local fallback.")
	}

	// Check required Google OAuth configuration
	if !c.IsGoogleOAuthConfigured() {
		log.Warn("Google OAuth credentials not configured. Google login will not work.")
	}

	if !c.Redis.CacheEnabled {
		log.Warn("RECOMMENDATION_CACHE_ENABLED is false. Recommendations will not be cached.")
	} else if !c.IsRedisConfigured() {
		log.Warn("REDIS_ADDR not configured. Recommendations are cached in process memory.")
	}

	return nil
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}

// IsGoogleOAuthConfigured checks if Google OAuth is properly configured
func (c *Config) IsGoogleOAuthConfigured() bool {
	return c.GoogleOAuth.ClientID != "" && c.GoogleOAuth.ClientSecret != ""
}

// IsAIConfigured reports whether an AI service URL was provided
func (c *Config) IsAIConfigured() bool {
	return c.AI.BaseURL != ""
}

// IsRedisConfigured reports whether a Redis address was provided
func (c *Config) IsRedisConfigured() bool {
	return c.Redis.Addr != ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
