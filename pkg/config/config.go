package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	NewsAPI   NewsAPIConfig
	Ingest    IngestConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type AdminConfig struct {
	Token string // Separate admin token (falls back to JWT secret if not set)
}

type RateLimitConfig struct {
	Enabled       bool
	MaxRequests   int
	WindowSeconds int
}

type NewsAPIConfig struct {
	APIKey   string
	BaseURL  string
	Query    string
	PageSize int
	Language string
}

type IngestConfig struct {
	Enabled  bool
	CronExpr string // hourly by default
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists (optional for production)
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	rateLimitMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "120"))
	rateLimitWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))
	newsPageSize, _ := strconv.Atoi(getEnv("NEWS_API_PAGE_SIZE", "20"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "ContentAnonymity API"),
			Port: getEnv("APP_PORT", "3000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "contentanonymity"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Admin: AdminConfig{
			Token: getEnv("ADMIN_TOKEN", ""), // Falls back to JWT_SECRET in middleware if empty
		},
		RateLimit: RateLimitConfig{
			Enabled:       getEnv("RATE_LIMIT_ENABLED", "true") == "true",
			MaxRequests:   rateLimitMax,
			WindowSeconds: rateLimitWindow,
		},
		NewsAPI: NewsAPIConfig{
			APIKey:   getEnv("NEWS_API_KEY", ""),
			BaseURL:  getEnv("NEWS_API_BASE_URL", "https://newsapi.org/v2"),
			Query:    getEnv("NEWS_API_QUERY", "faceless content marketing"),
			PageSize: newsPageSize,
			Language: getEnv("NEWS_API_LANGUAGE", "en"),
		},
		Ingest: IngestConfig{
			Enabled:  getEnv("INGEST_ENABLED", "true") == "true",
			CronExpr: getEnv("INGEST_CRON", "0 * * * *"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
