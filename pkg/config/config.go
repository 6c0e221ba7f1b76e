package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	LogLevel         string
	DatabaseURL      string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// AI oracle
	AIProvider       string
	OpenAIApiKey     string
	OpenAIModel      string
	OpenAIBaseURL    string
	GeminiApiKey     string
	GeminiModel      string
	OllamaBaseURL    string
	OllamaModel      string
	AITimeout        time.Duration
	AIMaxConcurrency int64

	// Accounts allowed to change oracle settings at runtime
	SettingsAdminEmails []string

	// Pagination bounds for list endpoints
	PaginationDefaultLimit int
	PaginationMaxLimit     int

	// Seed data
	SeedOnStart       bool
	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminName     string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	seedAdminEmail := getEnv("SEED_ADMIN_EMAIL", "admin@addvocate.ai")

	return &Config{
		Port:             getEnv("PORT", "3000"),
		GinMode:          getEnv("GIN_MODE", "release"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DatabaseURL:      databaseURL(),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:  getDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
		JWTRefreshExpiry: getDuration("JWT_REFRESH_EXPIRY", 168*time.Hour), // 7 days

		AIProvider:       getEnv("AI_PROVIDER", "openai"),
		OpenAIApiKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", ""),
		GeminiApiKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:      getEnv("OLLAMA_MODEL", "llama3"),
		AITimeout:        getDuration("AI_TIMEOUT", 90*time.Second),
		AIMaxConcurrency: int64(getInt("AI_MAX_CONCURRENCY", 4)),

		SettingsAdminEmails: getList("SETTINGS_ADMIN_EMAILS", []string{seedAdminEmail}),

		PaginationDefaultLimit: getInt("PAGINATION_DEFAULT_LIMIT", 10),
		PaginationMaxLimit:     getInt("PAGINATION_MAX_LIMIT", 100),

		SeedOnStart:       getBool("SEED_ON_START", true),
		SeedAdminEmail:    seedAdminEmail,
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
		SeedAdminName:     getEnv("SEED_ADMIN_NAME", "Addvocate Admin"),
	}
}

// databaseURL prefers DATABASE_URL and falls back to the discrete DB_* variables.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "addvocate"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getList splits a comma-separated value into lower-cased, non-empty entries.
func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			list = append(list, item)
		}
	}
	return list
}
