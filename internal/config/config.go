package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

const defaultJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port        string
	Env         string
	StoreDriver string
	MongoURL    string
	DBName      string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
	LLMProvider string
	LLMAPIKey   string
	LLMModel    string
	LLMBaseURL  string
	CORSOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		StoreDriver: getEnv("STORE_DRIVER", "mongo"),
		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "careerpath"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/careerpath?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpiry:   24 * time.Hour,
		LLMProvider: getEnv("LLM_PROVIDER", "gemini"),
		LLMAPIKey:   os.Getenv("LLM_API_KEY"),
		LLMModel:    os.Getenv("LLM_MODEL"),
		LLMBaseURL:  getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	if cfg.Env == "production" && cfg.JWTSecret == defaultJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList splits a comma-separated env value, dropping empty items.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
