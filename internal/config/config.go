package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	GeminiAPIKey string
	GeminiModel  string

	LanguageToolURL string

	// Description pipeline knobs.
	MaxAttempts      int
	MaxGrammarIssues int
	MinReadability   float64

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "meetspace.db"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me-jwt-secret"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		LanguageToolURL:  getEnv("LANGUAGETOOL_URL", "https://api.languagetool.org"),
		MaxAttempts:      getEnvInt("DESCRIPTION_MAX_ATTEMPTS", 5),
		MaxGrammarIssues: getEnvInt("DESCRIPTION_MAX_GRAMMAR_ISSUES", 5),
		MinReadability:   getEnvFloat("DESCRIPTION_MIN_READABILITY", 50),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "console"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}
