package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env  string
	Port string

	DatabaseURL string

	TMDBAPIKey    string
	TMDBReadToken string
	TMDBBaseURL   string
	OMDBAPIKey    string
	OMDBBaseURL   string

	// Path to the identity provider's service-account credentials. Empty
	// selects the local development provider.
	IdentityCredentialsFile string
	AuthSecret              string
	TokenTTL                time.Duration

	// SelfURL enables the keep-alive pinger when non-empty.
	SelfURL      string
	PingInterval time.Duration
}

func Load() *Config {
	ttlHours, _ := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "72"))
	pingMinutes, _ := strconv.Atoi(getEnv("PING_INTERVAL_MINUTES", "10"))

	return &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "4000"),

		DatabaseURL: getEnv("DATABASE_URL", "cinelog.db"),

		TMDBAPIKey:    getEnv("TMDB_API_KEY", ""),
		TMDBReadToken: getEnv("TMDB_READ_ACCESS_TOKEN", ""),
		TMDBBaseURL:   getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		OMDBAPIKey:    getEnv("OMDB_API_KEY", ""),
		OMDBBaseURL:   getEnv("OMDB_BASE_URL", "https://www.omdbapi.com"),

		IdentityCredentialsFile: getEnv("IDENTITY_CREDENTIALS_FILE", ""),
		AuthSecret:              getEnv("AUTH_SECRET", "dev-secret-change-in-production"),
		TokenTTL:                time.Duration(ttlHours) * time.Hour,

		SelfURL:      getEnv("SELF_URL", ""),
		PingInterval: time.Duration(pingMinutes) * time.Minute,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
