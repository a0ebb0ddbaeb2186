package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ProjectID          string
	LogLevel           string
	Port               string
	AllowedOrigins     []string
	StatusPollInterval time.Duration
	WatchRevocation    bool
}

func New() *Config {
	return &Config{
		ProjectID:          os.Getenv("PROJECTID"),
		LogLevel:           os.Getenv("LOGLEVEL"),
		Port:               getOr("PORT", "8080"),
		AllowedOrigins:     getOrigins(os.Getenv("ALLOWEDORIGINS")),
		StatusPollInterval: getPollInterval(os.Getenv("STATUSPOLLSECONDS")),
		WatchRevocation:    getBool("WATCHREVOCATION"),
	}
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getOrigins(raw string) []string {
	if raw == "" {
		return []string{"http://localhost:5000", "http://127.0.0.1:5000"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getPollInterval(raw string) time.Duration {
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		secs = 5
	}
	return time.Duration(secs) * time.Second
}

func getBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
