package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gravity-games/dropfour/internal/domain"
)

type Config struct {
	Port            string
	AllowedOrigins  []string
	SessionTTL      time.Duration
	CleanupInterval time.Duration
	DefaultBotTier  domain.BotTier
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")
	sessionTTLMin := GetEnvAsInt("SESSION_TTL_MINUTES", 60)
	cleanupIntervalMin := GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 10)
	defaultTier := domain.ParseTier(GetEnv("DEFAULT_BOT_TIER", "normal"))

	// Build allowed origins list (localhost + CSV values)
	allowedOrigins := []string{
		"http://localhost:5173", // Local development
	}
	if extra := GetEnv("ALLOWED_ORIGINS", ""); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	AppConfig = &Config{
		Port:            port,
		AllowedOrigins:  allowedOrigins,
		SessionTTL:      time.Duration(sessionTTLMin) * time.Minute,
		CleanupInterval: time.Duration(cleanupIntervalMin) * time.Minute,
		DefaultBotTier:  defaultTier,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
