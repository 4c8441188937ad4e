package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	Port            string
	Env             string
	FrontendURL     string
	ShutdownTimeout time.Duration

	Mail        MailConfig
	Hours       ServiceHours
	BookingRate RateLimit
}

// MailConfig configures the outbound email relay. An empty APIKey means the
// relay is not configured and notifications are logged instead of sent.
type MailConfig struct {
	RelayURL        string
	APIKey          string
	FromEmail       string
	RestaurantEmail string
}

// ServiceHours is the booking window in minutes since midnight,
// inclusive of opening, exclusive of closing.
type ServiceHours struct {
	OpeningMinutes int
	ClosingMinutes int
}

type RateLimit struct {
	Max    int
	Window time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		Port:            envOrDefault("PORT", "3002"),
		Env:             envOrDefault("APP_ENV", EnvDevelopment),
		FrontendURL:     envOrDefault("FRONTEND_URL", ""),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		Mail: MailConfig{
			RelayURL:        envOrDefault("EMAIL_RELAY_URL", "https://api.resend.com"),
			APIKey:          strings.Trim(os.Getenv("EMAIL_API_KEY"), "\""),
			FromEmail:       envOrDefault("EMAIL_FROM", "onboarding@resend.dev"),
			RestaurantEmail: envOrDefault("RESTAURANT_EMAIL", "simpleplace@gmail.com"),
		},
		Hours: ServiceHours{
			OpeningMinutes: envClock("OPENING_TIME", 10*60),
			ClosingMinutes: envClock("CLOSING_TIME", 22*60),
		},
		BookingRate: RateLimit{
			Max:    envInt("BOOK_RATE_MAX", 10),
			Window: envDuration("BOOK_RATE_WINDOW_SECONDS", 15*time.Minute),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

// envClock reads an "HH:MM" value as minutes since midnight.
func envClock(key string, def int) int {
	v := os.Getenv(key)
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return def
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return def
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return def
	}
	return hours*60 + minutes
}
