package config_test

import (
	"testing"
	"time"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := config.FromEnv()

	assert.Equal(t, "3002", cfg.Port)
	assert.Equal(t, config.EnvDevelopment, cfg.Env)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.Equal(t, "https://api.resend.com", cfg.Mail.RelayURL)
	assert.Equal(t, "onboarding@resend.dev", cfg.Mail.FromEmail)
	assert.Equal(t, "simpleplace@gmail.com", cfg.Mail.RestaurantEmail)

	assert.Equal(t, 10*60, cfg.Hours.OpeningMinutes)
	assert.Equal(t, 22*60, cfg.Hours.ClosingMinutes)

	assert.Equal(t, 10, cfg.BookingRate.Max)
	assert.Equal(t, 15*time.Minute, cfg.BookingRate.Window)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", config.EnvProduction)
	t.Setenv("FRONTEND_URL", "https://simpleplace.example.com")
	t.Setenv("EMAIL_API_KEY", `"re_123"`)
	t.Setenv("OPENING_TIME", "09:30")
	t.Setenv("CLOSING_TIME", "23:00")
	t.Setenv("BOOK_RATE_MAX", "5")
	t.Setenv("BOOK_RATE_WINDOW_SECONDS", "60")

	cfg := config.FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.EnvProduction, cfg.Env)
	assert.Equal(t, "https://simpleplace.example.com", cfg.FrontendURL)
	// surrounding quotes from .env files are stripped
	assert.Equal(t, "re_123", cfg.Mail.APIKey)
	assert.Equal(t, 9*60+30, cfg.Hours.OpeningMinutes)
	assert.Equal(t, 23*60, cfg.Hours.ClosingMinutes)
	assert.Equal(t, 5, cfg.BookingRate.Max)
	assert.Equal(t, time.Minute, cfg.BookingRate.Window)
}

func TestFromEnv_MalformedClockFallsBack(t *testing.T) {
	for _, bad := range []string{"ten", "25:00", "10:75", "10"} {
		t.Run(bad, func(t *testing.T) {
			t.Setenv("OPENING_TIME", bad)
			cfg := config.FromEnv()
			assert.Equal(t, 10*60, cfg.Hours.OpeningMinutes)
		})
	}
}
