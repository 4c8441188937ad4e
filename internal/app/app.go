package app

import (
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/config"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/email"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires middleware, the mail transport, and all routes onto the
// router. Everything is constructed here and passed down explicitly; there
// are no package-level singletons.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(cfg)))

	mailer := buildMailer(cfg, logger)

	registerModules(router, cfg, mailer, logger)
	return nil
}

// buildMailer returns the relay transport, or the logging fallback when no
// credentials are configured. Missing credentials are not fatal: submissions
// still succeed, notifications are just logged.
func buildMailer(cfg config.Config, logger *zap.Logger) email.Service {
	mailer, err := email.NewRelayService(cfg.Mail)
	if err != nil {
		logger.Warn("email relay not configured, notifications will be logged only", zap.Error(err))
		return email.NewLogService(logger)
	}
	return mailer
}

// corsConfig is restrictive in production (FRONTEND_URL allow-list) and
// permissive for local development, matching how the site is deployed.
func corsConfig(cfg config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowCredentials = true
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", "X-Request-ID")

	if cfg.Env == config.EnvProduction && cfg.FrontendURL != "" {
		c.AllowOrigins = []string{cfg.FrontendURL}
		return c
	}

	c.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	return c
}
