package app

import (
	"net/http"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/booking"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/config"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/email"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/middleware"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/notify"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/order"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/apperror"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, cfg config.Config, mailer email.Service, logger *zap.Logger) {
	// --- Services ---
	notifier := notify.NewService(notify.Deps{
		Mailer:        mailer,
		OperatorEmail: cfg.Mail.RestaurantEmail,
		Logger:        logger,
	})
	bookingService := booking.NewService(booking.Deps{
		Notifier: notifier,
		Hours:    cfg.Hours,
		Logger:   logger,
	})
	orderService := order.NewService(order.Deps{
		Notifier: notifier,
		Logger:   logger,
	})

	// --- Handlers ---
	bookingHandler := booking.NewHandler(bookingService, logger)
	orderHandler := order.NewHandler(orderService, logger)

	bookingLimiter := middleware.NewRateLimitStore(cfg.BookingRate.Max, cfg.BookingRate.Window)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		api.GET("/health", healthHandler)
		booking.RegisterRoutes(api, bookingHandler, bookingLimiter)
		order.RegisterRoutes(api, orderHandler)
	}

	router.NoRoute(notFoundHandler)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Simple Place API is running",
	})
}

func notFoundHandler(c *gin.Context) {
	response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "API endpoint not found", nil)
}
