package booking

import (
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the booking endpoint. Only this endpoint carries the
// per-address rate limit; it is the one the original site saw abused.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, limiter *middleware.RateLimitStore) {
	r.POST("/book", middleware.RateLimitByIP(limiter), handler.Submit)
}
