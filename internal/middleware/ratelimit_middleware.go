package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/apperror"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitStore keeps one token bucket per source address. State is
// process-local and resets on restart.
type RateLimitStore struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewRateLimitStore allows max requests per window from each address,
// refilling evenly across the window.
func NewRateLimitStore(max int, window time.Duration) *RateLimitStore {
	if max < 1 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimitStore{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Every(window / time.Duration(max)),
		burst:   max,
	}
}

func (s *RateLimitStore) Allow(key string) bool {
	s.mu.Lock()
	limiter, ok := s.buckets[key]
	if !ok {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.buckets[key] = limiter
	}
	s.mu.Unlock()
	return limiter.Allow()
}

// RateLimitByIP rejects requests over the per-address budget with 429.
func RateLimitByIP(store *RateLimitStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Allow(c.ClientIP()) {
			response.Error(
				c,
				http.StatusTooManyRequests,
				apperror.CodeTooManyRequests,
				"Too many booking attempts, please try again later.",
				nil,
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
