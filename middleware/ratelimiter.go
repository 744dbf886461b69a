package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter limits requests per client IP over a one minute window.
func RateLimiter(perMinute int64) gin.HandlerFunc {
	store := memory.NewStore()
	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  perMinute,
	}

	instance := limiter.New(store, rate)

	// 🚦 answer in the same JSON shape as every other error
	return ginlimiter.NewMiddleware(instance,
		ginlimiter.WithLimitReachedHandler(func(c *gin.Context) {
			log.Warn().Str("ip", GetIPFromContext(c)).Str("path", c.Request.URL.Path).Msg("🚦 rate limit reached")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		}),
		ginlimiter.WithKeyGetter(GetIPFromContext),
	)
}
