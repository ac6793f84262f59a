package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/logger"
)

// RateLimit allows each client IP burst requests and then one per every.
// Limiters of idle clients expire after ten minutes.
func RateLimit(every time.Duration, burst int) gin.HandlerFunc {
	limiters := cache.New(10*time.Minute, 20*time.Minute)
	var mu sync.Mutex

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if l, ok := limiters.Get(ip); ok {
			limiters.SetDefault(ip, l)
			return l.(*rate.Limiter)
		}
		l := rate.NewLimiter(rate.Every(every), burst)
		limiters.SetDefault(ip, l)
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			logger.Get().Warnw("rate limit exceeded", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			abortWithError(c, apperrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
