package http_ratelimit_middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelrank/core/internal/delivery/http/common"
)

type Limiter interface {
	Allow(identifier string, limit int, window time.Duration) (bool, error)
}

type Middleware struct {
	limiter Limiter
	logger  *slog.Logger
}

func New(limiter Limiter) *Middleware {
	return &Middleware{
		limiter: limiter,
		logger:  slog.Default(),
	}
}

// Limit gates the route on a per-client-IP budget. A limiter failure lets the
// request through.
func (m *Middleware) Limit(limit int, window time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		allowed, err := m.limiter.Allow(ctx.ClientIP(), limit, window)
		if err != nil {
			m.logger.Error("rate limiter unavailable", slog.String("error", err.Error()))
			ctx.Next()
			return
		}
		if !allowed {
			http_common.Error(ctx, http.StatusTooManyRequests, "too many requests")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
