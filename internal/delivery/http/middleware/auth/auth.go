package http_auth_middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelrank/core/internal/delivery/http/common"
	"github.com/reelrank/core/internal/service/auth"
)

type Middleware struct {
	service *auth.Service
	logger  *slog.Logger
}

func New(service *auth.Service) *Middleware {
	return &Middleware{
		service: service,
		logger:  slog.Default(),
	}
}

// AuthRequired resolves the Bearer token into a user and stores it in the
// request context.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			http_common.Error(ctx, http.StatusUnauthorized, "missing or invalid authorization header")
			ctx.Abort()
			return
		}

		user, err := m.service.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			m.logger.Warn("authentication failed",
				slog.String("request_id", http_common.RequestIDFrom(ctx)),
				slog.String("error", err.Error()))
			http_common.Error(ctx, http.StatusUnauthorized, "invalid or expired token")
			ctx.Abort()
			return
		}

		http_common.SetUser(ctx, user)
		ctx.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
