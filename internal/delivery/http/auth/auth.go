package http_auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelrank/core/internal/delivery/http/common"
	"github.com/reelrank/core/internal/service/auth"
)

type Controller struct {
	service *auth.Service
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(service *auth.Service, opts ...ControllerOption) *Controller {
	c := &Controller{
		service: service,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/verify", c.verify)
}

type ProfileDTO struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// Verify checks the bearer token and returns the caller's profile
// @Summary Verify token
// @Description Validates the bearer token and upserts the user record
// @Tags Auth
// @Produce json
// @Success 200 {object} ProfileDTO "Authenticated profile"
// @Failure 401 {object} http_common.ErrorResponse "Invalid token"
// @Security BearerToken
// @Router /auth/verify [post]
func (c *Controller) verify(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		http_common.Error(ctx, http.StatusUnauthorized, "missing bearer token")
		return
	}

	user, err := c.service.Authenticate(ctx.Request.Context(), parts[1])
	if err != nil {
		c.logger.Warn("token verification failed",
			slog.String("request_id", http_common.RequestIDFrom(ctx)),
			slog.String("error", err.Error()))
		http_common.Error(ctx, http.StatusUnauthorized, "invalid token")
		return
	}

	ctx.JSON(http.StatusOK, ProfileDTO{
		UserID:      user.ID.String(),
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
	})
}
