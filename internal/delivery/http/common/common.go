package http_common

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reelrank/core/internal/model"
)

// ErrorResponse is the uniform error body. RequestID is the correlation id for
// support tracing; internal error details never reach the client.
type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

const (
	requestIDKey    = "request_id"
	userKey         = "user"
	RequestIDHeader = "X-Request-Id"
)

// NewRequestID makes a short correlation id.
func NewRequestID() string {
	return uuid.New().String()[:8]
}

// RequestID assigns a correlation id to every request and echoes it in the
// response headers.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = NewRequestID()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

func RequestIDFrom(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}

func SetUser(ctx *gin.Context, user model.User) {
	ctx.Set(userKey, user)
}

// UserFrom returns the authenticated user placed by the auth middleware.
func UserFrom(ctx *gin.Context) (model.User, bool) {
	v, ok := ctx.Get(userKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// Error writes the uniform error body with the request's correlation id.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{
		Message:   message,
		RequestID: RequestIDFrom(ctx),
	})
}
