package ws_room

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/reelrank/core/internal/delivery/http/common"
	usecase_room "github.com/reelrank/core/internal/usecase/room"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	userID   string
	roomCode string
}

type Controller struct {
	hub     *Hub
	usecase *usecase_room.Usecase
	auth    gin.HandlerFunc
	logger  *slog.Logger
}

func NewController(hub *Hub, usecase *usecase_room.Usecase, auth gin.HandlerFunc) *Controller {
	return &Controller{
		hub:     hub,
		usecase: usecase,
		auth:    auth,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/rooms/:code/ws", c.auth, c.subscribe)
}

// subscribe upgrades the connection and attaches the caller to the room's
// event stream.
func (c *Controller) subscribe(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	code := ctx.Param("code")
	if _, err := c.usecase.Get(ctx.Request.Context(), code); err != nil {
		if errors.Is(err, usecase_room.ErrRoomNotFound) {
			http_common.Error(ctx, http.StatusNotFound, "room not found")
			return
		}
		http_common.Error(ctx, http.StatusInternalServerError, "internal error")
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		hub:      c.hub,
		conn:     conn,
		send:     make(chan []byte, 16),
		userID:   user.ID.String(),
		roomCode: code,
	}

	c.hub.register <- client
	go client.writePump()
	go client.readPump()
}

func (cl *Client) readPump() {
	defer func() {
		cl.hub.unregister <- cl
		cl.conn.Close()
	}()

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (cl *Client) writePump() {
	defer cl.conn.Close()

	for message := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}
