package ws_room

import (
	"encoding/json"
	"log/slog"
	"sync"
)

type Event struct {
	Name    string `json:"name"`
	Payload any    `json:"payload,omitempty"`
}

type roomEvent struct {
	roomCode string
	event    Event
}

// Hub fans room events out to every connected client of a room. It implements
// the room usecase's Notifier: Publish is fire-and-forget, a slow client is
// dropped rather than blocking the room.
type Hub struct {
	logger     *slog.Logger
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan roomEvent
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		logger:     slog.Default(),
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomEvent, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case re := <-h.broadcast:
			h.broadcastToRoom(re.roomCode, re.event)
		}
	}
}

// Publish queues an event for every client of the room.
func (h *Hub) Publish(roomCode string, event string, payload any) {
	select {
	case h.broadcast <- roomEvent{roomCode: roomCode, event: Event{Name: event, Payload: payload}}:
	default:
		h.logger.Warn("event dropped, broadcast queue full",
			slog.String("room", roomCode),
			slog.String("event", event))
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.rooms[client.roomCode]; !exists {
		h.rooms[client.roomCode] = make(map[*Client]bool)
	}
	h.rooms[client.roomCode][client] = true

	h.logger.Info("client registered",
		"user_id", client.userID,
		"room", client.roomCode)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if roomClients, exists := h.rooms[client.roomCode]; exists {
		if _, ok := roomClients[client]; ok {
			delete(roomClients, client)
			close(client.send)
			if len(roomClients) == 0 {
				delete(h.rooms, client.roomCode)
			}
		}
	}

	h.logger.Info("client unregistered",
		"user_id", client.userID,
		"room", client.roomCode)
}

func (h *Hub) broadcastToRoom(roomCode string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", "error", err)
		return
	}

	if roomClients, exists := h.rooms[roomCode]; exists {
		for client := range roomClients {
			select {
			case client.send <- data:
			default:
				close(client.send)
				delete(h.rooms[roomCode], client)
			}
		}
	}
}
