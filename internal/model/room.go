package model

import (
	"time"

	"github.com/google/uuid"
)

type RoomStatus string

const (
	StatusLobby      RoomStatus = "lobby"
	StatusSubmitting RoomStatus = "submitting"
	StatusSwiping    RoomStatus = "swiping"
	StatusResults    RoomStatus = "results"
)

// Lifecycle is strictly linear: lobby -> submitting -> swiping -> results.
var validTransitions = map[RoomStatus]RoomStatus{
	StatusLobby:      StatusSubmitting,
	StatusSubmitting: StatusSwiping,
	StatusSwiping:    StatusResults,
}

func (s RoomStatus) CanTransitionTo(to RoomStatus) bool {
	next, ok := validTransitions[s]
	return ok && next == to
}

func (s RoomStatus) Valid() bool {
	switch s {
	case StatusLobby, StatusSubmitting, StatusSwiping, StatusResults:
		return true
	}
	return false
}

type Room struct {
	ID        uuid.UUID
	Code      string
	HostID    uuid.UUID
	Status    RoomStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoomMember struct {
	RoomID   uuid.UUID
	UserID   uuid.UUID
	User     *User
	JoinedAt time.Time
}

type RoomMovie struct {
	RoomID      uuid.UUID
	MovieID     int64
	SubmittedBy uuid.UUID
	CreatedAt   time.Time
}

type RoomSwipe struct {
	RoomID    uuid.UUID
	UserID    uuid.UUID
	MovieID   int64
	Direction SwipeDirection
	CreatedAt time.Time
}
