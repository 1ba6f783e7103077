package model

import (
	"time"

	"github.com/google/uuid"
)

// SoloSwipe is unique per (user, movie); repeated swipes overwrite the direction.
type SoloSwipe struct {
	UserID    uuid.UUID
	MovieID   int64
	Direction SwipeDirection
	CreatedAt time.Time
}

// PairwiseChoice is a forced this-or-that pick. ChosenID is always one of the
// two movie ids; createdAt order matters for the rating fold.
type PairwiseChoice struct {
	UserID    uuid.UUID
	MovieAID  int64
	MovieBID  int64
	ChosenID  int64
	CreatedAt time.Time
}

type WatchedMovie struct {
	UserID    uuid.UUID
	MovieID   int64
	Rating    float64
	WatchedAt string
	Venue     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SoloRanking struct {
	MovieID     int64
	Movie       Movie
	EloScore    float64
	SwipeSignal int
	Rank        int
}

type MovieUserStatus struct {
	SwipeDirection *SwipeDirection
	Watched        *WatchedMovie
	EloScore       *float64
	Rank           *int
}
