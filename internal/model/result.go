package model

import (
	"time"

	"github.com/google/uuid"
)

// MovieScore is one row of a computed ranking with its score breakdown.
type MovieScore struct {
	MovieID         int64
	Movie           Movie
	Score           float64
	RightSwipes     int
	LeftSwipes      int
	TotalVoters     int
	PopularityBonus float64
	RatingBonus     float64
	FinalScore      float64
}

// RoomResult is an append-only snapshot; the latest by ComputedAt is
// authoritative.
type RoomResult struct {
	ID               uuid.UUID
	RoomID           uuid.UUID
	ComputedAt       time.Time
	AlgorithmVersion string
	RankedMovies     []MovieScore
}
