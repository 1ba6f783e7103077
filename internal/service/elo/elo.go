package elo

import (
	"math"
	"sort"

	"github.com/reelrank/core/internal/model"
)

const (
	KFactor       = 32
	InitialRating = 1500
)

// Accumulator folds an ordered sequence of pairwise choices into per-movie
// ratings. It carries no persistent state: callers replay the full choice
// history on every request, so the result is deterministic for a given input
// order.
type Accumulator struct {
	ratings map[int64]float64
	order   []int64
	liked   map[int64]bool
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		ratings: make(map[int64]float64),
		liked:   make(map[int64]bool),
	}
}

func (a *Accumulator) rating(id int64) float64 {
	r, ok := a.ratings[id]
	if !ok {
		a.ratings[id] = InitialRating
		a.order = append(a.order, id)
		return InitialRating
	}
	return r
}

// Observe applies one choice. Both ratings are updated from their pre-update
// values, so a single update is zero-sum.
func (a *Accumulator) Observe(c model.PairwiseChoice) {
	ra := a.rating(c.MovieAID)
	rb := a.rating(c.MovieBID)

	ea := 1 / (1 + math.Pow(10, (rb-ra)/400))
	eb := 1 - ea

	var sa float64
	if c.ChosenID == c.MovieAID {
		sa = 1
	}
	sb := 1 - sa

	a.ratings[c.MovieAID] = ra + KFactor*(sa-ea)
	a.ratings[c.MovieBID] = rb + KFactor*(sb-eb)
}

// AddLiked folds in movies known only from right solo swipes. Movies never
// seen in a choice enter at the initial rating; the liked flag is kept either
// way to drive the swipe signal in rankings.
func (a *Accumulator) AddLiked(movieIDs []int64) {
	for _, id := range movieIDs {
		a.rating(id)
		a.liked[id] = true
	}
}

func (a *Accumulator) Rating(id int64) float64 {
	if r, ok := a.ratings[id]; ok {
		return r
	}
	return InitialRating
}

// MovieIDs returns every observed movie in first-appearance order. That order
// is the tie-break for equal ratings.
func (a *Accumulator) MovieIDs() []int64 {
	out := make([]int64, len(a.order))
	copy(out, a.order)
	return out
}

// Rankings sorts all observed movies by rating, descending, dropping movies
// absent from metadata. Rank is assigned 1..N after the sort.
func (a *Accumulator) Rankings(metadata map[int64]model.Movie) []model.SoloRanking {
	rankings := make([]model.SoloRanking, 0, len(a.order))
	for _, id := range a.order {
		mm, ok := metadata[id]
		if !ok {
			continue
		}
		signal := 0
		if a.liked[id] {
			signal = 1
		}
		rankings = append(rankings, model.SoloRanking{
			MovieID:     id,
			Movie:       mm,
			EloScore:    a.ratings[id],
			SwipeSignal: signal,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].EloScore > rankings[j].EloScore
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}

// Fold replays choices in the given order and returns the accumulator.
// The caller is responsible for ordering by createdAt.
func Fold(choices []model.PairwiseChoice) *Accumulator {
	a := NewAccumulator()
	for _, c := range choices {
		a.Observe(c)
	}
	return a
}
