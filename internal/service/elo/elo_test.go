package elo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reelrank/core/internal/model"
)

func choice(a, b, chosen int64) model.PairwiseChoice {
	return model.PairwiseChoice{MovieAID: a, MovieBID: b, ChosenID: chosen}
}

func TestObserveIsZeroSum(t *testing.T) {
	a := NewAccumulator()

	a.Observe(choice(1, 2, 1))
	assert.InDelta(t, 2*InitialRating, a.Rating(1)+a.Rating(2), 1e-9)

	a.Observe(choice(1, 2, 2))
	a.Observe(choice(2, 1, 2))
	assert.InDelta(t, 2*InitialRating, a.Rating(1)+a.Rating(2), 1e-9)
}

func TestObserveFirstWin(t *testing.T) {
	a := NewAccumulator()
	a.Observe(choice(1, 2, 1))

	// Equal pre-ratings, so expected score is 0.5 and the winner gains K/2.
	assert.InDelta(t, InitialRating+KFactor/2.0, a.Rating(1), 1e-9)
	assert.InDelta(t, InitialRating-KFactor/2.0, a.Rating(2), 1e-9)
}

func TestObserveUsesPreUpdateRatings(t *testing.T) {
	a := NewAccumulator()
	a.Observe(choice(1, 2, 1))
	a.Observe(choice(1, 2, 1))

	// The second win against a weaker opponent pays out less than the first.
	firstGain := KFactor / 2.0
	secondGain := a.Rating(1) - (InitialRating + firstGain)
	assert.Less(t, secondGain, firstGain)
	assert.Greater(t, secondGain, 0.0)
}

func TestFoldIsDeterministic(t *testing.T) {
	history := []model.PairwiseChoice{
		choice(1, 2, 1),
		choice(2, 3, 3),
		choice(1, 3, 1),
		choice(2, 1, 1),
	}

	a := Fold(history)
	b := Fold(history)

	for _, id := range a.MovieIDs() {
		assert.InDelta(t, a.Rating(id), b.Rating(id), 1e-12)
	}
}

func TestFoldOrderMatters(t *testing.T) {
	forward := Fold([]model.PairwiseChoice{
		choice(1, 2, 1),
		choice(1, 3, 3),
	})
	reversed := Fold([]model.PairwiseChoice{
		choice(1, 3, 3),
		choice(1, 2, 1),
	})

	// Movie 3 beats movie 1 at a different pre-rating in each order.
	assert.NotEqual(t, forward.Rating(3), reversed.Rating(3))
}

func TestAddLiked(t *testing.T) {
	a := Fold([]model.PairwiseChoice{choice(1, 2, 1)})
	a.AddLiked([]int64{2, 5})

	// A liked movie already in the history keeps its earned rating.
	assert.Less(t, a.Rating(2), float64(InitialRating))
	// A liked movie never compared enters at the initial rating.
	assert.InDelta(t, InitialRating, a.Rating(5), 1e-9)
	assert.Contains(t, a.MovieIDs(), int64(5))
}

func TestRankings(t *testing.T) {
	a := Fold([]model.PairwiseChoice{
		choice(1, 2, 1),
		choice(1, 3, 1),
		choice(2, 3, 2),
	})
	a.AddLiked([]int64{3})

	metadata := map[int64]model.Movie{
		1: {ID: 1, Title: "First"},
		2: {ID: 2, Title: "Second"},
		3: {ID: 3, Title: "Third"},
	}

	rankings := a.Rankings(metadata)

	assert.Len(t, rankings, 3)
	assert.Equal(t, int64(1), rankings[0].MovieID)
	assert.Equal(t, int64(2), rankings[1].MovieID)
	assert.Equal(t, int64(3), rankings[2].MovieID)
	for i, r := range rankings {
		assert.Equal(t, i+1, r.Rank)
	}
	assert.Equal(t, 0, rankings[0].SwipeSignal)
	assert.Equal(t, 1, rankings[2].SwipeSignal)
}

func TestRankingsDropMissingMetadata(t *testing.T) {
	a := Fold([]model.PairwiseChoice{choice(1, 2, 1)})

	rankings := a.Rankings(map[int64]model.Movie{1: {ID: 1}})

	assert.Len(t, rankings, 1)
	assert.Equal(t, int64(1), rankings[0].MovieID)
	assert.Equal(t, 1, rankings[0].Rank)
}

func TestRankingsTieBreakIsFirstSeen(t *testing.T) {
	a := NewAccumulator()
	a.AddLiked([]int64{7, 3, 5})

	metadata := map[int64]model.Movie{7: {ID: 7}, 3: {ID: 3}, 5: {ID: 5}}
	rankings := a.Rankings(metadata)

	// All at the initial rating; stable sort keeps first-appearance order.
	assert.Equal(t, int64(7), rankings[0].MovieID)
	assert.Equal(t, int64(3), rankings[1].MovieID)
	assert.Equal(t, int64(5), rankings[2].MovieID)
}
