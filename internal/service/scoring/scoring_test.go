package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/reelrank/core/internal/model"
)

func rightSwipes(movieID int64, n int) []model.RoomSwipe {
	out := make([]model.RoomSwipe, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.RoomSwipe{
			UserID:    uuid.New(),
			MovieID:   movieID,
			Direction: model.SwipeRight,
		})
	}
	return out
}

func leftSwipes(movieID int64, n int) []model.RoomSwipe {
	out := make([]model.RoomSwipe, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.RoomSwipe{
			UserID:    uuid.New(),
			MovieID:   movieID,
			Direction: model.SwipeLeft,
		})
	}
	return out
}

func plainMetadata(ids ...int64) map[int64]model.Movie {
	out := make(map[int64]model.Movie, len(ids))
	for _, id := range ids {
		out[id] = model.Movie{ID: id}
	}
	return out
}

func TestNew(t *testing.T) {
	algorithm, err := New(SimpleMajorityV1)
	assert.NoError(t, err)
	assert.Equal(t, SimpleMajorityV1, algorithm.Version())

	_, err = New("majority_v9")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestDeclaredAlgorithmsAreNotImplemented(t *testing.T) {
	for _, version := range []string{RankedChoiceV1, EloGroupV1} {
		algorithm, err := New(version)
		assert.NoError(t, err)
		assert.Equal(t, version, algorithm.Version())

		_, err = algorithm.Compute(nil, 1, nil)
		assert.ErrorIs(t, err, ErrNotImplemented)
	}
}

func TestSimpleMajorityRawScore(t *testing.T) {
	testCases := []struct {
		name    string
		right   int
		left    int
		members int
		want    float64
	}{
		{name: "unanimous approval", right: 3, left: 0, members: 3, want: 1.0},
		{name: "unanimous rejection", right: 0, left: 3, members: 3, want: -1.0},
		{name: "even split", right: 1, left: 1, members: 2, want: 0.0},
		{name: "silent members dilute", right: 2, left: 0, members: 4, want: 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			algorithm, err := New(SimpleMajorityV1)
			assert.NoError(t, err)

			swipes := append(rightSwipes(1, tc.right), leftSwipes(1, tc.left)...)
			scores, err := algorithm.Compute(swipes, tc.members, plainMetadata(1))

			assert.NoError(t, err)
			assert.Len(t, scores, 1)
			assert.InDelta(t, tc.want, scores[0].Score, 1e-9)
			assert.Equal(t, tc.right, scores[0].RightSwipes)
			assert.Equal(t, tc.left, scores[0].LeftSwipes)
			assert.Equal(t, tc.members, scores[0].TotalVoters)
		})
	}
}

func TestSimpleMajorityBonuses(t *testing.T) {
	algorithm, err := New(SimpleMajorityV1)
	assert.NoError(t, err)

	metadata := map[int64]model.Movie{
		1: {ID: 1, Popularity: 50, VoteAverage: 8.0},
		2: {ID: 2, Popularity: 5000, VoteAverage: 10.0},
	}
	swipes := append(rightSwipes(1, 2), rightSwipes(2, 2)...)

	scores, err := algorithm.Compute(swipes, 2, metadata)
	assert.NoError(t, err)
	assert.Len(t, scores, 2)

	byID := map[int64]model.MovieScore{}
	for _, s := range scores {
		byID[s.MovieID] = s
	}

	assert.InDelta(t, 0.05, byID[1].PopularityBonus, 1e-9)
	assert.InDelta(t, 0.04, byID[1].RatingBonus, 1e-9)

	// Popularity bonus is capped at 0.1.
	assert.InDelta(t, 0.1, byID[2].PopularityBonus, 1e-9)
	assert.InDelta(t, 0.05, byID[2].RatingBonus, 1e-9)

	assert.InDelta(t, byID[1].Score+byID[1].PopularityBonus+byID[1].RatingBonus, byID[1].FinalScore, 1e-9)
}

func TestSimpleMajorityOrdering(t *testing.T) {
	algorithm, err := New(SimpleMajorityV1)
	assert.NoError(t, err)

	// Movie 1: 3 right, 0 left. Movie 2: 2 right, 1 left.
	swipes := rightSwipes(1, 3)
	swipes = append(swipes, rightSwipes(2, 2)...)
	swipes = append(swipes, leftSwipes(2, 1)...)

	scores, err := algorithm.Compute(swipes, 3, plainMetadata(1, 2))

	assert.NoError(t, err)
	assert.Len(t, scores, 2)
	assert.Equal(t, int64(1), scores[0].MovieID)
	assert.Equal(t, int64(2), scores[1].MovieID)
	assert.Greater(t, scores[0].FinalScore, scores[1].FinalScore)
}

func TestSimpleMajorityTieKeepsFirstSwiped(t *testing.T) {
	algorithm, err := New(SimpleMajorityV1)
	assert.NoError(t, err)

	swipes := append(rightSwipes(9, 1), rightSwipes(4, 1)...)
	scores, err := algorithm.Compute(swipes, 2, plainMetadata(9, 4))

	assert.NoError(t, err)
	assert.Equal(t, int64(9), scores[0].MovieID)
	assert.Equal(t, int64(4), scores[1].MovieID)
}

func TestSimpleMajorityDropsMoviesWithoutMetadata(t *testing.T) {
	algorithm, err := New(SimpleMajorityV1)
	assert.NoError(t, err)

	swipes := append(rightSwipes(1, 1), rightSwipes(2, 1)...)
	scores, err := algorithm.Compute(swipes, 2, plainMetadata(1))

	assert.NoError(t, err)
	assert.Len(t, scores, 1)
	assert.Equal(t, int64(1), scores[0].MovieID)
}

func TestSimpleMajorityEmptyInput(t *testing.T) {
	algorithm, err := New(SimpleMajorityV1)
	assert.NoError(t, err)

	scores, err := algorithm.Compute(nil, 5, plainMetadata(1))

	assert.NoError(t, err)
	assert.Empty(t, scores)
}
