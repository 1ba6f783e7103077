package scoring

import (
	"sort"

	"github.com/reelrank/core/internal/model"
)

type simpleMajority struct{}

func (simpleMajority) Version() string { return SimpleMajorityV1 }

type tally struct {
	right int
	left  int
}

// Compute scores every movie present in any swipe:
//
//	rawScore        = (right - left) / totalMembers
//	popularityBonus = min(popularity/1000, 0.1)
//	ratingBonus     = (voteAverage/10) * 0.05
//
// totalMembers is the room's current member count, not the count of members
// who swiped the movie; silent members dilute rather than penalize. Movies
// without metadata are dropped. Tallying follows the swipe slice order so the
// output is deterministic; ties keep first-swiped-first.
func (simpleMajority) Compute(swipes []model.RoomSwipe, totalMembers int, metadata map[int64]model.Movie) ([]model.MovieScore, error) {
	tallies := make(map[int64]*tally)
	var seen []int64

	for _, s := range swipes {
		t, ok := tallies[s.MovieID]
		if !ok {
			t = &tally{}
			tallies[s.MovieID] = t
			seen = append(seen, s.MovieID)
		}
		if s.Direction == model.SwipeRight {
			t.right++
		} else {
			t.left++
		}
	}

	scores := make([]model.MovieScore, 0, len(seen))
	for _, movieID := range seen {
		mm, ok := metadata[movieID]
		if !ok {
			continue
		}
		t := tallies[movieID]

		rawScore := float64(t.right-t.left) / float64(totalMembers)
		popularityBonus := mm.Popularity / 1000
		if popularityBonus > 0.1 {
			popularityBonus = 0.1
		}
		ratingBonus := (mm.VoteAverage / 10) * 0.05

		scores = append(scores, model.MovieScore{
			MovieID:         movieID,
			Movie:           mm,
			Score:           rawScore,
			RightSwipes:     t.right,
			LeftSwipes:      t.left,
			TotalVoters:     totalMembers,
			PopularityBonus: popularityBonus,
			RatingBonus:     ratingBonus,
			FinalScore:      rawScore + popularityBonus + ratingBonus,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].FinalScore > scores[j].FinalScore
	})
	return scores, nil
}
