package scoring

import (
	"errors"
	"fmt"

	"github.com/reelrank/core/internal/model"
)

const (
	SimpleMajorityV1 = "simple_majority_v1"
	RankedChoiceV1   = "ranked_choice_v1"
	EloGroupV1       = "elo_group_v1"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm version")
	ErrNotImplemented   = errors.New("algorithm not implemented")
)

// Algorithm turns a room's swipes into a ranked, scored movie list. Versions
// are stable identifiers persisted with every result snapshot, so a room can
// select a different algorithm without touching callers.
type Algorithm interface {
	Version() string
	Compute(swipes []model.RoomSwipe, totalMembers int, metadata map[int64]model.Movie) ([]model.MovieScore, error)
}

func New(version string) (Algorithm, error) {
	switch version {
	case SimpleMajorityV1:
		return simpleMajority{}, nil
	case RankedChoiceV1:
		return notImplemented{version: RankedChoiceV1}, nil
	case EloGroupV1:
		return notImplemented{version: EloGroupV1}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, version)
}

// notImplemented is a declared capability slot without a compute body yet.
type notImplemented struct {
	version string
}

func (a notImplemented) Version() string { return a.version }

func (a notImplemented) Compute([]model.RoomSwipe, int, map[int64]model.Movie) ([]model.MovieScore, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, a.version)
}
