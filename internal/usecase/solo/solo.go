package usecase_solo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reelrank/core/internal/model"
	"github.com/reelrank/core/internal/service/elo"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("no such resource")
	ErrInternal     = errors.New("internal error")
)

// ListWant selects right swipes only; ListAll returns everything.
type ListType string

const (
	ListWant ListType = "want"
	ListAll  ListType = "all"
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	UpsertSwipe(ctx context.Context, swipe model.SoloSwipe) error
	// Swipe returns ErrNotFound when the user never swiped the movie.
	Swipe(ctx context.Context, userID uuid.UUID, movieID int64) (model.SoloSwipe, error)
	// Swipes returns the user's swipes newest first.
	Swipes(ctx context.Context, userID uuid.UUID, onlyRight bool) ([]model.SoloSwipe, error)
	LikedMovieIDs(ctx context.Context, userID uuid.UUID) ([]int64, error)

	AddChoice(ctx context.Context, choice model.PairwiseChoice) error
	// Choices returns the user's pairwise choices ordered by createdAt
	// ascending. The rating fold depends on this order; insertion order from
	// storage is never trusted.
	Choices(ctx context.Context, userID uuid.UUID) ([]model.PairwiseChoice, error)

	// UpsertWatched stores the entry and returns the stored row along with
	// whether it was newly created. CreatedAt is preserved on update.
	UpsertWatched(ctx context.Context, entry model.WatchedMovie) (model.WatchedMovie, bool, error)
	Watched(ctx context.Context, userID uuid.UUID, movieID int64) (model.WatchedMovie, error)
	// WatchedList returns entries ordered by watchedAt descending.
	WatchedList(ctx context.Context, userID uuid.UUID) ([]model.WatchedMovie, error)
}

//go:generate mockery --name=Catalog --output=./mocks/catalog --filename=catalog.go
type Catalog interface {
	MovieByID(ctx context.Context, id int64) (model.Movie, error)
}

// SwipedMovie is a swipe joined with catalog metadata.
type SwipedMovie struct {
	Swipe model.SoloSwipe
	Movie model.Movie
}

// WatchedEntry is a watch-log row joined with catalog metadata.
type WatchedEntry struct {
	Entry model.WatchedMovie
	Movie model.Movie
}

type Usecase struct {
	repository Repository
	catalog    Catalog
}

func New(repository Repository, catalog Catalog) *Usecase {
	return &Usecase{
		repository: repository,
		catalog:    catalog,
	}
}

// Swipe records a left/right vote; repeating a swipe overwrites the previous
// direction (last write wins).
func (u *Usecase) Swipe(ctx context.Context, userID uuid.UUID, movieID int64, direction model.SwipeDirection) (model.SoloSwipe, error) {
	if movieID <= 0 {
		return model.SoloSwipe{}, fmt.Errorf("%w: movie id must be positive", ErrInvalidInput)
	}
	if !direction.Valid() {
		return model.SoloSwipe{}, fmt.Errorf("%w: direction must be left or right", ErrInvalidInput)
	}

	swipe := model.SoloSwipe{
		UserID:    userID,
		MovieID:   movieID,
		Direction: direction,
		CreatedAt: time.Now(),
	}
	if err := u.repository.UpsertSwipe(ctx, swipe); err != nil {
		return model.SoloSwipe{}, errors.Join(ErrInternal, err)
	}
	return swipe, nil
}

// RecordChoice appends one this-or-that pick to the choice history.
func (u *Usecase) RecordChoice(ctx context.Context, userID uuid.UUID, movieAID, movieBID, chosenID int64) (model.PairwiseChoice, error) {
	if movieAID <= 0 || movieBID <= 0 {
		return model.PairwiseChoice{}, fmt.Errorf("%w: movie ids must be positive", ErrInvalidInput)
	}
	if movieAID == movieBID {
		return model.PairwiseChoice{}, fmt.Errorf("%w: cannot compare a movie with itself", ErrInvalidInput)
	}
	if chosenID != movieAID && chosenID != movieBID {
		return model.PairwiseChoice{}, fmt.Errorf("%w: chosen id must be one of the pair", ErrInvalidInput)
	}

	choice := model.PairwiseChoice{
		UserID:    userID,
		MovieAID:  movieAID,
		MovieBID:  movieBID,
		ChosenID:  chosenID,
		CreatedAt: time.Now(),
	}
	if err := u.repository.AddChoice(ctx, choice); err != nil {
		return model.PairwiseChoice{}, errors.Join(ErrInternal, err)
	}
	return choice, nil
}

// Ranking replays the full choice history through the rating accumulator and
// folds in right-swiped movies that never appeared in a choice. Nothing is
// persisted between calls; the same history always yields the same ranking.
func (u *Usecase) Ranking(ctx context.Context, userID uuid.UUID) ([]model.SoloRanking, error) {
	choices, err := u.repository.Choices(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	liked, err := u.repository.LikedMovieIDs(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	accumulator := elo.Fold(choices)
	accumulator.AddLiked(liked)

	metadata := make(map[int64]model.Movie)
	for _, id := range accumulator.MovieIDs() {
		mm, err := u.catalog.MovieByID(ctx, id)
		if err != nil {
			continue
		}
		metadata[id] = mm
	}

	return accumulator.Rankings(metadata), nil
}

// List returns the user's swipes joined with metadata, newest first. Movies
// the catalog no longer resolves are dropped.
func (u *Usecase) List(ctx context.Context, userID uuid.UUID, listType ListType) ([]SwipedMovie, error) {
	swipes, err := u.repository.Swipes(ctx, userID, listType == ListWant)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	out := make([]SwipedMovie, 0, len(swipes))
	for _, s := range swipes {
		mm, err := u.catalog.MovieByID(ctx, s.MovieID)
		if err != nil {
			continue
		}
		out = append(out, SwipedMovie{Swipe: s, Movie: mm})
	}
	return out, nil
}

// RecordWatched upserts a watch-log entry and reports whether it was new.
func (u *Usecase) RecordWatched(ctx context.Context, entry model.WatchedMovie) (model.WatchedMovie, bool, error) {
	if entry.MovieID <= 0 {
		return model.WatchedMovie{}, false, fmt.Errorf("%w: movie id must be positive", ErrInvalidInput)
	}
	if entry.Rating < 0 || entry.Rating > 10 {
		return model.WatchedMovie{}, false, fmt.Errorf("%w: rating must be within [0, 10]", ErrInvalidInput)
	}

	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	stored, created, err := u.repository.UpsertWatched(ctx, entry)
	if err != nil {
		return model.WatchedMovie{}, false, errors.Join(ErrInternal, err)
	}
	return stored, created, nil
}

func (u *Usecase) WatchedList(ctx context.Context, userID uuid.UUID) ([]WatchedEntry, error) {
	entries, err := u.repository.WatchedList(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	out := make([]WatchedEntry, 0, len(entries))
	for _, e := range entries {
		mm, err := u.catalog.MovieByID(ctx, e.MovieID)
		if err != nil {
			continue
		}
		out = append(out, WatchedEntry{Entry: e, Movie: mm})
	}
	return out, nil
}

// Status collects everything the user has on record for one movie: swipe
// direction, watch-log entry, and current elo score with rank.
func (u *Usecase) Status(ctx context.Context, userID uuid.UUID, movieID int64) (model.MovieUserStatus, error) {
	if movieID <= 0 {
		return model.MovieUserStatus{}, fmt.Errorf("%w: movie id must be positive", ErrInvalidInput)
	}

	var status model.MovieUserStatus

	swipe, err := u.repository.Swipe(ctx, userID, movieID)
	switch {
	case err == nil:
		d := swipe.Direction
		status.SwipeDirection = &d
	case !errors.Is(err, ErrNotFound):
		return model.MovieUserStatus{}, errors.Join(ErrInternal, err)
	}

	watched, err := u.repository.Watched(ctx, userID, movieID)
	switch {
	case err == nil:
		status.Watched = &watched
	case !errors.Is(err, ErrNotFound):
		return model.MovieUserStatus{}, errors.Join(ErrInternal, err)
	}

	rankings, err := u.Ranking(ctx, userID)
	if err != nil {
		return model.MovieUserStatus{}, err
	}
	for _, r := range rankings {
		if r.MovieID == movieID {
			score, rank := r.EloScore, r.Rank
			status.EloScore = &score
			status.Rank = &rank
			break
		}
	}

	return status, nil
}
