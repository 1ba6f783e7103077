package infra_postgres_solo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/reelrank/core/internal/model"
	usecase_solo "github.com/reelrank/core/internal/usecase/solo"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type soloSwipeDTO struct {
	UserID    uuid.UUID `db:"user_id"`
	MovieID   int64     `db:"movie_id"`
	Direction string    `db:"direction"`
	CreatedAt time.Time `db:"created_at"`
}

type choiceDTO struct {
	UserID    uuid.UUID `db:"user_id"`
	MovieAID  int64     `db:"movie_a_id"`
	MovieBID  int64     `db:"movie_b_id"`
	ChosenID  int64     `db:"chosen_id"`
	CreatedAt time.Time `db:"created_at"`
}

type watchedDTO struct {
	UserID    uuid.UUID `db:"user_id"`
	MovieID   int64     `db:"movie_id"`
	Rating    float64   `db:"rating"`
	WatchedAt string    `db:"watched_at"`
	Venue     string    `db:"venue"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (d *Driver) UpsertSwipe(ctx context.Context, swipe model.SoloSwipe) error {
	query := `
		INSERT INTO solo_swipes (user_id, movie_id, direction, created_at)
		VALUES (:user_id, :movie_id, :direction, :created_at)
		ON CONFLICT (user_id, movie_id)
		DO UPDATE SET direction = EXCLUDED.direction, created_at = EXCLUDED.created_at
	`

	_, err := d.db.NamedExecContext(ctx, query, soloSwipeDTO{
		UserID:    swipe.UserID,
		MovieID:   swipe.MovieID,
		Direction: string(swipe.Direction),
		CreatedAt: swipe.CreatedAt,
	})
	return err
}

func (d *Driver) Swipe(ctx context.Context, userID uuid.UUID, movieID int64) (model.SoloSwipe, error) {
	var swipe soloSwipeDTO

	query := `
		SELECT user_id, movie_id, direction, created_at
		FROM solo_swipes
		WHERE user_id = $1 AND movie_id = $2
	`

	err := d.db.GetContext(ctx, &swipe, query, userID, movieID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.SoloSwipe{}, usecase_solo.ErrNotFound
		}
		return model.SoloSwipe{}, err
	}

	return toSoloSwipe(swipe), nil
}

func (d *Driver) Swipes(ctx context.Context, userID uuid.UUID, onlyRight bool) ([]model.SoloSwipe, error) {
	query := `
		SELECT user_id, movie_id, direction, created_at
		FROM solo_swipes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	args := []any{userID}
	if onlyRight {
		query = `
			SELECT user_id, movie_id, direction, created_at
			FROM solo_swipes
			WHERE user_id = $1 AND direction = $2
			ORDER BY created_at DESC
		`
		args = append(args, string(model.SwipeRight))
	}

	var swipes []soloSwipeDTO
	if err := d.db.SelectContext(ctx, &swipes, query, args...); err != nil {
		return nil, err
	}

	out := make([]model.SoloSwipe, 0, len(swipes))
	for _, s := range swipes {
		out = append(out, toSoloSwipe(s))
	}
	return out, nil
}

func (d *Driver) LikedMovieIDs(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	var ids []int64

	query := `
		SELECT movie_id
		FROM solo_swipes
		WHERE user_id = $1 AND direction = $2
		ORDER BY created_at
	`

	if err := d.db.SelectContext(ctx, &ids, query, userID, string(model.SwipeRight)); err != nil {
		return nil, err
	}
	return ids, nil
}

func (d *Driver) AddChoice(ctx context.Context, choice model.PairwiseChoice) error {
	query := `
		INSERT INTO pairwise_choices (user_id, movie_a_id, movie_b_id, chosen_id, created_at)
		VALUES (:user_id, :movie_a_id, :movie_b_id, :chosen_id, :created_at)
	`

	_, err := d.db.NamedExecContext(ctx, query, choiceDTO{
		UserID:    choice.UserID,
		MovieAID:  choice.MovieAID,
		MovieBID:  choice.MovieBID,
		ChosenID:  choice.ChosenID,
		CreatedAt: choice.CreatedAt,
	})
	return err
}

// Choices orders by created_at: the elo fold is order dependent and must not
// trust storage insertion order.
func (d *Driver) Choices(ctx context.Context, userID uuid.UUID) ([]model.PairwiseChoice, error) {
	var choices []choiceDTO

	query := `
		SELECT user_id, movie_a_id, movie_b_id, chosen_id, created_at
		FROM pairwise_choices
		WHERE user_id = $1
		ORDER BY created_at
	`

	if err := d.db.SelectContext(ctx, &choices, query, userID); err != nil {
		return nil, err
	}

	out := make([]model.PairwiseChoice, 0, len(choices))
	for _, c := range choices {
		out = append(out, model.PairwiseChoice{
			UserID:    c.UserID,
			MovieAID:  c.MovieAID,
			MovieBID:  c.MovieBID,
			ChosenID:  c.ChosenID,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}

func (d *Driver) UpsertWatched(ctx context.Context, entry model.WatchedMovie) (model.WatchedMovie, bool, error) {
	var row struct {
		watchedDTO
		Created bool `db:"created"`
	}

	query := `
		INSERT INTO watched_movies (user_id, movie_id, rating, watched_at, venue, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (user_id, movie_id)
		DO UPDATE SET rating = EXCLUDED.rating,
		              watched_at = EXCLUDED.watched_at,
		              venue = EXCLUDED.venue,
		              notes = EXCLUDED.notes,
		              updated_at = EXCLUDED.updated_at
		RETURNING user_id, movie_id, rating, watched_at, venue, notes, created_at, updated_at, (xmax = 0) AS created
	`

	err := d.db.GetContext(ctx, &row, query,
		entry.UserID, entry.MovieID, entry.Rating, entry.WatchedAt,
		entry.Venue, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		return model.WatchedMovie{}, false, err
	}
	return toWatched(row.watchedDTO), row.Created, nil
}

func (d *Driver) Watched(ctx context.Context, userID uuid.UUID, movieID int64) (model.WatchedMovie, error) {
	var entry watchedDTO

	query := `
		SELECT user_id, movie_id, rating, watched_at, venue, notes, created_at, updated_at
		FROM watched_movies
		WHERE user_id = $1 AND movie_id = $2
	`

	err := d.db.GetContext(ctx, &entry, query, userID, movieID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.WatchedMovie{}, usecase_solo.ErrNotFound
		}
		return model.WatchedMovie{}, err
	}

	return toWatched(entry), nil
}

func (d *Driver) WatchedList(ctx context.Context, userID uuid.UUID) ([]model.WatchedMovie, error) {
	var entries []watchedDTO

	query := `
		SELECT user_id, movie_id, rating, watched_at, venue, notes, created_at, updated_at
		FROM watched_movies
		WHERE user_id = $1
		ORDER BY watched_at DESC
	`

	if err := d.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, err
	}

	out := make([]model.WatchedMovie, 0, len(entries))
	for _, e := range entries {
		out = append(out, toWatched(e))
	}
	return out, nil
}

func toSoloSwipe(s soloSwipeDTO) model.SoloSwipe {
	return model.SoloSwipe{
		UserID:    s.UserID,
		MovieID:   s.MovieID,
		Direction: model.SwipeDirection(s.Direction),
		CreatedAt: s.CreatedAt,
	}
}

func toWatched(e watchedDTO) model.WatchedMovie {
	return model.WatchedMovie{
		UserID:    e.UserID,
		MovieID:   e.MovieID,
		Rating:    e.Rating,
		WatchedAt: e.WatchedAt,
		Venue:     e.Venue,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
