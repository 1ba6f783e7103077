package infra_postgres_room

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/reelrank/core/internal/model"
	usecase_room "github.com/reelrank/core/internal/usecase/room"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type roomDTO struct {
	ID        uuid.UUID `db:"id"`
	Code      string    `db:"code"`
	HostID    uuid.UUID `db:"host_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type memberDTO struct {
	RoomID      uuid.UUID      `db:"room_id"`
	UserID      uuid.UUID      `db:"user_id"`
	JoinedAt    time.Time      `db:"joined_at"`
	DisplayName sql.NullString `db:"display_name"`
	PhotoURL    sql.NullString `db:"photo_url"`
}

type roomMovieDTO struct {
	RoomID      uuid.UUID `db:"room_id"`
	MovieID     int64     `db:"movie_id"`
	SubmittedBy uuid.UUID `db:"submitted_by"`
	CreatedAt   time.Time `db:"created_at"`
}

type roomSwipeDTO struct {
	RoomID    uuid.UUID `db:"room_id"`
	UserID    uuid.UUID `db:"user_id"`
	MovieID   int64     `db:"movie_id"`
	Direction string    `db:"direction"`
	CreatedAt time.Time `db:"created_at"`
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "duplicate key")
}

func (d *Driver) CreateRoom(ctx context.Context, room model.Room, hostID uuid.UUID) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	queryRoom := `
		INSERT INTO rooms (id, code, host_id, status, created_at, updated_at)
		VALUES (:id, :code, :host_id, :status, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, queryRoom, roomDTO{
		ID:        room.ID,
		Code:      room.Code,
		HostID:    room.HostID,
		Status:    string(room.Status),
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}); err != nil {
		if isUniqueViolation(err) {
			return usecase_room.ErrCodeConflict
		}
		return err
	}

	queryMember := `
		INSERT INTO room_members (room_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.ExecContext(ctx, queryMember, room.ID, hostID, room.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *Driver) RoomByCode(ctx context.Context, code string) (model.Room, error) {
	var room roomDTO

	query := `
		SELECT id, code, host_id, status, created_at, updated_at
		FROM rooms
		WHERE code = $1
	`

	err := d.db.GetContext(ctx, &room, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Room{}, usecase_room.ErrRoomNotFound
		}
		return model.Room{}, err
	}

	return model.Room{
		ID:        room.ID,
		Code:      room.Code,
		HostID:    room.HostID,
		Status:    model.RoomStatus(room.Status),
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}, nil
}

func (d *Driver) SetStatus(ctx context.Context, roomID uuid.UUID, status model.RoomStatus) error {
	query := `
		UPDATE rooms
		SET status = $1, updated_at = now()
		WHERE id = $2
	`

	result, err := d.db.ExecContext(ctx, query, string(status), roomID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_room.ErrRoomNotFound
	}

	return nil
}

func (d *Driver) Members(ctx context.Context, roomID uuid.UUID) ([]model.RoomMember, error) {
	var members []memberDTO

	query := `
		SELECT m.room_id, m.user_id, m.joined_at, u.display_name, u.photo_url
		FROM room_members m
		LEFT JOIN users u ON u.id = m.user_id
		WHERE m.room_id = $1
		ORDER BY m.joined_at
	`

	if err := d.db.SelectContext(ctx, &members, query, roomID); err != nil {
		return nil, err
	}

	out := make([]model.RoomMember, 0, len(members))
	for _, m := range members {
		member := model.RoomMember{
			RoomID:   m.RoomID,
			UserID:   m.UserID,
			JoinedAt: m.JoinedAt,
		}
		if m.DisplayName.Valid || m.PhotoURL.Valid {
			member.User = &model.User{
				ID:          m.UserID,
				DisplayName: m.DisplayName.String,
				PhotoURL:    m.PhotoURL.String,
			}
		}
		out = append(out, member)
	}
	return out, nil
}

func (d *Driver) AddMember(ctx context.Context, roomID, userID uuid.UUID) error {
	query := `
		INSERT INTO room_members (room_id, user_id, joined_at)
		VALUES ($1, $2, now())
		ON CONFLICT (room_id, user_id) DO NOTHING
	`

	_, err := d.db.ExecContext(ctx, query, roomID, userID)
	return err
}

func (d *Driver) IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	var exists bool

	query := `
		SELECT EXISTS (
			SELECT 1 FROM room_members WHERE room_id = $1 AND user_id = $2
		)
	`

	if err := d.db.GetContext(ctx, &exists, query, roomID, userID); err != nil {
		return false, err
	}
	return exists, nil
}

func (d *Driver) MemberCount(ctx context.Context, roomID uuid.UUID) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM room_members WHERE room_id = $1`

	if err := d.db.GetContext(ctx, &count, query, roomID); err != nil {
		return 0, err
	}
	return count, nil
}

func (d *Driver) Movies(ctx context.Context, roomID uuid.UUID) ([]model.RoomMovie, error) {
	var movies []roomMovieDTO

	query := `
		SELECT room_id, movie_id, submitted_by, created_at
		FROM room_movies
		WHERE room_id = $1
		ORDER BY created_at
	`

	if err := d.db.SelectContext(ctx, &movies, query, roomID); err != nil {
		return nil, err
	}

	out := make([]model.RoomMovie, 0, len(movies))
	for _, m := range movies {
		out = append(out, model.RoomMovie{
			RoomID:      m.RoomID,
			MovieID:     m.MovieID,
			SubmittedBy: m.SubmittedBy,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

func (d *Driver) MovieCount(ctx context.Context, roomID uuid.UUID) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM room_movies WHERE room_id = $1`

	if err := d.db.GetContext(ctx, &count, query, roomID); err != nil {
		return 0, err
	}
	return count, nil
}

func (d *Driver) AddMovie(ctx context.Context, movie model.RoomMovie) error {
	query := `
		INSERT INTO room_movies (room_id, movie_id, submitted_by, created_at)
		VALUES (:room_id, :movie_id, :submitted_by, :created_at)
	`

	_, err := d.db.NamedExecContext(ctx, query, roomMovieDTO{
		RoomID:      movie.RoomID,
		MovieID:     movie.MovieID,
		SubmittedBy: movie.SubmittedBy,
		CreatedAt:   movie.CreatedAt,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return usecase_room.ErrMovieAlreadySubmitted
		}
		return err
	}
	return nil
}

func (d *Driver) UpsertSwipe(ctx context.Context, swipe model.RoomSwipe) error {
	query := `
		INSERT INTO room_swipes (room_id, user_id, movie_id, direction, created_at)
		VALUES (:room_id, :user_id, :movie_id, :direction, :created_at)
		ON CONFLICT (room_id, user_id, movie_id)
		DO UPDATE SET direction = EXCLUDED.direction, created_at = EXCLUDED.created_at
	`

	_, err := d.db.NamedExecContext(ctx, query, roomSwipeDTO{
		RoomID:    swipe.RoomID,
		UserID:    swipe.UserID,
		MovieID:   swipe.MovieID,
		Direction: string(swipe.Direction),
		CreatedAt: swipe.CreatedAt,
	})
	return err
}

func (d *Driver) Swipes(ctx context.Context, roomID uuid.UUID) ([]model.RoomSwipe, error) {
	var swipes []roomSwipeDTO

	query := `
		SELECT room_id, user_id, movie_id, direction, created_at
		FROM room_swipes
		WHERE room_id = $1
		ORDER BY created_at
	`

	if err := d.db.SelectContext(ctx, &swipes, query, roomID); err != nil {
		return nil, err
	}

	out := make([]model.RoomSwipe, 0, len(swipes))
	for _, s := range swipes {
		out = append(out, model.RoomSwipe{
			RoomID:    s.RoomID,
			UserID:    s.UserID,
			MovieID:   s.MovieID,
			Direction: model.SwipeDirection(s.Direction),
			CreatedAt: s.CreatedAt,
		})
	}
	return out, nil
}

func (d *Driver) SwipeCount(ctx context.Context, roomID uuid.UUID) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM room_swipes WHERE room_id = $1`

	if err := d.db.GetContext(ctx, &count, query, roomID); err != nil {
		return 0, err
	}
	return count, nil
}

// AppendResult writes the snapshot and, when finalizing, flips the room status
// in the same transaction. The ranked list is stored as a JSONB document.
func (d *Driver) AppendResult(ctx context.Context, result model.RoomResult, finalize bool) error {
	ranked, err := json.Marshal(result.RankedMovies)
	if err != nil {
		return err
	}

	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	queryResult := `
		INSERT INTO room_results (id, room_id, computed_at, algorithm_version, ranked_movies)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.ExecContext(ctx, queryResult,
		result.ID, result.RoomID, result.ComputedAt, result.AlgorithmVersion, ranked,
	); err != nil {
		return err
	}

	if finalize {
		queryStatus := `
			UPDATE rooms
			SET status = $1, updated_at = now()
			WHERE id = $2
		`
		if _, err := tx.ExecContext(ctx, queryStatus, string(model.StatusResults), result.RoomID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
