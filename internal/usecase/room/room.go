package usecase_room

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reelrank/core/internal/model"
	"github.com/reelrank/core/internal/service/scoring"
)

const (
	MaxMembers = 20
	MaxMovies  = 30

	codeLength = 6
	// Uppercase letters and digits without 0, O, 1, I.
	codeAlphabet     = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeAttempts     = 10
	codeIndexTTL     = 24 * time.Hour
	defaultAlgorithm = scoring.SimpleMajorityV1
)

const (
	EventMemberJoined      = "member:joined"
	EventMemberLeft        = "member:left"
	EventRoomStatusChanged = "room:status"
	EventMovieSubmitted    = "movie:submitted"
	EventSwipeProgress     = "swipe:progress"
	EventResultsReady      = "results:ready"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrRoomNotFound          = errors.New("room not found")
	ErrNotHost               = errors.New("only the host can change room phase")
	ErrNotMember             = errors.New("not a member of this room")
	ErrRoomNotJoinable       = errors.New("room is not accepting new members")
	ErrRoomFull              = errors.New("room is full")
	ErrMoviesFull            = errors.New("maximum movies reached for this room")
	ErrMovieAlreadySubmitted = errors.New("movie already submitted")
	ErrWrongStatus           = errors.New("operation not allowed in current room status")
	ErrIllegalTransition     = errors.New("illegal status transition")
	ErrCodeConflict          = errors.New("code conflict")
	ErrCodesExhausted        = errors.New("failed to generate unique room code")
	ErrInternal              = errors.New("internal error")
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	// CreateRoom inserts the room and its host membership atomically.
	// Returns ErrCodeConflict when the code is already taken.
	CreateRoom(ctx context.Context, room model.Room, hostID uuid.UUID) error
	RoomByCode(ctx context.Context, code string) (model.Room, error)
	SetStatus(ctx context.Context, roomID uuid.UUID, status model.RoomStatus) error

	Members(ctx context.Context, roomID uuid.UUID) ([]model.RoomMember, error)
	AddMember(ctx context.Context, roomID, userID uuid.UUID) error
	IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
	MemberCount(ctx context.Context, roomID uuid.UUID) (int, error)

	Movies(ctx context.Context, roomID uuid.UUID) ([]model.RoomMovie, error)
	MovieCount(ctx context.Context, roomID uuid.UUID) (int, error)
	// AddMovie returns ErrMovieAlreadySubmitted when the movie is already a
	// candidate in the room.
	AddMovie(ctx context.Context, movie model.RoomMovie) error

	UpsertSwipe(ctx context.Context, swipe model.RoomSwipe) error
	Swipes(ctx context.Context, roomID uuid.UUID) ([]model.RoomSwipe, error)
	SwipeCount(ctx context.Context, roomID uuid.UUID) (int, error)

	// AppendResult stores the snapshot. With finalize set it also flips the
	// room to results in the same transaction, so a failed write never leaves
	// the room finalized without a result.
	AppendResult(ctx context.Context, result model.RoomResult, finalize bool) error
}

//go:generate mockery --name=CodeIndex --output=./mocks/codeindex --filename=codeindex.go
type CodeIndex interface {
	RoomID(code string) (uuid.UUID, bool, error)
	Set(code string, roomID uuid.UUID, ttl time.Duration) error
	Delete(code string) error
}

//go:generate mockery --name=Catalog --output=./mocks/catalog --filename=catalog.go
type Catalog interface {
	MovieByID(ctx context.Context, id int64) (model.Movie, error)
}

//go:generate mockery --name=Notifier --output=./mocks/notifier --filename=notifier.go
type Notifier interface {
	Publish(roomCode string, event string, payload any)
}

// Details is a room with its membership and candidate set resolved.
type Details struct {
	Room    model.Room
	Members []model.RoomMember
	Movies  []model.RoomMovie
}

// Progress is the swipe completion state of a room.
type Progress struct {
	Ratio         float64
	TotalSwipes   int
	TotalExpected int
}

type Usecase struct {
	repository Repository
	codeIndex  CodeIndex
	catalog    Catalog
	notifier   Notifier
}

func New(
	repository Repository,
	codeIndex CodeIndex,
	catalog Catalog,
	notifier Notifier,
) *Usecase {
	return &Usecase{
		repository: repository,
		codeIndex:  codeIndex,
		catalog:    catalog,
		notifier:   notifier,
	}
}

// Create books a new lobby with the caller as host and first member. The code
// is drawn uniformly from the unambiguous alphabet; both the live code index
// and the storage unique constraint guard collisions, retried up to
// codeAttempts times.
func (u *Usecase) Create(ctx context.Context, host model.User) (Details, error) {
	now := time.Now()

	for attempt := 0; attempt < codeAttempts; attempt++ {
		code := buildRoomCode()

		if _, taken, err := u.codeIndex.RoomID(code); err != nil {
			return Details{}, errors.Join(ErrInternal, err)
		} else if taken {
			continue
		}

		room := model.Room{
			ID:        uuid.New(),
			Code:      code,
			HostID:    host.ID,
			Status:    model.StatusLobby,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := u.repository.CreateRoom(ctx, room, host.ID); err != nil {
			if errors.Is(err, ErrCodeConflict) {
				continue
			}
			return Details{}, errors.Join(ErrInternal, err)
		}

		if err := u.codeIndex.Set(code, room.ID, codeIndexTTL); err != nil {
			return Details{}, errors.Join(ErrInternal, err)
		}

		return Details{
			Room: room,
			Members: []model.RoomMember{{
				RoomID:   room.ID,
				UserID:   host.ID,
				User:     &host,
				JoinedAt: now,
			}},
		}, nil
	}

	return Details{}, ErrCodesExhausted
}

func buildRoomCode() string {
	var b strings.Builder
	b.Grow(codeLength)
	for i := 0; i < codeLength; i++ {
		b.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return b.String()
}

// Join adds the caller to a lobby. Re-joining an already joined room is a
// no-op success. Capacity checks are read-then-write; membership itself is an
// idempotent upsert at the storage layer.
func (u *Usecase) Join(ctx context.Context, code string, user model.User) (Details, error) {
	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return Details{}, err
	}

	if room.Status != model.StatusLobby {
		return Details{}, ErrRoomNotJoinable
	}

	joined, err := u.repository.IsMember(ctx, room.ID, user.ID)
	if err != nil {
		return Details{}, errors.Join(ErrInternal, err)
	}

	if !joined {
		count, err := u.repository.MemberCount(ctx, room.ID)
		if err != nil {
			return Details{}, errors.Join(ErrInternal, err)
		}
		if count >= MaxMembers {
			return Details{}, ErrRoomFull
		}

		if err := u.repository.AddMember(ctx, room.ID, user.ID); err != nil {
			return Details{}, errors.Join(ErrInternal, err)
		}

		u.notifier.Publish(room.Code, EventMemberJoined, map[string]any{
			"user_id":      user.ID.String(),
			"display_name": user.DisplayName,
		})
	}

	return u.details(ctx, room)
}

func (u *Usecase) Get(ctx context.Context, code string) (Details, error) {
	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return Details{}, err
	}
	return u.details(ctx, room)
}

// Transition advances the lifecycle one step. Only the host may request it;
// anything but the next linear state fails naming both ends. Entering results
// runs the finalize side effect.
func (u *Usecase) Transition(ctx context.Context, code string, userID uuid.UUID, to model.RoomStatus) (model.Room, error) {
	if !to.Valid() {
		return model.Room{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, to)
	}

	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return model.Room{}, err
	}

	if room.HostID != userID {
		return model.Room{}, ErrNotHost
	}
	if !room.Status.CanTransitionTo(to) {
		return model.Room{}, fmt.Errorf("%w: cannot transition from %s to %s", ErrIllegalTransition, room.Status, to)
	}

	if to == model.StatusResults {
		if _, err := u.finalize(ctx, room); err != nil {
			return model.Room{}, err
		}
	} else {
		if err := u.repository.SetStatus(ctx, room.ID, to); err != nil {
			return model.Room{}, errors.Join(ErrInternal, err)
		}
	}

	room.Status = to
	room.UpdatedAt = time.Now()

	u.notifier.Publish(room.Code, EventRoomStatusChanged, map[string]any{
		"status": string(to),
	})

	return room, nil
}

// SubmitMovie adds a candidate while the room is submitting. Duplicate
// submissions are a distinct conflict outcome, not a generic failure.
func (u *Usecase) SubmitMovie(ctx context.Context, code string, userID uuid.UUID, movieID int64) (model.RoomMovie, error) {
	if movieID <= 0 {
		return model.RoomMovie{}, fmt.Errorf("%w: movie id must be positive", ErrInvalidInput)
	}

	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return model.RoomMovie{}, err
	}

	if room.Status != model.StatusSubmitting {
		return model.RoomMovie{}, fmt.Errorf("%w: room is not accepting movie submissions", ErrWrongStatus)
	}

	member, err := u.repository.IsMember(ctx, room.ID, userID)
	if err != nil {
		return model.RoomMovie{}, errors.Join(ErrInternal, err)
	}
	if !member {
		return model.RoomMovie{}, ErrNotMember
	}

	count, err := u.repository.MovieCount(ctx, room.ID)
	if err != nil {
		return model.RoomMovie{}, errors.Join(ErrInternal, err)
	}
	if count >= MaxMovies {
		return model.RoomMovie{}, ErrMoviesFull
	}

	movie := model.RoomMovie{
		RoomID:      room.ID,
		MovieID:     movieID,
		SubmittedBy: userID,
		CreatedAt:   time.Now(),
	}
	if err := u.repository.AddMovie(ctx, movie); err != nil {
		if errors.Is(err, ErrMovieAlreadySubmitted) {
			return model.RoomMovie{}, ErrMovieAlreadySubmitted
		}
		return model.RoomMovie{}, errors.Join(ErrInternal, err)
	}

	u.notifier.Publish(room.Code, EventMovieSubmitted, map[string]any{
		"movie_id":     movieID,
		"submitted_by": userID.String(),
	})

	return movie, nil
}

// Swipe upserts a member's vote while the room is swiping (last write wins)
// and recomputes room progress.
func (u *Usecase) Swipe(ctx context.Context, code string, userID uuid.UUID, movieID int64, direction model.SwipeDirection) (model.RoomSwipe, Progress, error) {
	if movieID <= 0 {
		return model.RoomSwipe{}, Progress{}, fmt.Errorf("%w: movie id must be positive", ErrInvalidInput)
	}
	if !direction.Valid() {
		return model.RoomSwipe{}, Progress{}, fmt.Errorf("%w: direction must be left or right", ErrInvalidInput)
	}

	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return model.RoomSwipe{}, Progress{}, err
	}

	if room.Status != model.StatusSwiping {
		return model.RoomSwipe{}, Progress{}, fmt.Errorf("%w: room is not in swiping phase", ErrWrongStatus)
	}

	member, err := u.repository.IsMember(ctx, room.ID, userID)
	if err != nil {
		return model.RoomSwipe{}, Progress{}, errors.Join(ErrInternal, err)
	}
	if !member {
		return model.RoomSwipe{}, Progress{}, ErrNotMember
	}

	swipe := model.RoomSwipe{
		RoomID:    room.ID,
		UserID:    userID,
		MovieID:   movieID,
		Direction: direction,
		CreatedAt: time.Now(),
	}
	if err := u.repository.UpsertSwipe(ctx, swipe); err != nil {
		return model.RoomSwipe{}, Progress{}, errors.Join(ErrInternal, err)
	}

	progress, err := u.progress(ctx, room.ID)
	if err != nil {
		return model.RoomSwipe{}, Progress{}, err
	}

	u.notifier.Publish(room.Code, EventSwipeProgress, map[string]any{
		"user_id":        userID.String(),
		"progress":       progress.Ratio,
		"total_swipes":   progress.TotalSwipes,
		"total_expected": progress.TotalExpected,
	})

	return swipe, progress, nil
}

// Progress reports the swipe completion ratio. An empty room (no members or
// no candidates) reports 0, never a division error.
func (u *Usecase) Progress(ctx context.Context, code string) (Progress, error) {
	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return Progress{}, err
	}
	return u.progress(ctx, room.ID)
}

func (u *Usecase) progress(ctx context.Context, roomID uuid.UUID) (Progress, error) {
	members, err := u.repository.MemberCount(ctx, roomID)
	if err != nil {
		return Progress{}, errors.Join(ErrInternal, err)
	}
	movies, err := u.repository.MovieCount(ctx, roomID)
	if err != nil {
		return Progress{}, errors.Join(ErrInternal, err)
	}
	swipes, err := u.repository.SwipeCount(ctx, roomID)
	if err != nil {
		return Progress{}, errors.Join(ErrInternal, err)
	}

	p := Progress{
		TotalSwipes:   swipes,
		TotalExpected: members * movies,
	}
	if p.TotalExpected == 0 {
		return p, nil
	}
	p.Ratio = float64(swipes) / float64(p.TotalExpected)
	if p.Ratio > 1 {
		p.Ratio = 1
	}
	return p, nil
}

// Results is the named finalize-and-fetch operation. A fetch while the room is
// still swiping flips it to results and announces them; once finalized, later
// fetches recompute and append a fresh snapshot (audit trail) but never
// re-transition or re-announce.
func (u *Usecase) Results(ctx context.Context, code string) (model.RoomResult, error) {
	room, err := u.roomByCode(ctx, code)
	if err != nil {
		return model.RoomResult{}, err
	}
	return u.finalize(ctx, room)
}

func (u *Usecase) finalize(ctx context.Context, room model.Room) (model.RoomResult, error) {
	result, err := u.computeResult(ctx, room)
	if err != nil {
		return model.RoomResult{}, err
	}

	finalize := room.Status == model.StatusSwiping
	if err := u.repository.AppendResult(ctx, result, finalize); err != nil {
		return model.RoomResult{}, errors.Join(ErrInternal, err)
	}

	if finalize {
		u.notifier.Publish(room.Code, EventResultsReady, map[string]any{
			"result_id": result.ID.String(),
		})
	}

	return result, nil
}

func (u *Usecase) computeResult(ctx context.Context, room model.Room) (model.RoomResult, error) {
	swipes, err := u.repository.Swipes(ctx, room.ID)
	if err != nil {
		return model.RoomResult{}, errors.Join(ErrInternal, err)
	}
	members, err := u.repository.MemberCount(ctx, room.ID)
	if err != nil {
		return model.RoomResult{}, errors.Join(ErrInternal, err)
	}
	movies, err := u.repository.Movies(ctx, room.ID)
	if err != nil {
		return model.RoomResult{}, errors.Join(ErrInternal, err)
	}

	// Best effort: a movie whose metadata lookup fails is left out of the
	// ranking instead of failing the whole computation.
	metadata := make(map[int64]model.Movie, len(movies))
	for _, m := range movies {
		mm, err := u.catalog.MovieByID(ctx, m.MovieID)
		if err != nil {
			continue
		}
		metadata[m.MovieID] = mm
	}

	algorithm, err := scoring.New(defaultAlgorithm)
	if err != nil {
		return model.RoomResult{}, errors.Join(ErrInternal, err)
	}
	ranked, err := algorithm.Compute(swipes, members, metadata)
	if err != nil {
		return model.RoomResult{}, errors.Join(ErrInternal, err)
	}

	return model.RoomResult{
		ID:               uuid.New(),
		RoomID:           room.ID,
		ComputedAt:       time.Now(),
		AlgorithmVersion: algorithm.Version(),
		RankedMovies:     ranked,
	}, nil
}

func (u *Usecase) roomByCode(ctx context.Context, code string) (model.Room, error) {
	if code == "" {
		return model.Room{}, fmt.Errorf("%w: room code required", ErrInvalidInput)
	}
	room, err := u.repository.RoomByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return model.Room{}, ErrRoomNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}
	return room, nil
}

func (u *Usecase) details(ctx context.Context, room model.Room) (Details, error) {
	members, err := u.repository.Members(ctx, room.ID)
	if err != nil {
		return Details{}, errors.Join(ErrInternal, err)
	}
	movies, err := u.repository.Movies(ctx, room.ID)
	if err != nil {
		return Details{}, errors.Join(ErrInternal, err)
	}
	return Details{Room: room, Members: members, Movies: movies}, nil
}
