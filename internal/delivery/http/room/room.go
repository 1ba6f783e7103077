package http_room

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelrank/core/internal/delivery/http/common"
	"github.com/reelrank/core/internal/model"
	usecase_room "github.com/reelrank/core/internal/usecase/room"
)

type Controller struct {
	usecase   *usecase_room.Usecase
	auth      gin.HandlerFunc
	joinLimit gin.HandlerFunc
	logger    *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_room.Usecase, auth gin.HandlerFunc, joinLimit gin.HandlerFunc, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase:   usecase,
		auth:      auth,
		joinLimit: joinLimit,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms", c.auth)
	{
		rooms.POST("", c.create)
		rooms.POST("/join", c.joinLimit, c.join)
		rooms.GET("/:code", c.get)
		rooms.POST("/:code/start", c.start)
		rooms.POST("/:code/submit", c.submit)
		rooms.POST("/:code/swipe", c.swipe)
		rooms.GET("/:code/results", c.results)
	}
}

type MemberDTO struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	JoinedAt    time.Time `json:"joined_at"`
}

type RoomMovieDTO struct {
	MovieID     int64     `json:"movie_id"`
	SubmittedBy string    `json:"submitted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoomDTO struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	HostID    string         `json:"host_id"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Members   []MemberDTO    `json:"members,omitempty"`
	Movies    []RoomMovieDTO `json:"movies,omitempty"`
}

type MovieScoreDTO struct {
	MovieID         int64   `json:"movie_id"`
	Title           string  `json:"title"`
	PosterPath      string  `json:"poster_path,omitempty"`
	Score           float64 `json:"score"`
	RightSwipes     int     `json:"right_swipes"`
	LeftSwipes      int     `json:"left_swipes"`
	TotalVoters     int     `json:"total_voters"`
	PopularityBonus float64 `json:"popularity_bonus"`
	RatingBonus     float64 `json:"rating_bonus"`
	FinalScore      float64 `json:"final_score"`
}

type ResultDTO struct {
	ID               string          `json:"id"`
	RoomID           string          `json:"room_id"`
	ComputedAt       time.Time       `json:"computed_at"`
	AlgorithmVersion string          `json:"algorithm_version"`
	RankedMovies     []MovieScoreDTO `json:"ranked_movies"`
}

func convertDetails(d usecase_room.Details) RoomDTO {
	dto := RoomDTO{
		ID:        d.Room.ID.String(),
		Code:      d.Room.Code,
		HostID:    d.Room.HostID.String(),
		Status:    string(d.Room.Status),
		CreatedAt: d.Room.CreatedAt,
		UpdatedAt: d.Room.UpdatedAt,
	}
	for _, m := range d.Members {
		member := MemberDTO{
			UserID:   m.UserID.String(),
			JoinedAt: m.JoinedAt,
		}
		if m.User != nil {
			member.DisplayName = m.User.DisplayName
			member.PhotoURL = m.User.PhotoURL
		}
		dto.Members = append(dto.Members, member)
	}
	for _, m := range d.Movies {
		dto.Movies = append(dto.Movies, RoomMovieDTO{
			MovieID:     m.MovieID,
			SubmittedBy: m.SubmittedBy.String(),
			CreatedAt:   m.CreatedAt,
		})
	}
	return dto
}

func convertResult(r model.RoomResult) ResultDTO {
	dto := ResultDTO{
		ID:               r.ID.String(),
		RoomID:           r.RoomID.String(),
		ComputedAt:       r.ComputedAt,
		AlgorithmVersion: r.AlgorithmVersion,
		RankedMovies:     make([]MovieScoreDTO, 0, len(r.RankedMovies)),
	}
	for _, s := range r.RankedMovies {
		dto.RankedMovies = append(dto.RankedMovies, MovieScoreDTO{
			MovieID:         s.MovieID,
			Title:           s.Movie.Title,
			PosterPath:      s.Movie.PosterPath,
			Score:           s.Score,
			RightSwipes:     s.RightSwipes,
			LeftSwipes:      s.LeftSwipes,
			TotalVoters:     s.TotalVoters,
			PopularityBonus: s.PopularityBonus,
			RatingBonus:     s.RatingBonus,
			FinalScore:      s.FinalScore,
		})
	}
	return dto
}

// Create books a new room
// @Summary Create room
// @Description Creates a lobby with the caller as host and first member
// @Tags Rooms
// @Produce json
// @Success 201 {object} RoomDTO "Room created"
// @Failure 401 {object} http_common.ErrorResponse "Unauthorized"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security BearerToken
// @Router /rooms [post]
func (c *Controller) create(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	details, err := c.usecase.Create(ctx.Request.Context(), user)
	if err != nil {
		c.fail(ctx, "failed to create room", err)
		return
	}

	ctx.JSON(http.StatusCreated, convertDetails(details))
}

type JoinRequestDTO struct {
	Code string `json:"code" binding:"required"`
}

// Join adds the caller to a lobby
// @Summary Join room by code
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body JoinRequestDTO true "Room code"
// @Success 200 {object} RoomDTO "Joined room"
// @Failure 400 {object} http_common.ErrorResponse "Room full or not joinable"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 429 {object} http_common.ErrorResponse "Too many requests"
// @Security BearerToken
// @Router /rooms/join [post]
func (c *Controller) join(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Error(ctx, http.StatusBadRequest, "invalid input")
		return
	}

	details, err := c.usecase.Join(ctx.Request.Context(), req.Code, user)
	if err != nil {
		c.fail(ctx, "failed to join room", err)
		return
	}

	ctx.JSON(http.StatusOK, convertDetails(details))
}

// Get returns a room with members and movies
// @Summary Get room
// @Tags Rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} RoomDTO "Room"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Security BearerToken
// @Router /rooms/{code} [get]
func (c *Controller) get(ctx *gin.Context) {
	details, err := c.usecase.Get(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		c.fail(ctx, "failed to get room", err)
		return
	}

	ctx.JSON(http.StatusOK, convertDetails(details))
}

type StartRequestDTO struct {
	Phase string `json:"phase" binding:"required" enums:"submitting,swiping,results"`
}

// Start advances the room lifecycle
// @Summary Transition room phase
// @Description Host-only; phases advance strictly lobby -> submitting -> swiping -> results
// @Tags Rooms
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body StartRequestDTO true "Target phase"
// @Success 200 {object} RoomDTO "Updated room"
// @Failure 403 {object} http_common.ErrorResponse "Not the host"
// @Failure 409 {object} http_common.ErrorResponse "Illegal transition"
// @Security BearerToken
// @Router /rooms/{code}/start [post]
func (c *Controller) start(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req StartRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Error(ctx, http.StatusBadRequest, "invalid input")
		return
	}

	room, err := c.usecase.Transition(ctx.Request.Context(), ctx.Param("code"), user.ID, model.RoomStatus(req.Phase))
	if err != nil {
		c.fail(ctx, "failed to transition room", err)
		return
	}

	ctx.JSON(http.StatusOK, convertDetails(usecase_room.Details{Room: room}))
}

type SubmitRequestDTO struct {
	MovieID int64 `json:"movie_id" binding:"required"`
}

// Submit adds a candidate movie
// @Summary Submit movie to room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body SubmitRequestDTO true "Movie id"
// @Success 201 {object} RoomMovieDTO "Movie submitted"
// @Failure 403 {object} http_common.ErrorResponse "Not a member"
// @Failure 409 {object} http_common.ErrorResponse "Already submitted"
// @Security BearerToken
// @Router /rooms/{code}/submit [post]
func (c *Controller) submit(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req SubmitRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Error(ctx, http.StatusBadRequest, "invalid input")
		return
	}

	movie, err := c.usecase.SubmitMovie(ctx.Request.Context(), ctx.Param("code"), user.ID, req.MovieID)
	if err != nil {
		c.fail(ctx, "failed to submit movie", err)
		return
	}

	ctx.JSON(http.StatusCreated, RoomMovieDTO{
		MovieID:     movie.MovieID,
		SubmittedBy: movie.SubmittedBy.String(),
		CreatedAt:   movie.CreatedAt,
	})
}

type SwipeRequestDTO struct {
	MovieID   int64  `json:"movie_id" binding:"required"`
	Direction string `json:"direction" binding:"required" enums:"left,right"`
}

type SwipeResponseDTO struct {
	MovieID       int64   `json:"movie_id"`
	Direction     string  `json:"direction"`
	Progress      float64 `json:"progress"`
	TotalSwipes   int     `json:"total_swipes"`
	TotalExpected int     `json:"total_expected"`
}

// Swipe records a vote on a candidate movie
// @Summary Swipe on room movie
// @Description Upserts the caller's vote; repeating a swipe changes it
// @Tags Rooms
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body SwipeRequestDTO true "Swipe"
// @Success 200 {object} SwipeResponseDTO "Swipe recorded with room progress"
// @Failure 400 {object} http_common.ErrorResponse "Wrong phase or invalid input"
// @Failure 403 {object} http_common.ErrorResponse "Not a member"
// @Security BearerToken
// @Router /rooms/{code}/swipe [post]
func (c *Controller) swipe(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req SwipeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Error(ctx, http.StatusBadRequest, "invalid input")
		return
	}

	swipe, progress, err := c.usecase.Swipe(ctx.Request.Context(), ctx.Param("code"), user.ID, req.MovieID, model.SwipeDirection(req.Direction))
	if err != nil {
		c.fail(ctx, "failed to swipe", err)
		return
	}

	ctx.JSON(http.StatusOK, SwipeResponseDTO{
		MovieID:       swipe.MovieID,
		Direction:     string(swipe.Direction),
		Progress:      progress.Ratio,
		TotalSwipes:   progress.TotalSwipes,
		TotalExpected: progress.TotalExpected,
	})
}

// Results finalizes the room and returns the ranked list
// @Summary Get room results
// @Description Computes and stores a ranked snapshot; a fetch during swiping finalizes the room
// @Tags Rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} ResultDTO "Ranked results"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Security BearerToken
// @Router /rooms/{code}/results [get]
func (c *Controller) results(ctx *gin.Context) {
	result, err := c.usecase.Results(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		c.fail(ctx, "failed to compute results", err)
		return
	}

	ctx.JSON(http.StatusOK, convertResult(result))
}

func (c *Controller) fail(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg,
		slog.String("request_id", http_common.RequestIDFrom(ctx)),
		slog.String("error", err.Error()))

	switch {
	case errors.Is(err, usecase_room.ErrInvalidInput):
		http_common.Error(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase_room.ErrRoomNotFound):
		http_common.Error(ctx, http.StatusNotFound, "room not found")
	case errors.Is(err, usecase_room.ErrNotHost), errors.Is(err, usecase_room.ErrNotMember):
		http_common.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, usecase_room.ErrRoomNotJoinable),
		errors.Is(err, usecase_room.ErrRoomFull),
		errors.Is(err, usecase_room.ErrMoviesFull),
		errors.Is(err, usecase_room.ErrWrongStatus):
		http_common.Error(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase_room.ErrIllegalTransition),
		errors.Is(err, usecase_room.ErrMovieAlreadySubmitted):
		http_common.Error(ctx, http.StatusConflict, err.Error())
	default:
		http_common.Error(ctx, http.StatusInternalServerError, "internal error")
	}
}
