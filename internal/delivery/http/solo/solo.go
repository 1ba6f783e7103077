package http_solo

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelrank/core/internal/delivery/http/common"
	"github.com/reelrank/core/internal/model"
	usecase_solo "github.com/reelrank/core/internal/usecase/solo"
)

type Controller struct {
	usecase *usecase_solo.Usecase
	auth    gin.HandlerFunc
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_solo.Usecase, auth gin.HandlerFunc, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		auth:    auth,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	solo := router.Group("/solo", c.auth)
	{
		solo.POST("/swipes", c.swipe)
		solo.POST("/choices", c.choose)
		solo.GET("/rankings", c.rankings)
		solo.GET("/lists/:type", c.list)
		solo.POST("/watched", c.recordWatched)
		solo.GET("/watched", c.watchedList)
		solo.GET("/movies/:id/status", c.status)
	}
}

type MovieDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average"`
}

func convertMovie(m model.Movie) MovieDTO {
	return MovieDTO{
		ID:          m.ID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
	}
}

type SwipeRequestDTO struct {
	MovieID   int64  `json:"movie_id" binding:"required"`
	Direction string `json:"direction" binding:"required" enums:"left,right"`
}

type SwipeDTO struct {
	MovieID   int64     `json:"movie_id"`
	Direction string    `json:"direction"`
	CreatedAt time.Time `json:"created_at"`
}

// Swipe records a personal left/right vote
// @Summary Record solo swipe
// @Tags Solo
// @Accept json
// @Produce json
// @Param request body SwipeRequestDTO true "Swipe"
// @Success 200 {object} SwipeDTO "Swipe recorded"
// @Failure 400 {object} http_common.ErrorResponse "Invalid input"
// @Security BearerToken
// @Router /solo/swipes [post]
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

	swipe, err := c.usecase.Swipe(ctx.Request.Context(), user.ID, req.MovieID, model.SwipeDirection(req.Direction))
	if err != nil {
		c.fail(ctx, "failed to record swipe", err)
		return
	}

	ctx.JSON(http.StatusOK, SwipeDTO{
		MovieID:   swipe.MovieID,
		Direction: string(swipe.Direction),
		CreatedAt: swipe.CreatedAt,
	})
}

type ChoiceRequestDTO struct {
	MovieAID int64 `json:"movie_a_id" binding:"required"`
	MovieBID int64 `json:"movie_b_id" binding:"required"`
	ChosenID int64 `json:"chosen_id" binding:"required"`
}

type ChoiceDTO struct {
	MovieAID  int64     `json:"movie_a_id"`
	MovieBID  int64     `json:"movie_b_id"`
	ChosenID  int64     `json:"chosen_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Choose records a this-or-that pick between two movies
// @Summary Record pairwise choice
// @Description The chosen id must be one of the two compared movies
// @Tags Solo
// @Accept json
// @Produce json
// @Param request body ChoiceRequestDTO true "Choice"
// @Success 201 {object} ChoiceDTO "Choice recorded"
// @Failure 400 {object} http_common.ErrorResponse "Invalid input"
// @Security BearerToken
// @Router /solo/choices [post]
func (c *Controller) choose(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ChoiceRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Error(ctx, http.StatusBadRequest, "invalid input")
		return
	}

	choice, err := c.usecase.RecordChoice(ctx.Request.Context(), user.ID, req.MovieAID, req.MovieBID, req.ChosenID)
	if err != nil {
		c.fail(ctx, "failed to record choice", err)
		return
	}

	ctx.JSON(http.StatusCreated, ChoiceDTO{
		MovieAID:  choice.MovieAID,
		MovieBID:  choice.MovieBID,
		ChosenID:  choice.ChosenID,
		CreatedAt: choice.CreatedAt,
	})
}

type RankingDTO struct {
	MovieID     int64    `json:"movie_id"`
	Movie       MovieDTO `json:"movie"`
	EloScore    float64  `json:"elo_score"`
	SwipeSignal int      `json:"swipe_signal"`
	Rank        int      `json:"rank"`
}

// Rankings returns the caller's personal rating leaderboard
// @Summary Get personal rankings
// @Description Ratings are folded from the full pairwise choice history
// @Tags Solo
// @Produce json
// @Success 200 {array} RankingDTO "Ranked movies"
// @Security BearerToken
// @Router /solo/rankings [get]
func (c *Controller) rankings(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	rankings, err := c.usecase.Ranking(ctx.Request.Context(), user.ID)
	if err != nil {
		c.fail(ctx, "failed to compute rankings", err)
		return
	}

	response := make([]RankingDTO, 0, len(rankings))
	for _, r := range rankings {
		response = append(response, RankingDTO{
			MovieID:     r.MovieID,
			Movie:       convertMovie(r.Movie),
			EloScore:    r.EloScore,
			SwipeSignal: r.SwipeSignal,
			Rank:        r.Rank,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

type ListEntryDTO struct {
	Movie     MovieDTO  `json:"movie"`
	Direction string    `json:"direction"`
	SwipedAt  time.Time `json:"swiped_at"`
}

// List returns the caller's swiped movies
// @Summary Get swipe list
// @Description "want" keeps right swipes only; "all" returns everything
// @Tags Solo
// @Produce json
// @Param type path string true "List type" Enums(want, all)
// @Success 200 {array} ListEntryDTO "Swiped movies"
// @Failure 400 {object} http_common.ErrorResponse "Unknown list type"
// @Security BearerToken
// @Router /solo/lists/{type} [get]
func (c *Controller) list(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	entries, err := c.usecase.List(ctx.Request.Context(), user.ID, usecase_solo.ListType(ctx.Param("type")))
	if err != nil {
		c.fail(ctx, "failed to list swipes", err)
		return
	}

	response := make([]ListEntryDTO, 0, len(entries))
	for _, e := range entries {
		response = append(response, ListEntryDTO{
			Movie:     convertMovie(e.Movie),
			Direction: string(e.Swipe.Direction),
			SwipedAt:  e.Swipe.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

type WatchedRequestDTO struct {
	MovieID   int64   `json:"movie_id" binding:"required"`
	Rating    float64 `json:"rating"`
	WatchedAt string  `json:"watched_at"`
	Venue     string  `json:"venue"`
	Notes     string  `json:"notes"`
}

type WatchedDTO struct {
	MovieID   int64     `json:"movie_id"`
	Rating    float64   `json:"rating"`
	WatchedAt string    `json:"watched_at,omitempty"`
	Venue     string    `json:"venue,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func convertWatched(w model.WatchedMovie) WatchedDTO {
	return WatchedDTO{
		MovieID:   w.MovieID,
		Rating:    w.Rating,
		WatchedAt: w.WatchedAt,
		Venue:     w.Venue,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// RecordWatched logs a movie as watched
// @Summary Log watched movie
// @Description Upserts; repeating updates the rating and notes
// @Tags Solo
// @Accept json
// @Produce json
// @Param request body WatchedRequestDTO true "Watch log entry"
// @Success 200 {object} WatchedDTO "Entry updated"
// @Success 201 {object} WatchedDTO "Entry created"
// @Failure 400 {object} http_common.ErrorResponse "Invalid rating"
// @Security BearerToken
// @Router /solo/watched [post]
func (c *Controller) recordWatched(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req WatchedRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Error(ctx, http.StatusBadRequest, "invalid input")
		return
	}

	entry, created, err := c.usecase.RecordWatched(ctx.Request.Context(), model.WatchedMovie{
		UserID:    user.ID,
		MovieID:   req.MovieID,
		Rating:    req.Rating,
		WatchedAt: req.WatchedAt,
		Venue:     req.Venue,
		Notes:     req.Notes,
	})
	if err != nil {
		c.fail(ctx, "failed to record watched movie", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, convertWatched(entry))
}

type WatchedEntryDTO struct {
	Movie MovieDTO   `json:"movie"`
	Entry WatchedDTO `json:"entry"`
}

// WatchedList returns the caller's watch log
// @Summary Get watched movies
// @Tags Solo
// @Produce json
// @Success 200 {array} WatchedEntryDTO "Watch log, newest first"
// @Security BearerToken
// @Router /solo/watched [get]
func (c *Controller) watchedList(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	entries, err := c.usecase.WatchedList(ctx.Request.Context(), user.ID)
	if err != nil {
		c.fail(ctx, "failed to list watched movies", err)
		return
	}

	response := make([]WatchedEntryDTO, 0, len(entries))
	for _, e := range entries {
		response = append(response, WatchedEntryDTO{
			Movie: convertMovie(e.Movie),
			Entry: convertWatched(e.Entry),
		})
	}

	ctx.JSON(http.StatusOK, response)
}

type StatusDTO struct {
	SwipeDirection *string     `json:"swipe_direction"`
	Watched        *WatchedDTO `json:"watched"`
	EloScore       *float64    `json:"elo_score"`
	Rank           *int        `json:"rank"`
}

// Status aggregates everything the caller knows about one movie
// @Summary Get movie status
// @Tags Solo
// @Produce json
// @Param id path int true "Movie id"
// @Success 200 {object} StatusDTO "Per-user movie status"
// @Failure 400 {object} http_common.ErrorResponse "Bad movie id"
// @Security BearerToken
// @Router /solo/movies/{id}/status [get]
func (c *Controller) status(ctx *gin.Context) {
	user, ok := http_common.UserFrom(ctx)
	if !ok {
		http_common.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	movieID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || movieID <= 0 {
		http_common.Error(ctx, http.StatusBadRequest, "invalid movie id")
		return
	}

	status, err := c.usecase.Status(ctx.Request.Context(), user.ID, movieID)
	if err != nil {
		c.fail(ctx, "failed to get movie status", err)
		return
	}

	dto := StatusDTO{
		EloScore: status.EloScore,
		Rank:     status.Rank,
	}
	if status.SwipeDirection != nil {
		direction := string(*status.SwipeDirection)
		dto.SwipeDirection = &direction
	}
	if status.Watched != nil {
		watched := convertWatched(*status.Watched)
		dto.Watched = &watched
	}

	ctx.JSON(http.StatusOK, dto)
}

func (c *Controller) fail(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg,
		slog.String("request_id", http_common.RequestIDFrom(ctx)),
		slog.String("error", err.Error()))

	switch {
	case errors.Is(err, usecase_solo.ErrInvalidInput):
		http_common.Error(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase_solo.ErrNotFound):
		http_common.Error(ctx, http.StatusNotFound, "not found")
	default:
		http_common.Error(ctx, http.StatusInternalServerError, "internal error")
	}
}
