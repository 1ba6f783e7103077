package http_movie

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelrank/core/internal/delivery/http/common"
	"github.com/reelrank/core/internal/model"
	usecase_movie "github.com/reelrank/core/internal/usecase/movie"
)

type Controller struct {
	usecase     *usecase_movie.Usecase
	auth        gin.HandlerFunc
	searchLimit gin.HandlerFunc
	logger      *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_movie.Usecase, auth gin.HandlerFunc, searchLimit gin.HandlerFunc, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase:     usecase,
		auth:        auth,
		searchLimit: searchLimit,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies", c.auth)
	{
		movies.GET("/search", c.searchLimit, c.search)
		movies.GET("/trending", c.trending)
		movies.GET("/:id", c.byID)
	}
}

type MovieDTO struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	GenreIDs     []int64 `json:"genre_ids,omitempty"`
}

type PageDTO struct {
	Movies       []MovieDTO `json:"movies"`
	Page         int        `json:"page"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

func convertMovie(m model.Movie) MovieDTO {
	return MovieDTO{
		ID:           m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		ReleaseDate:  m.ReleaseDate,
		VoteAverage:  m.VoteAverage,
		VoteCount:    m.VoteCount,
		Popularity:   m.Popularity,
		GenreIDs:     m.GenreIDs,
	}
}

func convertPage(p usecase_movie.Page) PageDTO {
	dto := PageDTO{
		Movies:       make([]MovieDTO, 0, len(p.Movies)),
		Page:         p.Page,
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
	}
	for _, m := range p.Movies {
		dto.Movies = append(dto.Movies, convertMovie(m))
	}
	return dto
}

// Search queries the movie catalog
// @Summary Search movies
// @Tags Movies
// @Produce json
// @Param query query string true "Search query"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PageDTO "Search results"
// @Failure 400 {object} http_common.ErrorResponse "Missing query"
// @Failure 429 {object} http_common.ErrorResponse "Too many requests"
// @Security BearerToken
// @Router /movies/search [get]
func (c *Controller) search(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))

	result, err := c.usecase.Search(ctx.Request.Context(), ctx.Query("query"), page)
	if err != nil {
		c.fail(ctx, "failed to search movies", err)
		return
	}

	ctx.JSON(http.StatusOK, convertPage(result))
}

// Trending returns the catalog's trending movies
// @Summary Trending movies
// @Tags Movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PageDTO "Trending movies"
// @Security BearerToken
// @Router /movies/trending [get]
func (c *Controller) trending(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))

	result, err := c.usecase.Trending(ctx.Request.Context(), page)
	if err != nil {
		c.fail(ctx, "failed to fetch trending movies", err)
		return
	}

	ctx.JSON(http.StatusOK, convertPage(result))
}

// ByID returns full movie details
// @Summary Get movie by id
// @Tags Movies
// @Produce json
// @Param id path int true "Movie id"
// @Success 200 {object} MovieDTO "Movie"
// @Failure 404 {object} http_common.ErrorResponse "Movie not found"
// @Security BearerToken
// @Router /movies/{id} [get]
func (c *Controller) byID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		http_common.Error(ctx, http.StatusBadRequest, "invalid movie id")
		return
	}

	movie, err := c.usecase.ByID(ctx.Request.Context(), id)
	if err != nil {
		c.fail(ctx, "failed to get movie", err)
		return
	}

	ctx.JSON(http.StatusOK, convertMovie(movie))
}

func (c *Controller) fail(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg,
		slog.String("request_id", http_common.RequestIDFrom(ctx)),
		slog.String("error", err.Error()))

	switch {
	case errors.Is(err, usecase_movie.ErrInvalidInput):
		http_common.Error(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase_movie.ErrMovieNotFound):
		http_common.Error(ctx, http.StatusNotFound, "movie not found")
	default:
		http_common.Error(ctx, http.StatusInternalServerError, "internal error")
	}
}
