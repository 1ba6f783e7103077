package infra_tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/reelrank/core/internal/config"
	"github.com/reelrank/core/internal/model"
	usecase_movie "github.com/reelrank/core/internal/usecase/movie"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(cfg config.TMDB) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: slog.Default(),
	}
}

type movieDTO struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	GenreIDs     []int64 `json:"genre_ids"`
	Genres       []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

type pageDTO struct {
	Page         int        `json:"page"`
	Results      []movieDTO `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

func (c *Client) Search(ctx context.Context, query string, page int) (usecase_movie.Page, error) {
	var dto pageDTO
	err := c.get(ctx, "/search/movie", url.Values{
		"query":         {query},
		"page":          {strconv.Itoa(page)},
		"include_adult": {"false"},
		"language":      {"en-US"},
	}, &dto)
	if err != nil {
		return usecase_movie.Page{}, err
	}
	return toPage(dto), nil
}

func (c *Client) Trending(ctx context.Context, page int) (usecase_movie.Page, error) {
	var dto pageDTO
	err := c.get(ctx, "/trending/movie/week", url.Values{
		"page":     {strconv.Itoa(page)},
		"language": {"en-US"},
	}, &dto)
	if err != nil {
		return usecase_movie.Page{}, err
	}
	return toPage(dto), nil
}

func (c *Client) MovieByID(ctx context.Context, id int64) (model.Movie, error) {
	var dto movieDTO
	err := c.get(ctx, fmt.Sprintf("/movie/%d", id), url.Values{
		"language": {"en-US"},
	}, &dto)
	if err != nil {
		return model.Movie{}, err
	}

	mm := toMovie(dto)
	// Detail responses carry full genre objects instead of genre_ids.
	if len(mm.GenreIDs) == 0 && len(dto.Genres) > 0 {
		for _, g := range dto.Genres {
			mm.GenreIDs = append(mm.GenreIDs, g.ID)
		}
	}
	return mm, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return usecase_movie.ErrMovieNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog returned unexpected status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func toPage(dto pageDTO) usecase_movie.Page {
	movies := make([]model.Movie, 0, len(dto.Results))
	for _, m := range dto.Results {
		movies = append(movies, toMovie(m))
	}
	return usecase_movie.Page{
		Movies:       movies,
		Page:         dto.Page,
		TotalPages:   dto.TotalPages,
		TotalResults: dto.TotalResults,
	}
}

func toMovie(dto movieDTO) model.Movie {
	return model.Movie{
		ID:           dto.ID,
		Title:        dto.Title,
		Overview:     dto.Overview,
		PosterPath:   dto.PosterPath,
		BackdropPath: dto.BackdropPath,
		ReleaseDate:  dto.ReleaseDate,
		VoteAverage:  dto.VoteAverage,
		VoteCount:    dto.VoteCount,
		Popularity:   dto.Popularity,
		GenreIDs:     dto.GenreIDs,
	}
}
