package usecase_movie

import (
	"context"
	"errors"
	"fmt"

	"github.com/reelrank/core/internal/model"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrMovieNotFound = errors.New("movie not found")
	ErrInternal      = errors.New("internal error")
)

// Page is one page of catalog results.
type Page struct {
	Movies       []model.Movie
	Page         int
	TotalPages   int
	TotalResults int
}

//go:generate mockery --name=Catalog --output=./mocks/catalog --filename=catalog.go
type Catalog interface {
	Search(ctx context.Context, query string, page int) (Page, error)
	Trending(ctx context.Context, page int) (Page, error)
	MovieByID(ctx context.Context, id int64) (model.Movie, error)
}

type Usecase struct {
	catalog Catalog
}

func New(catalog Catalog) *Usecase {
	return &Usecase{catalog: catalog}
}

func (u *Usecase) Search(ctx context.Context, query string, page int) (Page, error) {
	if query == "" {
		return Page{}, fmt.Errorf("%w: query required", ErrInvalidInput)
	}
	if page <= 0 {
		page = 1
	}

	result, err := u.catalog.Search(ctx, query, page)
	if err != nil {
		return Page{}, errors.Join(ErrInternal, err)
	}
	return result, nil
}

func (u *Usecase) Trending(ctx context.Context, page int) (Page, error) {
	if page <= 0 {
		page = 1
	}

	result, err := u.catalog.Trending(ctx, page)
	if err != nil {
		return Page{}, errors.Join(ErrInternal, err)
	}
	return result, nil
}

func (u *Usecase) ByID(ctx context.Context, id int64) (model.Movie, error) {
	if id <= 0 {
		return model.Movie{}, fmt.Errorf("%w: movie id must be positive", ErrInvalidInput)
	}

	mm, err := u.catalog.MovieByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return model.Movie{}, ErrMovieNotFound
		}
		return model.Movie{}, errors.Join(ErrInternal, err)
	}
	return mm, nil
}
