package usecase_solo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reelrank/core/internal/model"
	"github.com/reelrank/core/internal/service/elo"
	catalog_mocks "github.com/reelrank/core/internal/usecase/solo/mocks/catalog"
	repo_mocks "github.com/reelrank/core/internal/usecase/solo/mocks/repository"
)

type UsecaseSoloUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	repo    *repo_mocks.Repository
	catalog *catalog_mocks.Catalog
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewRepository(t)
	catalog := catalog_mocks.NewCatalog(t)

	return &resources{
		usecase: New(repo, catalog),
		repo:    repo,
		catalog: catalog,
		ctx:     context.Background(),
	}
}

func validMovie(id int64) model.Movie {
	return model.Movie{ID: id, Title: "Movie", VoteAverage: 7.5}
}

func (s *UsecaseSoloUnitSuite) TestSwipe(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		movieID     int64
		direction   model.SwipeDirection
		setupMocks  func(r *resources)
		expectError bool
	}{
		{
			name:      "Should record right swipe",
			movieID:   42,
			direction: model.SwipeRight,
			setupMocks: func(r *resources) {
				r.repo.On("UpsertSwipe", r.ctx, mock.AnythingOfType("model.SoloSwipe")).Return(nil).Once()
			},
		},
		{
			name:        "Should reject non-positive movie id",
			movieID:     -1,
			direction:   model.SwipeLeft,
			setupMocks:  func(r *resources) {},
			expectError: true,
		},
		{
			name:        "Should reject unknown direction",
			movieID:     42,
			direction:   model.SwipeDirection("down"),
			setupMocks:  func(r *resources) {},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			swipe, err := r.usecase.Swipe(r.ctx, uuid.New(), tc.movieID, tc.direction)

			if tc.expectError {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.movieID, swipe.MovieID)
				assert.Equal(t, tc.direction, swipe.Direction)
			}
			r.repo.AssertExpectations(t)
		})
	}
}

func (s *UsecaseSoloUnitSuite) TestRecordChoice(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		a, b, c     int64
		setupMocks  func(r *resources)
		expectError bool
	}{
		{
			name: "Should record pick of first movie",
			a:    1, b: 2, c: 1,
			setupMocks: func(r *resources) {
				r.repo.On("AddChoice", r.ctx, mock.AnythingOfType("model.PairwiseChoice")).Return(nil).Once()
			},
		},
		{
			name: "Should record pick of second movie",
			a:    1, b: 2, c: 2,
			setupMocks: func(r *resources) {
				r.repo.On("AddChoice", r.ctx, mock.AnythingOfType("model.PairwiseChoice")).Return(nil).Once()
			},
		},
		{
			name: "Should reject a self comparison",
			a:    1, b: 1, c: 1,
			setupMocks:  func(r *resources) {},
			expectError: true,
		},
		{
			name: "Should reject a choice outside the pair",
			a:    1, b: 2, c: 3,
			setupMocks:  func(r *resources) {},
			expectError: true,
		},
		{
			name: "Should reject non-positive ids",
			a:    0, b: 2, c: 2,
			setupMocks:  func(r *resources) {},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			choice, err := r.usecase.RecordChoice(r.ctx, uuid.New(), tc.a, tc.b, tc.c)

			if tc.expectError {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.c, choice.ChosenID)
			}
			r.repo.AssertExpectations(t)
		})
	}
}

func (s *UsecaseSoloUnitSuite) TestRanking(t provider.T) {
	t.Parallel()

	t.Run("Should rank the consistent winner first", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		userID := uuid.New()

		r.repo.On("Choices", r.ctx, userID).Return([]model.PairwiseChoice{
			{UserID: userID, MovieAID: 1, MovieBID: 2, ChosenID: 1},
			{UserID: userID, MovieAID: 1, MovieBID: 3, ChosenID: 1},
			{UserID: userID, MovieAID: 2, MovieBID: 3, ChosenID: 2},
		}, nil).Once()
		r.repo.On("LikedMovieIDs", r.ctx, userID).Return([]int64{1, 2}, nil).Once()
		for _, id := range []int64{1, 2, 3} {
			r.catalog.On("MovieByID", r.ctx, id).Return(validMovie(id), nil).Once()
		}

		rankings, err := r.usecase.Ranking(r.ctx, userID)

		assert.NoError(t, err)
		assert.Len(t, rankings, 3)
		assert.Equal(t, int64(1), rankings[0].MovieID)
		assert.Equal(t, 1, rankings[0].Rank)
		assert.Equal(t, int64(3), rankings[2].MovieID)
		assert.Equal(t, 1, rankings[0].SwipeSignal)
		assert.Equal(t, 0, rankings[2].SwipeSignal)
		assert.Greater(t, rankings[0].EloScore, rankings[2].EloScore)
	})

	t.Run("Should include liked movies never compared", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		userID := uuid.New()

		r.repo.On("Choices", r.ctx, userID).Return(nil, nil).Once()
		r.repo.On("LikedMovieIDs", r.ctx, userID).Return([]int64{9}, nil).Once()
		r.catalog.On("MovieByID", r.ctx, int64(9)).Return(validMovie(9), nil).Once()

		rankings, err := r.usecase.Ranking(r.ctx, userID)

		assert.NoError(t, err)
		assert.Len(t, rankings, 1)
		assert.Equal(t, int64(9), rankings[0].MovieID)
		assert.Equal(t, 1, rankings[0].SwipeSignal)
		assert.InDelta(t, elo.InitialRating, rankings[0].EloScore, 1e-9)
	})

	t.Run("Should drop movies the catalog no longer resolves", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		userID := uuid.New()

		r.repo.On("Choices", r.ctx, userID).Return([]model.PairwiseChoice{
			{UserID: userID, MovieAID: 1, MovieBID: 2, ChosenID: 1},
		}, nil).Once()
		r.repo.On("LikedMovieIDs", r.ctx, userID).Return(nil, nil).Once()
		r.catalog.On("MovieByID", r.ctx, int64(1)).Return(validMovie(1), nil).Once()
		r.catalog.On("MovieByID", r.ctx, int64(2)).Return(model.Movie{}, assert.AnError).Once()

		rankings, err := r.usecase.Ranking(r.ctx, userID)

		assert.NoError(t, err)
		assert.Len(t, rankings, 1)
		assert.Equal(t, int64(1), rankings[0].MovieID)
	})
}

func (s *UsecaseSoloUnitSuite) TestList(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		listType  ListType
		onlyRight bool
	}{
		{name: "Should request right swipes for the want list", listType: ListWant, onlyRight: true},
		{name: "Should request everything for the all list", listType: ListAll, onlyRight: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			userID := uuid.New()

			r.repo.On("Swipes", r.ctx, userID, tc.onlyRight).Return([]model.SoloSwipe{
				{UserID: userID, MovieID: 5, Direction: model.SwipeRight},
			}, nil).Once()
			r.catalog.On("MovieByID", r.ctx, int64(5)).Return(validMovie(5), nil).Once()

			entries, err := r.usecase.List(r.ctx, userID, tc.listType)

			assert.NoError(t, err)
			assert.Len(t, entries, 1)
			assert.Equal(t, int64(5), entries[0].Movie.ID)
			r.repo.AssertExpectations(t)
		})
	}
}

func (s *UsecaseSoloUnitSuite) TestRecordWatched(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		entry       model.WatchedMovie
		created     bool
		setupMocks  func(r *resources)
		expectError bool
	}{
		{
			name:    "Should create new entry",
			entry:   model.WatchedMovie{MovieID: 42, Rating: 8.5, Venue: "cinema"},
			created: true,
			setupMocks: func(r *resources) {
				r.repo.On("UpsertWatched", r.ctx, mock.AnythingOfType("model.WatchedMovie")).
					Return(func(_ context.Context, e model.WatchedMovie) model.WatchedMovie { return e }, true, nil).Once()
			},
		},
		{
			name:    "Should update existing entry",
			entry:   model.WatchedMovie{MovieID: 42, Rating: 6},
			created: false,
			setupMocks: func(r *resources) {
				r.repo.On("UpsertWatched", r.ctx, mock.AnythingOfType("model.WatchedMovie")).
					Return(func(_ context.Context, e model.WatchedMovie) model.WatchedMovie { return e }, false, nil).Once()
			},
		},
		{
			name:        "Should reject rating above ten",
			entry:       model.WatchedMovie{MovieID: 42, Rating: 10.5},
			setupMocks:  func(r *resources) {},
			expectError: true,
		},
		{
			name:        "Should reject negative rating",
			entry:       model.WatchedMovie{MovieID: 42, Rating: -1},
			setupMocks:  func(r *resources) {},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			_, created, err := r.usecase.RecordWatched(r.ctx, tc.entry)

			if tc.expectError {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.created, created)
			}
			r.repo.AssertExpectations(t)
		})
	}

	t.Run("Should echo stored timestamps on update", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		firstWatch := time.Now().Add(-72 * time.Hour).Truncate(time.Second)
		stored := model.WatchedMovie{MovieID: 42, Rating: 6, CreatedAt: firstWatch, UpdatedAt: time.Now()}

		r.repo.On("UpsertWatched", r.ctx, mock.AnythingOfType("model.WatchedMovie")).
			Return(stored, false, nil).Once()

		entry, created, err := r.usecase.RecordWatched(r.ctx, model.WatchedMovie{MovieID: 42, Rating: 6})

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, firstWatch, entry.CreatedAt)
		r.repo.AssertExpectations(t)
	})
}

func (s *UsecaseSoloUnitSuite) TestStatus(t provider.T) {
	t.Parallel()

	t.Run("Should aggregate swipe, watch log and rank", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		userID := uuid.New()
		watched := model.WatchedMovie{UserID: userID, MovieID: 7, Rating: 9, CreatedAt: time.Now()}

		r.repo.On("Swipe", r.ctx, userID, int64(7)).Return(model.SoloSwipe{
			UserID: userID, MovieID: 7, Direction: model.SwipeRight,
		}, nil).Once()
		r.repo.On("Watched", r.ctx, userID, int64(7)).Return(watched, nil).Once()
		r.repo.On("Choices", r.ctx, userID).Return(nil, nil).Once()
		r.repo.On("LikedMovieIDs", r.ctx, userID).Return([]int64{7}, nil).Once()
		r.catalog.On("MovieByID", r.ctx, int64(7)).Return(validMovie(7), nil).Once()

		status, err := r.usecase.Status(r.ctx, userID, 7)

		assert.NoError(t, err)
		if assert.NotNil(t, status.SwipeDirection) {
			assert.Equal(t, model.SwipeRight, *status.SwipeDirection)
		}
		if assert.NotNil(t, status.Watched) {
			assert.Equal(t, watched.Rating, status.Watched.Rating)
		}
		if assert.NotNil(t, status.Rank) {
			assert.Equal(t, 1, *status.Rank)
		}
		assert.NotNil(t, status.EloScore)
	})

	t.Run("Should leave fields nil for an untouched movie", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		userID := uuid.New()

		r.repo.On("Swipe", r.ctx, userID, int64(7)).Return(model.SoloSwipe{}, ErrNotFound).Once()
		r.repo.On("Watched", r.ctx, userID, int64(7)).Return(model.WatchedMovie{}, ErrNotFound).Once()
		r.repo.On("Choices", r.ctx, userID).Return(nil, nil).Once()
		r.repo.On("LikedMovieIDs", r.ctx, userID).Return(nil, nil).Once()

		status, err := r.usecase.Status(r.ctx, userID, 7)

		assert.NoError(t, err)
		assert.Nil(t, status.SwipeDirection)
		assert.Nil(t, status.Watched)
		assert.Nil(t, status.EloScore)
		assert.Nil(t, status.Rank)
	})
}

func TestSoloUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSoloUnitSuite))
}
