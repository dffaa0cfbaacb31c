package usecase

import (
	"context"
	"errors"
	"fmt"

	"movies-api/internal/data/entity"
	"movies-api/internal/data/repository"
	"movies-api/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, genre *string) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, movie *entity.Movie) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, patch *entity.MoviePatch) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, genre *string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx, genre)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Stringp("genre", genre),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Stringp("genre", genre),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		if !errors.Is(err, repository.ErrMovieNotFound) {
			s.log.Error("Failed to get movie by ID",
				zap.Error(err),
				zap.String("movie_id", movieID),
			)
		}
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, movie *entity.Movie) (*response.MovieResponse, error) {
	created, err := s.repo.Movie.Create(ctx, movie)
	if err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", created.ID),
		zap.String("title", created.Title),
		zap.Int("genre_count", len(created.Genre)),
	)

	movieResp := response.MovieToResponse(created)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, patch *entity.MoviePatch) (*response.MovieResponse, error) {
	updated, err := s.repo.Movie.Update(ctx, movieID, patch)
	if err != nil {
		if !errors.Is(err, repository.ErrMovieNotFound) {
			s.log.Error("Failed to update movie",
				zap.Error(err),
				zap.String("movie_id", movieID),
			)
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", updated.Title),
		zap.Bool("was_updated", !patch.IsEmpty()),
	)

	movieResp := response.MovieToResponse(updated)
	return &movieResp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		if !errors.Is(err, repository.ErrMovieNotFound) {
			s.log.Error("Failed to delete movie",
				zap.Error(err),
				zap.String("movie_id", movieID),
			)
		}
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))

	return nil
}
