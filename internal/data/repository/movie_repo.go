package repository

import (
	"context"
	"errors"
	"slices"
	"sync"

	"movies-api/internal/data/entity"
	"movies-api/pkg/utils"

	"go.uber.org/zap"
)

var ErrMovieNotFound = errors.New("movie not found")

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, movie *entity.Movie) (*entity.Movie, error)
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
	Update(ctx context.Context, id string, patch *entity.MoviePatch) (*entity.Movie, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context, genre *string) ([]*entity.Movie, error)
	Count(ctx context.Context) int
}

// movieRepository keeps movies in insertion order. All access goes through mu;
// callers only ever see copies.
type movieRepository struct {
	mu     sync.RWMutex
	movies []*entity.Movie
	log    *zap.Logger
	newID  func() string
}

func NewMovieRepository(seed []entity.Movie, log *zap.Logger) MovieRepository {
	movies := make([]*entity.Movie, len(seed))
	for i := range seed {
		movies[i] = seed[i].Clone()
	}

	return &movieRepository{
		movies: movies,
		log:    log.With(zap.String("repository", "movie")),
		newID:  utils.GenerateUUIDString,
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := movie.Clone()
	stored.ID = r.newID()
	for r.indexOf(stored.ID) != -1 {
		r.log.Warn("Generated movie ID collided, regenerating", zap.String("movie_id", stored.ID))
		stored.ID = r.newID()
	}

	r.movies = append(r.movies, stored)

	r.log.Debug("Movie stored",
		zap.String("movie_id", stored.ID),
		zap.Int("total", len(r.movies)),
	)

	return stored.Clone(), nil
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return nil, ErrMovieNotFound
	}

	return r.movies[i].Clone(), nil
}

func (r *movieRepository) FindAll(ctx context.Context, genre *string) ([]*entity.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*entity.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		if genre != nil && *genre != "" && !m.HasGenre(*genre) {
			continue
		}
		movies = append(movies, m.Clone())
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Stringp("genre", genre),
	)

	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, id string, patch *entity.MoviePatch) (*entity.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return nil, ErrMovieNotFound
	}

	updated := r.movies[i].Clone()
	patch.Apply(updated)
	r.movies[i] = updated

	return updated.Clone(), nil
}

func (r *movieRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return ErrMovieNotFound
	}

	r.movies = slices.Delete(r.movies, i, i+1)

	r.log.Info("Movie removed", zap.String("movie_id", id))
	return nil
}

func (r *movieRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.movies)
}

// indexOf must be called with mu held.
func (r *movieRepository) indexOf(id string) int {
	for i, m := range r.movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}
