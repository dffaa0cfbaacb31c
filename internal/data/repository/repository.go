package repository

import (
	"movies-api/internal/data/entity"

	"go.uber.org/zap"
)

type Repository struct {
	Movie MovieRepository
}

// NewRepository builds the repositories around the startup seed.
func NewRepository(seed []entity.Movie, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(seed, log),
	}
}
