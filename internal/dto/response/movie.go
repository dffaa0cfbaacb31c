package response

import (
	"movies-api/internal/data/entity"
)

type MovieResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Director string   `json:"director"`
	Duration int      `json:"duration"`
	Poster   string   `json:"poster"`
	Genre    []string `json:"genre"`
	Rate     float64  `json:"rate"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	genres := make([]string, len(movie.Genre))
	for i, g := range movie.Genre {
		genres[i] = string(g)
	}

	return MovieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Year:     movie.Year,
		Director: movie.Director,
		Duration: movie.Duration,
		Poster:   movie.Poster,
		Genre:    genres,
		Rate:     movie.Rate,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}
