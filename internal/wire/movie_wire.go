package wire

import (
	"movies-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)         // GET /movies?genre=
		r.Post("/", movieHandler.CreateMovie)      // POST /movies
		r.Get("/{id}", movieHandler.GetMovieByID)  // GET /movies/{id}
		r.Patch("/{id}", movieHandler.UpdateMovie) // PATCH /movies/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
