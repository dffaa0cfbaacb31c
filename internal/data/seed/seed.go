// Package seed loads the movies the collection starts with.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"movies-api/internal/data/entity"
	"movies-api/internal/schema"
)

//go:embed movies.json
var defaultMovies []byte

// Load reads the seed from path, or the embedded default when path is empty.
// Every record must carry a unique id and pass full movie validation.
func Load(path string) ([]entity.Movie, error) {
	data := defaultMovies
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) ([]entity.Movie, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	movies := make([]entity.Movie, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, raw := range records {
		var key struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &key); err != nil || key.ID == "" {
			return nil, fmt.Errorf("seed movie %d: missing id", i)
		}
		if seen[key.ID] {
			return nil, fmt.Errorf("seed movie %d: duplicate id %s", i, key.ID)
		}
		seen[key.ID] = true

		movie, err := schema.ValidateMovie(raw)
		if err != nil {
			return nil, fmt.Errorf("seed movie %d (%s): %w", i, key.ID, err)
		}
		movie.ID = key.ID
		movies = append(movies, *movie)
	}

	return movies, nil
}
