package entity_test

import (
	"testing"

	"movies-api/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func sampleMovie() *entity.Movie {
	return &entity.Movie{
		ID:       "c8a7d63f-3b04-44d3-9d95-8782fd7dcfaf",
		Title:    "The Dark Knight",
		Year:     2008,
		Director: "Christopher Nolan",
		Duration: 152,
		Poster:   "https://i.ebayimg.com/images/g/yokAAOSw8w1YARbm/s-l1200.jpg",
		Genre:    []entity.Genre{entity.GenreAction, entity.GenreCrime, entity.GenreDrama},
		Rate:     9,
	}
}

func TestMoviePatch_Apply(t *testing.T) {
	m := sampleMovie()
	title := "The Dark Knight Returns"
	rate := 7.5

	patch := &entity.MoviePatch{Title: &title, Rate: &rate}
	patch.Apply(m)

	assert.Equal(t, "The Dark Knight Returns", m.Title)
	assert.Equal(t, 7.5, m.Rate)
	assert.Equal(t, 2008, m.Year)
	assert.Equal(t, "c8a7d63f-3b04-44d3-9d95-8782fd7dcfaf", m.ID)
}

func TestMoviePatch_EmptyIsNoop(t *testing.T) {
	m := sampleMovie()
	patch := &entity.MoviePatch{}

	assert.True(t, patch.IsEmpty())
	patch.Apply(m)
	assert.Equal(t, sampleMovie(), m)
}

func TestMovie_Clone(t *testing.T) {
	m := sampleMovie()
	c := m.Clone()
	c.Genre[0] = entity.GenreHorror

	assert.Equal(t, entity.GenreAction, m.Genre[0])
}

func TestMovie_HasGenre(t *testing.T) {
	m := sampleMovie()

	assert.True(t, m.HasGenre("drama"))
	assert.True(t, m.HasGenre("CRIME"))
	assert.False(t, m.HasGenre("sci-fi"))
}
