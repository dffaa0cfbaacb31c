package entity

import "strings"

type Genre string

const (
	GenreAction    Genre = "Action"
	GenreAdventure Genre = "Adventure"
	GenreCrime     Genre = "Crime"
	GenreComedy    Genre = "Comedy"
	GenreDrama     Genre = "Drama"
	GenreFantasy   Genre = "Fantasy"
	GenreHorror    Genre = "Horror"
	GenreThriller  Genre = "Thriller"
	GenreSciFi     Genre = "Sci-Fi"
)

type Movie struct {
	ID       string
	Title    string
	Year     int
	Director string
	Duration int
	Poster   string
	Genre    []Genre
	Rate     float64
}

// Clone returns a copy that shares no memory with m.
func (m *Movie) Clone() *Movie {
	c := *m
	c.Genre = append([]Genre(nil), m.Genre...)
	return &c
}

// HasGenre reports whether the movie is tagged with genre, ignoring case.
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genre {
		if strings.EqualFold(string(g), genre) {
			return true
		}
	}
	return false
}

// MoviePatch carries the fields of a partial update. Nil means "not supplied".
type MoviePatch struct {
	Title    *string
	Year     *int
	Director *string
	Duration *int
	Poster   *string
	Genre    []Genre
	Rate     *float64
}

func (p *MoviePatch) IsEmpty() bool {
	return p.Title == nil && p.Year == nil && p.Director == nil && p.Duration == nil &&
		p.Poster == nil && p.Genre == nil && p.Rate == nil
}

// Apply merges the supplied fields over m. ID is never touched.
func (p *MoviePatch) Apply(m *Movie) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Year != nil {
		m.Year = *p.Year
	}
	if p.Director != nil {
		m.Director = *p.Director
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}
	if p.Poster != nil {
		m.Poster = *p.Poster
	}
	if p.Genre != nil {
		m.Genre = append([]Genre(nil), p.Genre...)
	}
	if p.Rate != nil {
		m.Rate = *p.Rate
	}
}
