package request

// MovieRequest is the create schema. Fields are pointers so a missing
// field can be told apart from its zero value.
type MovieRequest struct {
	Title    *string  `json:"title" validate:"required"`
	Year     *int     `json:"year" validate:"required,min=1900,max=2024"`
	Director *string  `json:"director" validate:"required"`
	Duration *int     `json:"duration" validate:"required,gt=0"`
	Rate     *float64 `json:"rate,omitempty" validate:"omitempty,min=0,max=10"`
	Poster   *string  `json:"poster" validate:"required,url"`
	Genre    []string `json:"genre" validate:"required,min=1,dive,oneof=Action Adventure Crime Comedy Drama Fantasy Horror Thriller Sci-Fi"`
}

// MovieUpdateRequest is the partial schema: same rules, every field optional.
type MovieUpdateRequest struct {
	Title    *string  `json:"title,omitempty"`
	Year     *int     `json:"year,omitempty" validate:"omitempty,min=1900,max=2024"`
	Director *string  `json:"director,omitempty"`
	Duration *int     `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Rate     *float64 `json:"rate,omitempty" validate:"omitempty,min=0,max=10"`
	Poster   *string  `json:"poster,omitempty" validate:"omitempty,url"`
	Genre    []string `json:"genre,omitempty" validate:"omitempty,min=1,dive,oneof=Action Adventure Crime Comedy Drama Fantasy Horror Thriller Sci-Fi"`
}

// DefaultRate applies when a created movie has no rate.
const DefaultRate = 5.0
