package repository

import (
	"context"
	"sync"
	"testing"

	"movies-api/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testSeed() []entity.Movie {
	return []entity.Movie{
		{
			ID:       "dcdd0fad-a94c-4810-8acc-5f108d3b18c3",
			Title:    "The Shawshank Redemption",
			Year:     1994,
			Director: "Frank Darabont",
			Duration: 142,
			Poster:   "https://i.ebayimg.com/images/g/4goAAOSwMyBe7hnQ/s-l1200.webp",
			Genre:    []entity.Genre{entity.GenreDrama},
			Rate:     9.3,
		},
		{
			ID:       "c8a7d63f-3b04-44d3-9d95-8782fd7dcfaf",
			Title:    "The Dark Knight",
			Year:     2008,
			Director: "Christopher Nolan",
			Duration: 152,
			Poster:   "https://i.ebayimg.com/images/g/yokAAOSw8w1YARbm/s-l1200.jpg",
			Genre:    []entity.Genre{entity.GenreAction, entity.GenreCrime, entity.GenreDrama},
			Rate:     9,
		},
		{
			ID:       "5ad1a235-0d9c-410a-b32b-220d91689a08",
			Title:    "Inception",
			Year:     2010,
			Director: "Christopher Nolan",
			Duration: 148,
			Poster:   "https://m.media-amazon.com/images/I/91Rc8cAmnAL._AC_UF1000,1000_QL80_.jpg",
			Genre:    []entity.Genre{entity.GenreAction, entity.GenreAdventure, entity.GenreSciFi},
			Rate:     8.8,
		},
	}
}

func newTestRepo(t *testing.T) *movieRepository {
	t.Helper()
	return NewMovieRepository(testSeed(), zaptest.NewLogger(t)).(*movieRepository)
}

func titles(movies []*entity.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestMovieRepo_FindAll(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	movies, err := r.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"The Shawshank Redemption", "The Dark Knight", "Inception"}, titles(movies))
}

func TestMovieRepo_FindAll_GenreCaseInsensitive(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	drama := "drama"
	movies, err := r.FindAll(ctx, &drama)
	require.NoError(t, err)
	assert.Equal(t, []string{"The Shawshank Redemption", "The Dark Knight"}, titles(movies))

	scifi := "SCI-FI"
	movies, err = r.FindAll(ctx, &scifi)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inception"}, titles(movies))

	western := "western"
	movies, err = r.FindAll(ctx, &western)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestMovieRepo_FindByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	m, err := r.FindByID(ctx, "c8a7d63f-3b04-44d3-9d95-8782fd7dcfaf")
	require.NoError(t, err)
	assert.Equal(t, "The Dark Knight", m.Title)

	_, err = r.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieRepo_ReturnsCopies(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	m, err := r.FindByID(ctx, "c8a7d63f-3b04-44d3-9d95-8782fd7dcfaf")
	require.NoError(t, err)
	m.Title = "changed"
	m.Genre[0] = entity.GenreHorror

	again, err := r.FindByID(ctx, "c8a7d63f-3b04-44d3-9d95-8782fd7dcfaf")
	require.NoError(t, err)
	assert.Equal(t, "The Dark Knight", again.Title)
	assert.Equal(t, entity.GenreAction, again.Genre[0])
}

func TestMovieRepo_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	in := &entity.Movie{
		ID:       "client-supplied",
		Title:    "Up",
		Year:     2009,
		Director: "Pete Docter",
		Duration: 96,
		Poster:   "https://x.com/up.jpg",
		Genre:    []entity.Genre{entity.GenreComedy},
		Rate:     5,
	}

	created, err := r.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "client-supplied", created.ID)
	assert.Equal(t, 4, r.Count(ctx))

	movies, err := r.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "Up", movies[3].Title)
	assert.Equal(t, created.ID, movies[3].ID)
}

func TestMovieRepo_Create_UniqueIDs(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for _, m := range testSeed() {
		seen[m.ID] = true
	}

	for i := 0; i < 100; i++ {
		created, err := r.Create(ctx, &entity.Movie{Title: "x", Genre: []entity.Genre{entity.GenreDrama}})
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestMovieRepo_Create_RegeneratesOnCollision(t *testing.T) {
	r := newTestRepo(t)
	ids := []string{"dcdd0fad-a94c-4810-8acc-5f108d3b18c3", "fresh-id"}
	r.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	created, err := r.Create(context.Background(), &entity.Movie{Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, "fresh-id", created.ID)
}

func TestMovieRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Delete(ctx, "dcdd0fad-a94c-4810-8acc-5f108d3b18c3"))
	assert.ErrorIs(t, r.Delete(ctx, "dcdd0fad-a94c-4810-8acc-5f108d3b18c3"), ErrMovieNotFound)

	movies, err := r.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"The Dark Knight", "Inception"}, titles(movies))
}

func TestMovieRepo_Update(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	rate := 9.5
	updated, err := r.Update(ctx, "c8a7d63f-3b04-44d3-9d95-8782fd7dcfaf", &entity.MoviePatch{Rate: &rate})
	require.NoError(t, err)
	assert.Equal(t, 9.5, updated.Rate)
	assert.Equal(t, "The Dark Knight", updated.Title)

	movies, err := r.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "The Dark Knight", movies[1].Title, "position preserved")
	assert.Equal(t, 9.5, movies[1].Rate)

	_, err = r.Update(ctx, "missing", &entity.MoviePatch{Rate: &rate})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieRepo_Update_EmptyPatch(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	before, err := r.FindByID(ctx, "5ad1a235-0d9c-410a-b32b-220d91689a08")
	require.NoError(t, err)

	after, err := r.Update(ctx, "5ad1a235-0d9c-410a-b32b-220d91689a08", &entity.MoviePatch{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMovieRepo_ConcurrentCreate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Create(ctx, &entity.Movie{Title: "x"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 53, r.Count(ctx))
}

func TestMovieRepo_CanceledContext(t *testing.T) {
	r := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Create(ctx, &entity.Movie{Title: "x"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, r.Count(context.Background()))
}
