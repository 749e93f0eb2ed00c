package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog-backend/internal/config"
	actorModel "movie-catalog-backend/internal/domains/actor/model"
	castModel "movie-catalog-backend/internal/domains/cast/model"
	movieModel "movie-catalog-backend/internal/domains/movie/model"
	reviewModel "movie-catalog-backend/internal/domains/review/model"
	"movie-catalog-backend/pkg/container"
	"movie-catalog-backend/pkg/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ========================================
// IN-MEMORY STORE
// ========================================

type memStore struct {
	mu       sync.Mutex
	movies   map[uuid.UUID]*movieModel.Movie
	actors   map[uuid.UUID]*actorModel.Actor
	reviews  map[uuid.UUID]*reviewModel.Review
	relation map[[2]uuid.UUID]*castModel.Relation
}

func newMemStore() *memStore {
	return &memStore{
		movies:   map[uuid.UUID]*movieModel.Movie{},
		actors:   map[uuid.UUID]*actorModel.Actor{},
		reviews:  map[uuid.UUID]*reviewModel.Review{},
		relation: map[[2]uuid.UUID]*castModel.Relation{},
	}
}

func (s *memStore) repositories() container.Repositories {
	return container.Repositories{
		Movies:  &memMovies{s},
		Actors:  &memActors{s},
		Reviews: &memReviews{s},
		Cast:    &memCast{s},
	}
}

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn database.TxFunc) error { return fn(ctx) }

func now() *time.Time {
	t := time.Now()
	return &t
}

// ----- movies -----

type memMovies struct{ s *memStore }

func (r *memMovies) ListActive(ctx context.Context) ([]movieModel.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []movieModel.Movie{}
	for _, m := range r.s.movies {
		if m.DeletedAt == nil {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *memMovies) GetByID(ctx context.Context, id uuid.UUID) (*movieModel.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.movies[id]
	if !ok || m.DeletedAt != nil {
		return nil, movieModel.ErrMovieNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memMovies) ExistsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.GetByID(ctx, id)
	return err == nil, nil
}

func (r *memMovies) LockActive(ctx context.Context, id uuid.UUID) error {
	_, err := r.GetByID(ctx, id)
	return err
}

func (r *memMovies) Create(ctx context.Context, movie *movieModel.Movie) (*movieModel.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *movie
	cp.CreatedAt, cp.UpdatedAt = time.Now(), time.Now()
	r.s.movies[cp.ID] = &cp
	return &cp, nil
}

func (r *memMovies) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*movieModel.Movie, error) {
	assignments, err := movieModel.UpdateFields.Resolve(fields)
	if err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.movies[id]
	if !ok || m.DeletedAt != nil {
		return nil, movieModel.ErrMovieNotFound
	}
	for _, a := range assignments {
		if a.Column == "title" {
			m.Title = a.Value.(string)
		}
	}
	m.UpdatedAt = time.Now()
	cp := *m
	return &cp, nil
}

func (r *memMovies) SoftDelete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.movies[id]
	if !ok || m.DeletedAt != nil {
		return movieModel.ErrMovieNotFound
	}
	m.DeletedAt = now()
	return nil
}

func (r *memMovies) RefreshAverageRating(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum, n int64
	for _, rv := range r.s.reviews {
		if rv.MovieID == id && rv.DeletedAt == nil {
			sum += int64(rv.Score)
			n++
		}
	}
	if m, ok := r.s.movies[id]; ok {
		m.AverageRating = decimal.NullDecimal{}
		if n > 0 {
			m.AverageRating = decimal.NewNullDecimal(decimal.NewFromInt(sum).Div(decimal.NewFromInt(n)).Round(2))
		}
	}
	return nil
}

// ----- actors -----

type memActors struct{ s *memStore }

func (r *memActors) ListActive(ctx context.Context) ([]actorModel.Actor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []actorModel.Actor{}
	for _, a := range r.s.actors {
		if a.DeletedAt == nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memActors) GetByID(ctx context.Context, id uuid.UUID) (*actorModel.Actor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.actors[id]
	if !ok || a.DeletedAt != nil {
		return nil, actorModel.ErrActorNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memActors) LockActive(ctx context.Context, id uuid.UUID) error {
	_, err := r.GetByID(ctx, id)
	return err
}

func (r *memActors) Create(ctx context.Context, actor *actorModel.Actor) (*actorModel.Actor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *actor
	cp.CreatedAt = time.Now()
	r.s.actors[cp.ID] = &cp
	return &cp, nil
}

func (r *memActors) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*actorModel.Actor, error) {
	if _, err := actorModel.UpdateFields.Resolve(fields); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *memActors) SoftDelete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.actors[id]
	if !ok || a.DeletedAt != nil {
		return actorModel.ErrActorNotFound
	}
	a.DeletedAt = now()
	return nil
}

// ----- reviews -----

type memReviews struct{ s *memStore }

func (r *memReviews) ListActive(ctx context.Context, movieID *uuid.UUID) ([]reviewModel.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []reviewModel.Review{}
	for _, rv := range r.s.reviews {
		if rv.DeletedAt == nil && (movieID == nil || rv.MovieID == *movieID) {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *memReviews) GetByID(ctx context.Context, id uuid.UUID) (*reviewModel.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv, ok := r.s.reviews[id]
	if !ok || rv.DeletedAt != nil {
		return nil, reviewModel.ErrReviewNotFound
	}
	cp := *rv
	return &cp, nil
}

func (r *memReviews) Create(ctx context.Context, review *reviewModel.Review) (*reviewModel.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *review
	cp.CreatedAt = time.Now()
	r.s.reviews[cp.ID] = &cp
	return &cp, nil
}

func (r *memReviews) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*reviewModel.Review, error) {
	assignments, err := reviewModel.UpdateFields.Resolve(fields)
	if err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	rv, ok := r.s.reviews[id]
	if ok && rv.DeletedAt == nil {
		for _, a := range assignments {
			if a.Column == "score" {
				rv.Score = a.Value.(int)
			}
		}
	}
	r.s.mu.Unlock()
	return r.GetByID(ctx, id)
}

func (r *memReviews) SoftDelete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv, ok := r.s.reviews[id]
	if !ok || rv.DeletedAt != nil {
		return uuid.Nil, reviewModel.ErrReviewNotFound
	}
	rv.DeletedAt = now()
	return rv.MovieID, nil
}

// ----- cast -----

type memCast struct{ s *memStore }

func creditOrder(p *int) int {
	if p == nil {
		return int(^uint(0) >> 1)
	}
	return *p
}

func (r *memCast) ListAll(ctx context.Context) ([]castModel.Relation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []castModel.Relation{}
	for _, rel := range r.s.relation {
		out = append(out, *rel)
	}
	return out, nil
}

func (r *memCast) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]castModel.CastMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []castModel.CastMember{}
	for key, rel := range r.s.relation {
		a, ok := r.s.actors[key[1]]
		if key[0] != movieID || !ok || a.DeletedAt != nil {
			continue
		}
		out = append(out, castModel.CastMember{ActorID: a.ID, Name: a.Name, Role: rel.Role, CreditOrder: rel.CreditOrder})
	}
	sort.Slice(out, func(i, j int) bool { return creditOrder(out[i].CreditOrder) < creditOrder(out[j].CreditOrder) })
	return out, nil
}

func (r *memCast) ListByActor(ctx context.Context, actorID uuid.UUID) ([]castModel.Credit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []castModel.Credit{}
	for key, rel := range r.s.relation {
		m, ok := r.s.movies[key[0]]
		if key[1] != actorID || !ok || m.DeletedAt != nil {
			continue
		}
		out = append(out, castModel.Credit{MovieID: m.ID, Title: m.Title, Role: rel.Role, CreditOrder: rel.CreditOrder})
	}
	return out, nil
}

func (r *memCast) Create(ctx context.Context, rel *castModel.Relation) (*castModel.Relation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := [2]uuid.UUID{rel.MovieID, rel.ActorID}
	if _, dup := r.s.relation[key]; dup {
		return nil, castModel.ErrDuplicate
	}
	_, movieOK := r.s.movies[rel.MovieID]
	_, actorOK := r.s.actors[rel.ActorID]
	if !movieOK || !actorOK {
		return nil, castModel.ErrReferenceNotFound
	}
	cp := *rel
	r.s.relation[key] = &cp
	return &cp, nil
}

func (r *memCast) Update(ctx context.Context, movieID, actorID uuid.UUID, fields map[string]any) (*castModel.Relation, error) {
	assignments, err := castModel.UpdateFields.Resolve(fields)
	if err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rel, ok := r.s.relation[[2]uuid.UUID{movieID, actorID}]
	if !ok {
		return nil, castModel.ErrRelationNotFound
	}
	for _, a := range assignments {
		if a.Column == "credit_order" {
			if n, ok := a.Value.(int); ok {
				rel.CreditOrder = &n
			} else {
				rel.CreditOrder = nil
			}
		}
	}
	cp := *rel
	return &cp, nil
}

func (r *memCast) Delete(ctx context.Context, movieID, actorID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := [2]uuid.UUID{movieID, actorID}
	if _, ok := r.s.relation[key]; !ok {
		return castModel.ErrRelationNotFound
	}
	delete(r.s.relation, key)
	return nil
}

func (r *memCast) DeleteByMovie(ctx context.Context, movieID uuid.UUID) (int64, error) {
	return r.deleteWhere(func(key [2]uuid.UUID) bool { return key[0] == movieID }), nil
}

func (r *memCast) DeleteByActor(ctx context.Context, actorID uuid.UUID) (int64, error) {
	return r.deleteWhere(func(key [2]uuid.UUID) bool { return key[1] == actorID }), nil
}

func (r *memCast) deleteWhere(match func([2]uuid.UUID) bool) int64 {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for key := range r.s.relation {
		if match(key) {
			delete(r.s.relation, key)
			n++
		}
	}
	return n
}

// ========================================
// HELPERS
// ========================================

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "test", Environment: "test"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         60,
		},
	}
}

type client struct {
	t      *testing.T
	router *gin.Engine
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader *strings.Reader
	switch b := body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(c.t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func (c *client) decode(w *httptest.ResponseRecorder, dest any) {
	c.t.Helper()
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}

func newClient(t *testing.T, cfg *config.Config) (*client, *memStore) {
	store := newMemStore()
	c := container.Build(cfg, store.repositories(), passthroughTx{})
	return &client{t: t, router: SetupRouter(c)}, store
}

// ========================================
// TESTS
// ========================================

func TestCatalogFlow(t *testing.T) {
	c, store := newClient(t, testConfig())

	// Step 1: movie and actor
	w := c.do(http.MethodPost, "/movies", map[string]any{"title": "The Matrix", "duration_min": 136, "release_date": "1999-03-31"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var movie movieModel.MovieResponse
	c.decode(w, &movie)
	assert.Equal(t, "1999-03-31", *movie.ReleaseDate)
	assert.False(t, movie.InTheaters)

	w = c.do(http.MethodPost, "/actors", map[string]any{"name": "Keanu Reeves"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var actor actorModel.ActorResponse
	c.decode(w, &actor)

	// Step 2: relation, then a duplicate
	relation := map[string]any{"movie_id": movie.ID, "actor_id": actor.ID, "role": "Neo", "credit_order": 1}
	w = c.do(http.MethodPost, "/movie-actors", relation)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = c.do(http.MethodPost, "/movie-actors", relation)
	assert.Equal(t, http.StatusConflict, w.Code)

	var cast []castModel.CastMemberResponse
	w = c.do(http.MethodGet, "/movie-actors/movie/"+movie.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	c.decode(w, &cast)
	require.Len(t, cast, 1)
	assert.Equal(t, "Keanu Reeves", cast[0].Name)
	assert.Equal(t, "Neo", *cast[0].Role)

	// Step 3: reviews drive the average rating
	for _, score := range []int{8, 9} {
		w = c.do(http.MethodPost, "/reviews", map[string]any{"movie_id": movie.ID, "reviewer_name": "Ann", "score": score})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	w = c.do(http.MethodGet, "/movies/"+movie.ID.String(), nil)
	c.decode(w, &movie)
	require.NotNil(t, movie.AverageRating)
	assert.Equal(t, "8.5", movie.AverageRating.String())

	// Step 4: deleting the movie removes its cast
	w = c.do(http.MethodDelete, "/movies/"+movie.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, store.relation)

	w = c.do(http.MethodGet, "/movie-actors/movie/"+movie.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = c.do(http.MethodGet, "/movies/"+movie.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodGet, "/movies", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = c.do(http.MethodDelete, "/movies/"+movie.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Reviews are left in place
	w = c.do(http.MethodGet, "/reviews?movie_id="+movie.ID.String(), nil)
	var reviews []reviewModel.ReviewResponse
	c.decode(w, &reviews)
	assert.Len(t, reviews, 2)

	// Step 5: a review for the deleted movie is rejected
	w = c.do(http.MethodPost, "/reviews", map[string]any{"movie_id": movie.ID, "reviewer_name": "Bob", "score": 3})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "referenced movie not found")
}

func TestPartialUpdates(t *testing.T) {
	c, _ := newClient(t, testConfig())

	w := c.do(http.MethodPost, "/movies", map[string]any{"title": "Heat"})
	require.Equal(t, http.StatusCreated, w.Code)
	var movie movieModel.MovieResponse
	c.decode(w, &movie)
	path := "/movies/" + movie.ID.String()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "empty object", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: "EMPTY_PAYLOAD"},
		{name: "only unknown keys", body: `{"rating":5}`, wantStatus: http.StatusBadRequest, wantCode: "NO_VALID_FIELD"},
		{name: "invalid value", body: `{"duration_min":0}`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
		{name: "not an object", body: `"title"`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{name: "known and unknown", body: `{"title":"Heat (1995)","rating":5}`, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := c.do(http.MethodPut, path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantCode != "" {
				assert.Contains(t, w.Body.String(), tt.wantCode)
			}
		})
	}

	w = c.do(http.MethodGet, path, nil)
	c.decode(w, &movie)
	assert.Equal(t, "Heat (1995)", movie.Title)
}

func TestActorDeleteDropsCredits(t *testing.T) {
	c, store := newClient(t, testConfig())

	var movie movieModel.MovieResponse
	c.decode(c.do(http.MethodPost, "/movies", map[string]any{"title": "Speed"}), &movie)
	var actor actorModel.ActorResponse
	c.decode(c.do(http.MethodPost, "/actors", map[string]any{"name": "Sandra Bullock"}), &actor)

	w := c.do(http.MethodPost, "/movie-actors", map[string]any{"movie_id": movie.ID, "actor_id": actor.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodDelete, "/actors/"+actor.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, store.relation)

	w = c.do(http.MethodGet, "/actors/"+actor.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBasePathAndHealth(t *testing.T) {
	cfg := testConfig()
	cfg.App.BasePath = "/api/v1"
	c, _ := newClient(t, cfg)

	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/v1/movies", nil).Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/movies", nil).Code)

	// No database behind the in-memory container
	w := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","database":"down","redis":"disabled"}`, w.Body.String())
}

func TestRateLimitedRoutes(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, Requests: 2, Window: time.Minute}
	c, _ := newClient(t, cfg)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/actors", nil).Code)
	}
	w := c.do(http.MethodGet, "/actors", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Health stays reachable
	assert.Equal(t, http.StatusServiceUnavailable, c.do(http.MethodGet, "/health", nil).Code)
}

func TestReviewLifecycle(t *testing.T) {
	c, _ := newClient(t, testConfig())

	var movie movieModel.MovieResponse
	c.decode(c.do(http.MethodPost, "/movies", map[string]any{"title": "Alien"}), &movie)
	moviePath := "/movies/" + movie.ID.String()

	var first, second reviewModel.ReviewResponse
	w := c.do(http.MethodPost, "/reviews", map[string]any{"movie_id": movie.ID, "reviewer_name": "Ann", "score": 6})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	c.decode(w, &first)
	w = c.do(http.MethodPost, "/reviews", map[string]any{"movie_id": movie.ID, "reviewer_name": "Bob", "score": 8})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	c.decode(w, &second)
	firstPath := "/reviews/" + first.ID.String()

	// Update recomputes the rating: (10 + 8) / 2
	w = c.do(http.MethodPut, firstPath, `{"score":10}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated reviewModel.ReviewResponse
	c.decode(w, &updated)
	assert.Equal(t, 10, updated.Score)

	c.decode(c.do(http.MethodGet, moviePath, nil), &movie)
	require.NotNil(t, movie.AverageRating)
	assert.Equal(t, "9", movie.AverageRating.String())

	w = c.do(http.MethodPut, firstPath, `{"score":11}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Soft delete hides the review and drops it from the rating
	w = c.do(http.MethodGet, firstPath, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodDelete, firstPath, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = c.do(http.MethodGet, firstPath, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), reviewModel.ErrCodeReviewNotFound)

	var reviews []reviewModel.ReviewResponse
	c.decode(c.do(http.MethodGet, "/reviews", nil), &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, second.ID, reviews[0].ID)

	c.decode(c.do(http.MethodGet, moviePath, nil), &movie)
	require.NotNil(t, movie.AverageRating)
	assert.Equal(t, "8", movie.AverageRating.String())

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPut, firstPath, `{"score":5}`).Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodDelete, firstPath, nil).Code)
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/reviews/not-a-uuid", nil).Code)
}
