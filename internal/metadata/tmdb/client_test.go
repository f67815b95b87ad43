package tmdb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/Harshitv21/Anime-Movie-API/internal/httpclient"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	hc := httpclient.New(httpclient.DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(server.URL, "test-token", hc)
}

func TestSearchMovies(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected Authorization header: %s", got)
		}
		q := r.URL.Query()
		if q.Get("query") != "inception" {
			t.Errorf("unexpected query: %s", q.Get("query"))
		}
		if q.Get("include_adult") != "false" || q.Get("language") != "en-US" || q.Get("page") != "1" {
			t.Errorf("fixed search parameters missing: %v", q)
		}

		resp := movieListResponse{
			Page: 1,
			Results: []Movie{
				{ID: 27205, Title: "Inception", OriginalTitle: "Inception", VoteAverage: 8.4, ReleaseDate: "2010-07-16"},
			},
			TotalResults: 1,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))

	movies, err := client.SearchMovies(context.Background(), "inception")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(movies))
	}
	if movies[0].Title != "Inception" {
		t.Errorf("expected Inception, got %s", movies[0].Title)
	}
}

func TestTrendingMoviesPassthrough(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending/movie/day" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[{"id":1,"adult":false,"genre_ids":[18],"backdrop_path":"/a.jpg"}],"total_pages":1,"total_results":1}`))
	}))

	results, err := client.TrendingMovies(context.Background(), "day")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	// Untrimmed: fields outside the 9-field whitelist survive.
	if _, ok := results[0]["genre_ids"]; !ok {
		t.Error("passthrough should keep genre_ids")
	}
	if _, ok := results[0]["adult"]; !ok {
		t.Error("passthrough should keep adult flag")
	}
}

func TestTopRatedTVPagination(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tv/top_rated" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "3" {
			t.Errorf("unexpected page: %s", r.URL.Query().Get("page"))
		}
		w.Write([]byte(`{"page":3,"results":[{"id":42}],"total_pages":10,"total_results":200}`))
	}))

	page, err := client.TopRatedTV(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 3 || page.TotalPages != 10 || page.TotalResults != 200 {
		t.Errorf("unexpected envelope: %+v", page)
	}
	if len(page.Results) != 1 {
		t.Errorf("expected 1 result, got %d", len(page.Results))
	}
}

func TestMovieImages(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603/images" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"backdrops":[{"aspect_ratio":1.78,"height":1080,"width":1920,"file_path":"/b.jpg"}],"posters":[]}`))
	}))

	imgs, err := client.MovieImages(context.Background(), "603")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(imgs.Backdrops) != 1 {
		t.Fatalf("expected 1 backdrop, got %d", len(imgs.Backdrops))
	}
	if imgs.Backdrops[0].FilePath != "/b.jpg" {
		t.Errorf("unexpected file path: %s", imgs.Backdrops[0].FilePath)
	}
}

func TestClientSurfacesStatusError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_message":"Invalid API key"}`))
	}))

	_, err := client.PopularMovies(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError in chain, got %v", err)
	}
	if statusErr.Status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", statusErr.Status)
	}
}
