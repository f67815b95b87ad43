package api

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestTrendingMoviesRejectsInvalidWindow(t *testing.T) {
	h := newTestHandlers(t, failingUpstream(t), failingUpstream(t))

	rr := doRequest(t, h, "/trending/movies/month")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON error body: %v", err)
	}
	if !strings.Contains(body["error"], "month") {
		t.Errorf("error should name the offending value: %s", body["error"])
	}
	if !strings.Contains(body["error"], "week") || !strings.Contains(body["error"], "day") {
		t.Errorf("error should name the allowed set: %s", body["error"])
	}
}

func TestTrendingMoviesDefaultsToWeek(t *testing.T) {
	calls := 0
	tmdbURL := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/trending/movie/week" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"page":1,"results":[],"total_pages":1,"total_results":0}`))
	})
	h := newTestHandlers(t, tmdbURL, failingUpstream(t))

	rr := doRequest(t, h, "/trending/movies")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if calls != 1 {
		t.Errorf("expected exactly one upstream call, got %d", calls)
	}
}

func TestTrendingMoviesImagePrefixing(t *testing.T) {
	tmdbURL := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending/movie/day" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"page":1,"results":[
			{"id":1,"title":"A","backdrop_path":null,"poster_path":"/p1.jpg"},
			{"id":2,"title":"B","backdrop_path":"/b2.jpg","poster_path":"/p2.jpg"}
		],"total_pages":1,"total_results":2}`))
	})
	h := newTestHandlers(t, tmdbURL, failingUpstream(t))

	rr := doRequest(t, h, "/trending/movies/day")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var results []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 items, got %d", len(results))
	}
	if results[0]["backdrop_path"] != nil {
		t.Errorf("null backdrop must stay null, got %v", results[0]["backdrop_path"])
	}
	if results[0]["poster_path"] != testImageBase+"/p1.jpg" {
		t.Errorf("poster not prefixed: %v", results[0]["poster_path"])
	}
	if results[1]["backdrop_path"] != testImageBase+"/b2.jpg" {
		t.Errorf("backdrop not prefixed: %v", results[1]["backdrop_path"])
	}
}

func TestPopularMoviesCapAndTrim(t *testing.T) {
	tmdbURL := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/popular" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		items := make([]string, 0, 25)
		for i := range 25 {
			items = append(items, fmt.Sprintf(
				`{"id":%d,"original_language":"en","original_title":"T%d","title":"T%d","overview":"o","backdrop_path":"/b.jpg","poster_path":"/p.jpg","release_date":"2024-01-01","vote_average":7.1,"genre_ids":[18],"adult":false,"popularity":99.5}`,
				i, i, i))
		}
		fmt.Fprintf(w, `{"page":1,"results":[%s],"total_pages":2,"total_results":25}`, strings.Join(items, ","))
	})
	h := newTestHandlers(t, tmdbURL, failingUpstream(t))

	rr := doRequest(t, h, "/popular/movies")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var results []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(results) != 20 {
		t.Fatalf("expected cap of 20, got %d", len(results))
	}
	for _, dropped := range []string{"genre_ids", "adult", "popularity"} {
		if _, ok := results[0][dropped]; ok {
			t.Errorf("field %s should be trimmed from the projection", dropped)
		}
	}
	if len(results[0]) != 9 {
		t.Errorf("expected 9 projected fields, got %d: %v", len(results[0]), results[0])
	}
	if results[0]["backdrop_path"] != testImageBase+"/b.jpg" {
		t.Errorf("backdrop not prefixed: %v", results[0]["backdrop_path"])
	}
}

func TestSearchMoviesForwardsEmptyQuery(t *testing.T) {
	tmdbURL := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if !r.URL.Query().Has("query") {
			t.Error("query parameter must be present even when empty")
		}
		if r.URL.Query().Get("query") != "" {
			t.Errorf("expected empty query, got %q", r.URL.Query().Get("query"))
		}
		w.Write([]byte(`{"page":1,"results":[],"total_pages":1,"total_results":0}`))
	})
	h := newTestHandlers(t, tmdbURL, failingUpstream(t))

	rr := doRequest(t, h, "/search/movies")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestMovieImagesCapAndDefaults(t *testing.T) {
	tmdbURL := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603/images" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		backdrops := make([]string, 0, 35)
		for i := range 35 {
			backdrops = append(backdrops, fmt.Sprintf(
				`{"aspect_ratio":1.78,"height":1080,"width":1920,"file_path":"/b%d.jpg","iso_639_1":null,"vote_count":10}`, i))
		}
		// posters absent entirely
		fmt.Fprintf(w, `{"id":603,"backdrops":[%s]}`, strings.Join(backdrops, ","))
	})
	h := newTestHandlers(t, tmdbURL, failingUpstream(t))

	rr := doRequest(t, h, "/images/movie/603")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body struct {
		Backdrops []map[string]any `json:"backdrops"`
		Posters   []map[string]any `json:"posters"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Backdrops) != 30 {
		t.Errorf("expected backdrop cap of 30, got %d", len(body.Backdrops))
	}
	if body.Posters == nil {
		t.Error("missing upstream array must become an empty list, not null")
	}
	if len(body.Posters) != 0 {
		t.Errorf("expected empty posters, got %d", len(body.Posters))
	}
	if body.Backdrops[0]["file_path"] != testImageBase+"/b0.jpg" {
		t.Errorf("file path not prefixed: %v", body.Backdrops[0]["file_path"])
	}
	if len(body.Backdrops[0]) != 4 {
		t.Errorf("expected 4 projected image fields, got %v", body.Backdrops[0])
	}
}
