package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// validTimeWindow reports whether tw is an accepted trending time window.
func validTimeWindow(tw string) bool {
	return tw == "week" || tw == "day"
}

func timeWindowParam(r *http.Request) string {
	if tw := chi.URLParam(r, "timeWindow"); tw != "" {
		return tw
	}
	return "week"
}

// trendingMovies serves GET /trending/movies/{timeWindow?}. The result list
// passes through untrimmed and uncapped; only image paths are rewritten.
func (h *Handlers) trendingMovies(w http.ResponseWriter, r *http.Request) {
	const route = "/trending/movies"

	tw := timeWindowParam(r)
	if !validTimeWindow(tw) {
		h.writeValidationError(w, route,
			fmt.Sprintf("invalid time window %q, allowed values are \"week\" and \"day\"", tw))
		return
	}

	movies, err := h.tmdb.TrendingMovies(r.Context(), tw)
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	for _, m := range movies {
		h.project.PrefixImageFields(m)
	}
	if movies == nil {
		movies = []map[string]any{}
	}

	h.logger.Info("served trending movies",
		slog.String("time_window", tw),
		slog.Int("count", len(movies)),
	)
	h.writeJSON(w, http.StatusOK, movies)
}

// popularMovies serves GET /popular/movies.
func (h *Handlers) popularMovies(w http.ResponseWriter, r *http.Request) {
	const route = "/popular/movies"

	movies, err := h.tmdb.PopularMovies(r.Context())
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	out := h.project.Movies(movies)
	h.logger.Info("served popular movies", slog.Int("count", len(out)))
	h.writeJSON(w, http.StatusOK, out)
}

// upcomingMovies serves GET /upcoming/movies.
func (h *Handlers) upcomingMovies(w http.ResponseWriter, r *http.Request) {
	const route = "/upcoming/movies"

	movies, err := h.tmdb.UpcomingMovies(r.Context())
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	out := h.project.Movies(movies)
	h.logger.Info("served upcoming movies", slog.Int("count", len(out)))
	h.writeJSON(w, http.StatusOK, out)
}

// searchMovies serves GET /search/movies?query=. An absent query is
// forwarded as the empty string, not omitted.
func (h *Handlers) searchMovies(w http.ResponseWriter, r *http.Request) {
	const route = "/search/movies"

	query := r.URL.Query().Get("query")
	movies, err := h.tmdb.SearchMovies(r.Context(), query)
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	out := h.project.Movies(movies)
	h.logger.Info("served movie search",
		slog.String("query", query),
		slog.Int("count", len(out)),
	)
	h.writeJSON(w, http.StatusOK, out)
}

// movieImages serves GET /images/movie/{id}.
func (h *Handlers) movieImages(w http.ResponseWriter, r *http.Request) {
	const route = "/images/movie"

	id := chi.URLParam(r, "id")
	imgs, err := h.tmdb.MovieImages(r.Context(), id)
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	out := map[string]any{
		"backdrops": h.project.Images(imgs.Backdrops),
		"posters":   h.project.Images(imgs.Posters),
	}
	h.logger.Info("served movie images",
		slog.String("id", id),
		slog.Int("backdrops", len(imgs.Backdrops)),
		slog.Int("posters", len(imgs.Posters)),
	)
	h.writeJSON(w, http.StatusOK, out)
}
