package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// tvPagination is the envelope echoed from the upstream top-rated response.
type tvPagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// trendingTV serves GET /trending/tv/{timeWindow?}. Same contract as the
// trending movies route: passthrough list, image paths rewritten.
func (h *Handlers) trendingTV(w http.ResponseWriter, r *http.Request) {
	const route = "/trending/tv"

	tw := timeWindowParam(r)
	if !validTimeWindow(tw) {
		h.writeValidationError(w, route,
			fmt.Sprintf("invalid time window %q, allowed values are \"week\" and \"day\"", tw))
		return
	}

	shows, err := h.tmdb.TrendingTV(r.Context(), tw)
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	for _, s := range shows {
		h.project.PrefixImageFields(s)
	}
	if shows == nil {
		shows = []map[string]any{}
	}

	h.logger.Info("served trending tv",
		slog.String("time_window", tw),
		slog.Int("count", len(shows)),
	)
	h.writeJSON(w, http.StatusOK, shows)
}

// popularTV serves GET /popular/tv?page=. A page beyond the upstream total
// is a well-formed 404 with the pagination envelope and explicit empty
// lists, not an error.
func (h *Handlers) popularTV(w http.ResponseWriter, r *http.Request) {
	const route = "/popular/tv"

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}

	resp, err := h.tmdb.TopRatedTV(r.Context(), page)
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	if page > resp.TotalPages {
		h.logger.Info("popular tv page out of range",
			slog.Int("page", page),
			slog.Int("total_pages", resp.TotalPages),
		)
		h.writeJSON(w, http.StatusNotFound, map[string]any{
			"message": fmt.Sprintf("Page %d is out of range, there are only %d pages.", page, resp.TotalPages),
			"pagination": map[string]any{
				"current_page":  page,
				"total_pages":   resp.TotalPages,
				"total_results": resp.TotalResults,
				"has_next_page": false,
				"items":         []any{},
			},
			"results": []any{},
		})
		return
	}

	shows := resp.Results
	for _, s := range shows {
		h.project.PrefixImageFields(s)
	}
	if shows == nil {
		shows = []map[string]any{}
	}

	h.logger.Info("served popular tv",
		slog.Int("page", page),
		slog.Int("count", len(shows)),
	)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"pagination": tvPagination{
			CurrentPage:  resp.Page,
			TotalPages:   resp.TotalPages,
			TotalResults: resp.TotalResults,
		},
		"popular_tv_shows": shows,
	})
}

// searchTV serves GET /search/tv?query=.
func (h *Handlers) searchTV(w http.ResponseWriter, r *http.Request) {
	const route = "/search/tv"

	query := r.URL.Query().Get("query")
	shows, err := h.tmdb.SearchTV(r.Context(), query)
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	out := h.project.TVShows(shows)
	h.logger.Info("served tv search",
		slog.String("query", query),
		slog.Int("count", len(out)),
	)
	h.writeJSON(w, http.StatusOK, out)
}

// tvImages serves GET /images/tv/{id}.
func (h *Handlers) tvImages(w http.ResponseWriter, r *http.Request) {
	const route = "/images/tv"

	id := chi.URLParam(r, "id")
	imgs, err := h.tmdb.TVImages(r.Context(), id)
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	out := map[string]any{
		"backdrops": h.project.Images(imgs.Backdrops),
		"posters":   h.project.Images(imgs.Posters),
	}
	h.logger.Info("served tv images",
		slog.String("id", id),
		slog.Int("backdrops", len(imgs.Backdrops)),
		slog.Int("posters", len(imgs.Posters)),
	)
	h.writeJSON(w, http.StatusOK, out)
}
