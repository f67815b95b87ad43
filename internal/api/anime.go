package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Harshitv21/Anime-Movie-API/internal/projection"
)

// trendingAnime serves GET /trending/anime from the current-season ranking.
func (h *Handlers) trendingAnime(w http.ResponseWriter, r *http.Request) {
	const route = "/trending/anime"

	entries, err := h.jikan.SeasonNow(r.Context())
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	out := projection.AnimeList(entries)
	h.logger.Info("served trending anime", slog.Int("count", len(out)))
	h.writeJSON(w, http.StatusOK, out)
}

// popularAnime serves GET /popular/anime from the global top-anime ranking.
func (h *Handlers) popularAnime(w http.ResponseWriter, r *http.Request) {
	const route = "/popular/anime"

	entries, err := h.jikan.TopAnime(r.Context())
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	out := projection.AnimeList(entries)
	h.logger.Info("served popular anime", slog.Int("count", len(out)))
	h.writeJSON(w, http.StatusOK, out)
}

// upcomingAnime serves GET /upcoming/anime from the next-season ranking.
func (h *Handlers) upcomingAnime(w http.ResponseWriter, r *http.Request) {
	const route = "/upcoming/anime"

	entries, err := h.jikan.SeasonUpcoming(r.Context())
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	out := projection.AnimeList(entries)
	h.logger.Info("served upcoming anime", slog.Int("count", len(out)))
	h.writeJSON(w, http.StatusOK, out)
}

// searchAnimeByID serves GET /search/anime/{id}. Three sequential upstream
// calls: detail, pictures, videos. The first failure aborts the request.
// The detail payload passes through with the reshaped pictures and the
// videos attached.
func (h *Handlers) searchAnimeByID(w http.ResponseWriter, r *http.Request) {
	const route = "/search/anime/{id}"

	id := chi.URLParam(r, "id")

	detail, err := h.jikan.AnimeByID(r.Context(), id)
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	pictures, err := h.jikan.AnimePictures(r.Context(), id)
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	videos, err := h.jikan.AnimeVideos(r.Context(), id)
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	if detail == nil {
		detail = map[string]any{}
	}
	detail["images_data"] = projection.Pictures(pictures)
	detail["videos"] = videos

	h.logger.Info("served anime by id",
		slog.String("id", id),
		slog.Int("pictures", len(pictures)),
	)
	h.writeJSON(w, http.StatusOK, detail)
}

// searchAnimeByQuery serves GET /search/anime?<any>. The caller's raw query
// string is forwarded to the upstream search endpoint byte-for-byte and the
// upstream body is returned unmodified.
func (h *Handlers) searchAnimeByQuery(w http.ResponseWriter, r *http.Request) {
	const route = "/search/anime"

	body, err := h.jikan.Search(r.Context(), r.URL.RawQuery)
	if err != nil {
		h.writeUpstreamError(w, route, err)
		return
	}

	h.logger.Info("served anime search", slog.String("query", r.URL.RawQuery))
	h.writeRawJSON(w, http.StatusOK, body)
}
