package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/Harshitv21/Anime-Movie-API/internal/httpclient"
)

// upstreamErrorBody is the fixed plain-text body sent to the client on any
// upstream or local failure. The upstream's own error payload is logged but
// never forwarded.
const upstreamErrorBody = "Error fetching data from API."

// writeJSON encodes v as the response body with the given status.
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", slog.String("error", err.Error()))
	}
}

// writeRawJSON writes an already-encoded JSON body verbatim.
func (h *Handlers) writeRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Error("write response", slog.String("error", err.Error()))
	}
}

// writeUpstreamError classifies a failed upstream call and writes the
// response. Three mutually exclusive branches: upstream replied non-2xx
// (echo its status), no reply arrived (500), local fault (500).
func (h *Handlers) writeUpstreamError(w http.ResponseWriter, route string, err error) {
	var statusErr *httpclient.StatusError
	var noRespErr *httpclient.NoResponseError

	switch {
	case errors.As(err, &statusErr):
		h.logger.Error("upstream error response",
			slog.String("route", route),
			slog.Int("status", statusErr.Status),
			slog.String("body", statusErr.Body),
		)
		http.Error(w, upstreamErrorBody, statusErr.Status)
	case errors.As(err, &noRespErr):
		h.logger.Error("no response from upstream",
			slog.String("route", route),
			slog.String("url", noRespErr.URL),
			slog.String("error", noRespErr.Err.Error()),
		)
		http.Error(w, upstreamErrorBody, http.StatusInternalServerError)
	default:
		h.logger.Error("request handling failed",
			slog.String("route", route),
			slog.String("error", err.Error()),
		)
		http.Error(w, upstreamErrorBody, http.StatusInternalServerError)
	}
}

// writeValidationError writes a 400 with a JSON error body. Emitted before
// any upstream call is made.
func (h *Handlers) writeValidationError(w http.ResponseWriter, route, msg string) {
	h.logger.Error("invalid request",
		slog.String("route", route),
		slog.String("error", msg),
	)
	h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}
