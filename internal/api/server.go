package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Harshitv21/Anime-Movie-API/internal/metadata/jikan"
	"github.com/Harshitv21/Anime-Movie-API/internal/metadata/tmdb"
	"github.com/Harshitv21/Anime-Movie-API/internal/projection"
)

// shutdownTimeout is the maximum time to wait for the HTTP server to shut down.
const shutdownTimeout = 5 * time.Second

// Handlers bundles the upstream clients behind the HTTP surface.
type Handlers struct {
	tmdb    *tmdb.Client
	jikan   *jikan.Client
	project projection.Projector
	logger  *slog.Logger
}

// NewHandlers creates the handler group. imageBase is the prefix applied to
// relative image paths returned by TMDB.
func NewHandlers(tmdbClient *tmdb.Client, jikanClient *jikan.Client, imageBase string, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		tmdb:    tmdbClient,
		jikan:   jikanClient,
		project: projection.New(imageBase),
		logger:  logger,
	}
}

// Router builds the chi router with all gateway routes mounted.
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	r.Get("/health", healthHandler)

	r.Get("/trending/movies", h.trendingMovies)
	r.Get("/trending/movies/{timeWindow}", h.trendingMovies)
	r.Get("/popular/movies", h.popularMovies)
	r.Get("/upcoming/movies", h.upcomingMovies)
	r.Get("/search/movies", h.searchMovies)
	r.Get("/images/movie/{id}", h.movieImages)

	r.Get("/trending/anime", h.trendingAnime)
	r.Get("/popular/anime", h.popularAnime)
	r.Get("/upcoming/anime", h.upcomingAnime)
	r.Get("/search/anime", h.searchAnimeByQuery)
	r.Get("/search/anime/{id}", h.searchAnimeByID)

	r.Get("/trending/tv", h.trendingTV)
	r.Get("/trending/tv/{timeWindow}", h.trendingTV)
	r.Get("/popular/tv", h.popularTV)
	r.Get("/search/tv", h.searchTV)
	r.Get("/images/tv/{id}", h.tvImages)

	return r
}

// Server wraps the gateway HTTP server.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	mu         sync.RWMutex
	ready      chan struct{}
	started    atomic.Bool
	logger     *slog.Logger
}

// NewServer creates a gateway server listening on the given port.
func NewServer(port int, handlers *Handlers, logger *slog.Logger) *Server {
	if handlers == nil {
		panic("api.NewServer: handlers must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           handlers.Router(),
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
		ready:  make(chan struct{}),
		logger: logger,
	}
}

// Ready returns a channel that is closed once the server is listening.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the listener address once the server has started.
// Returns empty string if the server hasn't started yet.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// Start begins serving requests. It blocks until the server stops or an
// error occurs. The server shuts down gracefully when ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("gateway server already started")
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.httpServer.Addr)
	if err != nil {
		s.started.Store(false)
		return fmt.Errorf("gateway server listen: %w", err)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	close(s.ready)

	s.logger.Info("gateway server started", slog.String("addr", ln.Addr().String()))

	serveDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-serveDone:
			return
		}
		s.logger.Info("gateway server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		//nolint:contextcheck // parent ctx is canceled; we need a fresh context for graceful shutdown
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("gateway server shutdown error", slog.String("error", err.Error()))
		}
	}()

	err = s.httpServer.Serve(ln)
	close(serveDone)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("gateway server: %w", err)
	}
	return nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}
