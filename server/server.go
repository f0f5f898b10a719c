package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/spacenexus/nexusfeed/pkg/domain"
	"github.com/spacenexus/nexusfeed/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/aggregator.go -pkg mocks -skip-ensure -fmt goimports . Aggregator
//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog

// Server represents the admin HTTP server
type Server struct {
	config     ConfigProvider
	aggregator Aggregator
	catalog    Catalog
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Aggregator runs registration and fetch passes on demand
type Aggregator interface {
	RegisterSources(ctx context.Context, sources []domain.Source) (int, error)
	FetchAll(ctx context.Context) (domain.FetchResult, error)
	FetchSource(ctx context.Context, slug string) (domain.FetchResult, error)
	LastResult() (domain.FetchResult, bool)
	Running() bool
}

// Catalog provides read access to stored articles and sources
type Catalog interface {
	ListArticles(ctx context.Context, filter domain.ArticleFilter) (domain.ArticlePage, error)
	ListSources(ctx context.Context, filter domain.SourceFilter) ([]domain.SourceWithCount, error)
	SetSourceActive(ctx context.Context, slug string, active bool) error
	Stats(ctx context.Context) (service.Stats, error)
}

// ConfigProvider provides server configuration and the source registry
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetSources() ([]domain.Source, error)
}

// New initializes a new server instance
func New(cfg ConfigProvider, aggregator Aggregator, catalog Catalog, version string, debug bool) *Server {
	s := &Server{
		config:     cfg,
		aggregator: aggregator,
		catalog:    catalog,
		version:    version,
		debug:      debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
		IdleTimeout:       30 * time.Second,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("nexusfeed", "spacenexus", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("GET /sources", s.listSourcesHandler)

		r.HandleFunc("POST /sources/register", s.registerSourcesHandler)
		r.HandleFunc("POST /sources/{slug}/enable", s.enableSourceHandler)
		r.HandleFunc("POST /sources/{slug}/disable", s.disableSourceHandler)
		r.HandleFunc("POST /sources/{slug}/fetch", s.fetchSourceHandler)
		r.HandleFunc("POST /fetch", s.fetchAllHandler)
	})

	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /rss/{topic}", s.rssHandler)
	s.router.HandleFunc("GET /opml", s.opmlHandler)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}
