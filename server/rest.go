package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/spacenexus/nexusfeed/pkg/aggregator"
	"github.com/spacenexus/nexusfeed/pkg/domain"
	"github.com/spacenexus/nexusfeed/pkg/repository"
	"github.com/spacenexus/nexusfeed/pkg/service"
)

// statusHandler returns server status with store counters and the last fetch pass
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.catalog.Stats(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get stats: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	status := rest.JSON{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"stats":    stats,
		"fetching": s.aggregator.Running(),
	}
	if last, ok := s.aggregator.LastResult(); ok {
		status["last_run"] = last
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listArticlesHandler returns a page of articles.
// Query: topic, author_type, source_id, limit, offset.
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ArticleFilter{}

	if v := q.Get("topic"); v != "" {
		topic, err := domain.ParseTopic(v)
		if err != nil {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		filter.Topic = topic
	}

	if v := q.Get("author_type"); v != "" {
		at, err := domain.ParseAuthorType(v)
		if err != nil {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		filter.AuthorType = at
	}

	if v := q.Get("source_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			renderError(w, r, fmt.Errorf("invalid source_id %q", v), http.StatusBadRequest)
			return
		}
		filter.SourceID = id
	}

	var err error
	if filter.Limit, err = intParam(q.Get("limit")); err != nil {
		renderError(w, r, fmt.Errorf("invalid limit: %w", err), http.StatusBadRequest)
		return
	}
	if filter.Offset, err = intParam(q.Get("offset")); err != nil {
		renderError(w, r, fmt.Errorf("invalid offset: %w", err), http.StatusBadRequest)
		return
	}

	page, err := s.catalog.ListArticles(r.Context(), filter)
	if err != nil {
		s.renderCatalogError(w, r, "list articles", err)
		return
	}
	if page.Items == nil {
		page.Items = []domain.Article{}
	}
	renderJSON(w, r, http.StatusOK, page)
}

// listSourcesHandler returns sources with article counts. Query: author_type, active.
func (s *Server) listSourcesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.SourceFilter{}

	if v := q.Get("author_type"); v != "" {
		at, err := domain.ParseAuthorType(v)
		if err != nil {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		filter.AuthorType = at
	}

	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid active %q", v), http.StatusBadRequest)
			return
		}
		filter.Active = &active
	}

	sources, err := s.catalog.ListSources(r.Context(), filter)
	if err != nil {
		s.renderCatalogError(w, r, "list sources", err)
		return
	}
	if sources == nil {
		sources = []domain.SourceWithCount{}
	}
	renderJSON(w, r, http.StatusOK, sources)
}

// registerSourcesHandler upserts the configured source registry
func (s *Server) registerSourcesHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.config.GetSources()
	if err != nil {
		lgr.Printf("[ERROR] failed to load sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	n, err := s.aggregator.RegisterSources(r.Context(), sources)
	if err != nil {
		lgr.Printf("[WARN] source registration interrupted: %v", err)
		renderError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"registered": n, "total": len(sources)})
}

// enableSourceHandler enables a source
func (s *Server) enableSourceHandler(w http.ResponseWriter, r *http.Request) {
	s.updateSourceStatus(w, r, true)
}

// disableSourceHandler disables a source, its articles are kept
func (s *Server) disableSourceHandler(w http.ResponseWriter, r *http.Request) {
	s.updateSourceStatus(w, r, false)
}

func (s *Server) updateSourceStatus(w http.ResponseWriter, r *http.Request, active bool) {
	slug := r.PathValue("slug")
	if err := s.catalog.SetSourceActive(r.Context(), slug, active); err != nil {
		s.renderCatalogError(w, r, "update source status", err)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"slug": slug, "active": active})
}

// fetchAllHandler runs a full fetch pass and returns its summary.
// The pass isn't bound to the request, a disconnecting client doesn't cancel it.
func (s *Server) fetchAllHandler(w http.ResponseWriter, r *http.Request) {
	clearWriteDeadline(w)

	res, err := s.aggregator.FetchAll(context.WithoutCancel(r.Context()))
	if err != nil {
		if errors.Is(err, aggregator.ErrRunInProgress) {
			renderError(w, r, err, http.StatusConflict)
			return
		}
		lgr.Printf("[ERROR] fetch pass failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// fetchSourceHandler fetches a single source by slug
func (s *Server) fetchSourceHandler(w http.ResponseWriter, r *http.Request) {
	clearWriteDeadline(w)

	slug := r.PathValue("slug")
	res, err := s.aggregator.FetchSource(context.WithoutCancel(r.Context()), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, fmt.Errorf("source %s not found", slug), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to fetch source %s: %v", slug, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// renderCatalogError maps catalog errors to status codes
func (s *Server) renderCatalogError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidFilter):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		renderError(w, r, err, http.StatusNotFound)
	default:
		lgr.Printf("[ERROR] failed to %s: %v", op, err)
		renderError(w, r, err, http.StatusInternalServerError)
	}
}

// intParam parses an optional non-negative integer query parameter, 0 if empty
func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%q is negative", v)
	}
	return n, nil
}

// clearWriteDeadline lifts the server write timeout for long-running fetch requests
func clearWriteDeadline(w http.ResponseWriter) {
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		lgr.Printf("[DEBUG] can't clear write deadline: %v", err)
	}
}
