package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/spacenexus/nexusfeed/pkg/domain"
	"github.com/spacenexus/nexusfeed/pkg/feed"
)

const rssLimit = 50

// rssHandler serves the most recent articles as RSS.
// Supports both /rss/{topic} and /rss?topic=... patterns, author_type narrows further.
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	topic := r.PathValue("topic")
	if topic == "" {
		topic = r.URL.Query().Get("topic")
	}

	filter := domain.ArticleFilter{
		Topic:      domain.Topic(topic),
		AuthorType: domain.AuthorType(r.URL.Query().Get("author_type")),
		Limit:      rssLimit,
	}
	page, err := s.catalog.ListArticles(r.Context(), filter)
	if err != nil {
		s.renderCatalogError(w, r, "get articles for RSS", err)
		return
	}

	rss, err := feed.NewGenerator(baseURL(r)).GenerateRSS(page.Items, filter.Topic)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}
	writeXML(w, "application/rss+xml; charset=utf-8", rss)
}

// opmlHandler serves active sources with a feed as an OPML subscription list
func (s *Server) opmlHandler(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListSources(r.Context(), domain.SourceFilter{})
	if err != nil {
		s.renderCatalogError(w, r, "get sources for OPML", err)
		return
	}

	sources := make([]domain.Source, 0, len(list))
	for _, sc := range list {
		sources = append(sources, sc.Source)
	}

	opml, err := feed.NewGenerator(baseURL(r)).GenerateOPML(sources)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="nexusfeed-sources.opml"`)
	writeXML(w, "text/x-opml; charset=utf-8", opml)
}

// baseURL derives the public base URL from the request, honoring X-Forwarded-Proto
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func writeXML(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write([]byte(body)); err != nil {
		lgr.Printf("[ERROR] failed to write response: %v", err)
	}
}
