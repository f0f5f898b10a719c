package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/spacenexus/nexusfeed/pkg/domain"
)

// RSS represents the root RSS 2.0 element
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	DC      string      `xml:"xmlns:dc,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel represents an RSS channel
type RSSChannel struct {
	XMLName       xml.Name   `xml:"channel"`
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	AtomLink      *AtomLink  `xml:"http://www.w3.org/2005/Atom link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// AtomLink represents an Atom link element within RSS
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// RSSItem represents an item in an RSS feed.
// RSS <author> must be an email address, so the display name goes to dc:creator.
type RSSItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description"`
	Creator     string   `xml:"dc:creator,omitempty"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category"`
}

// Generator builds RSS and OPML documents from stored articles and sources
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// GenerateRSS creates an RSS 2.0 feed of aggregated articles, optionally limited to one topic
func (g *Generator) GenerateRSS(articles []domain.Article, topic domain.Topic) (string, error) {
	title := "Space Nexus - All Topics"
	selfLink := g.baseURL + "/rss"
	if topic != "" {
		title = "Space Nexus - " + string(topic)
		selfLink = fmt.Sprintf("%s/rss/%s", g.baseURL, topic)
	}

	items := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, g.convertToRSSItem(a))
	}

	doc := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		DC:      "http://purl.org/dc/elements/1.1/",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Aggregated space industry blog articles",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func (g *Generator) convertToRSSItem(a domain.Article) *RSSItem {
	title := a.Title
	if a.SourceName != "" {
		title = fmt.Sprintf("[%s] %s", a.SourceName, a.Title)
	}
	return &RSSItem{
		Title:       title,
		Link:        a.URL,
		GUID:        a.URL,
		Description: a.Excerpt,
		Creator:     a.AuthorName,
		PubDate:     a.PublishedAt.Format(time.RFC1123Z),
		Categories:  []string{string(a.Topic)},
	}
}

// GenerateOPML creates an OPML subscription list of sources with a feed
func (g *Generator) GenerateOPML(sources []domain.Source) (string, error) {
	type outline struct {
		XMLName     xml.Name `xml:"outline"`
		Text        string   `xml:"text,attr"`
		Title       string   `xml:"title,attr"`
		Type        string   `xml:"type,attr"`
		XMLURL      string   `xml:"xmlUrl,attr"`
		HTMLURL     string   `xml:"htmlUrl,attr,omitempty"`
		Description string   `xml:"description,attr,omitempty"`
		Category    string   `xml:"category,attr,omitempty"`
	}

	type body struct {
		XMLName  xml.Name  `xml:"body"`
		Outlines []outline `xml:"outline"`
	}

	type head struct {
		XMLName     xml.Name `xml:"head"`
		Title       string   `xml:"title"`
		DateCreated string   `xml:"dateCreated"`
	}

	type opml struct {
		XMLName xml.Name `xml:"opml"`
		Version string   `xml:"version,attr"`
		Head    head     `xml:"head"`
		Body    body     `xml:"body"`
	}

	outlines := make([]outline, 0, len(sources))
	for _, s := range sources {
		if !s.HasFeed() {
			continue
		}
		outlines = append(outlines, outline{
			Text:        s.Name,
			Title:       s.Name,
			Type:        "rss",
			XMLURL:      s.FeedURL,
			HTMLURL:     s.URL,
			Description: s.Description,
			Category:    string(s.AuthorType),
		})
	}

	doc := opml{
		Version: "2.0",
		Head:    head{Title: "Space Nexus Feed Sources", DateCreated: g.now().Format(time.RFC1123Z)},
		Body:    body{Outlines: outlines},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}
	return xml.Header + string(output), nil
}
