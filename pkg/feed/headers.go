package feed

import "net/http"

// feedAccept is the Accept header sent with every feed request
const feedAccept = "application/rss+xml, application/xml, text/xml"

// addFeedHeaders sets the content negotiation headers for feed fetching
func addFeedHeaders(req *http.Request) {
	req.Header.Set("Accept", feedAccept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
}
