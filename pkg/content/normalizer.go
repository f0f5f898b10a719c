package content

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultMaxLength is the excerpt bound in characters, not counting the ellipsis
const DefaultMaxLength = 300

// Ellipsis is appended to truncated excerpts
const Ellipsis = "..."

// Normalizer converts raw feed content into bounded plain-text excerpts
type Normalizer struct {
	policy    *bluemonday.Policy
	maxLength int
}

// NewNormalizer creates a normalizer with the given excerpt bound, DefaultMaxLength if not positive
func NewNormalizer(maxLength int) *Normalizer {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	policy := bluemonday.StrictPolicy()
	policy.AddSpaceWhenStrippingTag(true)
	return &Normalizer{
		policy:    policy,
		maxLength: maxLength,
	}
}

// SelectRaw picks the raw content to build an excerpt from.
// Full encoded content wins over the snippet; both empty yields empty string.
func SelectRaw(encoded, snippet string) string {
	if strings.TrimSpace(encoded) != "" {
		return encoded
	}
	if strings.TrimSpace(snippet) != "" {
		return snippet
	}
	return ""
}

// Excerpt strips markup from raw and bounds the result to maxLength characters.
// Truncated excerpts get the Ellipsis marker appended.
func (n *Normalizer) Excerpt(raw string) string {
	if raw == "" {
		return ""
	}

	// strict policy drops all tags and attributes but keeps entities escaped
	text := n.policy.Sanitize(raw)
	text = html.UnescapeString(text)

	// unescaping may have produced new markup, e.g. from &lt;script&gt;
	if strings.ContainsRune(text, '<') {
		text = html.UnescapeString(n.policy.Sanitize(text))
	}

	text = strings.Join(strings.Fields(text), " ")
	return truncate(text, n.maxLength)
}

// truncate cuts s to max runes, appending Ellipsis when something was cut
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:max]), " ") + Ellipsis
}
