// Package classifier assigns a single topic to an article using ordered keyword matching.
// The first topic whose keyword list has a substring hit wins, there is no scoring.
package classifier

import (
	"strings"

	"github.com/spacenexus/nexusfeed/pkg/domain"
)

// Rule maps a topic to the keywords that select it
type Rule struct {
	Topic    domain.Topic
	Keywords []string
}

// DefaultRules is the ordered topic table. Order matters: earlier rules win.
var DefaultRules = []Rule{
	{Topic: domain.TopicSpaceLaw, Keywords: []string{
		"space law", "outer space treaty", "treaty", "legal", "law", "lawyer", "litigation",
		"lawsuit", "liability", "jurisdiction", "court", "arbitration",
	}},
	{Topic: domain.TopicInvestment, Keywords: []string{
		"investment", "investor", "funding", "venture", "series a", "series b", "series c",
		"raises", "raised", "ipo", "valuation", "capital", "acquire",
	}},
	{Topic: domain.TopicPolicy, Keywords: []string{
		"policy", "regulation", "regulatory", "fcc", "faa", "congress", "senate",
		"legislation", "government", "white house", "executive order", "spectrum", "budget",
	}},
	{Topic: domain.TopicTechnology, Keywords: []string{
		"technology", "satellite", "propulsion", "engine", "rocket", "software", "sensor",
		"reusable", "innovation", "prototype", "artificial intelligence",
	}},
	{Topic: domain.TopicBusiness, Keywords: []string{
		"business", "market", "revenue", "contract", "merger", "customer", "commercial",
		"partnership", "ceo", "startup", "industry",
	}},
	{Topic: domain.TopicExploration, Keywords: []string{
		"exploration", "mars", "moon", "lunar", "asteroid", "artemis", "mission", "planet",
		"deep space", "telescope", "astronaut",
	}},
}

// Keyword classifies text by first keyword match over an ordered rule table
type Keyword struct {
	rules    []Rule
	fallback domain.Topic
}

// NewKeyword creates a classifier over rules, DefaultRules if none given
func NewKeyword(rules ...Rule) *Keyword {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				kws = append(kws, kw)
			}
		}
		normalized[i] = Rule{Topic: r.Topic, Keywords: kws}
	}
	return &Keyword{rules: normalized, fallback: domain.TopicExploration}
}

// Classify returns the topic of the first rule matching title and text, or exploration
func (k *Keyword) Classify(title, text string) domain.Topic {
	haystack := strings.ToLower(title + " " + text)
	for _, r := range k.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(haystack, kw) {
				return r.Topic
			}
		}
	}
	return k.fallback
}
