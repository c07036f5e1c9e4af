package analyzer

import (
	"strings"

	"github.com/chatlens/chatlens/pkg/parser"
)

// Stats summarizes message volume for a scope.
type Stats struct {
	// Messages is the number of records in scope.
	Messages int `json:"messages"`

	// Words is the total whitespace-split token count across all bodies.
	Words int `json:"words"`

	// Media is the number of records whose body is the media placeholder.
	Media int `json:"media"`

	// Links is the number of URL matches across all bodies.
	Links int `json:"links"`
}

// FetchStats computes the top-line statistics for a scope.
//
// The counting rules are part of the output contract: words are
// strings.Fields tokens summed over every body in scope (placeholder rows
// included), and links are xurls matches summed the same way.
func (a *Analyzer) FetchStats(scope Scope, records []parser.MessageRecord) Stats {
	var stats Stats
	for _, r := range scope.filter(records) {
		stats.Messages++
		stats.Words += len(strings.Fields(r.Text))
		if r.Text == a.mediaPlaceholder {
			stats.Media++
		}
		stats.Links += len(a.linkPattern.FindAllString(r.Text, -1))
	}
	return stats
}
