// Package analyzer computes descriptive statistics over parsed chat records.
//
// Every aggregation is a pure query: it never mutates the record set, never
// returns an error for valid input, and yields empty results for empty or
// fully filtered scopes. Ties in any ranking break by first-encountered
// order, so repeated runs on identical input are byte-identical.
package analyzer

import (
	"regexp"
	"time"

	"github.com/chatlens/chatlens/pkg/config"
	"github.com/chatlens/chatlens/pkg/parser"
	"mvdan.cc/xurls/v2"
)

// Analyzer runs aggregation queries over a parsed record set.
type Analyzer struct {
	mediaPlaceholder string
	stopwords        map[string]struct{}
	linkPattern      *regexp.Regexp
	topWords         int
	topUsers         int
}

// Option configures analyzer behavior.
type Option func(*Analyzer)

// WithTopWords overrides how many entries word rankings return.
func WithTopWords(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.topWords = n
		}
	}
}

// WithTopUsers overrides how many participants the busiest-users ranking returns.
func WithTopUsers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.topUsers = n
		}
	}
}

// New creates an Analyzer from configuration. The media placeholder,
// stopword list, and ranking sizes all come from the config; the link
// matcher is compiled once here.
func New(cfg *config.Config, opts ...Option) *Analyzer {
	a := &Analyzer{
		mediaPlaceholder: cfg.Analysis.MediaPlaceholder,
		stopwords:        cfg.Analysis.StopwordSet(),
		linkPattern:      xurls.Relaxed(),
		topWords:         cfg.Analysis.TopWords,
		topUsers:         cfg.Analysis.TopUsers,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result is the combined output of every aggregation for one scope.
type Result struct {
	Scope           string          `json:"scope"`
	Stats           Stats           `json:"stats"`
	MonthlyTimeline []TimelineEntry `json:"monthly_timeline"`
	DailyTimeline   []DateCount     `json:"daily_timeline"`
	WeekActivity    []DayCount      `json:"week_activity"`
	MonthActivity   []MonthCount    `json:"month_activity"`
	Heatmap         *Heatmap        `json:"heatmap"`
	CommonWords     []WordCount     `json:"common_words"`
	WordCloud       []WordWeight    `json:"word_cloud"`
	Emoji           []EmojiCount    `json:"emoji"`

	// BusiestUsers and UserShares are populated only for the overall scope.
	BusiestUsers []UserCount `json:"busiest_users,omitempty"`
	UserShares   []UserShare `json:"user_shares,omitempty"`

	Metadata ResultMetadata `json:"metadata"`
}

// ResultMetadata provides context about the analysis run.
type ResultMetadata struct {
	Records      int           `json:"records"`
	Participants int           `json:"participants"`
	AnalyzedAt   time.Time     `json:"analyzed_at"`
	Duration     time.Duration `json:"duration"`
}

// Analyze runs every aggregation for the scope and returns the combined
// result. Safe on an empty record set.
func (a *Analyzer) Analyze(scope Scope, records []parser.MessageRecord) *Result {
	start := time.Now()

	result := &Result{
		Scope:           scope.String(),
		Stats:           a.FetchStats(scope, records),
		MonthlyTimeline: a.MonthlyTimeline(scope, records),
		DailyTimeline:   a.DailyTimeline(scope, records),
		WeekActivity:    a.WeekActivity(scope, records),
		MonthActivity:   a.MonthActivity(scope, records),
		Heatmap:         a.ActivityHeatmap(scope, records),
		CommonWords:     a.MostCommonWords(scope, records),
		WordCloud:       a.WordCloud(scope, records),
		Emoji:           a.EmojiCounts(scope, records),
	}

	if scope.IsOverall() {
		result.BusiestUsers, result.UserShares = a.BusiestUsers(records)
	}

	end := time.Now()
	result.Metadata = ResultMetadata{
		Records:      len(records),
		Participants: len(Participants(records)),
		AnalyzedAt:   end,
		Duration:     end.Sub(start),
	}

	return result
}
