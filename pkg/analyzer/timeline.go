package analyzer

import (
	"fmt"
	"time"

	"github.com/chatlens/chatlens/pkg/parser"
)

// TimelineEntry is one calendar month of activity.
type TimelineEntry struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Label    string `json:"label"` // "January-2024"
	Messages int    `json:"messages"`
}

// DateCount is one calendar day of activity.
type DateCount struct {
	Date     time.Time `json:"date"`
	Messages int       `json:"messages"`
}

// MonthlyTimeline groups in-scope messages by (year, month), in
// chronological order. Records arrive in source order, which exports keep
// chronological, so first-encounter grouping preserves it.
func (a *Analyzer) MonthlyTimeline(scope Scope, records []parser.MessageRecord) []TimelineEntry {
	var entries []TimelineEntry
	index := make(map[[2]int]int)

	for _, r := range scope.filter(records) {
		key := [2]int{r.Year, r.MonthNum}
		i, ok := index[key]
		if !ok {
			i = len(entries)
			index[key] = i
			entries = append(entries, TimelineEntry{
				Year:  r.Year,
				Month: r.MonthNum,
				Label: fmt.Sprintf("%s-%d", r.MonthName, r.Year),
			})
		}
		entries[i].Messages++
	}
	return entries
}

// DailyTimeline groups in-scope messages by calendar date, in
// chronological order.
func (a *Analyzer) DailyTimeline(scope Scope, records []parser.MessageRecord) []DateCount {
	var entries []DateCount
	index := make(map[time.Time]int)

	for _, r := range scope.filter(records) {
		i, ok := index[r.OnlyDate]
		if !ok {
			i = len(entries)
			index[r.OnlyDate] = i
			entries = append(entries, DateCount{Date: r.OnlyDate})
		}
		entries[i].Messages++
	}
	return entries
}
