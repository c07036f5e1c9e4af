package analyzer

import (
	"time"

	"github.com/chatlens/chatlens/pkg/parser"
)

// DayCount is a weekday and its message count.
type DayCount struct {
	Day      string `json:"day"`
	Messages int    `json:"messages"`
}

// MonthCount is a month name and its message count.
type MonthCount struct {
	Month    string `json:"month"`
	Messages int    `json:"messages"`
}

// Heatmap is a day-of-week by hour-bucket activity table.
// Rows and columns are always full (7 days, 24 period buckets), with
// missing combinations zero-filled, so the table shape is stable for
// renderers regardless of the record set.
type Heatmap struct {
	Days    []string `json:"days"`    // row labels, Monday first
	Periods []string `json:"periods"` // column labels, "0-1" through "23-0"
	Counts  [][]int  `json:"counts"`  // Counts[i][j] = messages on Days[i] during Periods[j]
}

// Total returns the sum of every cell.
func (h *Heatmap) Total() int {
	total := 0
	for _, row := range h.Counts {
		for _, c := range row {
			total += c
		}
	}
	return total
}

// weekDays lists weekday names in render order, Monday first.
var weekDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekActivity counts in-scope messages per weekday. All seven days are
// present even when zero.
func (a *Analyzer) WeekActivity(scope Scope, records []parser.MessageRecord) []DayCount {
	counts := make(map[string]int)
	for _, r := range scope.filter(records) {
		counts[r.DayName]++
	}

	out := make([]DayCount, 0, len(weekDays))
	for _, day := range weekDays {
		out = append(out, DayCount{Day: day, Messages: counts[day]})
	}
	return out
}

// MonthActivity counts in-scope messages per month name. All twelve months
// are present even when zero.
func (a *Analyzer) MonthActivity(scope Scope, records []parser.MessageRecord) []MonthCount {
	counts := make(map[string]int)
	for _, r := range scope.filter(records) {
		counts[r.MonthName]++
	}

	out := make([]MonthCount, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, MonthCount{Month: m.String(), Messages: counts[m.String()]})
	}
	return out
}

// ActivityHeatmap builds the weekday-by-period activity table for a scope.
func (a *Analyzer) ActivityHeatmap(scope Scope, records []parser.MessageRecord) *Heatmap {
	periods := make([]string, 24)
	for h := 0; h < 24; h++ {
		periods[h] = parser.PeriodLabel(h)
	}

	dayIndex := make(map[string]int, len(weekDays))
	for i, day := range weekDays {
		dayIndex[day] = i
	}

	counts := make([][]int, len(weekDays))
	for i := range counts {
		counts[i] = make([]int, len(periods))
	}

	for _, r := range scope.filter(records) {
		counts[dayIndex[r.DayName]][r.Hour]++
	}

	return &Heatmap{
		Days:    weekDays,
		Periods: periods,
		Counts:  counts,
	}
}
