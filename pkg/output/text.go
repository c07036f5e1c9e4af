package output

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/chatlens/chatlens/pkg/analyzer"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	s := report.Result.Stats
	fmt.Fprintf(w, "chatlens: %s: %d messages, %d words, %d media, %d links\n",
		report.Result.Scope, s.Messages, s.Words, s.Media, s.Links)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	result := report.Result

	fmt.Fprintf(w, "=== Chat Analysis: %s ===\n", result.Scope)
	fmt.Fprintf(w, "Source: %s\n", report.Source)
	fmt.Fprintln(w)

	if report.IsEmpty() {
		fmt.Fprintln(w, "No messages parsed.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Tip: the export may be in an unsupported format (24-hour clock,")
		fmt.Fprintln(w, "different locale). Run 'chatlens detect <file>' to diagnose.")
		return nil
	}

	s := result.Stats
	fmt.Fprintln(w, "Top Statistics")
	fmt.Fprintf(w, "  Messages: %d\n", s.Messages)
	fmt.Fprintf(w, "  Words:    %d\n", s.Words)
	fmt.Fprintf(w, "  Media:    %d\n", s.Media)
	fmt.Fprintf(w, "  Links:    %d\n", s.Links)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Monthly Timeline")
	for _, entry := range result.MonthlyTimeline {
		fmt.Fprintf(w, "  %-15s %d\n", entry.Label, entry.Messages)
	}
	fmt.Fprintln(w)

	if f.opts.Verbose {
		fmt.Fprintln(w, "Daily Timeline")
		for _, entry := range result.DailyTimeline {
			fmt.Fprintf(w, "  %s  %d\n", entry.Date.Format("2006-01-02"), entry.Messages)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Activity by Day")
	for _, d := range result.WeekActivity {
		fmt.Fprintf(w, "  %-10s %d\n", d.Day, d.Messages)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Activity by Month")
	for _, m := range result.MonthActivity {
		if m.Messages == 0 && !f.opts.Verbose {
			continue
		}
		fmt.Fprintf(w, "  %-10s %d\n", m.Month, m.Messages)
	}
	fmt.Fprintln(w)

	f.formatHeatmap(result.Heatmap, w)

	if len(result.BusiestUsers) > 0 {
		fmt.Fprintln(w, "Most Busy Users")
		for i, u := range result.BusiestUsers {
			fmt.Fprintf(w, "  %d. %-20s %d\n", i+1, u.User, u.Messages)
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Share of Messages")
		for _, share := range result.UserShares {
			fmt.Fprintf(w, "  %-20s %.2f%%\n", share.User, share.Percent)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Most Common Words")
	for _, wc := range result.CommonWords {
		fmt.Fprintf(w, "  %-20s %d\n", wc.Word, wc.Count)
	}
	fmt.Fprintln(w)

	if f.opts.Verbose && len(result.WordCloud) > 0 {
		fmt.Fprintln(w, "Word Cloud Weights")
		for _, ww := range result.WordCloud {
			fmt.Fprintf(w, "  %-20s %.3f\n", ww.Word, ww.Weight)
		}
		fmt.Fprintln(w)
	}

	if len(result.Emoji) > 0 {
		fmt.Fprintln(w, "Emoji")
		for _, e := range result.Emoji {
			fmt.Fprintf(w, "  %-4s %d\n", e.Emoji, e.Count)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d records, %d participants\n",
		result.Metadata.Records, result.Metadata.Participants)
	if f.opts.Verbose {
		fmt.Fprintf(w, "Duration: %s\n", result.Metadata.Duration.Round(time.Millisecond))
	}

	return nil
}

// formatHeatmap renders only the rows and columns that carry activity;
// the full 7x24 grid is JSON territory.
func (f *TextFormatter) formatHeatmap(hm *analyzer.Heatmap, w io.Writer) {
	if hm == nil || hm.Total() == 0 {
		return
	}

	fmt.Fprintln(w, "Activity Heatmap (day / period: messages)")
	for i, day := range hm.Days {
		rowTotal := 0
		for _, c := range hm.Counts[i] {
			rowTotal += c
		}
		if rowTotal == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-10s", day)
		for j, c := range hm.Counts[i] {
			if c == 0 {
				continue
			}
			fmt.Fprintf(w, " %s:%d", hm.Periods[j], c)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
