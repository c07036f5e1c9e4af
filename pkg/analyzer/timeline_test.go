package analyzer

import (
	"testing"
	"time"
)

const timelineExport = `30/1/24, 10:00 am - Alice: january one
31/1/24, 11:00 am - Alice: january two
1/2/24, 9:00 am - Bob: february one
15/3/24, 8:00 pm - Alice: march one
`

func TestMonthlyTimeline(t *testing.T) {
	a := newAnalyzer(t)
	records := parseFixture(t, timelineExport)

	got := a.MonthlyTimeline(Overall(), records)

	want := []TimelineEntry{
		{Year: 2024, Month: 1, Label: "January-2024", Messages: 2},
		{Year: 2024, Month: 2, Label: "February-2024", Messages: 1},
		{Year: 2024, Month: 3, Label: "March-2024", Messages: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("MonthlyTimeline() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMonthlyTimeline_Scoped(t *testing.T) {
	a := newAnalyzer(t)
	records := parseFixture(t, timelineExport)

	got := a.MonthlyTimeline(Participant("Bob"), records)
	if len(got) != 1 {
		t.Fatalf("MonthlyTimeline(Bob) returned %d entries, want 1", len(got))
	}
	if got[0].Label != "February-2024" || got[0].Messages != 1 {
		t.Errorf("entry = %+v", got[0])
	}
}

func TestDailyTimeline(t *testing.T) {
	a := newAnalyzer(t)
	records := parseFixture(t, timelineExport)

	got := a.DailyTimeline(Overall(), records)
	if len(got) != 4 {
		t.Fatalf("DailyTimeline() returned %d entries, want 4", len(got))
	}

	// Chronological, each distinct date exactly once.
	seen := make(map[time.Time]bool)
	for i, entry := range got {
		if seen[entry.Date] {
			t.Errorf("date %v appears twice", entry.Date)
		}
		seen[entry.Date] = true
		if i > 0 && entry.Date.Before(got[i-1].Date) {
			t.Errorf("entry[%d] out of order: %v", i, entry.Date)
		}
	}

	if !got[0].Date.Equal(time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first date = %v, want 2024-01-30", got[0].Date)
	}
}

func TestTimelines_Empty(t *testing.T) {
	a := newAnalyzer(t)
	if got := a.MonthlyTimeline(Overall(), nil); len(got) != 0 {
		t.Errorf("MonthlyTimeline(empty) returned %d entries", len(got))
	}
	if got := a.DailyTimeline(Overall(), nil); len(got) != 0 {
		t.Errorf("DailyTimeline(empty) returned %d entries", len(got))
	}
}
