package analyzer

import "testing"

func TestWeekActivity(t *testing.T) {
	a := newAnalyzer(t)
	// 1/1/24 is a Monday, 6/1/24 a Saturday.
	records := parseFixture(t, `1/1/24, 10:00 am - Alice: one
1/1/24, 11:00 am - Bob: two
6/1/24, 10:00 am - Alice: three
`)

	got := a.WeekActivity(Overall(), records)
	if len(got) != 7 {
		t.Fatalf("WeekActivity() returned %d days, want 7", len(got))
	}

	byDay := make(map[string]int)
	for _, d := range got {
		byDay[d.Day] = d.Messages
	}
	if byDay["Monday"] != 2 {
		t.Errorf("Monday = %d, want 2", byDay["Monday"])
	}
	if byDay["Saturday"] != 1 {
		t.Errorf("Saturday = %d, want 1", byDay["Saturday"])
	}
	if byDay["Wednesday"] != 0 {
		t.Errorf("Wednesday = %d, want 0", byDay["Wednesday"])
	}
}

func TestMonthActivity(t *testing.T) {
	a := newAnalyzer(t)
	records := parseFixture(t, "1/1/24, 10:00 am - Alice: one\n1/6/24, 10:00 am - Alice: two\n")

	got := a.MonthActivity(Overall(), records)
	if len(got) != 12 {
		t.Fatalf("MonthActivity() returned %d months, want 12", len(got))
	}
	if got[0].Month != "January" || got[0].Messages != 1 {
		t.Errorf("January entry = %+v", got[0])
	}
	if got[5].Month != "June" || got[5].Messages != 1 {
		t.Errorf("June entry = %+v", got[5])
	}
	if got[11].Messages != 0 {
		t.Errorf("December = %d, want 0", got[11].Messages)
	}
}

func TestActivityHeatmap(t *testing.T) {
	a := newAnalyzer(t)
	records := parseFixture(t, `1/1/24, 10:00 am - Alice: morning
1/1/24, 10:30 am - Bob: also morning
1/1/24, 11:45 pm - Alice: night
`)

	hm := a.ActivityHeatmap(Overall(), records)

	if len(hm.Days) != 7 {
		t.Fatalf("heatmap has %d rows, want 7", len(hm.Days))
	}
	if len(hm.Periods) != 24 {
		t.Fatalf("heatmap has %d columns, want 24", len(hm.Periods))
	}
	if hm.Periods[23] != "23-0" {
		t.Errorf("last period = %q, want 23-0", hm.Periods[23])
	}

	// 1/1/24 is a Monday, row 0.
	if hm.Counts[0][10] != 2 {
		t.Errorf("Monday 10-11 = %d, want 2", hm.Counts[0][10])
	}
	if hm.Counts[0][23] != 1 {
		t.Errorf("Monday 23-0 = %d, want 1", hm.Counts[0][23])
	}

	total := a.FetchStats(Overall(), records).Messages
	if hm.Total() != total {
		t.Errorf("Heatmap.Total() = %d, want %d", hm.Total(), total)
	}
}

func TestActivityHeatmap_EmptyShapeStable(t *testing.T) {
	a := newAnalyzer(t)

	hm := a.ActivityHeatmap(Participant("Nobody"), nil)
	if len(hm.Days) != 7 || len(hm.Periods) != 24 {
		t.Errorf("empty heatmap shape = %dx%d, want 7x24", len(hm.Days), len(hm.Periods))
	}
	if hm.Total() != 0 {
		t.Errorf("empty heatmap total = %d", hm.Total())
	}
}
