package analyzer

import (
	"reflect"
	"testing"
)

func TestBusiestUsers(t *testing.T) {
	a := newAnalyzer(t)
	records := parseFixture(t, sampleExport)

	counts, shares := a.BusiestUsers(records)

	if len(counts) != 2 {
		t.Fatalf("BusiestUsers() returned %d users, want 2", len(counts))
	}
	if counts[0].User != "Alice" || counts[0].Messages != 2 {
		t.Errorf("top user = %+v, want Alice with 2", counts[0])
	}
	if counts[1].User != "Bob" || counts[1].Messages != 1 {
		t.Errorf("second user = %+v, want Bob with 1", counts[1])
	}

	wantShares := []UserShare{
		{User: "Alice", Percent: 66.67},
		{User: "Bob", Percent: 33.33},
	}
	if !reflect.DeepEqual(shares, wantShares) {
		t.Errorf("shares = %+v, want %+v", shares, wantShares)
	}
}

func TestBusiestUsers_ExcludesNotifications(t *testing.T) {
	a := newAnalyzer(t)
	records := parseFixture(t, "1/1/24, 10:00 am - Alice added Bob\n1/1/24, 10:01 am - Alice: hi\n")

	counts, shares := a.BusiestUsers(records)
	if len(counts) != 1 {
		t.Fatalf("BusiestUsers() returned %d users, want 1", len(counts))
	}
	if shares[0].Percent != 100 {
		t.Errorf("share = %v, want 100", shares[0].Percent)
	}
}

func TestBusiestUsers_StableTieBreak(t *testing.T) {
	a := newAnalyzer(t)
	records := parseFixture(t, `1/1/24, 10:00 am - Carol: one
1/1/24, 10:01 am - Dave: one
1/1/24, 10:02 am - Carol: two
1/1/24, 10:03 am - Dave: two
`)

	for i := 0; i < 5; i++ {
		counts, _ := a.BusiestUsers(records)
		if counts[0].User != "Carol" || counts[1].User != "Dave" {
			t.Fatalf("run %d: tie broke to %q then %q, want first-encountered order", i, counts[0].User, counts[1].User)
		}
	}
}

func TestBusiestUsers_TopNTruncation(t *testing.T) {
	a := newAnalyzer(t, WithTopUsers(1))
	records := parseFixture(t, sampleExport)

	counts, shares := a.BusiestUsers(records)
	if len(counts) != 1 {
		t.Errorf("got %d ranked users, want 1", len(counts))
	}
	// The percentage table always covers every participant.
	if len(shares) != 2 {
		t.Errorf("got %d shares, want 2", len(shares))
	}
}

func TestBusiestUsers_Empty(t *testing.T) {
	a := newAnalyzer(t)
	counts, shares := a.BusiestUsers(nil)
	if len(counts) != 0 || len(shares) != 0 {
		t.Errorf("BusiestUsers(empty) = %d counts, %d shares", len(counts), len(shares))
	}
}

func TestParticipants(t *testing.T) {
	records := parseFixture(t, `1/1/24, 10:00 am - Zoe: hi
1/1/24, 10:01 am - Alice added Bob
1/1/24, 10:02 am - Bob: hello
1/1/24, 10:03 am - Zoe: again
`)

	got := Participants(records)
	want := []string{"Bob", "Zoe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Participants() = %v, want %v", got, want)
	}
}
