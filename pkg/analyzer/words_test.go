package analyzer

import (
	"testing"

	"github.com/chatlens/chatlens/pkg/config"
)

const wordExport = `1/1/24, 10:00 am - Alice: Coffee coffee COFFEE!
1/1/24, 10:01 am - Bob: the coffee was great
1/1/24, 10:02 am - Bob: <Media omitted>
1/1/24, 10:03 am - Alice added Carol
1/1/24, 10:04 am - Carol: great great plan
`

func TestMostCommonWords(t *testing.T) {
	a := newAnalyzer(t)
	records := parseFixture(t, wordExport)

	got := a.MostCommonWords(Overall(), records)
	if len(got) == 0 {
		t.Fatal("MostCommonWords() returned nothing")
	}

	if got[0].Word != "coffee" || got[0].Count != 4 {
		t.Errorf("top word = %+v, want coffee with 4", got[0])
	}

	for _, wc := range got {
		switch wc.Word {
		case "the", "was":
			t.Errorf("stopword %q not excluded", wc.Word)
		case "added":
			t.Error("notification text leaked into word counts")
		case "<media", "omitted>", "media":
			t.Error("media placeholder leaked into word counts")
		case "coffee!":
			t.Error("punctuation not trimmed from token")
		}
	}
}

func TestMostCommonWords_TopN(t *testing.T) {
	a := newAnalyzer(t, WithTopWords(1))
	records := parseFixture(t, wordExport)

	got := a.MostCommonWords(Overall(), records)
	if len(got) != 1 {
		t.Errorf("got %d words, want 1", len(got))
	}
}

func TestMostCommonWords_StableTieBreak(t *testing.T) {
	a := newAnalyzer(t)
	records := parseFixture(t, "1/1/24, 10:00 am - Alice: apple banana\n1/1/24, 10:01 am - Alice: apple banana\n")

	for i := 0; i < 5; i++ {
		got := a.MostCommonWords(Overall(), records)
		if len(got) != 2 || got[0].Word != "apple" || got[1].Word != "banana" {
			t.Fatalf("run %d: got %+v, want apple then banana", i, got)
		}
	}
}

func TestMostCommonWords_CustomStopwords(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.ExtraStopwords = []string{"coffee"}
	a := New(cfg)
	records := parseFixture(t, wordExport)

	for _, wc := range a.MostCommonWords(Overall(), records) {
		if wc.Word == "coffee" {
			t.Error("configured stopword not excluded")
		}
	}
}

func TestWordCloud(t *testing.T) {
	a := newAnalyzer(t)
	records := parseFixture(t, wordExport)

	got := a.WordCloud(Overall(), records)
	if len(got) == 0 {
		t.Fatal("WordCloud() returned nothing")
	}

	if got[0].Word != "coffee" || got[0].Weight != 1.0 {
		t.Errorf("top entry = %+v, want coffee with weight 1", got[0])
	}
	for i, ww := range got {
		if ww.Weight <= 0 || ww.Weight > 1 {
			t.Errorf("entry[%d] weight %v outside (0, 1]", i, ww.Weight)
		}
		if i > 0 && ww.Weight > got[i-1].Weight {
			t.Errorf("entry[%d] weight %v not descending", i, ww.Weight)
		}
	}
}

func TestWordCloud_Empty(t *testing.T) {
	a := newAnalyzer(t)
	if got := a.WordCloud(Participant("Nobody"), nil); got != nil {
		t.Errorf("WordCloud(empty) = %v, want nil", got)
	}
}
