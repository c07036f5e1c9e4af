package analyzer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/chatlens/chatlens/pkg/parser"
)

// WordCount is a word and its frequency.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordWeight is a word and its weight relative to the most frequent word,
// in (0, 1], suitable for driving a word-cloud renderer.
type WordWeight struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// wordFrequencies tallies normalized tokens for a scope, in
// first-encountered order. Notification records, media placeholder rows,
// stopwords, and tokens that are pure punctuation are excluded; tokens
// are lowercased and trimmed of surrounding punctuation.
func (a *Analyzer) wordFrequencies(scope Scope, records []parser.MessageRecord) []WordCount {
	var counts []WordCount
	index := make(map[string]int)

	for _, r := range scope.filter(records) {
		if r.User == parser.NotificationSender || r.Text == a.mediaPlaceholder {
			continue
		}
		for _, token := range strings.Fields(strings.ToLower(r.Text)) {
			word := strings.TrimFunc(token, unicode.IsPunct)
			if word == "" {
				continue
			}
			if _, stop := a.stopwords[word]; stop {
				continue
			}
			i, ok := index[word]
			if !ok {
				i = len(counts)
				index[word] = i
				counts = append(counts, WordCount{Word: word})
			}
			counts[i].Count++
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// MostCommonWords returns the top-N most frequent words for a scope,
// descending by count, ties in first-encountered order.
func (a *Analyzer) MostCommonWords(scope Scope, records []parser.MessageRecord) []WordCount {
	counts := a.wordFrequencies(scope, records)
	if len(counts) > a.topWords {
		counts = counts[:a.topWords]
	}
	return counts
}

// WordCloud returns the full word frequency table for a scope with counts
// normalized against the most frequent word.
func (a *Analyzer) WordCloud(scope Scope, records []parser.MessageRecord) []WordWeight {
	counts := a.wordFrequencies(scope, records)
	if len(counts) == 0 {
		return nil
	}

	max := float64(counts[0].Count)
	weights := make([]WordWeight, 0, len(counts))
	for _, c := range counts {
		weights = append(weights, WordWeight{
			Word:   c.Word,
			Weight: float64(c.Count) / max,
		})
	}
	return weights
}
