package analyzer

import (
	"sort"

	"github.com/forPelevin/gomoji"

	"github.com/chatlens/chatlens/pkg/parser"
)

// EmojiCount is an emoji and its number of occurrences.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// EmojiCounts tallies emoji usage for a scope, descending by count, ties
// in first-encountered order. Classification is per codepoint: each emoji
// rune counts once per occurrence, and multi-rune sequences contribute one
// count per emoji rune.
func (a *Analyzer) EmojiCounts(scope Scope, records []parser.MessageRecord) []EmojiCount {
	var counts []EmojiCount
	index := make(map[rune]int)

	for _, r := range scope.filter(records) {
		for _, c := range r.Text {
			if !gomoji.ContainsEmoji(string(c)) {
				continue
			}
			i, ok := index[c]
			if !ok {
				i = len(counts)
				index[c] = i
				counts = append(counts, EmojiCount{Emoji: string(c)})
			}
			counts[i].Count++
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
