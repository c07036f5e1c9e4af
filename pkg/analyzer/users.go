package analyzer

import (
	"math"
	"sort"

	"github.com/chatlens/chatlens/pkg/parser"
)

// UserCount ranks one participant by message volume.
type UserCount struct {
	User     string `json:"user"`
	Messages int    `json:"messages"`
}

// UserShare is a participant's percentage of all attributed messages.
type UserShare struct {
	User    string  `json:"user"`
	Percent float64 `json:"percent"`
}

// BusiestUsers ranks participants by message count, descending, returning
// the configured top-N alongside the full normalized-percentage table.
// Notification records are excluded: they are not attributable to anyone.
// Equal counts keep first-encountered order (stable sort).
func (a *Analyzer) BusiestUsers(records []parser.MessageRecord) ([]UserCount, []UserShare) {
	var counts []UserCount
	index := make(map[string]int)
	total := 0

	for _, r := range records {
		if r.User == parser.NotificationSender {
			continue
		}
		i, ok := index[r.User]
		if !ok {
			i = len(counts)
			index[r.User] = i
			counts = append(counts, UserCount{User: r.User})
		}
		counts[i].Messages++
		total++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Messages > counts[j].Messages
	})

	shares := make([]UserShare, 0, len(counts))
	for _, c := range counts {
		percent := float64(c.Messages) / float64(total) * 100
		shares = append(shares, UserShare{
			User:    c.User,
			Percent: math.Round(percent*100) / 100,
		})
	}

	if len(counts) > a.topUsers {
		counts = counts[:a.topUsers]
	}
	return counts, shares
}

// Participants returns the distinct participant names in a record set,
// sorted alphabetically, excluding the notification sentinel. This is the
// list the participant selector presents (with "Overall" prepended by the
// caller).
func Participants(records []parser.MessageRecord) []string {
	seen := make(map[string]struct{})
	var users []string
	for _, r := range records {
		if r.User == parser.NotificationSender {
			continue
		}
		if _, ok := seen[r.User]; !ok {
			seen[r.User] = struct{}{}
			users = append(users, r.User)
		}
	}
	sort.Strings(users)
	return users
}
