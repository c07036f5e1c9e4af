package analyzer

import "github.com/chatlens/chatlens/pkg/parser"

// Scope selects either the whole conversation or one specific participant.
// The zero value is the overall scope.
type Scope struct {
	participant bool
	user        string
}

// Overall returns the scope covering every participant.
func Overall() Scope {
	return Scope{}
}

// Participant returns the scope limited to one participant. The name is
// matched exactly against record senders, so an empty or unknown name
// yields empty results rather than widening to the whole conversation.
func Participant(name string) Scope {
	return Scope{participant: true, user: name}
}

// IsOverall reports whether the scope covers the whole conversation.
func (s Scope) IsOverall() bool {
	return !s.participant
}

// User returns the participant name, or "" for the overall scope.
func (s Scope) User() string {
	return s.user
}

// String renders the scope the way the participant selector shows it.
func (s Scope) String() string {
	if s.IsOverall() {
		return "Overall"
	}
	return s.user
}

// filter returns the records visible to the scope. The overall scope sees
// everything; a participant scope sees only that participant's messages.
// Notification records never match a participant scope since their user
// field is the sentinel, not a real name.
func (s Scope) filter(records []parser.MessageRecord) []parser.MessageRecord {
	if s.IsOverall() {
		return records
	}
	var out []parser.MessageRecord
	for _, r := range records {
		if r.User == s.user && r.User != parser.NotificationSender {
			out = append(out, r)
		}
	}
	return out
}
