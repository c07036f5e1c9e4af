package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// The export format contract. Exports are expected to prefix every message
// with a 12-hour date/time and a dash, e.g. "1/1/24, 10:00 am - ".
//
// The pattern's character classes are deliberately exact: 24-hour clocks,
// uppercase AM/PM, bracketed iOS prefixes, and other locale variants do not
// match and produce zero records (see the detector package for diagnosing
// such files). Changing either constant is a breaking change for existing
// exports.
const (
	// DefaultPrefixPattern matches the message prefix at the start of a
	// line and captures the timestamp portion.
	DefaultPrefixPattern = `(?m)^(\d{1,2}/\d{1,2}/\d{2}, \d{1,2}:\d{2} [ap]m) - `

	// DefaultTimestampLayout parses the captured timestamp (day/month
	// order, two-digit year, lowercase am/pm).
	DefaultTimestampLayout = "2/1/06, 3:04 pm"
)

// Span is one tokenized message: the captured timestamp string and the
// remainder of the export up to the next message prefix.
type Span struct {
	// RawTimestamp is the captured date/time prefix, before parsing.
	RawTimestamp string

	// Remainder is everything after the prefix up to the next prefix,
	// including any continuation lines.
	Remainder string
}

// Parser splits a chat export into message records.
type Parser struct {
	pattern   *regexp.Regexp
	extractor *TimestampExtractor
}

// New creates a Parser with the given prefix pattern and timestamp layout.
// The pattern must capture the timestamp in its first group.
func New(pattern *regexp.Regexp, layout string) (*Parser, error) {
	if pattern.NumSubexp() < 1 {
		return nil, fmt.Errorf("prefix pattern %q must capture the timestamp in a group", pattern)
	}
	return &Parser{
		pattern:   pattern,
		extractor: NewTimestampExtractor(layout),
	}, nil
}

// Default returns a Parser for the standard 12-hour export format.
func Default() *Parser {
	p, err := New(regexp.MustCompile(DefaultPrefixPattern), DefaultTimestampLayout)
	if err != nil {
		panic(err) // the default pattern always has a capture group
	}
	return p
}

// Tokenize splits the raw export into (timestamp, remainder) spans.
// Content before the first matching prefix is dropped; content between
// prefixes, including continuation lines of multi-line messages, belongs
// to the preceding span.
func (p *Parser) Tokenize(raw string) []Span {
	locs := p.pattern.FindAllStringSubmatchIndex(raw, -1)
	spans := make([]Span, 0, len(locs))
	for i, loc := range locs {
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		spans = append(spans, Span{
			RawTimestamp: raw[loc[2]:loc[3]],
			Remainder:    raw[loc[1]:end],
		})
	}
	return spans
}

// Parse converts a raw chat export into message records, in source order.
// Spans whose timestamp fails to parse are skipped; everything else emits
// exactly one record. An export in an unrecognized format parses to an
// empty record set, not an error.
func (p *Parser) Parse(raw string) []MessageRecord {
	spans := p.Tokenize(raw)
	records := make([]MessageRecord, 0, len(spans))
	for _, span := range spans {
		ts, err := p.extractor.Extract(span.RawTimestamp)
		if err != nil {
			continue
		}
		user, text := splitSender(span.Remainder)
		records = append(records, newRecord(ts, user, text))
	}
	return records
}

// splitSender separates the sender name from the message body.
// The boundary is the first ": " before the first newline; sender names are
// assumed not to contain colons. Remainders without a sender boundary are
// system notifications and fall back to NotificationSender.
func splitSender(remainder string) (user, text string) {
	head := remainder
	if i := strings.IndexByte(remainder, '\n'); i >= 0 {
		head = remainder[:i]
	}
	if i := strings.Index(head, ": "); i >= 0 {
		return remainder[:i], strings.TrimSpace(remainder[i+2:])
	}
	return NotificationSender, strings.TrimSpace(remainder)
}

// PeriodLabel returns the one-hour bucket label for an hour of day,
// wrapping at the day boundary: 23 pairs with 0 and 0 pairs with 1.
func PeriodLabel(hour int) string {
	return fmt.Sprintf("%d-%d", hour, (hour+1)%24)
}
