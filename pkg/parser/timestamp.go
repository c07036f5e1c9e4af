package parser

import (
	"fmt"
	"time"
)

// TimestampExtractor parses the raw timestamp strings captured by the
// export tokenizer.
type TimestampExtractor struct {
	layout string
}

// NewTimestampExtractor creates an extractor for the given Go time layout.
func NewTimestampExtractor(layout string) *TimestampExtractor {
	return &TimestampExtractor{layout: layout}
}

// Extract parses a captured timestamp string.
// Returns the parsed time and nil error on success.
// Returns zero time and error if the string does not conform to the layout.
func (e *TimestampExtractor) Extract(raw string) (time.Time, error) {
	ts, err := time.Parse(e.layout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", raw, err)
	}
	return ts, nil
}
