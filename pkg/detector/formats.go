package detector

import (
	"regexp"

	"github.com/chatlens/chatlens/pkg/parser"
)

// ExportFormat represents a known chat-export line format.
type ExportFormat struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for config output
	Layout     string         // Go time layout, for supported formats
	Supported  bool           // True if the parser can consume this format
	Note       string         // Guidance shown when the format is unsupported
	Examples   []string       // Example line prefixes
}

// DefaultFormats returns the built-in export formats to detect.
// Only the Android 12-hour format is parseable; the rest exist so the
// detect command can name what it sees instead of reporting a bare
// zero-record parse.
func DefaultFormats() []*ExportFormat {
	formats := []*ExportFormat{
		{
			// Pattern and layout are the parser's own constants so a
			// starter config generated from this entry round-trips.
			Name:       "Android 12-hour",
			PatternStr: parser.DefaultPrefixPattern,
			Layout:     parser.DefaultTimestampLayout,
			Supported:  true,
			Examples:   []string{"1/1/24, 10:00 am - Alice: Hello"},
		},
		{
			// The 12-hour variants keep the supported format's field
			// widths and differ only in their one distinguishing
			// dimension, so the table stays ordered by specificity.
			Name:       "Android 12-hour, uppercase AM/PM",
			PatternStr: `^(\d{1,2}/\d{1,2}/\d{2}, \d{1,2}:\d{2} (?:AM|PM)) - `,
			Note:       "uppercase AM/PM markers are not parseable; this usually comes from a different device locale",
			Examples:   []string{"1/1/24, 10:00 AM - Alice: Hello"},
		},
		{
			Name:       "Android 12-hour, narrow space before am/pm",
			PatternStr: "^(\\d{1,2}/\\d{1,2}/\\d{2}, \\d{1,2}:\\d{2} [apAP][mM]) - ",
			Note:       "newer exports put a narrow no-break space (U+202F) before the am/pm marker, which the parser does not accept",
			Examples:   []string{"1/1/24, 10:00 am - Alice: Hello"},
		},
		{
			Name:       "Android 24-hour",
			PatternStr: `^(\d{1,2}/\d{1,2}/\d{2,4}, \d{1,2}:\d{2}) - `,
			Note:       "24-hour clocks are not supported; export again from a device using a 12-hour clock",
			Examples:   []string{"1/1/24, 22:00 - Alice: Hello"},
		},
		{
			Name:       "iOS bracketed 12-hour",
			PatternStr: `^\[(\d{1,2}/\d{1,2}/\d{2,4}, \d{1,2}:\d{2}:\d{2} (?:AM|PM|am|pm))\] `,
			Note:       "bracketed iOS exports are not supported; export from an Android device instead",
			Examples:   []string{"[1/1/24, 10:00:00 AM] Alice: Hello"},
		},
		{
			Name:       "iOS bracketed 24-hour",
			PatternStr: `^\[(\d{1,2}/\d{1,2}/\d{2,4}, \d{1,2}:\d{2}:\d{2})\] `,
			Note:       "bracketed iOS exports are not supported; export from an Android device instead",
			Examples:   []string{"[1/1/24, 22:00:00] Alice: Hello"},
		},
		{
			Name:       "ISO 8601 prefix",
			PatternStr: `^(\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2})`,
			Note:       "this looks like an application log, not a chat export",
			Examples:   []string{"2024-01-15T10:30:00 something happened"},
		},
	}

	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}
	return formats
}
