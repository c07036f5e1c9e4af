package config

import (
	"os"

	"github.com/chatlens/chatlens/pkg/parser"
)

// Default values for configuration.
const (
	DefaultMediaPlaceholder = "<Media omitted>"
	DefaultTopWords         = 20
	DefaultTopUsers         = 5
)

// Environment variable names.
const (
	EnvTimestampLayout  = "CHATLENS_TIMESTAMP_LAYOUT"
	EnvMediaPlaceholder = "CHATLENS_MEDIA_PLACEHOLDER"
)

// DefaultStopwords is the built-in stopword list applied to word-frequency
// rankings. English function words plus the Hinglish fillers common in the
// exports this tool was built for.
var DefaultStopwords = []string{
	"a", "about", "after", "again", "all", "also", "am", "an", "and",
	"any", "are", "as", "at", "be", "because", "been", "before", "being",
	"but", "by", "can", "could", "did", "do", "does", "doing", "down",
	"for", "from", "had", "has", "have", "having", "he", "her", "here",
	"him", "his", "how", "i", "if", "in", "into", "is", "it", "its",
	"just", "me", "more", "most", "my", "no", "not", "now", "of", "ok",
	"okay", "on", "once", "only", "or", "other", "our", "out", "over",
	"so", "some", "such", "than", "that", "the", "their", "them", "then",
	"there", "these", "they", "this", "those", "to", "too", "up", "us",
	"very", "was", "we", "were", "what", "when", "where", "which", "who",
	"why", "will", "with", "would", "you", "your",
	// Hinglish fillers
	"hai", "haan", "ha", "ho", "hi", "kya", "ki", "ko", "kar", "karo",
	"main", "mein", "nahi", "nhi", "par", "pe", "se", "toh", "tha", "thi",
	"tu", "tum", "aur", "bhi", "bas", "acha", "accha", "arre", "yaar",
	"hmm", "hm", "lol", "haha", "ohh", "oh",
}

// DefaultConfig returns a configuration with the standard export format
// and analysis settings.
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			TimestampPattern: parser.DefaultPrefixPattern,
			TimestampLayout:  parser.DefaultTimestampLayout,
		},
		Analysis: AnalysisConfig{
			MediaPlaceholder: DefaultMediaPlaceholder,
			TopWords:         DefaultTopWords,
			TopUsers:         DefaultTopUsers,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if layout := os.Getenv(EnvTimestampLayout); layout != "" {
		c.Export.TimestampLayout = layout
	}
	if placeholder := os.Getenv(EnvMediaPlaceholder); placeholder != "" {
		c.Analysis.MediaPlaceholder = placeholder
	}
}
