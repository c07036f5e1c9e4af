// Package config provides configuration loading and validation for chatlens.
package config

import "regexp"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Export   ExportConfig   `yaml:"export"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// ExportConfig defines how messages are tokenized out of a chat export.
type ExportConfig struct {
	// TimestampPattern is a regex matching the message prefix of the
	// export format and capturing the timestamp portion. Must contain at
	// least one capture group.
	TimestampPattern string `yaml:"timestamp_pattern"`

	// TimestampLayout is the Go time layout string for parsing the
	// captured timestamp.
	TimestampLayout string `yaml:"timestamp_layout"`

	// compiledPattern is the pre-compiled regex (populated during validation).
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled timestamp pattern.
func (e *ExportConfig) CompiledPattern() *regexp.Regexp {
	return e.compiledPattern
}

// AnalysisConfig tunes the aggregation functions.
type AnalysisConfig struct {
	// MediaPlaceholder is the exact body text the platform substitutes
	// for omitted media attachments.
	MediaPlaceholder string `yaml:"media_placeholder"`

	// Stopwords replaces the built-in stopword list when non-empty.
	Stopwords []string `yaml:"stopwords,omitempty"`

	// ExtraStopwords is appended to the effective stopword list.
	ExtraStopwords []string `yaml:"extra_stopwords,omitempty"`

	// TopWords is how many entries most-common-words rankings return.
	TopWords int `yaml:"top_words"`

	// TopUsers is how many participants the busiest-users ranking returns.
	TopUsers int `yaml:"top_users"`
}

// StopwordSet returns the effective stopwords as a lookup set.
// Configured lists override or extend the built-in defaults.
func (a *AnalysisConfig) StopwordSet() map[string]struct{} {
	base := a.Stopwords
	if len(base) == 0 {
		base = DefaultStopwords
	}
	set := make(map[string]struct{}, len(base)+len(a.ExtraStopwords))
	for _, w := range base {
		set[w] = struct{}{}
	}
	for _, w := range a.ExtraStopwords {
		set[w] = struct{}{}
	}
	return set
}
