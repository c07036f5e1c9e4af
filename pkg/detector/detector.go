// Package detector identifies the line format of a chat export.
//
// The parser deliberately accepts only one export format; everything else
// parses to zero records with no error. The detector exists to turn that
// silence into a diagnosis: it samples lines, tests them against known
// export formats, and reports which one the file appears to use.
package detector

import (
	"sort"
	"strings"
)

// DetectionResult holds the result of analyzing an export.
type DetectionResult struct {
	Matches      []FormatMatch // Formats that matched, sorted by confidence descending
	SampledLines int           // Number of non-empty lines sampled
	MatchedLines int           // Number of lines matching any known format
}

// FormatMatch represents a format that matched with its confidence score.
type FormatMatch struct {
	Format     *ExportFormat
	Confidence float64 // 0.0 to 1.0 (fraction of sampled lines matched)
	MatchCount int     // Number of lines that matched
	SampleLine string  // Example line that matched
}

// Detector analyzes chat exports to identify their line format.
type Detector struct {
	formats    []*ExportFormat
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a new Detector with the default format table.
func New(opts ...Option) *Detector {
	d := &Detector{
		formats:    DefaultFormats(),
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect analyzes a raw export blob.
func (d *Detector) Detect(raw string) *DetectionResult {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if len(lines) >= d.sampleSize {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return d.DetectFromLines(lines)
}

// DetectFromLines analyzes a slice of export lines.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{
		SampledLines: len(lines),
	}
	if len(lines) == 0 {
		return result
	}

	type formatStats struct {
		format     *ExportFormat
		matchCount int
		sampleLine string
	}
	stats := make(map[string]*formatStats)

	for _, line := range lines {
		matched := false
		for _, format := range d.formats {
			if !format.Pattern.MatchString(line) {
				continue
			}
			s, ok := stats[format.Name]
			if !ok {
				s = &formatStats{format: format, sampleLine: line}
				stats[format.Name] = s
			}
			s.matchCount++
			matched = true
			// First format wins per line; the table is ordered by
			// specificity so the 12-hour pattern is tested before the
			// 24-hour one that would also accept its lines.
			break
		}
		if matched {
			result.MatchedLines++
		}
	}

	for _, s := range stats {
		result.Matches = append(result.Matches, FormatMatch{
			Format:     s.format,
			Confidence: float64(s.matchCount) / float64(len(lines)),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
		})
	}

	sort.SliceStable(result.Matches, func(i, j int) bool {
		return result.Matches[i].Confidence > result.Matches[j].Confidence
	})

	return result
}

// HasMatch reports whether any known format matched.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}

// BestMatch returns the highest-confidence match, or nil if none matched.
func (r *DetectionResult) BestMatch() *FormatMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}
