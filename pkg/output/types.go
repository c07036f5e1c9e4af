// Package output provides formatting and rendering of analysis results.
package output

import (
	"time"

	"github.com/chatlens/chatlens/pkg/analyzer"
)

// Report is the complete analysis output for one export and scope.
type Report struct {
	// Source is the export file the report was computed from.
	Source string `json:"source"`

	// Result carries every aggregation for the selected scope.
	Result *analyzer.Result `json:"result"`

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// NewReport wraps an analysis result for rendering.
func NewReport(result *analyzer.Result, source string) *Report {
	return &Report{
		Source:     source,
		Result:     result,
		AnalyzedAt: result.Metadata.AnalyzedAt,
	}
}

// IsEmpty reports whether the analysis produced no records at all,
// which usually means the export is in an unsupported format.
func (r *Report) IsEmpty() bool {
	return r.Result.Metadata.Records == 0
}
