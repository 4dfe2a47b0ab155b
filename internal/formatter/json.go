package formatter

import (
	"encoding/json"

	"github.com/canakpinar/authsum/internal/analyzer"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct {
	topN int
}

// NewJSON creates a JSON formatter showing the topN most active IPs.
func NewJSON(topN int) Formatter {
	return &jsonFormatter{topN: topN}
}

// ReportOutput is the top-level JSON structure.
type ReportOutput struct {
	Summary   *SummaryOutput      `json:"summary"`
	Offenders []*analyzer.IPStats `json:"offenders"`
}

// SummaryOutput represents the summary section
type SummaryOutput struct {
	Source       string `json:"source,omitempty"`
	TotalLines   int    `json:"total_lines"`
	MatchedLines int    `json:"matched_lines"`
	DistinctIPs  int    `json:"distinct_ips"`
}

func (f *jsonFormatter) Format(analysis *analyzer.Analysis) ([]byte, error) {
	output := &ReportOutput{
		Summary: &SummaryOutput{
			Source:       analysis.Source,
			TotalLines:   analysis.TotalLines,
			MatchedLines: analysis.MatchedLines,
			DistinctIPs:  analysis.DistinctIPs(),
		},
		Offenders: analysis.TopN(f.topN),
	}

	return json.MarshalIndent(output, "", "  ")
}
