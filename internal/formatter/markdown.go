package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/canakpinar/authsum/internal/analyzer"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct {
	topN int
}

// NewMarkdown creates a Markdown formatter showing the topN most active IPs.
func NewMarkdown(topN int) Formatter {
	return &markdownFormatter{topN: topN}
}

func (f *markdownFormatter) Format(analysis *analyzer.Analysis) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# SSH Failure Report\n\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	if analysis.Source != "" {
		b.WriteString(fmt.Sprintf("Source: `%s`\n\n", analysis.Source))
	}

	f.writeSummaryTable(&b, analysis)
	f.writeOffenderTable(&b, analysis)

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, analysis *analyzer.Analysis) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Total Lines | %s |\n", formatNumber(analysis.TotalLines))
	fmt.Fprintf(b, "| SSH Failures | %s |\n", formatNumber(analysis.MatchedLines))
	fmt.Fprintf(b, "| Distinct IPs | %s |\n\n", formatNumber(analysis.DistinctIPs()))
}

func (f *markdownFormatter) writeOffenderTable(b *strings.Builder, analysis *analyzer.Analysis) {
	b.WriteString("## Top IPs by Failed Attempts\n\n")

	offenders := analysis.TopN(f.topN)
	if len(offenders) == 0 {
		b.WriteString("No failed SSH attempts found.\n")
		return
	}

	b.WriteString("| # | IP | Attempts | First Seen | Last Seen |\n")
	b.WriteString("|---|----|----------|------------|-----------|\n")
	for i, st := range offenders {
		fmt.Fprintf(b, "| %d | %s | %d | %s | %s |\n",
			i+1, st.IP, st.Count, formatSeen(st.FirstSeen), formatSeen(st.LastSeen))
	}
	b.WriteString("\n")
}
