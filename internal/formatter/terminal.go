package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/go-termfmt"

	"github.com/canakpinar/authsum/internal/analyzer"
)

// terminalFormatter renders the summary as plain text for terminal
// display using go-termfmt, with lipgloss styling for the header.
type terminalFormatter struct {
	opts  *termfmt.TerminalOptions
	color bool
	topN  int
}

// NewTerminal creates a terminal formatter showing the topN most active
// IPs, with optional color support.
func NewTerminal(color bool, topN int) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts, color: color, topN: topN}
}

func (f *terminalFormatter) Format(analysis *analyzer.Analysis) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, analysis)
	f.writeStatistics(&b, analysis)
	f.writeTopOffenders(&b, analysis)

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeHeader(b *strings.Builder, analysis *analyzer.Analysis) {
	title := "SSH Failure Summary"
	if analysis.Source != "" {
		title = fmt.Sprintf("%s: %s", title, analysis.Source)
	}

	if f.color {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
		title = style.Render(title)
	}
	b.WriteString(title + "\n\n")
}

// writeStatistics writes line counts with tree-style formatting using go-termfmt
func (f *terminalFormatter) writeStatistics(b *strings.Builder, analysis *analyzer.Analysis) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Statistics\n")

	matchRate := 0.0
	if analysis.TotalLines > 0 {
		matchRate = float64(analysis.MatchedLines) / float64(analysis.TotalLines) * 100
	}

	items := []termfmt.TreeItem{
		{Label: "Total Lines", Value: formatNumber(analysis.TotalLines)},
		{Label: "SSH Failures", Value: fmt.Sprintf("%s (%.1f%%)", formatNumber(analysis.MatchedLines), matchRate)},
		{Label: "Distinct IPs", Value: formatNumber(analysis.DistinctIPs()), Last: true},
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeTopOffenders lists the top-N IPs by failed attempts. The IP
// column is fixed width so counts and timestamps stay aligned.
func (f *terminalFormatter) writeTopOffenders(b *strings.Builder, analysis *analyzer.Analysis) {
	symbol := termfmt.GetEmoji("security_pattern", f.opts)
	b.WriteString(symbol + " Top IPs by Failed Attempts\n")

	offenders := analysis.TopN(f.topN)
	if len(offenders) == 0 {
		b.WriteString("└─ none\n")
		return
	}

	for i, st := range offenders {
		connector := "├─"
		if i == len(offenders)-1 {
			connector = "└─"
		}
		fmt.Fprintf(b, "%s %-15s  attempts: %4d  first: %-19s  last: %-19s\n",
			connector, st.IP, st.Count, formatSeen(st.FirstSeen), formatSeen(st.LastSeen))
	}
}
