package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/canakpinar/authsum/internal/analyzer"
)

// csvFormatter renders every offending IP as CSV, ranked by descending
// attempt count. Unlike the terminal summary it is never truncated to
// the top N.
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(analysis *analyzer.Analysis) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{"ip", "count", "first_seen", "last_seen"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, st := range analysis.Offenders() {
		record := []string{
			st.IP,
			strconv.Itoa(st.Count),
			formatSeen(st.FirstSeen),
			formatSeen(st.LastSeen),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
