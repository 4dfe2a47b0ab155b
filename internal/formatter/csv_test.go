package formatter

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"
)

func TestCSVFormatter(t *testing.T) {
	analysis := testAnalysis()

	out, err := NewCSV().Format(analysis)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("want header + 2 rows, got %d records", len(records))
	}

	header := records[0]
	wantHeader := []string{"ip", "count", "first_seen", "last_seen"}
	for i, col := range wantHeader {
		if header[i] != col {
			t.Errorf("header[%d]: want %s, got %s", i, col, header[i])
		}
	}

	if records[1][0] != "1.2.3.4" || records[1][1] != "2" {
		t.Errorf("first row should be the most active IP, got %v", records[1])
	}
	if records[1][2] != "2024-04-10T12:34:56" || records[1][3] != "2024-04-10T12:36:02" {
		t.Errorf("unexpected timestamps: %v", records[1])
	}

	// absent timestamps are empty fields
	if records[2][0] != "5.6.7.8" || records[2][2] != "" || records[2][3] != "" {
		t.Errorf("unexpected second row: %v", records[2])
	}

	// round trip: per-IP counts sum to matched lines
	sum := 0
	for _, row := range records[1:] {
		n, err := strconv.Atoi(row[1])
		if err != nil {
			t.Fatalf("bad count %q: %v", row[1], err)
		}
		sum += n
	}
	if sum != analysis.MatchedLines {
		t.Errorf("counts sum to %d, want matched lines %d", sum, analysis.MatchedLines)
	}
}

func TestCSVFormatterEmpty(t *testing.T) {
	out, err := NewCSV().Format(testEmptyAnalysis())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("want header only, got %d records", len(records))
	}
}
