package analyzer

import (
	"context"
	"io"
)

// Analyzer performs the aggregation pass over auth log lines.
type Analyzer interface {
	// Analyze reads log lines from r and aggregates SSH failures.
	Analyze(ctx context.Context, r io.Reader) (*Analysis, error)

	// AnalyzeFile opens path and analyzes its contents.
	AnalyzeFile(ctx context.Context, path string) (*Analysis, error)
}
