package analyzer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/canakpinar/authsum/internal/parser"
)

const (
	defaultMaxLineLength     = 1024 * 1024 // 1MB
	defaultCancelCheckPeriod = 100
)

// Engine implements the Analyzer interface with a single sequential
// pass: every line raises TotalLines, matching lines raise MatchedLines
// and update the per-IP aggregates.
type Engine struct {
	parser            *parser.Parser
	maxLineLength     int
	cancelCheckPeriod int
}

// NewEngine creates an engine that parses lines with p.
func NewEngine(p *parser.Parser) *Engine {
	return &Engine{
		parser:            p,
		maxLineLength:     defaultMaxLineLength,
		cancelCheckPeriod: defaultCancelCheckPeriod,
	}
}

// WithMaxLineLength sets the scanner's maximum line length.
func (e *Engine) WithMaxLineLength(n int) *Engine {
	if n > 0 {
		e.maxLineLength = n
	}
	return e
}

// AnalyzeFile opens path and analyzes its contents. A missing or
// unreadable file is reported as an error wrapping the underlying
// os.Open failure, so callers can test with errors.Is(err, fs.ErrNotExist).
func (e *Engine) AnalyzeFile(ctx context.Context, path string) (*Analysis, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	analysis, err := e.Analyze(ctx, file)
	if err != nil {
		return nil, err
	}
	analysis.Source = path
	return analysis, nil
}

// Analyze reads log lines from r and aggregates SSH failures.
func (e *Engine) Analyze(ctx context.Context, r io.Reader) (*Analysis, error) {
	analysis := NewAnalysis("")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), e.maxLineLength)

	for scanner.Scan() {
		analysis.TotalLines++

		// Periodic cancellation check; a single pass over a local
		// file is bounded but large files should still be abortable.
		if analysis.TotalLines%e.cancelCheckPeriod == 0 {
			select {
			case <-ctx.Done():
				return analysis, ctx.Err()
			default:
			}
		}

		// Invalid byte sequences are replaced rather than aborting
		// the read; auth logs occasionally carry garbage from probes.
		line := strings.ToValidUTF8(scanner.Text(), "�")

		match, ok := e.parser.Parse(line)
		if !ok {
			continue
		}
		analysis.MatchedLines++
		analysis.Record(match.IP, match.Timestamp)
	}

	if err := scanner.Err(); err != nil {
		return analysis, fmt.Errorf("failed to read log: %w", err)
	}

	return analysis, nil
}
