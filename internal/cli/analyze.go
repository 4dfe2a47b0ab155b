package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/canakpinar/authsum/internal/analyzer"
	"github.com/canakpinar/authsum/internal/config"
	"github.com/canakpinar/authsum/internal/emoji"
	"github.com/canakpinar/authsum/internal/formatter"
	"github.com/canakpinar/authsum/internal/logger"
	"github.com/canakpinar/authsum/internal/parser"
)

// ErrHandled marks errors whose message was already shown to the user.
// main still exits non-zero but must not print them again.
var ErrHandled = errors.New("error already reported")

var (
	analyzeFile string
	analyzeTop  int
	analyzeOut  string
	analyzeYear int
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze an auth log for failed SSH logins",
		Long: `Analyze an authentication log file for failed SSH login attempts
("Failed password" / "Invalid user" sshd lines), aggregate them by source
IP and print the most active offenders.

Examples:
  authsum analyze
  authsum analyze --file /var/log/auth.log --top 20
  authsum analyze -f my.log -o result.csv
  authsum analyze --year 2023 -f archived-auth.log`,
		Args: cobra.NoArgs,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeFile, "file", "f", "/var/log/auth.log", "log file to analyze")
	cmd.Flags().IntVarP(&analyzeTop, "top", "t", 10, "number of top IPs to display")
	cmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "export CSV summary to this path")
	cmd.Flags().IntVar(&analyzeYear, "year", 0, "reference year for timestamps (default: current year)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	log := logger.New("analyze", isVerbose)

	// Use config values if flags weren't explicitly set
	if !cmd.Flag("file").Changed {
		analyzeFile = cfg.Input.LogFile
	}
	if !cmd.Flag("top").Changed {
		analyzeTop = cfg.Analysis.TopN
	}
	if !cmd.Flag("year").Changed {
		analyzeYear = cfg.Analysis.Year
	}
	if !cmd.Flag("verbose").Changed && cfg.Output.Verbose {
		verbose = true
	}
	format := getOutputFormat()
	if !cmd.Flag("output").Changed && cfg.Output.DefaultFormat != "" {
		format = cfg.Output.DefaultFormat
	}

	analysis, err := performAnalysis(cfg, log)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("%s log file not found: %s\n", emoji.GetEmoji("error"), analyzeFile)
			return ErrHandled
		}
		return err
	}

	log.InfoWithFields("analysis complete", []logger.Field{
		logger.F("lines", analysis.TotalLines),
		logger.F("matches", analysis.MatchedLines),
		logger.Count(analysis.DistinctIPs()),
	})

	if err := printSummary(analysis, format); err != nil {
		return err
	}

	if analyzeOut != "" {
		if err := exportCSV(analysis, analyzeOut); err != nil {
			return fmt.Errorf("failed to export CSV: %w", err)
		}
		fmt.Printf("%s CSV saved to: %s\n", emoji.GetEmoji("success"), analyzeOut)
	}

	return nil
}

// performAnalysis runs the single-pass aggregation over the log file
func performAnalysis(cfg *config.Config, log *logger.Logger) (*analyzer.Analysis, error) {
	var p *parser.Parser
	if analyzeYear != 0 {
		p = parser.NewWithYear(analyzeYear)
	} else {
		p = parser.New()
	}

	engine := analyzer.NewEngine(p).WithMaxLineLength(cfg.Input.MaxLineLength)

	log.Info("analyzing file: %s (year %d)", analyzeFile, p.Year())

	return engine.AnalyzeFile(context.Background(), analyzeFile)
}

// printSummary formats the analysis and writes it to stdout
func printSummary(analysis *analyzer.Analysis, format string) error {
	f, err := getFormatter(format, shouldColor())
	if err != nil {
		return err
	}

	output, err := f.Format(analysis)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(string(output))
	return nil
}

// exportCSV writes the full per-IP summary to path, overwriting any
// existing file.
func exportCSV(analysis *analyzer.Analysis, path string) error {
	output, err := formatter.NewCSV().Format(analysis)
	if err != nil {
		return err
	}
	return writeOutputBytesToFile(output, path)
}

// getFormatter returns the appropriate formatter for the given format
func getFormatter(format string, color bool) (formatter.Formatter, error) {
	switch format {
	case "json":
		return formatter.NewJSON(analyzeTop), nil
	case "markdown", "md":
		return formatter.NewMarkdown(analyzeTop), nil
	case "csv":
		return formatter.NewCSV(), nil
	case "text", "terminal", "":
		return formatter.NewTerminal(color, analyzeTop), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// shouldColor resolves the effective color setting from the --no-color
// flag and the configured color mode.
func shouldColor() bool {
	if noColor {
		return false
	}
	switch GetGlobalConfig().Output.ColorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return true
	}
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
