package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/canakpinar/authsum/internal/config"
)

const testLog = `Apr 10 12:34:56 host sshd[1234]: Failed password for invalid user admin from 1.2.3.4 port 5555 ssh2
Apr 10 12:35:01 host sshd[1234]: Failed password for user root from 5.6.7.8 port 2222 ssh2
Apr 10 12:35:20 host CRON[777]: pam_unix(cron:session): session opened for user root
Apr 10 12:36:02 host sshd[1240]: Failed password for invalid user admin from 1.2.3.4 port 5556 ssh2
`

// resetCLIState pins package-level state for a test and restores it after.
func resetCLIState(t *testing.T) {
	t.Helper()

	oldGlobalConfig := globalConfig
	oldVerbose := verbose
	oldNoColor := noColor
	oldOutputFmt := outputFmt
	oldFile, oldTop, oldOut, oldYear := analyzeFile, analyzeTop, analyzeOut, analyzeYear

	globalConfig = config.DefaultConfig()

	t.Cleanup(func() {
		globalConfig = oldGlobalConfig
		verbose = oldVerbose
		noColor = oldNoColor
		outputFmt = oldOutputFmt
		analyzeFile, analyzeTop, analyzeOut, analyzeYear = oldFile, oldTop, oldOut, oldYear
	})
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()

	cmd := NewRootCommand("test", "none", "unknown")
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestAnalyzeCommandCSVExport(t *testing.T) {
	resetCLIState(t)

	dir := t.TempDir()
	logPath := filepath.Join(dir, "auth.log")
	if err := os.WriteFile(logPath, []byte(testLog), 0o600); err != nil {
		t.Fatal(err)
	}
	csvPath := filepath.Join(dir, "result.csv")

	err := runCommand(t, "analyze", "-f", logPath, "-t", "1", "-o", csvPath, "--year", "2024")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("CSV not written: %v", err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "ip,count,first_seen,last_seen\n") {
		t.Errorf("unexpected CSV header:\n%s", text)
	}
	if !strings.Contains(text, "1.2.3.4,2,2024-04-10T12:34:56,2024-04-10T12:36:02") {
		t.Errorf("missing top offender row:\n%s", text)
	}
	// CSV export is never truncated by --top
	if !strings.Contains(text, "5.6.7.8,1,") {
		t.Errorf("CSV should contain all IPs:\n%s", text)
	}
}

func TestAnalyzeCommandMissingFile(t *testing.T) {
	resetCLIState(t)

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "result.csv")

	err := runCommand(t, "analyze", "-f", filepath.Join(dir, "absent.log"), "-o", csvPath)
	if !errors.Is(err, ErrHandled) {
		t.Fatalf("want ErrHandled, got %v", err)
	}

	if _, statErr := os.Stat(csvPath); !os.IsNotExist(statErr) {
		t.Error("no CSV should be written when the log file is missing")
	}
}

func TestGetFormatter(t *testing.T) {
	resetCLIState(t)

	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"terminal", false},
		{"", false},
		{"json", false},
		{"markdown", false},
		{"md", false},
		{"csv", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			f, err := getFormatter(tt.format, false)
			if (err != nil) != tt.wantErr {
				t.Fatalf("getFormatter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if !tt.wantErr && f == nil {
				t.Error("expected formatter, got nil")
			}
		})
	}
}

func TestShouldColor(t *testing.T) {
	resetCLIState(t)

	tests := []struct {
		name      string
		noColor   bool
		colorMode string
		want      bool
	}{
		{"default", false, "auto", true},
		{"flag wins over auto", true, "auto", false},
		{"flag wins over always", true, "always", false},
		{"mode never", false, "never", false},
		{"mode always", false, "always", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noColor = tt.noColor
			globalConfig.Output.ColorMode = tt.colorMode

			if got := shouldColor(); got != tt.want {
				t.Errorf("shouldColor() = %v, want %v", got, tt.want)
			}
		})
	}
}
