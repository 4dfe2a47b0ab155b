package config

// SampleConfig returns a fully documented sample configuration file
func SampleConfig() string {
	return `# authsum configuration file
#
# Search order: ./.authsum.yaml, ~/.config/authsum/config.yaml,
# /etc/authsum/config.yaml. Environment variables (AUTHSUM_*) override
# file values; command line flags override everything.

version: "1.0"

input:
  # Log file analyzed when --file is not given.
  log_file: /var/log/auth.log

  # Maximum accepted line length in bytes. Longer lines abort the run.
  max_line_length: 1048576

analysis:
  # Number of IPs shown in the summary (--top overrides).
  top_n: 10

  # Reference year for syslog timestamps, which carry no year of their
  # own. 0 means the current calendar year.
  year: 0

output:
  # Default output format: text, json, markdown or csv.
  default_format: text

  # Color mode for terminal output: auto, always or never.
  color_mode: auto

  # Verbose diagnostics on stderr.
  verbose: false
`
}

// MinimalSampleConfig returns a compact sample with essential settings only
func MinimalSampleConfig() string {
	return `version: "1.0"
input:
  log_file: /var/log/auth.log
analysis:
  top_n: 10
output:
  default_format: text
`
}
