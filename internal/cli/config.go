package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/canakpinar/authsum/internal/config"
	"github.com/canakpinar/authsum/internal/emoji"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage authsum configuration",
		Long: `Manage authsum configuration files and settings.

The config command provides subcommands for initializing, viewing,
validating, and locating configuration files.`,
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

// newConfigInitCommand creates the config init subcommand
func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Long: `Initialize a new authsum configuration file with default values.

By default, creates a full configuration file with all options and comments.
Use --minimal for a compact configuration with only essential settings.`,
		Example: `  # Create full config in current directory
  authsum config init

  # Create minimal config
  authsum config init --minimal

  # Create config at specific path
  authsum config init --output ~/.config/authsum/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = ".authsum.yaml"
			}

			if !force {
				if _, err := os.Stat(outputPath); err == nil {
					return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
				}
			}

			dir := filepath.Dir(outputPath)
			if dir != "." && dir != "/" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			var content string
			if minimal {
				content = config.MinimalSampleConfig()
			} else {
				content = config.SampleConfig()
			}

			if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Printf("%s Configuration file created at: %s\n", emoji.GetEmoji("success"), outputPath)
			return nil
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path for config file (default: .authsum.yaml)")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "create minimal configuration")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite existing config file")

	return initCmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  "Display the current effective configuration after loading from all sources.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			var data []byte
			switch format {
			case "json":
				data, err = json.MarshalIndent(cfg, "", "  ")
			case "yaml", "":
				data, err = yaml.Marshal(cfg)
			default:
				return fmt.Errorf("unknown format: %s (use yaml or json)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}

			fmt.Print(string(data))
			return nil
		},
	}

	showCmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml, json)")

	return showCmd
}

// newConfigValidateCommand creates the config validate subcommand
func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a configuration file",
		Long:  "Validate a configuration file. Without an argument, validates the effective configuration.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if len(args) > 0 {
				path = args[0]
			}

			if _, err := config.NewLoader().LoadConfig(path); err != nil {
				return fmt.Errorf("configuration is invalid: %w", err)
			}

			fmt.Printf("%s Configuration is valid\n", emoji.GetEmoji("success"))
			return nil
		},
	}
}

// newConfigPathCommand creates the config path subcommand
func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file search paths",
		Run: func(cmd *cobra.Command, args []string) {
			if path, found := config.FindConfigFile(); found {
				fmt.Printf("Active config: %s\n", path)
			} else {
				fmt.Println("Active config: none (using defaults)")
			}

			fmt.Println("Search paths (highest priority first):")
			for _, path := range config.GetConfigPaths() {
				fmt.Printf("  %s\n", path)
			}
		},
	}
}
