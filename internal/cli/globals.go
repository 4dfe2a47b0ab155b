package cli

import (
	"fmt"
	"os"

	"github.com/canakpinar/authsum/internal/config"
)

var globalConfig *config.Config

// GetGlobalConfig returns the loaded configuration, loading it on first
// use. Load failures fall back to defaults with a warning so a broken
// config file never blocks an analysis run.
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		cfg, err := config.NewLoader().LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v (using defaults)\n", err)
			cfg = config.DefaultConfig()
		}
		globalConfig = cfg
	}
	return globalConfig
}
