package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/hay-kot/shortid/internal/core/config"
	"github.com/hay-kot/shortid/internal/idgen"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Service generates IDs using the configured random source
	Service *idgen.Service
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "shortid", "config.yaml")
}

// Load reads the config file and builds the service. The random source is not
// opened here, so commands that need no entropy run even when it is broken.
func (f *Flags) Load(log zerolog.Logger) error {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	f.Config = cfg
	f.Service = idgen.NewFromConfig(cfg, log)
	return nil
}
