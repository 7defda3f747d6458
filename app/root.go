// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/GoFEDS/GoFEDS/internal/config"
	"github.com/GoFEDS/GoFEDS/internal/logger"
)

var (
	cfg        config.Config
	configPath string // Path to the configuration directory
	devMode    bool

	rootCmd = &cobra.Command{
		Use:   "gofeds",
		Short: "GoFEDS generates fake relational data sets for audit training",
		Long: `GoFEDS generates synthetic relational business data for audit and
data-analysis exercises. Projects configure a business area through
cascading settings, including deliberately planted anomalies, and the
generator produces the populated tables plus CSV exports and a
specification document for the people working the exercise.`,
		Args: cobra.OnlyValidArgs,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")
}

// loadConfig reads the configuration and brings up logging. Commands that
// touch the database call this in PreRunE.
func loadConfig(_ *cobra.Command, _ []string) error {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err
	}

	if devMode {
		cfg.DevMode = true
	}

	return logger.Init(cfg.Log)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
