package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoFEDS/GoFEDS/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:     "init",
	Short:   "Create the database schema and seed the built-in business areas",
	PreRunE: loadConfig,
	RunE: func(_ *cobra.Command, _ []string) error {
		if _, err := daemon.New(&cfg); err != nil {
			return err
		}

		log.Info().Msg("database initialized")

		return nil
	},
}
