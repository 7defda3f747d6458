package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoFEDS/GoFEDS/internal/config"
)

func init() { //nolint: gochecknoinits
	configCmd.Flags().BoolVar(&configAsJSON, "json", false, "Dump as JSON instead of TOML")

	rootCmd.AddCommand(configCmd)
}

var (
	configAsJSON bool

	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Dump the effective configuration",
		PreRunE: loadConfig,
		RunE: func(_ *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if configAsJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&cfg)
			if err != nil {
				return err
			}

			fmt.Print(out)

			return nil
		},
	}
)
