package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GoFEDS/GoFEDS/internal/daemon"
	"github.com/GoFEDS/GoFEDS/internal/generate"
	"github.com/GoFEDS/GoFEDS/internal/project"
)

func init() { //nolint: gochecknoinits
	generateCmd.Flags().Uint64Var(&generateProject, "project", 0, "Project id to generate data for")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed for a reproducible run")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Export directory (overrides the config)")
	_ = generateCmd.MarkFlagRequired("project")

	specCmd.Flags().Uint64Var(&generateProject, "project", 0, "Project id to render the specification for")
	_ = specCmd.MarkFlagRequired("project")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(specCmd)
}

var (
	generateProject uint64
	generateSeed    int64
	generateOut     string

	generateCmd = &cobra.Command{
		Use:     "generate",
		Short:   "Generate and export the data set for a project",
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			tree, err := project.Assemble(d.DB, generateProject)
			if err != nil {
				return err
			}
			if err := project.MergeUserValues(d.DB, tree); err != nil {
				return err
			}

			exportDir := generateOut
			if exportDir == "" {
				exportDir = cfg.Export.Dir
			}

			g, err := generate.New(generate.Config{
				DB:        d.DB,
				Tree:      tree,
				ExportDir: exportDir,
				Seed:      generateSeed,
			})
			if err != nil {
				return err
			}

			return g.Run(cmd.Context())
		},
	}

	specCmd = &cobra.Command{
		Use:     "spec",
		Short:   "Render the project specification document",
		PreRunE: loadConfig,
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			tree, err := project.Assemble(d.DB, generateProject)
			if err != nil {
				return err
			}
			if err := project.MergeUserValues(d.DB, tree); err != nil {
				return err
			}

			return tree.RenderSpec(os.Stdout)
		},
	}
)
