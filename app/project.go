package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoFEDS/GoFEDS/internal/daemon"
	"github.com/GoFEDS/GoFEDS/internal/db/controller/usersetting"
	"github.com/GoFEDS/GoFEDS/internal/db/models"
	"github.com/GoFEDS/GoFEDS/internal/project"
)

func init() { //nolint: gochecknoinits
	projectCreateCmd.Flags().StringVar(&projectSlug, "slug", "", "URL-safe short name for the project")
	projectCreateCmd.Flags().Uint64Var(&projectArea, "area", 1, "Business area id the project works")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectSetCmd)
	projectCmd.AddCommand(projectUnsetCmd)
	rootCmd.AddCommand(projectCmd)
}

var (
	projectSlug string
	projectArea uint64

	projectCmd = &cobra.Command{
		Use:   "project",
		Short: "Manage generation projects",
	}

	projectCreateCmd = &cobra.Command{
		Use:     "create <title>",
		Short:   "Create a project on a business area",
		Args:    cobra.ExactArgs(1),
		PreRunE: loadConfig,
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			row := models.Project{
				Title:          args[0],
				Slug:           projectSlug,
				BusinessAreaID: projectArea,
			}
			if row.Slug == "" {
				row.Slug = slugify(args[0])
			}

			if err := d.DB.Create(&row).Error; err != nil {
				return err
			}

			log.Info().Uint64("id", row.ID).Str("slug", row.Slug).Msg("project created")

			return nil
		},
	}

	projectSetCmd = &cobra.Command{
		Use:     "set <project-id> <machine-name> <value>",
		Short:   "Store a setting value for a project",
		Args:    cobra.ExactArgs(3),
		PreRunE: loadConfig,
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			projectID, err := parseID(args[0])
			if err != nil {
				return err
			}

			// validate against the assembled tree before storing
			tree, err := project.Assemble(d.DB, projectID)
			if err != nil {
				return err
			}
			if err := project.MergeUserValues(d.DB, tree); err != nil {
				return err
			}

			target, ok := tree.Lookup(args[1])
			if !ok {
				log.Error().Str("machine_name", args[1]).Msg("no such setting in this project")
				return errUnknownSetting
			}
			if err := target.ApplyValue(args[2]); err != nil {
				return err
			}

			_, err = usersetting.Set(d.DB, projectID, args[1], args[2])

			return err
		},
	}

	projectUnsetCmd = &cobra.Command{
		Use:     "unset <project-id> <machine-name>",
		Short:   "Drop a stored setting value, reverting to the default",
		Args:    cobra.ExactArgs(2),
		PreRunE: loadConfig,
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			projectID, err := parseID(args[0])
			if err != nil {
				return err
			}

			return usersetting.Delete(d.DB, projectID, args[1])
		},
	}
)
