package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List and create categories",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all categories",
			RunE: func(cmd *cobra.Command, args []string) error {
				categories, err := app.API.Categories(cmd.Context())
				if err != nil {
					return err
				}

				if len(categories) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No categories yet.")
					return nil
				}

				for _, category := range categories {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", category.ID, category.Name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				category, err := app.API.CreateCategory(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Created category %s (%s)\n", category.Name, category.ID)
				return nil
			},
		},
	)

	return cmd
}
