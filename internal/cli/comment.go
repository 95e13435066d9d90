package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCommentCmd(app *App) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "comment <postId>",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(); err != nil {
				return err
			}

			comment, err := app.API.CreateComment(cmd.Context(), args[0], message)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Comment added by %s\n", comment.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "comment text (up to 500 characters)")
	cmd.MarkFlagRequired("message")

	return cmd
}
