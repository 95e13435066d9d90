package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"goblog/internal/client"
)

func newPostsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List, read and manage posts",
	}

	cmd.AddCommand(
		newPostsListCmd(app),
		newPostsShowCmd(app),
		newPostsCreateCmd(app),
		newPostsEditCmd(app),
		newPostsDeleteCmd(app),
	)

	return cmd
}

func newPostsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all posts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := app.API.Posts(cmd.Context())
			if err != nil {
				return err
			}

			if len(posts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No posts yet.")
				return nil
			}

			for _, post := range posts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n    by %s in %s on %s\n",
					post.ID, post.Title, post.User.Username, post.Category.Name,
					post.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newPostsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a post with its comment thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := app.API.Post(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", post.Title)
			fmt.Fprintf(out, "by %s in %s on %s\n\n", post.User.Username,
				post.Category.Name, post.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Fprintln(out, post.Content)

			comments, err := app.API.Comments(cmd.Context(), post.ID)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nComments (%d):\n", len(comments))
			for _, comment := range comments {
				fmt.Fprintf(out, "  %s (%s): %s\n", comment.User.Username,
					comment.CreatedAt.Format("2006-01-02 15:04"), comment.Content)
			}

			if !app.Session.IsAuthenticated() {
				fmt.Fprintln(out, "\nLog in to comment.")
			}
			return nil
		},
	}
}

func newPostsCreateCmd(app *App) *cobra.Command {
	var title, content, category string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(); err != nil {
				return err
			}

			// default to the first available category, like the web form
			if category == "" {
				categories, err := app.API.Categories(cmd.Context())
				if err != nil {
					return err
				}
				if len(categories) == 0 {
					return fmt.Errorf("no categories exist yet; create one first (blog categories create)")
				}
				category = categories[0].ID
			}

			post, err := app.API.CreatePost(cmd.Context(), client.PostInput{
				Title:    title,
				Content:  content,
				Category: category,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created post %s\n", post.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "post title (5-200 characters)")
	cmd.Flags().StringVarP(&content, "content", "c", "", "post content (at least 10 characters)")
	cmd.Flags().StringVar(&category, "category", "", "category id (defaults to the first category)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("content")

	return cmd
}

func newPostsEditCmd(app *App) *cobra.Command {
	var title, content, category string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update your post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(); err != nil {
				return err
			}

			input := client.PostInput{Title: title, Content: content, Category: category}
			if input == (client.PostInput{}) {
				return fmt.Errorf("nothing to update; pass --title, --content or --category")
			}

			post, err := app.API.UpdatePost(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated post %s\n", post.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new content")
	cmd.Flags().StringVar(&category, "category", "", "new category id")

	return cmd
}

func newPostsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete your post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(); err != nil {
				return err
			}

			if err := app.API.DeletePost(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Post deleted")
			return nil
		},
	}
}
