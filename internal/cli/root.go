// Package cli implements the terminal client. The session store is an
// explicit object handed to every command, not a hidden singleton.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"goblog/internal/apperrors"
	"goblog/internal/client"
	"goblog/internal/session"
)

// App carries the client-side state every command needs.
type App struct {
	ServerURL  string
	SessionDir string
	Session    *session.Store
	API        *client.Client
}

func (a *App) init() error {
	if a.SessionDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("failed to locate config dir: %w", err)
		}
		a.SessionDir = filepath.Join(configDir, "goblog")
	}

	sess, err := session.NewStore(a.SessionDir)
	if err != nil {
		return err
	}

	a.Session = sess
	a.API = client.New(a.ServerURL, sess)
	return nil
}

// requireAuth is the route guard: commands needing a login fail fast when
// the session is empty.
func (a *App) requireAuth() error {
	if !a.Session.IsAuthenticated() {
		return apperrors.New(apperrors.KindUnauthorized, "please log in first (blog login)")
	}
	return nil
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:           "blog",
		Short:         "Client for the blog API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
	}

	root.PersistentFlags().StringVar(&app.ServerURL, "server",
		envOr("BLOG_SERVER", "http://localhost:8080"), "base URL of the blog API")
	root.PersistentFlags().StringVar(&app.SessionDir, "session-dir", "",
		"directory holding the persisted session (defaults to the user config dir)")

	root.AddCommand(
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newPostsCmd(app),
		newCategoriesCmd(app),
		newCommentCmd(app),
	)

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
