package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SergeyParamoshkin/bloglist/client"
	"github.com/SergeyParamoshkin/bloglist/internal/config"
	"github.com/SergeyParamoshkin/bloglist/internal/controller"
	"github.com/SergeyParamoshkin/bloglist/internal/model"
	"github.com/SergeyParamoshkin/bloglist/internal/notification"
	"github.com/SergeyParamoshkin/bloglist/internal/storage"
	"github.com/SergeyParamoshkin/bloglist/internal/view"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App is one controller wired to the API and the local state.
type App struct {
	sugarLogger *zap.SugaredLogger
	state       *storage.SQLite
	ctrl        *controller.Controller
	startErr    error
}

func newApp(cfg *config.Config) (*App, error) {
	logger, err := newClientLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}
	sugar := logger.Sugar()

	state, err := storage.OpenSQLite(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("open state %s: %w", cfg.StatePath, err)
	}

	c := &client.Client{
		Client: http.Client{Timeout: cfg.HTTPTimeout},
		Addr:   cfg.APIURL,
	}

	ctrl := controller.New(controller.Deps{
		Login:     c,
		Blogs:     c,
		Authorize: func(token string) controller.Creator { return c.Authorize(token) },
		Storage:   state,
		Notifier:  notification.New(clockwork.NewRealClock(), cfg.NotificationTTL),
		Logger:    sugar,
	})

	return &App{sugarLogger: sugar, state: state, ctrl: ctrl}, nil
}

func (a *App) Close() {
	if err := a.state.Close(); err != nil {
		a.sugarLogger.Warnw("close state", "error", err)
	}
	_ = a.sugarLogger.Sync()
}

func (a *App) render(cmd *cobra.Command) error {
	return view.Render(cmd.OutOrStdout(), a.ctrl.View())
}

// notifiedError was already shown to the user as a notification.
type notifiedError struct{ error }

func (e notifiedError) Unwrap() error { return e.error }

// withApp starts a controller, runs fn, and renders the result whether or
// not fn failed.
func withApp(cfg *config.Config, fn func(ctx context.Context, a *App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// logout and friends must work while the backend is unreachable
		if a.startErr = a.ctrl.Start(ctx); a.startErr != nil {
			a.sugarLogger.Warnw("start", "error", a.startErr)
		}

		runErr := fn(ctx, a)
		if err := a.render(cmd); err != nil {
			return err
		}
		if runErr != nil && a.ctrl.View().HasNotification {
			return notifiedError{runErr}
		}

		return runErr
	}
}

func loginCMD(cfg *config.Config) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		RunE: withApp(cfg, func(ctx context.Context, a *App) error {
			return a.ctrl.SubmitLogin(ctx, username, password)
		}),
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")

	return cmd
}

func logoutCMD(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the remembered session",
		RunE: withApp(cfg, func(ctx context.Context, a *App) error {
			return a.ctrl.Logout()
		}),
	}
}

func listCMD(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the blog list",
		RunE: withApp(cfg, func(ctx context.Context, a *App) error {
			return a.startErr
		}),
	}
}

func createCMD(cfg *config.Config) *cobra.Command {
	var d struct{ title, author, url string }
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a blog post",
		RunE: withApp(cfg, func(ctx context.Context, a *App) error {
			a.ctrl.SetDraft(model.Draft{Title: d.title, Author: d.author, URL: d.url})

			return a.ctrl.SubmitCreate(ctx, d.title, d.author, d.url)
		}),
	}
	cmd.Flags().StringVar(&d.title, "title", "", "title")
	cmd.Flags().StringVar(&d.author, "author", "", "author")
	cmd.Flags().StringVar(&d.url, "url", "", "url")

	return cmd
}

func whoamiCMD(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the remembered user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			// only the stored session matters here
			if err := a.ctrl.Start(context.Background()); err != nil {
				a.sugarLogger.Warnw("start", "error", err)
			}

			v := a.ctrl.View()
			if v.Mode != controller.Authenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", v.Session.Name, v.Session.Username)

			return nil
		},
	}
}
