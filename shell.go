package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/SergeyParamoshkin/bloglist/internal/config"
	"github.com/SergeyParamoshkin/bloglist/internal/model"
	"github.com/spf13/cobra"
)

const shellHelp = `commands:
  login <username> <password>
  logout
  create <title> | <author> | <url>
  list      refetch and show
  show      show without refetching
  quit`

func shellCMD(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session; notifications expire while it runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := a.ctrl.Start(ctx); err != nil {
				a.sugarLogger.Warnw("start", "error", err)
			}
			if err := a.render(cmd); err != nil {
				return err
			}

			return a.shell(ctx, cmd, cmd.InOrStdin())
		},
	}
}

func (a *App) shell(ctx context.Context, cmd *cobra.Command, in io.Reader) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		name, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch name {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "login":
			username, password, _ := strings.Cut(strings.TrimSpace(rest), " ")
			_ = a.ctrl.SubmitLogin(ctx, username, strings.TrimSpace(password))
		case "logout":
			if err := a.ctrl.Logout(); err != nil {
				a.sugarLogger.Warnw("logout", "error", err)
			}
		case "create":
			fields := strings.SplitN(rest, "|", 3)
			for len(fields) < 3 {
				fields = append(fields, "")
			}
			d := model.Draft{
				Title:  strings.TrimSpace(fields[0]),
				Author: strings.TrimSpace(fields[1]),
				URL:    strings.TrimSpace(fields[2]),
			}
			a.ctrl.SetDraft(d)
			_ = a.ctrl.SubmitCreate(ctx, d.Title, d.Author, d.URL)
		case "list":
			if err := a.ctrl.Refresh(ctx); err != nil {
				fmt.Fprintln(out, "could not fetch blogs")
			}
		case "show":
		default:
			fmt.Fprintln(out, shellHelp)
			continue
		}

		if err := a.render(cmd); err != nil {
			return err
		}
	}
}
