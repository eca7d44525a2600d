package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyParamoshkin/bloglist/internal/auth"
	"github.com/SergeyParamoshkin/bloglist/internal/backend"
	"github.com/SergeyParamoshkin/bloglist/internal/blog"
	"github.com/SergeyParamoshkin/bloglist/internal/config"
	"github.com/SergeyParamoshkin/bloglist/internal/user"
	"github.com/go-chi/docgen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCMD(cfg *config.Config) *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the development blog API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), cfg)
		},
	}
	serve.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "application address")
	serve.Flags().StringVar(&cfg.DiagAddr, "diag_addr", cfg.DiagAddr, "diag address")
	serve.Flags().BoolVar(&cfg.Routes, "routes", cfg.Routes, "Generate router documentation")

	return serve
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	users := user.NewStore()
	if err := users.Seed(user.Fixtures); err != nil {
		return err
	}

	metrics, err := backend.NewMetrics()
	if err != nil {
		return err
	}

	s := backend.New(sugar, users, blog.NewStore(blog.Fixtures()...),
		auth.NewTokens([]byte(cfg.JWTSecret), cfg.TokenTTL), metrics)
	r := s.Router()

	// Passing --routes prints docs for the router instead of serving.
	if cfg.Routes {
		fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
			ProjectPath: "github.com/SergeyParamoshkin/bloglist",
			Intro:       "Routes of the bloglist development API.",
		}))

		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := &http.Server{Addr: cfg.Addr, Handler: r}
	diag := &http.Server{Addr: cfg.DiagAddr, Handler: s.DiagRouter()}

	go func() {
		if err := diag.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw("diag server", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := api.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("shutdown", "error", err)
		}
		_ = diag.Shutdown(shutdownCtx)
	}()

	sugar.Infow("listening", "addr", cfg.Addr, "diag_addr", cfg.DiagAddr)
	if err := api.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
