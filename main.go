//
// bloglist
// ========
// A blog-listing client and the development backend it talks to.
//
// Boot the backend:
// -----------------
// $ go run . serve
//
// Use it:
// -------
// $ go run . login -u peter -p salainen
// Blogs
// Peter logged in
// React patterns Michael Chan
// ...
//
// $ go run . create --title Test --author "A. Writer" --url http://x
// Blogs
// [ a new blog Test by A. Writer added ]
// ...
//
// $ go run . logout
// Log in
//
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/SergeyParamoshkin/bloglist/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := rootCMD(&cfg).Execute(); err != nil {
		var notified notifiedError
		if !errors.As(err, &notified) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func rootCMD(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "bloglist",
		Short:         "List and create blog posts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfg.APIURL, "api", cfg.APIURL, "blog API base URL")
	root.PersistentFlags().StringVar(&cfg.StatePath, "state", cfg.StatePath, "local state database")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log debug output to stderr")

	root.AddCommand(
		serveCMD(cfg),
		loginCMD(cfg),
		logoutCMD(cfg),
		listCMD(cfg),
		createCMD(cfg),
		whoamiCMD(cfg),
		shellCMD(cfg),
	)

	return root
}

// newClientLogger keeps client commands quiet unless asked otherwise.
func newClientLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return zc.Build()
}
