package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	portfolio "github.com/goliatone/go-portfolio"
	"github.com/goliatone/go-portfolio/cmd/portfolio/internal/bootstrap"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

// app holds the flags shared by every subcommand and the lazily built module.
type app struct {
	opts   bootstrap.Options
	module *bootstrap.Module
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Inspect an academic portfolio content tree",
		Long: `portfolio reads the markdown content tree behind an academic portfolio site
(blog posts, research projects, publications, talks, posters, pages and the
owner profile) and prints what a site renderer would see.

Configuration is read from ./portfolio.yaml (or --config) and PORTFOLIO_
environment variables, for example PORTFOLIO_CONTENT_DIR.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.ConfigFile, "config", "", "config file (default is ./portfolio.yaml)")
	flags.StringVar(&a.opts.ContentDir, "content-dir", "", "content root holding one directory per content type")
	flags.StringVar(&a.opts.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.BoolVarP(&a.opts.Quiet, "quiet", "q", false, "disable logging")

	root.AddCommand(
		a.postsCmd(),
		a.postCmd(),
		a.relatedCmd(),
		a.publicationsCmd(),
		a.researchCmd(),
		a.profileCmd(),
		a.pageCmd(),
		a.lintCmd(),
		a.themeCmd(),
		a.watchCmd(),
	)
	return root
}

// load builds the module on first use. Log output goes to the command's
// error stream so listings on stdout stay clean.
func (a *app) load(cmd *cobra.Command) (*bootstrap.Module, error) {
	if a.module != nil {
		return a.module, nil
	}
	opts := a.opts
	opts.ModuleOptions = append([]portfolio.Option{portfolio.WithLogWriter(cmd.ErrOrStderr())}, opts.ModuleOptions...)

	module, err := moduleBuilder(opts)
	if err != nil {
		return nil, fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Content == nil {
		return nil, fmt.Errorf("bootstrap module: content repository not configured")
	}
	a.module = module
	return module, nil
}

func (a *app) logger(operation string) interfaces.Logger {
	if a.module == nil || a.module.Logger == nil {
		return logging.NoOp()
	}
	return logging.WithOperation(a.module.Logger, operation)
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
