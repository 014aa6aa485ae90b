package main

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-portfolio/cmd/portfolio/internal/bootstrap"
	"github.com/goliatone/go-portfolio/content"
	"github.com/goliatone/go-portfolio/internal/watch"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the content tree and reload collections as files change",
		Long: `watch enables the collection cache, loads every content type once and then
invalidates and reloads a type whenever a file beneath its directory changes.
It runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.opts.Watch = true
			module, err := a.load(cmd)
			if err != nil {
				return err
			}
			return a.runWatch(cmd, module)
		},
	}
}

func (a *app) runWatch(cmd *cobra.Command, module *bootstrap.Module) error {
	out := cmd.OutOrStdout()
	changes := make(chan string, 16)

	watcher, err := module.Module.NewWatcher(watch.WithOnChange(func(contentType string) {
		select {
		case changes <- contentType:
		default:
		}
	}))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return watcher.Run(ctx)
	})
	g.Go(func() error {
		select {
		case <-ctx.Done():
			return nil
		case <-watcher.Ready():
		}
		for _, contentType := range content.KnownTypes() {
			if module.Content.TypeExists(contentType) {
				a.reload(ctx, cmd, module, contentType)
			}
		}
		heading(out, "watching "+module.Module.Config().ContentDir)
		for {
			select {
			case <-ctx.Done():
				return nil
			case contentType := <-changes:
				a.reload(ctx, cmd, module, contentType)
			}
		}
	})
	return g.Wait()
}

// reload warms the cache for contentType and reports what was loaded.
func (a *app) reload(ctx context.Context, cmd *cobra.Command, module *bootstrap.Module, contentType string) {
	started := time.Now()
	items, err := module.Content.ListByType(ctx, contentType)
	if err != nil {
		if ctx.Err() == nil {
			a.logger("watch").Error("cli.watch.reload_failed", "content_type", contentType, "error", err)
		}
		return
	}
	cached := 0
	if store := module.Module.Cache(); store != nil {
		cached = store.Size()
	}
	printf(cmd.OutOrStdout(), "%s %-14s %s %s\n",
		muted(started.Format(time.TimeOnly)),
		contentType,
		plural(len(items), "item"),
		muted("("+humanize.Comma(int64(cached))+" cached, "+time.Since(started).Round(time.Microsecond).String()+")"),
	)
}
