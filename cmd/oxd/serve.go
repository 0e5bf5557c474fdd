package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orangehrm/oxd/internal/docs"
	"github.com/orangehrm/oxd/pkg/story"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port    int
		host    string
		stories []string
		noLive  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the component docs server",
		Long: `Serve the component documentation: a story index, story pages with
live controls, a JSON API and Prometheus metrics.

Send SIGHUP to reload the story directories without restarting; open
pages reload themselves.

Examples:
  oxd serve
  oxd serve --port=8080
  oxd serve --host=0.0.0.0 --stories ./stories`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Docs.Port = port
			}
			if host != "" {
				cfg.Docs.Host = host
			}
			if noLive {
				cfg.Docs.Live = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), a, stories)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from oxd.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from oxd.json)")
	cmd.Flags().StringSliceVar(&stories, "stories", nil, "Story directory (repeatable, default from oxd.json)")
	cmd.Flags().BoolVar(&noLive, "no-live", false, "Disable live controls")

	return cmd
}

func runServe(ctx context.Context, a *app, dirs []string) error {
	book, err := a.book(dirs)
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		dirs = a.cfg.StoryPaths()
	}

	srv := docs.New(book, docs.OptionsFromConfig(a.cfg, a.logger))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				reloadStories(a, srv, dirs)
			}
		}
	}()

	a.printBanner()
	fmt.Fprintln(a.out, "  docs")
	fmt.Fprintln(a.out)
	a.success("Serving %d stories at %s", book.Len(), a.cfg.DocsURL())
	if a.cfg.Docs.Live {
		a.info("Live controls enabled")
	}

	err = srv.ListenAndServe(ctx, a.cfg.DocsAddress())
	if err == nil {
		fmt.Fprintln(a.out, "\n  Shutting down...")
	}
	return err
}

// reloadStories swaps in a freshly loaded book, keeping the current one
// when the story files fail to load.
func reloadStories(a *app, srv *docs.Server, dirs []string) {
	book, err := story.Load(dirs...)
	if err != nil {
		a.errorMsg("Reload failed: %v", err)
		a.logger.Error("story reload failed", "error", err)
		return
	}
	srv.SetBook(book)
	a.success("Reloaded %d stories", book.Len())
}
