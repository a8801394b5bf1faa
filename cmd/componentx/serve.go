package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/componentx/pkg/middleware"
	"github.com/vango-dev/componentx/pkg/style"
	"github.com/vango-dev/componentx/pkg/styleserver"
)

func serveCmd(opts *globalOptions) *cobra.Command {
	var (
		dir   string
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve compiled stylesheets with live reload",
		Long: `Serve every style file in the styles directory over HTTP.

With --watch, edits are recompiled immediately and pushed to open
browser tabs over a websocket.

Examples:
  componentx serve
  componentx serve --dir ./styles --addr :4000 --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.StylesPath()
			}
			if addr == "" {
				addr = cfg.Addr()
			}
			if cmd.Flags().Changed("watch") {
				cfg.Server.Watch = watch
			}

			promReg := prometheus.NewRegistry()
			promReg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			reg := style.NewRegistry(
				style.WithLogger(logger),
				style.WithMetrics(style.NewMetrics(promReg)),
			)
			srv := styleserver.New(reg,
				styleserver.WithDir(dir),
				styleserver.WithLogger(logger),
				styleserver.WithGatherer(promReg),
				styleserver.WithRequestMetrics(middleware.NewMetrics(middleware.WithRegistry(promReg))),
			)

			n, err := srv.LoadDir()
			if err != nil {
				return err
			}
			logger.Info("styles loaded", "dir", dir, "count", n)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error { return srv.ListenAndServe(ctx, addr) })
			if cfg.Server.Watch {
				g.Go(func() error { return srv.Watch(ctx) })
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Styles directory (default from config)")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload styles on file changes")

	return cmd
}
