package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/styled/pkg/preview"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port    int
		host    string
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the preview server",
		Long: `Serve the component gallery with a live playground.

The server reloads styled.yaml when it changes and refreshes connected
browsers.

Examples:
  styled serve
  styled serve --port=8080
  styled serve --config ./design --host=0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, cfg, err := a.registry()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Preview.Port = port
			}
			if host != "" {
				cfg.Preview.Host = host
			}

			addr := cfg.PreviewAddress()
			server := preview.New(reg, preview.Config{
				Address:        addr,
				Title:          "styled",
				Metrics:        cfg.Preview.Metrics,
				AllowedOrigins: cfg.Preview.AllowedOrigins,
				Logger:         a.logger.With("component", "preview"),
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if path := cfg.Path(); path != "" && !noWatch {
				w := preview.NewWatcher(server, preview.WatcherConfig{
					Path:   path,
					Logger: a.logger.With("component", "watcher"),
				})
				go func() { _ = w.Run(ctx) }()
				a.info("watching %s", path)
			}

			a.success("Preview at %s", cfg.PreviewURL())
			if cfg.Preview.Metrics {
				a.info("metrics at %s/metrics", cfg.PreviewURL())
			}
			fmt.Fprintln(a.out)

			return server.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from styled.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from styled.yaml)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload on config changes")
	return cmd
}
