// The simulator runs the wiki browser headless and serves it over HTTP, so
// the UI can be exercised from a desk without console hardware. It exposes
// the current frame as PNG, accepts button presses, and reports navigation
// state as JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/retrofab/emupages/internal/config"
)

func main() {
	var (
		configPath string
		listen     string
		scale      int
		publicURL  string
		debug      bool
	)

	root := &cobra.Command{
		Use:   "simulator",
		Short: "Run the wiki browser headless behind an HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				Prefix:          "simulator",
			})
			if debug {
				logger.SetLevel(log.DebugLevel)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if listen != "" {
				cfg.Simulator.Listen = listen
			}
			if scale > 0 {
				cfg.Simulator.Scale = scale
			}
			if publicURL != "" {
				cfg.Simulator.PublicURL = publicURL
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			session, err := NewSession(logger)
			if err != nil {
				return err
			}
			session.Start(ctx)

			server := NewServer(cfg.Simulator, session, logger)
			if err := server.Start(ctx); err != nil {
				return err
			}
			logger.Info("simulator listening", "addr", server.Addr())

			<-ctx.Done()
			return server.Stop()
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to config file (YAML)")
	root.Flags().StringVar(&listen, "listen", "", "http listen address (overrides config)")
	root.Flags().IntVar(&scale, "scale", 0, "integer scale factor for /frame.png (overrides config)")
	root.Flags().StringVar(&publicURL, "public-url", "", "public URL encoded into /qr.png (overrides config)")
	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
