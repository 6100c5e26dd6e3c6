package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pthm/hxdrop/internal/config"
	"github.com/pthm/hxdrop/internal/logger"
	"github.com/pthm/hxdrop/internal/site"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hxdrop-demo",
		Short: "hxdrop demo site",
		Long: `hxdrop-demo serves live examples and documentation for the hxdrop
drag-and-drop file picker.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		addr       string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".", configFile)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			logg, err := logger.New(&cfg.Log)
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			defer logg.Sync()
			zap.ReplaceGlobals(logg)

			srv, err := site.New(cfg, logg, version)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SERVER_ADDR)")
	cmd.Flags().StringVar(&configFile, "config", "", "path to a YAML config file")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hxdrop-demo version %s\n", version)
		},
	}
}
