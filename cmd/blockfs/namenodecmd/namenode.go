// Package namenodecmd runs the coordinating directory server.
package namenodecmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"blockfs/internal/config"
	"blockfs/internal/namenode/records"
	"blockfs/internal/namenode/server"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Cmd returns the "blockfs namenode" command.
func Cmd() *cobra.Command {
	var cfgPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "namenode",
		Short: "Run the NameNode",
		Long: "Run the coordinating directory server. It tracks datanodes via\n" +
			"heartbeats, assigns block placements, and answers file operations\n" +
			"with routing maps. It never carries payload bytes.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.NameNodeAddr = addr
			}

			recs := records.New(cfg.BlockSize, cfg.Replication, nil)
			srv := server.New(recs, cfg.NameNodeAddr)
			mon := &records.Monitor{
				Records:   recs,
				Threshold: cfg.LivenessThreshold,
				Interval:  cfg.HeartbeatInterval,
			}

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error { return srv.ListenAndServe(ctx) })
			g.Go(func() error { return mon.Run(ctx) })

			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "blockfs.yaml", "Config file path")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}
