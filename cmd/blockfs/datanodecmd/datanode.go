// Package datanodecmd runs a storage node.
package datanodecmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"blockfs/internal/config"
	"blockfs/internal/datanode/server"

	"github.com/spf13/cobra"
)

// Cmd returns the "blockfs datanode <port>" command.
func Cmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "datanode <port>",
		Short: "Run a DataNode",
		Long: "Run a storage node on the given port. It serves block traffic\n" +
			"directly to clients and pushes a periodic heartbeat to the\n" +
			"namenode. Blocks are held in memory and evaporate on restart.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := strconv.Atoi(args[0])
			if err != nil || port <= 0 || port > 65535 {
				return fmt.Errorf("invalid port %q", args[0])
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			if err := server.Run(ctx, port, cfg); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "blockfs.yaml", "Config file path")
	return cmd
}
