// Command blockfs is a minimal HDFS-style distributed file service: a
// coordinating namenode, a pool of datanodes holding the block bytes, and
// a client shell driving whole-file operations.
package main

import (
	"context"
	"fmt"
	"os"

	"blockfs/cmd/blockfs/clientcmd"
	"blockfs/cmd/blockfs/datanodecmd"
	"blockfs/cmd/blockfs/namenodecmd"
	"blockfs/internal/support/buildinfo"
	"blockfs/internal/support/logging"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func main() {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	var debug bool
	if err := logging.Configure(logging.LevelInfo); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "blockfs",
		Short:         "Minimal HDFS-style distributed file service",
		Version:       buildinfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelInfo
			if debug {
				level = logging.LevelDebug
			}
			return logging.Configure(level)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(namenodecmd.Cmd())
	root.AddCommand(datanodecmd.Cmd())
	root.AddCommand(clientcmd.Cmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
