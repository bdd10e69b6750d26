// Package clientcmd is the interactive shell and single-shot client.
package clientcmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"blockfs/internal/client"
	"blockfs/internal/config"

	"github.com/spf13/cobra"
)

// Cmd returns the "blockfs client" command. With --cmd the given command
// runs once and the process exits; otherwise an interactive shell reads
// commands from stdin.
func Cmd() *cobra.Command {
	var cfgPath string
	var namenode string
	var oneShot string

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Talk to the cluster",
		Long: "Issue whole-file operations. Commands:\n\n" +
			"  system_checkup       show namenode and datanode status\n" +
			"  create <path>        upload the local file at <path>\n" +
			"  update <path>        overwrite from the local file at <path>\n" +
			"  delete <path>        remove the file\n" +
			"  read <path>          print the file's contents\n" +
			"  exit                 leave the shell",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if namenode != "" {
				cfg.NameNodeAddr = namenode
			}

			c, err := client.Dial(cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			if oneShot != "" {
				execute(cmd.Context(), c, oneShot, cmd.OutOrStdout())
				return nil
			}
			return runShell(cmd.Context(), c, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "blockfs.yaml", "Config file path")
	cmd.Flags().StringVar(&namenode, "namenode", "", "NameNode address (overrides config)")
	cmd.Flags().StringVar(&oneShot, "cmd", "", "Run a single command and exit")
	return cmd
}

func runShell(ctx context.Context, c *client.Client, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 && fields[0] == "exit" {
			return nil
		}
		execute(ctx, c, scanner.Text(), out)
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

// execute runs one whitespace-tokenized command. Errors are printed and
// the shell resumes; nothing aborts the loop.
func execute(ctx context.Context, c *client.Client, line string, out io.Writer) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "system_checkup":
		runStatus(ctx, c, out)
	case "create", "update":
		if len(fields) < 2 {
			fmt.Fprintf(out, "usage: %s <path>\n", fields[0])
			return
		}
		runWrite(ctx, c, fields[0], fields[1], out)
	case "delete":
		if len(fields) < 2 {
			fmt.Fprintln(out, "usage: delete <path>")
			return
		}
		runDelete(ctx, c, fields[1], out)
	case "read":
		if len(fields) < 2 {
			fmt.Fprintln(out, "usage: read <path>")
			return
		}
		runRead(ctx, c, fields[1], out)
	default:
		fmt.Fprintf(out, "unknown command %q\n", fields[0])
	}
}

func runWrite(ctx context.Context, c *client.Client, verb, path string, out io.Writer) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(out, errMsg("read local file: %v", err))
		return
	}

	var result client.WriteResult
	if verb == "create" {
		result, err = c.Create(ctx, path, data)
	} else {
		result, err = c.Update(ctx, path, data)
	}
	if err != nil {
		fmt.Fprintln(out, errMsg("%v", err))
		return
	}

	for _, f := range result.Failures {
		fmt.Fprintln(out, errMsg("block %s failed: %v", f.Name, f.Err))
	}
	if result.OK() {
		fmt.Fprintln(out, okMsg("%sd %s (%d blocks)", verb, path, result.Blocks))
	} else {
		fmt.Fprintln(out, errMsg("%s of %s partially succeeded: %d of %d blocks failed",
			verb, path, len(result.Failures), result.Blocks))
	}
}

func runDelete(ctx context.Context, c *client.Client, path string, out io.Writer) {
	result, err := c.Delete(ctx, path)
	if err != nil {
		fmt.Fprintln(out, errMsg("%v", err))
		return
	}
	for _, f := range result.Failures {
		fmt.Fprintln(out, errMsg("replica of %s failed: %v", f.Name, f.Err))
	}
	fmt.Fprintln(out, okMsg("deleted %s (%d blocks)", path, result.Blocks))
}

func runRead(ctx context.Context, c *client.Client, path string, out io.Writer) {
	n, err := c.Read(ctx, path, out)
	if errors.Is(err, client.ErrNotExist) {
		fmt.Fprintln(out, errMsg("%s does not exist", path))
		return
	}
	if err != nil {
		fmt.Fprintln(out, errMsg("%v", err))
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, okMsg("read %s bytes", strconv.FormatInt(n, 10)))
}
