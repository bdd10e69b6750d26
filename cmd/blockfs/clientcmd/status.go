package clientcmd

import (
	"context"
	"fmt"
	"io"

	"blockfs/cmd/blockfs/ui"
	"blockfs/internal/client"
)

func runStatus(ctx context.Context, c *client.Client, out io.Writer) {
	resp, err := c.Status(ctx)
	if err != nil {
		fmt.Fprintln(out, errMsg("%v", err))
		return
	}

	rows := [][]string{
		{"namenode", resp.GetNamenode().GetNodeAddress(), ui.Online(resp.GetNamenode().GetIsOnline())},
	}
	for _, n := range resp.GetNodes() {
		rows = append(rows, []string{"datanode", n.GetNodeAddress(), ui.Online(n.GetIsOnline())})
	}

	fmt.Fprintln(out, ui.Table([]string{"ROLE", "ADDRESS", "STATUS"}, rows))
	fmt.Fprintln(out, ui.Muted(fmt.Sprintf("%d datanodes registered", resp.GetNumDatanodes())))
}

func okMsg(format string, a ...any) string  { return ui.SuccessMsg(format, a...) }
func errMsg(format string, a ...any) string { return ui.ErrorMsg(format, a...) }
