package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"blockfs/internal/block"
	"blockfs/internal/pb"
)

// BlockFailure names a block whose data-plane traffic failed on every
// routed replica.
type BlockFailure struct {
	Name string
	Err  error
}

// WriteResult reports a create/update/delete outcome. Per-block writes
// are atomic; the file as a whole is not, so a command can partially
// succeed and Failures names what did not land.
type WriteResult struct {
	Blocks   int
	Failures []BlockFailure
}

// OK reports whether every block landed.
func (r WriteResult) OK() bool { return len(r.Failures) == 0 }

// Create registers path at the namenode and writes every block to its
// preferred replica, falling back through the remaining replicas whenever
// an RPC fails. The namenode is not told about per-block outcomes;
// its placement view is optimistic.
func (c *Client) Create(ctx context.Context, path string, data []byte) (WriteResult, error) {
	size := int64(len(data))

	nnCtx, cancel := c.rpcCtx(ctx)
	resp, err := c.namenode.CreateFile(nnCtx, &pb.CreateFileRequest{
		FileInfo: &pb.FileInfo{FilePath: path, FileSize: size},
	})
	cancel()
	if err != nil {
		return WriteResult{}, fmt.Errorf("create %s: %w", path, err)
	}

	return c.writeBlocks(ctx, path, data, resp.GetDatanodeAddrs(), false), nil
}

// Update re-registers path at its new size. Routing-map positions below
// the new block count are written; positions at or above it are the
// shrink range and every replica there receives the size-zero delete
// sentinel.
func (c *Client) Update(ctx context.Context, path string, data []byte) (WriteResult, error) {
	size := int64(len(data))

	nnCtx, cancel := c.rpcCtx(ctx)
	resp, err := c.namenode.UpdateFile(nnCtx, &pb.UpdateFileRequest{
		FileInfo: &pb.FileInfo{FilePath: path, FileSize: size},
	})
	cancel()
	if err != nil {
		return WriteResult{}, fmt.Errorf("update %s: %w", path, err)
	}

	return c.writeBlocks(ctx, path, data, resp.GetDatanodeAddrs(), true), nil
}

// writeBlocks drives the per-block phase of a create or update, in block
// index order. update distinguishes the shrink range by position.
func (c *Client) writeBlocks(ctx context.Context, path string, data []byte, lists []*pb.NodeList, update bool) WriteResult {
	blockSize := c.cfg.BlockSize
	nWrite := block.Count(int64(len(data)), blockSize)

	result := WriteResult{Blocks: len(lists)}
	for i, list := range lists {
		name := block.Name(path, i)

		if i >= nWrite {
			// Shrink range: delete on every replica, not just the
			// preferred one, so no stale copy outlives the file.
			for _, addr := range list.GetNodes() {
				if err := c.deleteBlockOn(ctx, addr, name, update); err != nil {
					result.Failures = append(result.Failures, BlockFailure{Name: name, Err: err})
				}
			}
			continue
		}

		lo := int64(i) * blockSize
		hi := lo + blockSize
		if hi > int64(len(data)) {
			hi = int64(len(data))
		}
		payload := data[lo:hi]

		if err := c.writeBlock(ctx, list.GetNodes(), name, int64(i), payload, update); err != nil {
			result.Failures = append(result.Failures, BlockFailure{Name: name, Err: err})
		}
	}
	return result
}

// writeBlock tries each replica in routing order until one accepts the
// payload.
func (c *Client) writeBlock(ctx context.Context, replicas []string, name string, index int64, payload []byte, update bool) error {
	if len(replicas) == 0 {
		return fmt.Errorf("block %s: empty replica set", name)
	}

	info := &pb.BlockInfo{
		BlockId:   index,
		BlockSize: int64(len(payload)),
		BlockData: payload,
	}

	var lastErr error
	for _, addr := range replicas {
		node, err := c.dataNode(addr)
		if err != nil {
			lastErr = err
			continue
		}

		rpcCtx, cancel := c.rpcCtx(ctx)
		if update {
			_, err = node.UpdateFile(rpcCtx, &pb.UpdateBlockRequest{FileName: name, BlockInfo: info})
		} else {
			_, err = node.CreateFile(rpcCtx, &pb.CreateBlockRequest{FileName: name, BlockInfo: info})
		}
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err
		slog.Warn("block write failed, trying next replica", "block", name, "addr", addr, "err", err)
	}
	return fmt.Errorf("block %s: all replicas failed: %w", name, lastErr)
}

// deleteBlockOn removes one replica of a block. Shrinking updates send the
// size-zero sentinel through UpdateFile; the delete path uses DeleteFile.
func (c *Client) deleteBlockOn(ctx context.Context, addr, name string, viaUpdate bool) error {
	node, err := c.dataNode(addr)
	if err != nil {
		return err
	}

	rpcCtx, cancel := c.rpcCtx(ctx)
	defer cancel()
	if viaUpdate {
		_, err = node.UpdateFile(rpcCtx, &pb.UpdateBlockRequest{
			FileName:  name,
			BlockInfo: &pb.BlockInfo{BlockSize: 0},
		})
	} else {
		_, err = node.DeleteFile(rpcCtx, &pb.DeleteBlockRequest{BlockName: name})
	}
	if err != nil {
		return fmt.Errorf("delete %s on %s: %w", name, addr, err)
	}
	return nil
}

// Delete removes path from the namenode and every replica of every block
// from its datanode. Replica failures are reported, not fatal.
func (c *Client) Delete(ctx context.Context, path string) (WriteResult, error) {
	nnCtx, cancel := c.rpcCtx(ctx)
	resp, err := c.namenode.DeleteFile(nnCtx, &pb.DeleteFileRequest{
		FileInfo: &pb.FileInfo{FilePath: path},
	})
	cancel()
	if err != nil {
		return WriteResult{}, fmt.Errorf("delete %s: %w", path, err)
	}

	lists := resp.GetDatanodeAddrs()
	result := WriteResult{Blocks: len(lists)}
	for i, list := range lists {
		name := block.Name(path, i)
		for _, addr := range list.GetNodes() {
			if err := c.deleteBlockOn(ctx, addr, name, false); err != nil {
				result.Failures = append(result.Failures, BlockFailure{Name: name, Err: err})
			}
		}
	}
	return result, nil
}

// Read streams path to w, concatenating block payloads in index order.
// Each block is read from its preferred replica with fallback; if every
// replica of any block fails the read aborts. Output is flushed whenever
// the internal buffer exceeds one block size.
func (c *Client) Read(ctx context.Context, path string, w io.Writer) (int64, error) {
	nnCtx, cancel := c.rpcCtx(ctx)
	resp, err := c.namenode.ReadFile(nnCtx, &pb.ReadFileRequest{
		FileInfo: &pb.FileInfo{FilePath: path},
	})
	cancel()
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	lists := resp.GetDatanodeAddrs()
	if len(lists) == 0 {
		return 0, fmt.Errorf("read %s: %w", path, ErrNotExist)
	}

	buf := bufio.NewWriterSize(w, int(c.cfg.BlockSize))
	var total int64
	for i, list := range lists {
		name := block.Name(path, i)
		data, err := c.readBlock(ctx, list.GetNodes(), name)
		if err != nil {
			return total, fmt.Errorf("partial read of %s: %w", path, err)
		}
		n, err := buf.Write(data)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	if err := buf.Flush(); err != nil {
		return total, err
	}
	return total, nil
}

func (c *Client) readBlock(ctx context.Context, replicas []string, name string) ([]byte, error) {
	if len(replicas) == 0 {
		return nil, fmt.Errorf("block %s: empty replica set", name)
	}

	var lastErr error
	for _, addr := range replicas {
		node, err := c.dataNode(addr)
		if err != nil {
			lastErr = err
			continue
		}

		rpcCtx, cancel := c.rpcCtx(ctx)
		resp, err := node.ReadFile(rpcCtx, &pb.FileRequest{
			FileInfo: &pb.FileInfo{FilePath: name},
		})
		cancel()
		if err == nil {
			return resp.GetBlockData(), nil
		}
		lastErr = err
		slog.Warn("block read failed, trying next replica", "block", name, "addr", addr, "err", err)
	}
	return nil, fmt.Errorf("block %s: all replicas failed: %w", name, lastErr)
}

// Status fetches the namenode's view of the cluster.
func (c *Client) Status(ctx context.Context) (*pb.SystemInfoResponse, error) {
	rpcCtx, cancel := c.rpcCtx(ctx)
	defer cancel()
	resp, err := c.namenode.GetSystemStatus(rpcCtx, &pb.SystemInfoRequest{})
	if err != nil {
		return nil, fmt.Errorf("system status: %w", err)
	}
	return resp, nil
}
