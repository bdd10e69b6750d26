// Package client drives the two-hop file protocol: one RPC to the
// namenode for the routing map, then one RPC per block against the routed
// datanodes. Payload bytes only ever travel the client↔datanode hop.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"blockfs/internal/config"
	"blockfs/internal/pb"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ErrNotExist is returned by Read for a path the namenode has no blocks
// for.
var ErrNotExist = errors.New("file does not exist")

// Client owns one channel to the namenode and one per datanode it has
// talked to. Not safe for concurrent commands; the shell issues one at a
// time.
type Client struct {
	cfg    config.Config
	dialer func(ctx context.Context, addr string) (net.Conn, error)

	conn     *grpc.ClientConn
	namenode pb.ClientProtocolsClient

	mu        sync.Mutex
	datanodes map[string]*grpc.ClientConn
}

// Option configures a Client.
type Option func(*Client)

// WithContextDialer routes every connection through d. Tests use this to
// serve namenode and datanodes over bufconn listeners keyed by address.
func WithContextDialer(d func(ctx context.Context, addr string) (net.Conn, error)) Option {
	return func(c *Client) { c.dialer = d }
}

// Dial creates a client channel to the configured namenode. Connections
// are lazy; failures surface on the first RPC.
func Dial(cfg config.Config, opts ...Option) (*Client, error) {
	c := &Client{cfg: cfg, datanodes: make(map[string]*grpc.ClientConn)}
	for _, opt := range opts {
		opt(c)
	}

	conn, err := c.newConn(cfg.NameNodeAddr)
	if err != nil {
		return nil, fmt.Errorf("dial namenode: %w", err)
	}
	c.conn = conn
	c.namenode = pb.NewClientProtocolsClient(conn)
	return c, nil
}

// Close releases the namenode channel and every cached datanode channel.
func (c *Client) Close() error {
	var errs []error
	if err := c.conn.Close(); err != nil {
		errs = append(errs, err)
	}
	c.mu.Lock()
	for addr, conn := range c.datanodes {
		if err := conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", addr, err))
		}
	}
	c.datanodes = nil
	c.mu.Unlock()
	return errors.Join(errs...)
}

// dataNode returns a stub for addr, dialing and caching the channel on
// first use.
func (c *Client) dataNode(addr string) (pb.DataNodeProtocolsClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if conn, ok := c.datanodes[addr]; ok {
		return pb.NewDataNodeProtocolsClient(conn), nil
	}
	conn, err := c.newConn(addr)
	if err != nil {
		return nil, fmt.Errorf("dial datanode %s: %w", addr, err)
	}
	c.datanodes[addr] = conn
	return pb.NewDataNodeProtocolsClient(conn), nil
}

func (c *Client) newConn(addr string) (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
	target := addr
	if c.dialer != nil {
		opts = append(opts, grpc.WithContextDialer(c.dialer))
		target = "passthrough:///" + addr
	}
	return grpc.NewClient(target, opts...)
}

// rpcCtx derives the per-RPC deadline every call carries.
func (c *Client) rpcCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.cfg.RPCTimeout)
}
