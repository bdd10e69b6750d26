// Package heartbeat pushes a datanode's liveness signal to the namenode.
package heartbeat

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"blockfs/internal/pb"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Emitter owns one long-lived channel to the namenode and sends a
// heartbeat carrying SelfAddr on every tick.
type Emitter struct {
	SelfAddr     string
	NameNodeAddr string
	Interval     time.Duration
	Timeout      time.Duration

	// Dialer overrides the transport; tests serve the namenode over a
	// bufconn listener.
	Dialer func(ctx context.Context, addr string) (net.Conn, error)
}

// Run dials the namenode and beats until ctx is cancelled. The first
// heartbeat registers the node and is retried with exponential backoff so
// a datanode may start before its namenode; later failures are logged and
// the next tick reuses the same channel.
func (e *Emitter) Run(ctx context.Context) error {
	log := slog.With("component", "heartbeat-emitter", "addr", e.SelfAddr)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
	target := e.NameNodeAddr
	if e.Dialer != nil {
		opts = append(opts, grpc.WithContextDialer(e.Dialer))
		target = "passthrough:///" + e.NameNodeAddr
	}
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return fmt.Errorf("dial namenode %s: %w", e.NameNodeAddr, err)
	}
	defer conn.Close()
	client := pb.NewHeartbeatProtocolClient(conn)

	send := func() error {
		sendCtx, cancel := context.WithTimeout(ctx, e.Timeout)
		defer cancel()
		_, err := client.SendHeartbeat(sendCtx, &pb.Heartbeat{Address: e.SelfAddr})
		return err
	}

	bo := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	if err := backoff.Retry(send, bo); err != nil {
		return fmt.Errorf("initial heartbeat: %w", err)
	}
	log.Info("registered with namenode", "namenode", e.NameNodeAddr)

	ticker := time.NewTicker(e.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := send(); err != nil {
				log.Warn("heartbeat failed", "err", err)
			}
		}
	}
}
