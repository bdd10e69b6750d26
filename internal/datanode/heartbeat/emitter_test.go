package heartbeat

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"blockfs/internal/namenode/records"
	nnserver "blockfs/internal/namenode/server"

	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1 << 20

func startNameNode(t *testing.T) (*records.Records, func(ctx context.Context, addr string) (net.Conn, error)) {
	t.Helper()

	recs := records.New(4, 2, nil)
	ln := bufconn.Listen(bufSize)
	srv := grpc.NewServer()
	nnserver.New(recs, "127.0.0.1:3000").Register(srv)
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(srv.Stop)

	return recs, func(ctx context.Context, _ string) (net.Conn, error) {
		return ln.DialContext(ctx)
	}
}

func TestEmitterRegistersAndKeepsBeating(t *testing.T) {
	recs, dialer := startNameNode(t)

	em := &Emitter{
		SelfAddr:     "127.0.0.1:8090",
		NameNodeAddr: "127.0.0.1:3000",
		Interval:     20 * time.Millisecond,
		Timeout:      time.Second,
		Dialer:       dialer,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- em.Run(ctx) }()

	// The first beat registers the node.
	deadline := time.Now().Add(2 * time.Second)
	for recs.NumDataNodes() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("emitter never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	first, ok := recs.LastHeartbeat("127.0.0.1:8090")
	if !ok {
		t.Fatal("no heartbeat timestamp recorded")
	}

	// Later ticks keep bumping the timestamp.
	deadline = time.Now().Add(2 * time.Second)
	for {
		later, _ := recs.LastHeartbeat("127.0.0.1:8090")
		if later.After(first) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("heartbeat timestamp never advanced")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not stop on cancel")
	}
}

func TestEmitterStopsWhenCancelledBeforeRegistering(t *testing.T) {
	// No namenode listening: the initial-beat backoff must give up as
	// soon as the context is cancelled.
	em := &Emitter{
		SelfAddr:     "127.0.0.1:8090",
		NameNodeAddr: "127.0.0.1:3000",
		Interval:     20 * time.Millisecond,
		Timeout:      50 * time.Millisecond,
		Dialer: func(ctx context.Context, _ string) (net.Conn, error) {
			return nil, errors.New("refused")
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- em.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("Run() returned nil after cancelled registration")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not stop on cancel")
	}
}
