package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"blockfs/internal/config"
	"blockfs/internal/datanode/store"
	"blockfs/internal/namenode/records"

	dnserver "blockfs/internal/datanode/server"
	nnserver "blockfs/internal/namenode/server"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1 << 20

func testConfig() config.Config {
	cfg := config.Default()
	cfg.BlockSize = 4
	cfg.Replication = 2
	cfg.NameNodeAddr = "127.0.0.1:3000"
	cfg.RPCTimeout = 2 * time.Second
	return cfg
}

// cluster serves a namenode and a set of datanodes over bufconn
// listeners keyed by address, so the driver's dial path is exercised
// end to end without real sockets.
type cluster struct {
	cfg       config.Config
	recs      *records.Records
	stores    map[string]*store.Store
	listeners map[string]*bufconn.Listener
}

func (cl *cluster) dial(ctx context.Context, addr string) (net.Conn, error) {
	ln, ok := cl.listeners[addr]
	if !ok {
		return nil, fmt.Errorf("refused: no listener at %s", addr)
	}
	return ln.DialContext(ctx)
}

// blocksHeld sums block counts across every datanode store.
func (cl *cluster) blocksHeld() int {
	total := 0
	for _, st := range cl.stores {
		total += st.Len()
	}
	return total
}

// startCluster registers each datanode address with the namenode records
// (standing in for one heartbeat each). Addresses without a serving
// datanode can be registered via phantoms to simulate dead replicas.
func startCluster(t *testing.T, cfg config.Config, datanodes, phantoms []string) (*Client, *cluster) {
	t.Helper()

	cl := &cluster{
		cfg:       cfg,
		recs:      records.New(cfg.BlockSize, cfg.Replication, nil),
		stores:    make(map[string]*store.Store),
		listeners: make(map[string]*bufconn.Listener),
	}

	nnLn := bufconn.Listen(bufSize)
	cl.listeners[cfg.NameNodeAddr] = nnLn
	nnSrv := grpc.NewServer()
	nnserver.New(cl.recs, cfg.NameNodeAddr).Register(nnSrv)
	go func() { _ = nnSrv.Serve(nnLn) }()
	t.Cleanup(nnSrv.Stop)

	for _, addr := range datanodes {
		ln := bufconn.Listen(bufSize)
		cl.listeners[addr] = ln
		st := store.New()
		cl.stores[addr] = st
		srv := grpc.NewServer()
		dnserver.New(st, addr).Register(srv)
		go func() { _ = srv.Serve(ln) }()
		t.Cleanup(srv.Stop)
		cl.recs.RecordHeartbeat(addr)
	}
	for _, addr := range phantoms {
		cl.recs.RecordHeartbeat(addr)
	}

	c, err := Dial(cfg, WithContextDialer(cl.dial))
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, cl
}

func TestCreateReadRoundtrip(t *testing.T) {
	cfg := testConfig()
	c, cl := startCluster(t, cfg,
		[]string{"127.0.0.1:8080", "127.0.0.1:8081", "127.0.0.1:8082"}, nil)
	ctx := context.Background()

	result, err := c.Create(ctx, "hello.txt", []byte("hello"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !result.OK() {
		t.Fatalf("Create() failures = %v", result.Failures)
	}
	if result.Blocks != 2 {
		t.Fatalf("Create() blocks = %d, want 2 (ceil(5/4))", result.Blocks)
	}
	if n, _ := cl.recs.BlockCount("hello.txt"); n != 2 {
		t.Fatalf("namenode block count = %d, want 2", n)
	}

	var out bytes.Buffer
	n, err := c.Read(ctx, "hello.txt", &out)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != 5 || out.String() != "hello" {
		t.Fatalf("Read() = %d bytes %q, want 5 bytes hello", n, out.String())
	}
}

func TestUpdateOverwrite(t *testing.T) {
	cfg := testConfig()
	c, cl := startCluster(t, cfg,
		[]string{"127.0.0.1:8080", "127.0.0.1:8081", "127.0.0.1:8082"}, nil)
	ctx := context.Background()

	if _, err := c.Create(ctx, "hello.txt", []byte("hello")); err != nil {
		t.Fatal(err)
	}

	result, err := c.Update(ctx, "hello.txt", []byte("hi"))
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !result.OK() {
		t.Fatalf("Update() failures = %v", result.Failures)
	}
	// One write target plus one delete target for the shrunk index.
	if result.Blocks != 2 {
		t.Fatalf("Update() blocks = %d, want 2", result.Blocks)
	}

	var out bytes.Buffer
	if _, err := c.Read(ctx, "hello.txt", &out); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if out.String() != "hi" {
		t.Fatalf("Read() = %q, want hi", out.String())
	}

	// The trailing block is gone from every datanode; only block 0's
	// single written copy remains.
	if held := cl.blocksHeld(); held != 1 {
		t.Fatalf("datanodes hold %d blocks, want 1", held)
	}
}

func TestDeleteIdempotentAndReadAfter(t *testing.T) {
	cfg := testConfig()
	c, cl := startCluster(t, cfg,
		[]string{"127.0.0.1:8080", "127.0.0.1:8081"}, nil)
	ctx := context.Background()

	if _, err := c.Create(ctx, "hello.txt", []byte("hi")); err != nil {
		t.Fatal(err)
	}

	result, err := c.Delete(ctx, "hello.txt")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !result.OK() {
		t.Fatalf("Delete() failures = %v", result.Failures)
	}
	if cl.blocksHeld() != 0 {
		t.Fatalf("datanodes still hold %d blocks", cl.blocksHeld())
	}

	// Second delete succeeds silently.
	again, err := c.Delete(ctx, "hello.txt")
	if err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
	if again.Blocks != 0 {
		t.Fatalf("second Delete() blocks = %d, want 0", again.Blocks)
	}

	var out bytes.Buffer
	if _, err := c.Read(ctx, "hello.txt", &out); !errors.Is(err, ErrNotExist) {
		t.Fatalf("Read() after delete error = %v, want ErrNotExist", err)
	}
}

func TestCreateNoCapacity(t *testing.T) {
	cfg := testConfig()
	c, _ := startCluster(t, cfg, nil, nil)

	_, err := c.Create(context.Background(), "x", []byte("data"))
	if err == nil {
		t.Fatal("Create() succeeded with no datanodes")
	}
	st, ok := status.FromError(errors.Unwrap(err))
	if !ok || st.Code() != codes.FailedPrecondition {
		t.Fatalf("Create() error = %v, want FailedPrecondition status", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	cfg := testConfig()
	c, _ := startCluster(t, cfg, []string{"127.0.0.1:8080"}, nil)

	var out bytes.Buffer
	_, err := c.Read(context.Background(), "ghost", &out)
	if !errors.Is(err, ErrNotExist) {
		t.Fatalf("Read() error = %v, want ErrNotExist", err)
	}
}

func TestBlockBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantBlocks int
	}{
		{"exactly one block", "abcd", 1},
		{"one byte over", "abcde", 2},
		{"two full blocks", "abcdefgh", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			c, _ := startCluster(t, cfg,
				[]string{"127.0.0.1:8080", "127.0.0.1:8081"}, nil)
			ctx := context.Background()

			result, err := c.Create(ctx, "f", []byte(tt.payload))
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if result.Blocks != tt.wantBlocks {
				t.Fatalf("blocks = %d, want %d", result.Blocks, tt.wantBlocks)
			}

			var out bytes.Buffer
			if _, err := c.Read(ctx, "f", &out); err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if out.String() != tt.payload {
				t.Fatalf("Read() = %q, want %q", out.String(), tt.payload)
			}
		})
	}
}

func TestZeroByteFile(t *testing.T) {
	cfg := testConfig()
	c, cl := startCluster(t, cfg, []string{"127.0.0.1:8080"}, nil)
	ctx := context.Background()

	result, err := c.Create(ctx, "empty", nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if result.Blocks != 0 {
		t.Fatalf("Create() blocks = %d, want 0", result.Blocks)
	}
	if n, ok := cl.recs.BlockCount("empty"); !ok || n != 0 {
		t.Fatalf("namenode block count = %d,%v, want 0,true", n, ok)
	}

	// A zero-block routing map is indistinguishable from a missing file
	// on the wire, so the read reports not-exists.
	var out bytes.Buffer
	if _, err := c.Read(ctx, "empty", &out); !errors.Is(err, ErrNotExist) {
		t.Fatalf("Read() error = %v, want ErrNotExist", err)
	}

	del, err := c.Delete(ctx, "empty")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if del.Blocks != 0 {
		t.Fatalf("Delete() blocks = %d, want 0", del.Blocks)
	}
}

func TestReplicaFallback(t *testing.T) {
	cfg := testConfig()
	// The phantom heartbeats but serves nothing, so any traffic routed to
	// it fails at dial and must fall back to the live replica.
	c, _ := startCluster(t, cfg,
		[]string{"127.0.0.1:8080", "127.0.0.1:8081"},
		[]string{"127.0.0.1:9999"})
	ctx := context.Background()

	result, err := c.Create(ctx, "hello.txt", []byte("hellohello"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !result.OK() {
		t.Fatalf("Create() failures = %v, want fallback to cover the phantom", result.Failures)
	}

	var out bytes.Buffer
	if _, err := c.Read(ctx, "hello.txt", &out); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if out.String() != "hellohello" {
		t.Fatalf("Read() = %q, want hellohello", out.String())
	}
}

func TestPartialWriteReported(t *testing.T) {
	cfg := testConfig()
	cfg.Replication = 1
	// Registry knows only the phantom: placement succeeds, every
	// per-block write fails on its single replica.
	c, _ := startCluster(t, cfg, nil, []string{"127.0.0.1:9999"})
	ctx := context.Background()

	result, err := c.Create(ctx, "doomed", []byte("abcdefgh"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if result.OK() {
		t.Fatal("Create() reported success with no reachable datanode")
	}
	if len(result.Failures) != 2 {
		t.Fatalf("failures = %d, want 2 (one per block)", len(result.Failures))
	}
	for _, f := range result.Failures {
		if f.Name != "doomed_0" && f.Name != "doomed_1" {
			t.Fatalf("failure names unexpected block %q", f.Name)
		}
	}

	// The namenode's optimistic placement makes a later read observe the
	// missing blocks.
	var out bytes.Buffer
	if _, err := c.Read(ctx, "doomed", &out); err == nil {
		t.Fatal("Read() succeeded against unwritten blocks")
	}
}
