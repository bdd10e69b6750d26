// Package server exposes a datanode's block store as the dfs data plane
// and runs the heartbeat emitter alongside it.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"blockfs/internal/config"
	"blockfs/internal/datanode/heartbeat"
	"blockfs/internal/datanode/store"
	"blockfs/internal/pb"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements dfs.DataNodeProtocols. Every RPC is keyed by block
// name; the namenode is never consulted.
type Server struct {
	pb.UnimplementedDataNodeProtocolsServer
	store *store.Store
	addr  string
}

// New wraps st; addr is the address clients were routed to.
func New(st *store.Store, addr string) *Server {
	return &Server{store: st, addr: addr}
}

// Run serves the data plane and emits heartbeats until ctx is cancelled.
func Run(ctx context.Context, port int, cfg config.Config) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	srv := New(store.New(), addr)

	em := &heartbeat.Emitter{
		SelfAddr:     addr,
		NameNodeAddr: cfg.NameNodeAddr,
		Interval:     cfg.HeartbeatInterval,
		Timeout:      cfg.RPCTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.ListenAndServe(ctx) })
	g.Go(func() error { return em.Run(ctx) })
	return g.Wait()
}

func (s *Server) CreateFile(_ context.Context, req *pb.CreateBlockRequest) (*pb.GenericReply, error) {
	info := req.GetBlockInfo()
	if info == nil {
		return nil, status.Error(codes.InvalidArgument, "block_info is required")
	}

	err := s.store.Create(req.GetFileName(), info.GetBlockData(), info.GetBlockSize())
	if errors.Is(err, store.ErrExists) {
		return nil, status.Errorf(codes.AlreadyExists, "block %s already exists", req.GetFileName())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	slog.Debug("block created", "name", req.GetFileName(), "size", info.GetBlockSize())
	return ok("block %s created", req.GetFileName()), nil
}

func (s *Server) UpdateFile(_ context.Context, req *pb.UpdateBlockRequest) (*pb.GenericReply, error) {
	info := req.GetBlockInfo()
	if info == nil {
		return nil, status.Error(codes.InvalidArgument, "block_info is required")
	}

	if err := s.store.Update(req.GetFileName(), info.GetBlockData(), info.GetBlockSize()); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	slog.Debug("block updated", "name", req.GetFileName(), "size", info.GetBlockSize())
	return ok("block %s updated", req.GetFileName()), nil
}

func (s *Server) DeleteFile(_ context.Context, req *pb.DeleteBlockRequest) (*pb.GenericReply, error) {
	if err := s.store.Delete(req.GetBlockName()); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	slog.Debug("block deleted", "name", req.GetBlockName())
	return ok("block %s deleted", req.GetBlockName()), nil
}

func (s *Server) ReadFile(_ context.Context, req *pb.FileRequest) (*pb.ReadBlockResponse, error) {
	info := req.GetFileInfo()
	if info == nil {
		return nil, status.Error(codes.InvalidArgument, "file_info is required")
	}

	data, err := s.store.Read(info.GetFilePath())
	if errors.Is(err, store.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "block %s not found", info.GetFilePath())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	// bytes_total is reserved for streaming; the whole block fits in one
	// response at this revision.
	return &pb.ReadBlockResponse{
		BytesRead:  int64(len(data)),
		BytesTotal: 0,
		BlockData:  data,
	}, nil
}

// ListenAndServe serves the data plane on the node's own address until
// ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	log := slog.With("component", "datanode-server", "addr", s.addr)

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}

	srv := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	s.Register(srv)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		srv.GracefulStop()
	}()

	log.Info("serving")
	if err := srv.Serve(ln); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Register attaches the service to srv. Split out so tests can serve over
// bufconn.
func (s *Server) Register(srv grpc.ServiceRegistrar) {
	pb.RegisterDataNodeProtocolsServer(srv, s)
}

func ok(format string, args ...any) *pb.GenericReply {
	return &pb.GenericReply{IsSuccess: true, Message: fmt.Sprintf(format, args...)}
}
