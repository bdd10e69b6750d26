// Package server exposes the namenode's two gRPC services — the
// client-facing file operations and heartbeat ingest — multiplexed over
// one listener. The namenode never touches payload bytes; every file
// operation answers with a routing map.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"blockfs/internal/namenode/records"
	"blockfs/internal/pb"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements dfs.ClientProtocols and dfs.HeartbeatProtocol over a
// shared Records instance.
type Server struct {
	pb.UnimplementedClientProtocolsServer
	pb.UnimplementedHeartbeatProtocolServer
	records *records.Records
	addr    string
}

// New wraps recs; addr is the address reported in system status.
func New(recs *records.Records, addr string) *Server {
	return &Server{records: recs, addr: addr}
}

// GetSystemStatus is a pure read of the datanode registry.
func (s *Server) GetSystemStatus(_ context.Context, _ *pb.SystemInfoRequest) (*pb.SystemInfoResponse, error) {
	statuses := s.records.Statuses()
	nodes := make([]*pb.NodeStatus, 0, len(statuses))
	for _, st := range statuses {
		nodes = append(nodes, &pb.NodeStatus{NodeAddress: st.Address, IsOnline: st.Alive})
	}
	return &pb.SystemInfoResponse{
		Namenode:     &pb.NodeStatus{NodeAddress: s.addr, IsOnline: true},
		Nodes:        nodes,
		NumDatanodes: int64(len(nodes)),
	}, nil
}

func (s *Server) CreateFile(_ context.Context, req *pb.CreateFileRequest) (*pb.CreateFileResponse, error) {
	info := req.GetFileInfo()
	if info == nil {
		return nil, status.Error(codes.InvalidArgument, "file_info is required")
	}

	placements, err := s.records.AddFile(info.GetFilePath(), info.GetFileSize())
	if err != nil {
		slog.Warn("create_file failed", "path", info.GetFilePath(), "err", err)
		return nil, toGRPCError(err)
	}
	slog.Info("create_file", "path", info.GetFilePath(), "size", info.GetFileSize(), "blocks", len(placements))

	return &pb.CreateFileResponse{
		Response:      reply("create processed for %s", info.GetFilePath()),
		DatanodeAddrs: nodeLists(placements),
	}, nil
}

func (s *Server) UpdateFile(_ context.Context, req *pb.UpdateFileRequest) (*pb.UpdateFileResponse, error) {
	info := req.GetFileInfo()
	if info == nil {
		return nil, status.Error(codes.InvalidArgument, "file_info is required")
	}

	placements, err := s.records.UpdateFile(info.GetFilePath(), info.GetFileSize())
	if err != nil {
		slog.Warn("update_file failed", "path", info.GetFilePath(), "err", err)
		return nil, toGRPCError(err)
	}
	slog.Info("update_file", "path", info.GetFilePath(), "size", info.GetFileSize(), "blocks", len(placements))

	return &pb.UpdateFileResponse{
		Response:      reply("update processed for %s", info.GetFilePath()),
		DatanodeAddrs: nodeLists(placements),
	}, nil
}

func (s *Server) DeleteFile(_ context.Context, req *pb.DeleteFileRequest) (*pb.DeleteFileResponse, error) {
	info := req.GetFileInfo()
	if info == nil {
		return nil, status.Error(codes.InvalidArgument, "file_info is required")
	}

	placements, err := s.records.RemoveFile(info.GetFilePath())
	if err != nil {
		slog.Warn("delete_file failed", "path", info.GetFilePath(), "err", err)
		return nil, toGRPCError(err)
	}
	slog.Info("delete_file", "path", info.GetFilePath(), "blocks", len(placements))

	return &pb.DeleteFileResponse{
		Response:      reply("delete processed for %s", info.GetFilePath()),
		DatanodeAddrs: nodeLists(placements),
	}, nil
}

func (s *Server) ReadFile(_ context.Context, req *pb.ReadFileRequest) (*pb.ReadFileResponse, error) {
	info := req.GetFileInfo()
	if info == nil {
		return nil, status.Error(codes.InvalidArgument, "file_info is required")
	}

	placements, err := s.records.FileAddresses(info.GetFilePath())
	if err != nil {
		slog.Warn("read_file failed", "path", info.GetFilePath(), "err", err)
		return nil, toGRPCError(err)
	}

	return &pb.ReadFileResponse{
		Response:      reply("read processed for %s", info.GetFilePath()),
		DatanodeAddrs: nodeLists(placements),
	}, nil
}

// SendHeartbeat registers the sender on first sight and bumps its
// heartbeat timestamp.
func (s *Server) SendHeartbeat(_ context.Context, hb *pb.Heartbeat) (*pb.GenericReply, error) {
	if hb.GetAddress() == "" {
		return nil, status.Error(codes.InvalidArgument, "address is required")
	}
	s.records.RecordHeartbeat(hb.GetAddress())
	slog.Debug("heartbeat", "addr", hb.GetAddress())
	return reply("heartbeat recorded"), nil
}

// ListenAndServe serves both services on the namenode's address until ctx
// is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	log := slog.With("component", "namenode-server", "addr", s.addr)

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

// Register attaches both services to srv. Split out so tests can serve
// over bufconn.
func (s *Server) Register(srv grpc.ServiceRegistrar) {
	pb.RegisterClientProtocolsServer(srv, s)
	pb.RegisterHeartbeatProtocolServer(srv, s)
}

func reply(format string, args ...any) *pb.GenericReply {
	return &pb.GenericReply{IsSuccess: true, Message: fmt.Sprintf(format, args...)}
}

func nodeLists(placements [][]string) []*pb.NodeList {
	lists := make([]*pb.NodeList, 0, len(placements))
	for _, addrs := range placements {
		lists = append(lists, &pb.NodeList{Nodes: addrs})
	}
	return lists
}
