package server

import (
	"bytes"
	"context"
	"net"
	"testing"

	"blockfs/internal/datanode/store"
	"blockfs/internal/pb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1 << 20

func startServer(t *testing.T) pb.DataNodeProtocolsClient {
	t.Helper()

	ln := bufconn.Listen(bufSize)
	srv := grpc.NewServer()
	New(store.New(), "127.0.0.1:8080").Register(srv)
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///datanode",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return ln.DialContext(ctx)
		}),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewDataNodeProtocolsClient(conn)
}

func TestCreateReadBlock(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	reply, err := client.CreateFile(ctx, &pb.CreateBlockRequest{
		FileName:  "f_0",
		BlockInfo: &pb.BlockInfo{BlockId: 0, BlockSize: 4, BlockData: []byte("abcd")},
	})
	if err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	if !reply.GetIsSuccess() {
		t.Fatalf("CreateFile() reply = %+v", reply)
	}

	resp, err := client.ReadFile(ctx, &pb.FileRequest{
		FileInfo: &pb.FileInfo{FilePath: "f_0"},
	})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(resp.GetBlockData(), []byte("abcd")) {
		t.Fatalf("block data = %q, want abcd", resp.GetBlockData())
	}
	if resp.GetBytesRead() != 4 {
		t.Fatalf("bytes_read = %d, want 4", resp.GetBytesRead())
	}
	if resp.GetBytesTotal() != 0 {
		t.Fatalf("bytes_total = %d, want 0 (reserved for streaming)", resp.GetBytesTotal())
	}
}

func TestCreateDuplicateBlock(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	req := &pb.CreateBlockRequest{
		FileName:  "f_0",
		BlockInfo: &pb.BlockInfo{BlockSize: 2, BlockData: []byte("hi")},
	}
	if _, err := client.CreateFile(ctx, req); err != nil {
		t.Fatal(err)
	}
	_, err := client.CreateFile(ctx, req)
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("second CreateFile() code = %v, want AlreadyExists", status.Code(err))
	}
}

func TestUpdateSizeZeroDeletesBlock(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	if _, err := client.CreateFile(ctx, &pb.CreateBlockRequest{
		FileName:  "f_0",
		BlockInfo: &pb.BlockInfo{BlockSize: 2, BlockData: []byte("hi")},
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := client.UpdateFile(ctx, &pb.UpdateBlockRequest{
		FileName:  "f_0",
		BlockInfo: &pb.BlockInfo{BlockSize: 0},
	}); err != nil {
		t.Fatalf("UpdateFile() error = %v", err)
	}

	_, err := client.ReadFile(ctx, &pb.FileRequest{FileInfo: &pb.FileInfo{FilePath: "f_0"}})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("ReadFile() code = %v, want NotFound", status.Code(err))
	}
}

func TestDeleteBlockIdempotent(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	if _, err := client.DeleteFile(ctx, &pb.DeleteBlockRequest{BlockName: "absent"}); err != nil {
		t.Fatalf("DeleteFile() of absent block error = %v", err)
	}
}

func TestReadMissingBlock(t *testing.T) {
	client := startServer(t)

	_, err := client.ReadFile(context.Background(), &pb.FileRequest{
		FileInfo: &pb.FileInfo{FilePath: "absent"},
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("ReadFile() code = %v, want NotFound", status.Code(err))
	}
}

func TestMissingBlockInfoIsInvalidArgument(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	if _, err := client.CreateFile(ctx, &pb.CreateBlockRequest{FileName: "f_0"}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("CreateFile() code = %v, want InvalidArgument", status.Code(err))
	}
	if _, err := client.UpdateFile(ctx, &pb.UpdateBlockRequest{FileName: "f_0"}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("UpdateFile() code = %v, want InvalidArgument", status.Code(err))
	}
	if _, err := client.ReadFile(ctx, &pb.FileRequest{}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("ReadFile() code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestOversuppliedPayloadTruncated(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	if _, err := client.CreateFile(ctx, &pb.CreateBlockRequest{
		FileName:  "f_0",
		BlockInfo: &pb.BlockInfo{BlockSize: 3, BlockData: []byte("abcdef")},
	}); err != nil {
		t.Fatal(err)
	}

	resp, err := client.ReadFile(ctx, &pb.FileRequest{FileInfo: &pb.FileInfo{FilePath: "f_0"}})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(resp.GetBlockData(), []byte("abc")) {
		t.Fatalf("block data = %q, want abc (size field truncates)", resp.GetBlockData())
	}
}
