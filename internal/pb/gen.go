// Package pb holds the generated wire types and stubs for the dfs
// services. Regenerate from the module root after editing dfs.proto.
package pb

//go:generate protoc --go_out=.. --go_opt=module=blockfs/internal --go-grpc_out=.. --go-grpc_opt=module=blockfs/internal --proto_path=../.. internal/pb/dfs.proto
