// Package proto holds the wire definitions. Run `go generate ./proto` after
// editing any .proto file; generated code lands under gen/proto.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative receipts/v1/receipts.proto
