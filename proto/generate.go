// Package llmv1 holds the generated gRPC bindings for the LLM sidecar
// bridge. Run `go generate ./proto` after editing llm.proto.
package llmv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
