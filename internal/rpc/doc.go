// Package rpc serves the curve library to remote plotting front ends over
// gRPC. Messages are google.protobuf.Struct values so the service needs no
// generated code; see service.go for the field names.
package rpc
