package rpc

// schemaFile is the embedded .proto text for DateFormatService. It is parsed
// at process start with protoreflect's protoparse, so the module ships a
// working gRPC server without ever invoking protoc or checking in generated
// .pb.go stubs, matching the pattern internal/evaluator/builtins_grpc.go
// uses to load a schema supplied at runtime.
const schemaFile = "datefmtc.proto"

const schemaText = `
syntax = "proto3";

package datefmtc;

service DateFormatService {
  rpc Format (FormatRequest) returns (FormatResponse);
  rpc Parse (ParseRequest) returns (ParseResponse);
  rpc Translate (TranslateRequest) returns (TranslateResponse);
}

message FormatRequest {
  string pattern = 1;
  int64 instant_millis = 2;
  string zone_label = 3;
}

message FormatResponse {
  string text = 1;
}

message ParseRequest {
  string pattern = 1;
  string text = 2;
}

message ParseResponse {
  int64 instant_millis = 1;
}

message TranslateRequest {
  string strftime_format = 1;
}

message TranslateResponse {
  string pattern = 1;
}
`
