// Package codec registers a JSON-over-gRPC message codec. RPC
// transport glue and request deserialization are treated as an
// external, well-understood collaborator here; rather than fabricating
// protoc-gen-go wire-compatible binary encoding by hand, this module
// uses real google.golang.org/grpc server/client machinery with a
// small codec plugged into grpc's own codec-registration mechanism
// (encoding.Codec) so the transport is genuine gRPC framing over
// HTTP/2, just with a JSON payload instead of protobuf.
package codec

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name is the codec identifier negotiated in the grpc+<name> content
// subtype.
const Name = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return Name
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
