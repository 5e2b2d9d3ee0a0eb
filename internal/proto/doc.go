// Package proto is the wire contract between the admin settings server and
// its clients.
//
// Messages are plain Go structs carried over gRPC by the "json" codec
// registered in this package; protobuf well-known types (emptypb.Empty and
// friends) are encoded with protojson by the same codec. Service descriptors
// and client stubs are maintained by hand in the same shape protoc-gen-go-grpc
// produces, so servers register with RegisterIdentityServer /
// RegisterProfilesServer and clients use NewIdentityClient /
// NewProfilesClient.
//
// Clients must select the codec per call (grpc.CallContentSubtype(Codec));
// the generated-style stubs in this package do that automatically.
package proto
