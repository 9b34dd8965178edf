// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: proto/transport/transport.proto

package transport

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	TransportService_StreamEvents_FullMethodName = "/transport.TransportService/StreamEvents"
	TransportService_AttachAgent_FullMethodName  = "/transport.TransportService/AttachAgent"
	TransportService_DetachAgent_FullMethodName  = "/transport.TransportService/DetachAgent"
	TransportService_WatchSession_FullMethodName = "/transport.TransportService/WatchSession"
	TransportService_PushPayload_FullMethodName  = "/transport.TransportService/PushPayload"
)

// TransportServiceClient is the client API for TransportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// TransportService is the device bridge daemon. It multiplexes connected
// device streams, forwards process lifecycle events, injects inspection
// agents, and copies payload bundles onto devices.
type TransportServiceClient interface {
	// StreamEvents subscribes to stream and process lifecycle events.
	// When replay_state is set the daemon first sends the current set of
	// connected streams and live processes as synthetic events.
	StreamEvents(ctx context.Context, in *StreamEventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error)
	// AttachAgent injects the inspection agent into a live process and
	// returns the session handle for the attached agent.
	AttachAgent(ctx context.Context, in *AttachAgentRequest, opts ...grpc.CallOption) (*AttachAgentResponse, error)
	// DetachAgent tears down an attached agent session.
	DetachAgent(ctx context.Context, in *DetachAgentRequest, opts ...grpc.CallOption) (*DetachAgentResponse, error)
	// WatchSession streams lifecycle events for one agent session. The
	// stream ends after a TERMINATED event or when the session is unknown.
	WatchSession(ctx context.Context, in *WatchSessionRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SessionEvent], error)
	// PushPayload copies a payload bundle onto a device. The first message
	// carries the destination info, the rest carry content chunks.
	PushPayload(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[PushPayloadRequest, PushPayloadResponse], error)
}

type transportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTransportServiceClient(cc grpc.ClientConnInterface) TransportServiceClient {
	return &transportServiceClient{cc}
}

func (c *transportServiceClient) StreamEvents(ctx context.Context, in *StreamEventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Event], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &TransportService_ServiceDesc.Streams[0], TransportService_StreamEvents_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[StreamEventsRequest, Event]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TransportService_StreamEventsClient = grpc.ServerStreamingClient[Event]

func (c *transportServiceClient) AttachAgent(ctx context.Context, in *AttachAgentRequest, opts ...grpc.CallOption) (*AttachAgentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AttachAgentResponse)
	err := c.cc.Invoke(ctx, TransportService_AttachAgent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transportServiceClient) DetachAgent(ctx context.Context, in *DetachAgentRequest, opts ...grpc.CallOption) (*DetachAgentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DetachAgentResponse)
	err := c.cc.Invoke(ctx, TransportService_DetachAgent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transportServiceClient) WatchSession(ctx context.Context, in *WatchSessionRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SessionEvent], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &TransportService_ServiceDesc.Streams[1], TransportService_WatchSession_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchSessionRequest, SessionEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TransportService_WatchSessionClient = grpc.ServerStreamingClient[SessionEvent]

func (c *transportServiceClient) PushPayload(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[PushPayloadRequest, PushPayloadResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &TransportService_ServiceDesc.Streams[2], TransportService_PushPayload_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[PushPayloadRequest, PushPayloadResponse]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TransportService_PushPayloadClient = grpc.ClientStreamingClient[PushPayloadRequest, PushPayloadResponse]

// TransportServiceServer is the server API for TransportService service.
// All implementations must embed UnimplementedTransportServiceServer
// for forward compatibility.
//
// TransportService is the device bridge daemon. It multiplexes connected
// device streams, forwards process lifecycle events, injects inspection
// agents, and copies payload bundles onto devices.
type TransportServiceServer interface {
	// StreamEvents subscribes to stream and process lifecycle events.
	// When replay_state is set the daemon first sends the current set of
	// connected streams and live processes as synthetic events.
	StreamEvents(*StreamEventsRequest, grpc.ServerStreamingServer[Event]) error
	// AttachAgent injects the inspection agent into a live process and
	// returns the session handle for the attached agent.
	AttachAgent(context.Context, *AttachAgentRequest) (*AttachAgentResponse, error)
	// DetachAgent tears down an attached agent session.
	DetachAgent(context.Context, *DetachAgentRequest) (*DetachAgentResponse, error)
	// WatchSession streams lifecycle events for one agent session. The
	// stream ends after a TERMINATED event or when the session is unknown.
	WatchSession(*WatchSessionRequest, grpc.ServerStreamingServer[SessionEvent]) error
	// PushPayload copies a payload bundle onto a device. The first message
	// carries the destination info, the rest carry content chunks.
	PushPayload(grpc.ClientStreamingServer[PushPayloadRequest, PushPayloadResponse]) error
	mustEmbedUnimplementedTransportServiceServer()
}

// UnimplementedTransportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTransportServiceServer struct{}

func (UnimplementedTransportServiceServer) StreamEvents(*StreamEventsRequest, grpc.ServerStreamingServer[Event]) error {
	return status.Errorf(codes.Unimplemented, "method StreamEvents not implemented")
}
func (UnimplementedTransportServiceServer) AttachAgent(context.Context, *AttachAgentRequest) (*AttachAgentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AttachAgent not implemented")
}
func (UnimplementedTransportServiceServer) DetachAgent(context.Context, *DetachAgentRequest) (*DetachAgentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DetachAgent not implemented")
}
func (UnimplementedTransportServiceServer) WatchSession(*WatchSessionRequest, grpc.ServerStreamingServer[SessionEvent]) error {
	return status.Errorf(codes.Unimplemented, "method WatchSession not implemented")
}
func (UnimplementedTransportServiceServer) PushPayload(grpc.ClientStreamingServer[PushPayloadRequest, PushPayloadResponse]) error {
	return status.Errorf(codes.Unimplemented, "method PushPayload not implemented")
}
func (UnimplementedTransportServiceServer) mustEmbedUnimplementedTransportServiceServer() {}
func (UnimplementedTransportServiceServer) testEmbeddedByValue()                          {}

// UnsafeTransportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TransportServiceServer will
// result in compilation errors.
type UnsafeTransportServiceServer interface {
	mustEmbedUnimplementedTransportServiceServer()
}

func RegisterTransportServiceServer(s grpc.ServiceRegistrar, srv TransportServiceServer) {
	// If the following call pancis, it indicates UnimplementedTransportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TransportService_ServiceDesc, srv)
}

func _TransportService_StreamEvents_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StreamEventsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(TransportServiceServer).StreamEvents(m, &grpc.GenericServerStream[StreamEventsRequest, Event]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TransportService_StreamEventsServer = grpc.ServerStreamingServer[Event]

func _TransportService_AttachAgent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttachAgentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransportServiceServer).AttachAgent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransportService_AttachAgent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransportServiceServer).AttachAgent(ctx, req.(*AttachAgentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TransportService_DetachAgent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DetachAgentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransportServiceServer).DetachAgent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransportService_DetachAgent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransportServiceServer).DetachAgent(ctx, req.(*DetachAgentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TransportService_WatchSession_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WatchSessionRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(TransportServiceServer).WatchSession(m, &grpc.GenericServerStream[WatchSessionRequest, SessionEvent]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TransportService_WatchSessionServer = grpc.ServerStreamingServer[SessionEvent]

func _TransportService_PushPayload_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(TransportServiceServer).PushPayload(&grpc.GenericServerStream[PushPayloadRequest, PushPayloadResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type TransportService_PushPayloadServer = grpc.ClientStreamingServer[PushPayloadRequest, PushPayloadResponse]

// TransportService_ServiceDesc is the grpc.ServiceDesc for TransportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TransportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "transport.TransportService",
	HandlerType: (*TransportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AttachAgent",
			Handler:    _TransportService_AttachAgent_Handler,
		},
		{
			MethodName: "DetachAgent",
			Handler:    _TransportService_DetachAgent_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamEvents",
			Handler:       _TransportService_StreamEvents_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "WatchSession",
			Handler:       _TransportService_WatchSession_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "PushPayload",
			Handler:       _TransportService_PushPayload_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "proto/transport/transport.proto",
}
