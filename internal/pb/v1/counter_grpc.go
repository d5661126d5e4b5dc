package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Full method names of CounterService.
const (
	CounterService_Dispatch_FullMethodName = "/statebox.counter.v1.CounterService/Dispatch"
	CounterService_GetState_FullMethodName = "/statebox.counter.v1.CounterService/GetState"
	CounterService_Watch_FullMethodName    = "/statebox.counter.v1.CounterService/Watch"
)

// CounterServiceClient is the client API for CounterService.
type CounterServiceClient interface {
	Dispatch(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetState(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Watch(
		ctx context.Context,
		in *emptypb.Empty,
		opts ...grpc.CallOption,
	) (grpc.ServerStreamingClient[wrapperspb.Int64Value], error)
}

// counterServiceClient implements CounterServiceClient over a connection.
type counterServiceClient struct {
	// cc is the underlying connection.
	cc grpc.ClientConnInterface
}

// NewCounterServiceClient creates a client bound to cc.
//
//nolint:ireturn // Mirrors protoc-gen-go-grpc output.
func NewCounterServiceClient(cc grpc.ClientConnInterface) CounterServiceClient {
	return &counterServiceClient{cc: cc}
}

// Dispatch calls CounterService.Dispatch.
func (c *counterServiceClient) Dispatch(
	ctx context.Context,
	in *wrapperspb.StringValue,
	opts ...grpc.CallOption,
) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, CounterService_Dispatch_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// GetState calls CounterService.GetState.
func (c *counterServiceClient) GetState(
	ctx context.Context,
	in *emptypb.Empty,
	opts ...grpc.CallOption,
) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, CounterService_GetState_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// Watch opens a CounterService.Watch stream.
//
//nolint:ireturn // Mirrors protoc-gen-go-grpc output.
func (c *counterServiceClient) Watch(
	ctx context.Context,
	in *emptypb.Empty,
	opts ...grpc.CallOption,
) (grpc.ServerStreamingClient[wrapperspb.Int64Value], error) {
	stream, err := c.cc.NewStream(ctx, &CounterService_ServiceDesc.Streams[0], CounterService_Watch_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}

	x := &grpc.GenericClientStream[emptypb.Empty, wrapperspb.Int64Value]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}

	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

// CounterServiceServer is the server API for CounterService.
// Implementations must embed UnimplementedCounterServiceServer.
type CounterServiceServer interface {
	Dispatch(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error)
	GetState(ctx context.Context, in *emptypb.Empty) (*wrapperspb.Int64Value, error)
	Watch(in *emptypb.Empty, stream grpc.ServerStreamingServer[wrapperspb.Int64Value]) error
	mustEmbedUnimplementedCounterServiceServer()
}

// UnimplementedCounterServiceServer answers every method with codes.Unimplemented.
type UnimplementedCounterServiceServer struct{}

// Dispatch is not implemented.
func (UnimplementedCounterServiceServer) Dispatch(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Dispatch not implemented")
}

// GetState is not implemented.
func (UnimplementedCounterServiceServer) GetState(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method GetState not implemented")
}

// Watch is not implemented.
func (UnimplementedCounterServiceServer) Watch(*emptypb.Empty, grpc.ServerStreamingServer[wrapperspb.Int64Value]) error {
	return status.Error(codes.Unimplemented, "method Watch not implemented")
}

func (UnimplementedCounterServiceServer) mustEmbedUnimplementedCounterServiceServer() {}

// RegisterCounterServiceServer registers srv on s.
func RegisterCounterServiceServer(s grpc.ServiceRegistrar, srv CounterServiceServer) {
	s.RegisterService(&CounterService_ServiceDesc, srv)
}

func _CounterService_Dispatch_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(CounterServiceServer).Dispatch(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CounterService_Dispatch_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CounterServiceServer).Dispatch(ctx, req.(*wrapperspb.StringValue))
	}

	return interceptor(ctx, in, info, handler)
}

func _CounterService_GetState_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(CounterServiceServer).GetState(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CounterService_GetState_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CounterServiceServer).GetState(ctx, req.(*emptypb.Empty))
	}

	return interceptor(ctx, in, info, handler)
}

func _CounterService_Watch_Handler(srv any, stream grpc.ServerStream) error {
	m := new(emptypb.Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}

	return srv.(CounterServiceServer).Watch(m, &grpc.GenericServerStream[emptypb.Empty, wrapperspb.Int64Value]{
		ServerStream: stream,
	})
}

// CounterService_ServiceDesc describes CounterService for grpc.ServiceRegistrar.
//
//nolint:gochecknoglobals // Required by the grpc registration API.
var CounterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "statebox.counter.v1.CounterService",
	HandlerType: (*CounterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Dispatch",
			Handler:    _CounterService_Dispatch_Handler,
		},
		{
			MethodName: "GetState",
			Handler:    _CounterService_GetState_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Watch",
			Handler:       _CounterService_Watch_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "statebox/counter/v1/counter.proto",
}
