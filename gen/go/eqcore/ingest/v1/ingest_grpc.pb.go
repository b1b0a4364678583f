// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: eqcore/ingest/v1/ingest.proto

package ingestv1

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
	IngestService_SubmitEvent_FullMethodName    = "/eqcore.ingest.v1.IngestService/SubmitEvent"
	IngestService_SubmitDeposit_FullMethodName  = "/eqcore.ingest.v1.IngestService/SubmitDeposit"
	IngestService_SubmitWithdraw_FullMethodName = "/eqcore.ingest.v1.IngestService/SubmitWithdraw"
	IngestService_SubmitTransfer_FullMethodName = "/eqcore.ingest.v1.IngestService/SubmitTransfer"
	IngestService_SubmitPrice_FullMethodName    = "/eqcore.ingest.v1.IngestService/SubmitPrice"
)

// IngestServiceClient is the client API for IngestService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// IngestService accepts extrinsics outside the NATS path: operator tooling
// and tests. Events injected here flow through the same parse, dedup and
// sequencing pipeline as the subscribers.
type IngestServiceClient interface {
	SubmitEvent(ctx context.Context, in *SubmitEventRequest, opts ...grpc.CallOption) (*SubmitEventResponse, error)
	SubmitDeposit(ctx context.Context, in *SubmitDepositRequest, opts ...grpc.CallOption) (*SubmitAckResponse, error)
	SubmitWithdraw(ctx context.Context, in *SubmitWithdrawRequest, opts ...grpc.CallOption) (*SubmitAckResponse, error)
	SubmitTransfer(ctx context.Context, in *SubmitTransferRequest, opts ...grpc.CallOption) (*SubmitAckResponse, error)
	SubmitPrice(ctx context.Context, in *SubmitPriceRequest, opts ...grpc.CallOption) (*SubmitAckResponse, error)
}

type ingestServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestServiceClient(cc grpc.ClientConnInterface) IngestServiceClient {
	return &ingestServiceClient{cc}
}

func (c *ingestServiceClient) SubmitEvent(ctx context.Context, in *SubmitEventRequest, opts ...grpc.CallOption) (*SubmitEventResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitEventResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitEvent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitDeposit(ctx context.Context, in *SubmitDepositRequest, opts ...grpc.CallOption) (*SubmitAckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitAckResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitDeposit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitWithdraw(ctx context.Context, in *SubmitWithdrawRequest, opts ...grpc.CallOption) (*SubmitAckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitAckResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitWithdraw_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitTransfer(ctx context.Context, in *SubmitTransferRequest, opts ...grpc.CallOption) (*SubmitAckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitAckResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitTransfer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitPrice(ctx context.Context, in *SubmitPriceRequest, opts ...grpc.CallOption) (*SubmitAckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitAckResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitPrice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestServiceServer is the server API for IngestService service.
// All implementations must embed UnimplementedIngestServiceServer
// for forward compatibility.
//
// IngestService accepts extrinsics outside the NATS path: operator tooling
// and tests. Events injected here flow through the same parse, dedup and
// sequencing pipeline as the subscribers.
type IngestServiceServer interface {
	SubmitEvent(context.Context, *SubmitEventRequest) (*SubmitEventResponse, error)
	SubmitDeposit(context.Context, *SubmitDepositRequest) (*SubmitAckResponse, error)
	SubmitWithdraw(context.Context, *SubmitWithdrawRequest) (*SubmitAckResponse, error)
	SubmitTransfer(context.Context, *SubmitTransferRequest) (*SubmitAckResponse, error)
	SubmitPrice(context.Context, *SubmitPriceRequest) (*SubmitAckResponse, error)
	mustEmbedUnimplementedIngestServiceServer()
}

// UnimplementedIngestServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestServiceServer struct{}

func (UnimplementedIngestServiceServer) SubmitEvent(context.Context, *SubmitEventRequest) (*SubmitEventResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitEvent not implemented")
}
func (UnimplementedIngestServiceServer) SubmitDeposit(context.Context, *SubmitDepositRequest) (*SubmitAckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDeposit not implemented")
}
func (UnimplementedIngestServiceServer) SubmitWithdraw(context.Context, *SubmitWithdrawRequest) (*SubmitAckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitWithdraw not implemented")
}
func (UnimplementedIngestServiceServer) SubmitTransfer(context.Context, *SubmitTransferRequest) (*SubmitAckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitTransfer not implemented")
}
func (UnimplementedIngestServiceServer) SubmitPrice(context.Context, *SubmitPriceRequest) (*SubmitAckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitPrice not implemented")
}
func (UnimplementedIngestServiceServer) mustEmbedUnimplementedIngestServiceServer() {}
func (UnimplementedIngestServiceServer) testEmbeddedByValue()                       {}

// UnsafeIngestServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestServiceServer will
// result in compilation errors.
type UnsafeIngestServiceServer interface {
	mustEmbedUnimplementedIngestServiceServer()
}

func RegisterIngestServiceServer(s grpc.ServiceRegistrar, srv IngestServiceServer) {
	// If the following call pancis, it indicates UnimplementedIngestServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestService_ServiceDesc, srv)
}

func _IngestService_SubmitEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitEvent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitEvent(ctx, req.(*SubmitEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitDeposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitDepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitDeposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitDeposit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitDeposit(ctx, req.(*SubmitDepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitWithdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitWithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitWithdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitWithdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitWithdraw(ctx, req.(*SubmitWithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitTransfer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitTransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitTransfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitTransfer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitTransfer(ctx, req.(*SubmitTransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitPriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitPrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitPrice(ctx, req.(*SubmitPriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestService_ServiceDesc is the grpc.ServiceDesc for IngestService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "eqcore.ingest.v1.IngestService",
	HandlerType: (*IngestServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitEvent",
			Handler:    _IngestService_SubmitEvent_Handler,
		},
		{
			MethodName: "SubmitDeposit",
			Handler:    _IngestService_SubmitDeposit_Handler,
		},
		{
			MethodName: "SubmitWithdraw",
			Handler:    _IngestService_SubmitWithdraw_Handler,
		},
		{
			MethodName: "SubmitTransfer",
			Handler:    _IngestService_SubmitTransfer_Handler,
		},
		{
			MethodName: "SubmitPrice",
			Handler:    _IngestService_SubmitPrice_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "eqcore/ingest/v1/ingest.proto",
}
