package registry

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "apollo.icons.v1.IconRegistryService"

const (
	LookupIconFullMethodName = "/" + ServiceName + "/LookupIcon"
	ListIconsFullMethodName  = "/" + ServiceName + "/ListIcons"
	RenderIconFullMethodName = "/" + ServiceName + "/RenderIcon"
)

// IconRegistryServiceServer is the server API for the icon registry.
// Messages are protobuf well-known types so the service needs no generated
// code.
type IconRegistryServiceServer interface {
	// LookupIcon resolves a key, name or codepoint to its definition.
	LookupIcon(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	// ListIcons returns the definitions matching a search query.
	ListIcons(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	// RenderIcon renders {ref, size, color} as an SVG document.
	RenderIcon(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
}

// RegisterIconRegistryServiceServer registers srv on s.
func RegisterIconRegistryServiceServer(s grpc.ServiceRegistrar, srv IconRegistryServiceServer) {
	s.RegisterService(&IconRegistryServiceDesc, srv)
}

// IconRegistryServiceDesc describes the icon registry service.
var IconRegistryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IconRegistryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "LookupIcon", Handler: lookupIconHandler},
		{MethodName: "ListIcons", Handler: listIconsHandler},
		{MethodName: "RenderIcon", Handler: renderIconHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "apollo/icons/v1/registry.proto",
}

func lookupIconHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IconRegistryServiceServer).LookupIcon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LookupIconFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IconRegistryServiceServer).LookupIcon(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listIconsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IconRegistryServiceServer).ListIcons(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListIconsFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IconRegistryServiceServer).ListIcons(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func renderIconHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IconRegistryServiceServer).RenderIcon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RenderIconFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IconRegistryServiceServer).RenderIcon(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
