package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	WillKeeperService_CreateWill_FullMethodName               = "/willkeeper.service.WillKeeperService/CreateWill"
	WillKeeperService_GetWill_FullMethodName                  = "/willkeeper.service.WillKeeperService/GetWill"
	WillKeeperService_ListWills_FullMethodName                = "/willkeeper.service.WillKeeperService/ListWills"
	WillKeeperService_UpdateWill_FullMethodName               = "/willkeeper.service.WillKeeperService/UpdateWill"
	WillKeeperService_PulseWill_FullMethodName                = "/willkeeper.service.WillKeeperService/PulseWill"
	WillKeeperService_DeleteWill_FullMethodName               = "/willkeeper.service.WillKeeperService/DeleteWill"
	WillKeeperService_ClaimWill_FullMethodName                = "/willkeeper.service.WillKeeperService/ClaimWill"
	WillKeeperService_GetAttachmentUploadUrl_FullMethodName   = "/willkeeper.service.WillKeeperService/GetAttachmentUploadUrl"
	WillKeeperService_GetAttachmentDownloadUrl_FullMethodName = "/willkeeper.service.WillKeeperService/GetAttachmentDownloadUrl"
)

// WillKeeperServiceClient is the client API for WillKeeperService.
type WillKeeperServiceClient interface {
	CreateWill(ctx context.Context, in *CreateWillRequest, opts ...grpc.CallOption) (*CreateWillResponse, error)
	GetWill(ctx context.Context, in *GetWillRequest, opts ...grpc.CallOption) (*GetWillResponse, error)
	ListWills(ctx context.Context, in *ListWillsRequest, opts ...grpc.CallOption) (*ListWillsResponse, error)
	UpdateWill(ctx context.Context, in *UpdateWillRequest, opts ...grpc.CallOption) (*UpdateWillResponse, error)
	PulseWill(ctx context.Context, in *PulseWillRequest, opts ...grpc.CallOption) (*PulseWillResponse, error)
	DeleteWill(ctx context.Context, in *DeleteWillRequest, opts ...grpc.CallOption) (*DeleteWillResponse, error)
	ClaimWill(ctx context.Context, in *ClaimWillRequest, opts ...grpc.CallOption) (*ClaimWillResponse, error)
	GetAttachmentUploadUrl(ctx context.Context, in *GetAttachmentUploadUrlRequest, opts ...grpc.CallOption) (*GetAttachmentUploadUrlResponse, error)
	GetAttachmentDownloadUrl(ctx context.Context, in *GetAttachmentDownloadUrlRequest, opts ...grpc.CallOption) (*GetAttachmentDownloadUrlResponse, error)
}

type willKeeperServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWillKeeperServiceClient(cc grpc.ClientConnInterface) WillKeeperServiceClient {
	return &willKeeperServiceClient{cc}
}

func (c *willKeeperServiceClient) CreateWill(ctx context.Context, in *CreateWillRequest, opts ...grpc.CallOption) (*CreateWillResponse, error) {
	out := new(CreateWillResponse)
	if err := c.cc.Invoke(ctx, WillKeeperService_CreateWill_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *willKeeperServiceClient) GetWill(ctx context.Context, in *GetWillRequest, opts ...grpc.CallOption) (*GetWillResponse, error) {
	out := new(GetWillResponse)
	if err := c.cc.Invoke(ctx, WillKeeperService_GetWill_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *willKeeperServiceClient) ListWills(ctx context.Context, in *ListWillsRequest, opts ...grpc.CallOption) (*ListWillsResponse, error) {
	out := new(ListWillsResponse)
	if err := c.cc.Invoke(ctx, WillKeeperService_ListWills_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *willKeeperServiceClient) UpdateWill(ctx context.Context, in *UpdateWillRequest, opts ...grpc.CallOption) (*UpdateWillResponse, error) {
	out := new(UpdateWillResponse)
	if err := c.cc.Invoke(ctx, WillKeeperService_UpdateWill_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *willKeeperServiceClient) PulseWill(ctx context.Context, in *PulseWillRequest, opts ...grpc.CallOption) (*PulseWillResponse, error) {
	out := new(PulseWillResponse)
	if err := c.cc.Invoke(ctx, WillKeeperService_PulseWill_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *willKeeperServiceClient) DeleteWill(ctx context.Context, in *DeleteWillRequest, opts ...grpc.CallOption) (*DeleteWillResponse, error) {
	out := new(DeleteWillResponse)
	if err := c.cc.Invoke(ctx, WillKeeperService_DeleteWill_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *willKeeperServiceClient) ClaimWill(ctx context.Context, in *ClaimWillRequest, opts ...grpc.CallOption) (*ClaimWillResponse, error) {
	out := new(ClaimWillResponse)
	if err := c.cc.Invoke(ctx, WillKeeperService_ClaimWill_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *willKeeperServiceClient) GetAttachmentUploadUrl(ctx context.Context, in *GetAttachmentUploadUrlRequest, opts ...grpc.CallOption) (*GetAttachmentUploadUrlResponse, error) {
	out := new(GetAttachmentUploadUrlResponse)
	if err := c.cc.Invoke(ctx, WillKeeperService_GetAttachmentUploadUrl_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *willKeeperServiceClient) GetAttachmentDownloadUrl(ctx context.Context, in *GetAttachmentDownloadUrlRequest, opts ...grpc.CallOption) (*GetAttachmentDownloadUrlResponse, error) {
	out := new(GetAttachmentDownloadUrlResponse)
	if err := c.cc.Invoke(ctx, WillKeeperService_GetAttachmentDownloadUrl_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// WillKeeperServiceServer is the server API for WillKeeperService. Embed
// UnimplementedWillKeeperServiceServer for forward compatibility.
type WillKeeperServiceServer interface {
	CreateWill(context.Context, *CreateWillRequest) (*CreateWillResponse, error)
	GetWill(context.Context, *GetWillRequest) (*GetWillResponse, error)
	ListWills(context.Context, *ListWillsRequest) (*ListWillsResponse, error)
	UpdateWill(context.Context, *UpdateWillRequest) (*UpdateWillResponse, error)
	PulseWill(context.Context, *PulseWillRequest) (*PulseWillResponse, error)
	DeleteWill(context.Context, *DeleteWillRequest) (*DeleteWillResponse, error)
	ClaimWill(context.Context, *ClaimWillRequest) (*ClaimWillResponse, error)
	GetAttachmentUploadUrl(context.Context, *GetAttachmentUploadUrlRequest) (*GetAttachmentUploadUrlResponse, error)
	GetAttachmentDownloadUrl(context.Context, *GetAttachmentDownloadUrlRequest) (*GetAttachmentDownloadUrlResponse, error)
}

type UnimplementedWillKeeperServiceServer struct{}

func (UnimplementedWillKeeperServiceServer) CreateWill(context.Context, *CreateWillRequest) (*CreateWillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateWill not implemented")
}
func (UnimplementedWillKeeperServiceServer) GetWill(context.Context, *GetWillRequest) (*GetWillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWill not implemented")
}
func (UnimplementedWillKeeperServiceServer) ListWills(context.Context, *ListWillsRequest) (*ListWillsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWills not implemented")
}
func (UnimplementedWillKeeperServiceServer) UpdateWill(context.Context, *UpdateWillRequest) (*UpdateWillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateWill not implemented")
}
func (UnimplementedWillKeeperServiceServer) PulseWill(context.Context, *PulseWillRequest) (*PulseWillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PulseWill not implemented")
}
func (UnimplementedWillKeeperServiceServer) DeleteWill(context.Context, *DeleteWillRequest) (*DeleteWillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteWill not implemented")
}
func (UnimplementedWillKeeperServiceServer) ClaimWill(context.Context, *ClaimWillRequest) (*ClaimWillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClaimWill not implemented")
}
func (UnimplementedWillKeeperServiceServer) GetAttachmentUploadUrl(context.Context, *GetAttachmentUploadUrlRequest) (*GetAttachmentUploadUrlResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAttachmentUploadUrl not implemented")
}
func (UnimplementedWillKeeperServiceServer) GetAttachmentDownloadUrl(context.Context, *GetAttachmentDownloadUrlRequest) (*GetAttachmentDownloadUrlResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAttachmentDownloadUrl not implemented")
}

func RegisterWillKeeperServiceServer(s grpc.ServiceRegistrar, srv WillKeeperServiceServer) {
	s.RegisterService(&WillKeeperService_ServiceDesc, srv)
}

func _WillKeeperService_CreateWill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateWillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WillKeeperServiceServer).CreateWill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WillKeeperService_CreateWill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WillKeeperServiceServer).CreateWill(ctx, req.(*CreateWillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WillKeeperService_GetWill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetWillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WillKeeperServiceServer).GetWill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WillKeeperService_GetWill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WillKeeperServiceServer).GetWill(ctx, req.(*GetWillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WillKeeperService_ListWills_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWillsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WillKeeperServiceServer).ListWills(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WillKeeperService_ListWills_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WillKeeperServiceServer).ListWills(ctx, req.(*ListWillsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WillKeeperService_UpdateWill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateWillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WillKeeperServiceServer).UpdateWill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WillKeeperService_UpdateWill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WillKeeperServiceServer).UpdateWill(ctx, req.(*UpdateWillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WillKeeperService_PulseWill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PulseWillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WillKeeperServiceServer).PulseWill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WillKeeperService_PulseWill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WillKeeperServiceServer).PulseWill(ctx, req.(*PulseWillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WillKeeperService_DeleteWill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteWillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WillKeeperServiceServer).DeleteWill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WillKeeperService_DeleteWill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WillKeeperServiceServer).DeleteWill(ctx, req.(*DeleteWillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WillKeeperService_ClaimWill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClaimWillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WillKeeperServiceServer).ClaimWill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WillKeeperService_ClaimWill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WillKeeperServiceServer).ClaimWill(ctx, req.(*ClaimWillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WillKeeperService_GetAttachmentUploadUrl_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAttachmentUploadUrlRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WillKeeperServiceServer).GetAttachmentUploadUrl(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WillKeeperService_GetAttachmentUploadUrl_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WillKeeperServiceServer).GetAttachmentUploadUrl(ctx, req.(*GetAttachmentUploadUrlRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WillKeeperService_GetAttachmentDownloadUrl_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAttachmentDownloadUrlRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WillKeeperServiceServer).GetAttachmentDownloadUrl(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WillKeeperService_GetAttachmentDownloadUrl_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WillKeeperServiceServer).GetAttachmentDownloadUrl(ctx, req.(*GetAttachmentDownloadUrlRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var WillKeeperService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "willkeeper.service.WillKeeperService",
	HandlerType: (*WillKeeperServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateWill",
			Handler:    _WillKeeperService_CreateWill_Handler,
		},
		{
			MethodName: "GetWill",
			Handler:    _WillKeeperService_GetWill_Handler,
		},
		{
			MethodName: "ListWills",
			Handler:    _WillKeeperService_ListWills_Handler,
		},
		{
			MethodName: "UpdateWill",
			Handler:    _WillKeeperService_UpdateWill_Handler,
		},
		{
			MethodName: "PulseWill",
			Handler:    _WillKeeperService_PulseWill_Handler,
		},
		{
			MethodName: "DeleteWill",
			Handler:    _WillKeeperService_DeleteWill_Handler,
		},
		{
			MethodName: "ClaimWill",
			Handler:    _WillKeeperService_ClaimWill_Handler,
		},
		{
			MethodName: "GetAttachmentUploadUrl",
			Handler:    _WillKeeperService_GetAttachmentUploadUrl_Handler,
		},
		{
			MethodName: "GetAttachmentDownloadUrl",
			Handler:    _WillKeeperService_GetAttachmentDownloadUrl_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/proto/wills.proto",
}
