// Package client wraps the WillKeeper gRPC API for command-line and
// programmatic callers. The access token is attached to every call through a
// unary interceptor.
package client

import (
	"context"
	"time"

	"github.com/lasttx/willkeeper/internal/common"
	pb "github.com/lasttx/willkeeper/internal/proto"
	"github.com/lasttx/willkeeper/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type WillKeeperClientService struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.WillKeeperServiceClient
	accessToken string
}

func (s *WillKeeperClientService) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: s.accessToken})
	ctx = metadata.NewOutgoingContext(ctx, md)

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewWillKeeperClientService(endpointURL, accessToken string) (*WillKeeperClientService, error) {
	return &WillKeeperClientService{endpointURL: endpointURL, accessToken: accessToken}, nil
}

func (s *WillKeeperClientService) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewWillKeeperServiceClient(conn)
	return nil
}

func (s *WillKeeperClientService) Close() error {
	return s.conn.Close()
}

func beneficiariesToProto(in []models.Beneficiary) []*pb.Beneficiary {
	out := make([]*pb.Beneficiary, 0, len(in))
	for _, b := range in {
		out = append(out, &pb.Beneficiary{
			Address:    b.Address,
			Percentage: b.Percentage,
			Name:       b.Name,
			Email:      b.Email,
		})
	}
	return out
}

func (s *WillKeeperClientService) CreateWill(ctx context.Context, inactivity time.Duration,
	beneficiaries []models.Beneficiary, personalMessage string) (*pb.Will, error) {

	resp, err := s.client.CreateWill(ctx, &pb.CreateWillRequest{
		InactivitySeconds: int64(inactivity / time.Second),
		Beneficiaries:     beneficiariesToProto(beneficiaries),
		PersonalMessage:   personalMessage,
	})
	if err != nil {
		return nil, err
	}
	return resp.Will, nil
}

func (s *WillKeeperClientService) GetWill(ctx context.Context, id string) (*pb.Will, error) {
	resp, err := s.client.GetWill(ctx, &pb.GetWillRequest{Id: id})
	if err != nil {
		return nil, err
	}
	return resp.Will, nil
}

func (s *WillKeeperClientService) ListWills(ctx context.Context) ([]*pb.Will, error) {
	resp, err := s.client.ListWills(ctx, &pb.ListWillsRequest{})
	if err != nil {
		return nil, err
	}
	return resp.Wills, nil
}

func (s *WillKeeperClientService) UpdateWill(ctx context.Context, id string, inactivity time.Duration,
	beneficiaries []models.Beneficiary, personalMessage string) (*pb.Will, error) {

	resp, err := s.client.UpdateWill(ctx, &pb.UpdateWillRequest{
		Id:                id,
		InactivitySeconds: int64(inactivity / time.Second),
		Beneficiaries:     beneficiariesToProto(beneficiaries),
		PersonalMessage:   personalMessage,
	})
	if err != nil {
		return nil, err
	}
	return resp.Will, nil
}

// PulseWill resets the inactivity clock and returns the new deadline.
func (s *WillKeeperClientService) PulseWill(ctx context.Context, id string) (time.Time, error) {
	resp, err := s.client.PulseWill(ctx, &pb.PulseWillRequest{Id: id})
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(resp.DeadlineUnix, 0), nil
}

func (s *WillKeeperClientService) DeleteWill(ctx context.Context, id string) error {
	_, err := s.client.DeleteWill(ctx, &pb.DeleteWillRequest{Id: id})
	return err
}

func (s *WillKeeperClientService) ClaimWill(ctx context.Context, id string) (*pb.ClaimWillResponse, error) {
	return s.client.ClaimWill(ctx, &pb.ClaimWillRequest{Id: id})
}

func (s *WillKeeperClientService) AttachmentUploadURL(ctx context.Context, willID string) (string, error) {
	resp, err := s.client.GetAttachmentUploadUrl(ctx, &pb.GetAttachmentUploadUrlRequest{WillId: willID})
	if err != nil {
		return "", err
	}
	return resp.Url, nil
}

func (s *WillKeeperClientService) AttachmentDownloadURL(ctx context.Context, willID string) (string, error) {
	resp, err := s.client.GetAttachmentDownloadUrl(ctx, &pb.GetAttachmentDownloadUrlRequest{WillId: willID})
	if err != nil {
		return "", err
	}
	return resp.Url, nil
}
