package client

import (
	"context"
	"testing"

	"github.com/lasttx/willkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestAccessTokenInterceptor_AttachesToken(t *testing.T) {
	s := &WillKeeperClientService{accessToken: "tok-123"}

	var captured metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		captured, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	if err := s.accessTokenInterceptor(context.Background(), "/m", nil, nil, nil, invoker); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	values := captured.Get(common.AccessTokenHeaderName)
	if len(values) != 1 || values[0] != "tok-123" {
		t.Fatalf("token not attached: %v", captured)
	}
}
