package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/lasttx/willkeeper/internal/common"
	pb "github.com/lasttx/willkeeper/internal/proto"
	"github.com/lasttx/willkeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError maps a service error onto the gRPC status space. The
// mapping is deliberate: Aborted marks a lost claim race so clients know the
// inheritance went to someone else, and DataLoss marks a committed claim
// whose transfer is stuck and needs operator follow-up.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrInvalidState):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrAlreadyClaimed):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, common.ErrScheduling), errors.Is(err, common.ErrStore):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, common.ErrTransferFailed):
		return status.Error(codes.DataLoss, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func beneficiariesFromProto(in []*pb.Beneficiary) []models.Beneficiary {
	out := make([]models.Beneficiary, 0, len(in))
	for _, b := range in {
		if b == nil {
			continue
		}
		out = append(out, models.Beneficiary{
			Address:    b.Address,
			Percentage: b.Percentage,
			Name:       b.Name,
			Email:      b.Email,
		})
	}
	return out
}

func willToProto(w *models.Will) *pb.Will {
	out := &pb.Will{
		Id:                w.ID,
		Owner:             w.Owner,
		InactivitySeconds: int64(w.InactivityDuration / time.Second),
		LastActivityUnix:  w.LastActivity.Unix(),
		DeadlineUnix:      w.Deadline().Unix(),
		PersonalMessage:   w.PersonalMessage,
		Status:            string(w.Status),
		ClaimedBy:         w.ClaimedBy,
		HasAttachment:     w.AttachmentKey != "",
		CreatedAtUnix:     w.CreatedAt.Unix(),
	}
	if !w.ClaimedAt.IsZero() {
		out.ClaimedAtUnix = w.ClaimedAt.Unix()
	}
	for _, b := range w.Beneficiaries {
		out.Beneficiaries = append(out.Beneficiaries, &pb.Beneficiary{
			Address:    b.Address,
			Percentage: b.Percentage,
			Name:       b.Name,
			Email:      b.Email,
		})
	}
	return out
}

func (s *GRPCServer) CreateWill(ctx context.Context, req *pb.CreateWillRequest) (*pb.CreateWillResponse, error) {
	owner, ok := callerAddress(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}

	will, err := s.wills.Create(ctx, owner,
		beneficiariesFromProto(req.Beneficiaries),
		time.Duration(req.InactivitySeconds)*time.Second,
		req.PersonalMessage)
	if err != nil {
		s.logger.Error(ctx, "create failed", "owner", owner, "error", err.Error())
		return nil, statusFromError(err)
	}

	return &pb.CreateWillResponse{Will: willToProto(will)}, nil
}

func (s *GRPCServer) GetWill(ctx context.Context, req *pb.GetWillRequest) (*pb.GetWillResponse, error) {
	caller, ok := callerAddress(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}

	will, err := s.wills.Get(ctx, req.Id)
	if err != nil {
		return nil, statusFromError(err)
	}
	// Owners see their wills; beneficiaries see wills they stand to inherit.
	if will.Owner != caller && will.FindBeneficiary(caller) == nil {
		return nil, status.Error(codes.PermissionDenied, "not a party to this will")
	}

	return &pb.GetWillResponse{Will: willToProto(will)}, nil
}

func (s *GRPCServer) ListWills(ctx context.Context, req *pb.ListWillsRequest) (*pb.ListWillsResponse, error) {
	caller, ok := callerAddress(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}

	wills, err := s.wills.List(ctx, caller)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.ListWillsResponse{}
	for _, w := range wills {
		resp.Wills = append(resp.Wills, willToProto(w))
	}
	return resp, nil
}

func (s *GRPCServer) UpdateWill(ctx context.Context, req *pb.UpdateWillRequest) (*pb.UpdateWillResponse, error) {
	caller, err := s.requireOwner(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	err = s.wills.Update(ctx, req.Id,
		time.Duration(req.InactivitySeconds)*time.Second,
		beneficiariesFromProto(req.Beneficiaries),
		req.PersonalMessage)
	if err != nil {
		s.logger.Error(ctx, "update failed", "will_id", req.Id, "owner", caller, "error", err.Error())
		return nil, statusFromError(err)
	}

	will, err := s.wills.Get(ctx, req.Id)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.UpdateWillResponse{Will: willToProto(will)}, nil
}

func (s *GRPCServer) PulseWill(ctx context.Context, req *pb.PulseWillRequest) (*pb.PulseWillResponse, error) {
	if _, err := s.requireOwner(ctx, req.Id); err != nil {
		return nil, err
	}

	if err := s.wills.Pulse(ctx, req.Id); err != nil {
		return nil, statusFromError(err)
	}

	will, err := s.wills.Get(ctx, req.Id)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.PulseWillResponse{DeadlineUnix: will.Deadline().Unix()}, nil
}

func (s *GRPCServer) DeleteWill(ctx context.Context, req *pb.DeleteWillRequest) (*pb.DeleteWillResponse, error) {
	if _, err := s.requireOwner(ctx, req.Id); err != nil {
		return nil, err
	}

	if err := s.wills.Delete(ctx, req.Id); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.DeleteWillResponse{}, nil
}

func (s *GRPCServer) ClaimWill(ctx context.Context, req *pb.ClaimWillRequest) (*pb.ClaimWillResponse, error) {
	claimant, ok := callerAddress(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}

	receipt, err := s.wills.Claim(ctx, req.Id, claimant)
	if err != nil {
		s.logger.Error(ctx, "claim failed", "will_id", req.Id, "claimant", claimant, "error", err.Error())
		return nil, statusFromError(err)
	}

	return &pb.ClaimWillResponse{
		Confirmation:   receipt.Confirmation,
		Percentage:     receipt.Percentage,
		ExecutedAtUnix: receipt.ExecutedAt.Unix(),
	}, nil
}

func (s *GRPCServer) GetAttachmentUploadUrl(ctx context.Context, req *pb.GetAttachmentUploadUrlRequest) (*pb.GetAttachmentUploadUrlResponse, error) {
	caller, ok := callerAddress(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}

	url, err := s.attachments.RequestUpload(ctx, req.WillId, caller)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.GetAttachmentUploadUrlResponse{Url: url}, nil
}

func (s *GRPCServer) GetAttachmentDownloadUrl(ctx context.Context, req *pb.GetAttachmentDownloadUrlRequest) (*pb.GetAttachmentDownloadUrlResponse, error) {
	caller, ok := callerAddress(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}

	url, err := s.attachments.RequestDownload(ctx, req.WillId, caller)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.GetAttachmentDownloadUrlResponse{Url: url}, nil
}

// requireOwner loads the will and checks the caller owns it. Mutating
// operations go through this before touching the lifecycle engine.
func (s *GRPCServer) requireOwner(ctx context.Context, willID string) (string, error) {
	caller, ok := callerAddress(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing identity")
	}

	will, err := s.wills.Get(ctx, willID)
	if err != nil {
		return "", statusFromError(err)
	}
	if will.Owner != caller {
		return "", status.Error(codes.PermissionDenied, "not the owner")
	}
	return caller, nil
}
