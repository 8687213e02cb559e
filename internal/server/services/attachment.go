package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lasttx/willkeeper/internal/common"
	sc "github.com/lasttx/willkeeper/internal/server/config"
	"github.com/lasttx/willkeeper/internal/server/models"
	"github.com/lasttx/willkeeper/internal/server/repositories/repomanager"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams for the AWS SDK so error paths are testable without a live backend.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const presignValidity = 15 * time.Minute

// AttachmentService hands out presigned S3 URLs for the document a testator
// can attach to a will (a scanned letter, key material, instructions). The
// server never proxies the bytes; clients talk to the object store directly.
type AttachmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewAttachmentService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *AttachmentService {
	return &AttachmentService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("wills/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *AttachmentService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

func (s *AttachmentService) getPresignedPutUrl(ctx context.Context) (string, string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

func (s *AttachmentService) getPresignedGetUrl(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// RequestUpload issues a presigned PUT URL for a will's attachment and records
// the storage key on the will. Only the owner of an Active will may attach.
func (s *AttachmentService) RequestUpload(ctx context.Context, willID, requester string) (string, error) {
	repo := s.repomanager.Wills(s.db)

	will, err := repo.Get(ctx, willID)
	if err != nil {
		return "", err
	}
	if will.Owner != requester {
		return "", fmt.Errorf("%w: %s does not own will %s", common.ErrUnauthorized, requester, willID)
	}
	if will.Status != models.StatusActive {
		return "", fmt.Errorf("%w: will %s is %s", common.ErrInvalidState, willID, will.Status)
	}

	key, url, err := s.getPresignedPutUrl(ctx)
	if err != nil {
		return "", fmt.Errorf("error presigning upload: %w", err)
	}

	will.AttachmentKey = key
	will.UpdatedAt = time.Now()
	if err := repo.UpdateIfStatus(ctx, models.StatusActive, will); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStore, err)
	}

	return url, nil
}

// RequestDownload issues a presigned GET URL for the will's attachment. The
// owner may download at any time; a beneficiary only once the will has
// expired or been claimed.
func (s *AttachmentService) RequestDownload(ctx context.Context, willID, requester string) (string, error) {
	will, err := s.repomanager.Wills(s.db).Get(ctx, willID)
	if err != nil {
		return "", err
	}
	if will.AttachmentKey == "" {
		return "", fmt.Errorf("%w: will %s has no attachment", common.ErrNotFound, willID)
	}

	if will.Owner != requester {
		if will.FindBeneficiary(requester) == nil {
			return "", fmt.Errorf("%w: %s may not read will %s", common.ErrUnauthorized, requester, willID)
		}
		if will.Status != models.StatusExpired && will.Status != models.StatusClaimed {
			return "", fmt.Errorf("%w: attachment is sealed until expiry", common.ErrInvalidState)
		}
	}

	url, err := s.getPresignedGetUrl(ctx, will.AttachmentKey)
	if err != nil {
		return "", fmt.Errorf("error presigning download: %w", err)
	}
	return url, nil
}
