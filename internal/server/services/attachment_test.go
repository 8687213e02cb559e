package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/lasttx/willkeeper/internal/common"
	sc "github.com/lasttx/willkeeper/internal/server/config"
	"github.com/lasttx/willkeeper/internal/server/models"
	"github.com/lasttx/willkeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttachmentFixture(t *testing.T) (*AttachmentService, repomanager.RepositoryManager) {
	t.Helper()
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "attachments",
	}
	repos := repomanager.NewInMemoryRepositoryManager()
	return NewAttachmentService(nil, repos, cfg), repos
}

// stubPresign replaces the AWS seams with fakes returning fixed URLs.
func stubPresign(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://store/put/" + *in.Key}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://store/get/" + *in.Key}, nil
	}
}

func seedWill(t *testing.T, repos repomanager.RepositoryManager, status models.WillStatus) *models.Will {
	t.Helper()
	now := time.Now()
	will := &models.Will{
		ID:                 "w-1",
		Owner:              ownerAddr,
		Beneficiaries:      singleBeneficiary(),
		InactivityDuration: time.Hour,
		LastActivity:       now,
		Status:             status,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, repos.Wills(nil).Create(context.Background(), will))
	return will
}

func TestGetRandomStorageKey_Shape(t *testing.T) {
	key := GetRandomStorageKey()
	assert.True(t, strings.HasPrefix(key, "wills/"), key)
	assert.Len(t, strings.Split(key, "/"), 5)
}

func Test_getPresignClient_LoadError(t *testing.T) {
	svc, _ := newAttachmentFixture(t)

	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := svc.getPresignClient()
	require.EqualError(t, err, "load-fail")
}

func TestRequestUpload_StoresKeyAndReturnsURL(t *testing.T) {
	stubPresign(t)
	svc, repos := newAttachmentFixture(t)
	will := seedWill(t, repos, models.StatusActive)

	url, err := svc.RequestUpload(context.Background(), will.ID, ownerAddr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://store/put/wills/"), url)

	stored, err := repos.Wills(nil).Get(context.Background(), will.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.AttachmentKey)
	assert.True(t, strings.HasSuffix(url, stored.AttachmentKey))
}

func TestRequestUpload_Guards(t *testing.T) {
	stubPresign(t)
	svc, repos := newAttachmentFixture(t)
	will := seedWill(t, repos, models.StatusActive)

	_, err := svc.RequestUpload(context.Background(), "missing", ownerAddr)
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.RequestUpload(context.Background(), will.ID, benAddrB)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	expired := seedExpired(t, repos)
	_, err = svc.RequestUpload(context.Background(), expired.ID, ownerAddr)
	require.ErrorIs(t, err, common.ErrInvalidState)
}

func seedExpired(t *testing.T, repos repomanager.RepositoryManager) *models.Will {
	t.Helper()
	now := time.Now()
	will := &models.Will{
		ID:                 "w-expired",
		Owner:              ownerAddr,
		Beneficiaries:      singleBeneficiary(),
		InactivityDuration: time.Hour,
		LastActivity:       now.Add(-2 * time.Hour),
		Status:             models.StatusExpired,
		AttachmentKey:      "wills/2025/6/1/doc",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, repos.Wills(nil).Create(context.Background(), will))
	return will
}

func TestRequestDownload_OwnerAlwaysBeneficiaryAfterExpiry(t *testing.T) {
	stubPresign(t)
	svc, repos := newAttachmentFixture(t)

	active := seedWill(t, repos, models.StatusActive)
	active.AttachmentKey = "wills/2025/6/1/doc"
	require.NoError(t, repos.Wills(nil).UpdateIfStatus(context.Background(), models.StatusActive, active))

	// Owner can download while the will is still active.
	url, err := svc.RequestDownload(context.Background(), active.ID, ownerAddr)
	require.NoError(t, err)
	assert.Equal(t, "https://store/get/wills/2025/6/1/doc", url)

	// Beneficiary is sealed out until expiry.
	_, err = svc.RequestDownload(context.Background(), active.ID, benAddrB)
	require.ErrorIs(t, err, common.ErrInvalidState)

	expired := seedExpired(t, repos)
	url, err = svc.RequestDownload(context.Background(), expired.ID, benAddrB)
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	// A stranger never gets a URL.
	_, err = svc.RequestDownload(context.Background(), expired.ID, benAddrC)
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestRequestDownload_NoAttachment(t *testing.T) {
	stubPresign(t)
	svc, repos := newAttachmentFixture(t)
	will := seedWill(t, repos, models.StatusActive)

	_, err := svc.RequestDownload(context.Background(), will.ID, ownerAddr)
	require.ErrorIs(t, err, common.ErrNotFound)
}
