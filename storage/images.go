// images.go - Client for the external image hosting service
//
// Note images live on an S3-compatible object store. The backend never
// proxies image bytes: clients upload through short-lived presigned PUT
// URLs and the backend only destroys objects by their public ID when a
// note or account goes away.

package storage // Declares the package name

import (
	"context"
	"errors"
	"fmt"
	"time"

	appconfig "go-notes-backend/config" // Project config

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// presignValidity is how long an issued upload URL stays usable.
const presignValidity = 15 * time.Minute

// ErrHostingDisabled is returned when no bucket is configured.
var ErrHostingDisabled = errors.New("image hosting is not configured")

// ImageStore is the contract the handlers consume.
type ImageStore interface {
	// PresignUpload returns a fresh public ID and a presigned PUT URL for it.
	PresignUpload(ctx context.Context) (publicID string, uploadURL string, err error)
	// Destroy removes the hosted object behind a public ID.
	Destroy(ctx context.Context, publicID string) error
}

// New picks the store implementation from configuration. Without a bucket
// the Noop store is used and hosted-image operations degrade gracefully.
func New(cfg *appconfig.Config) (ImageStore, error) {
	if cfg.S3Bucket == "" {
		log.Warn().Msg("S3_BUCKET not set, image hosting disabled")
		return NoopStore{}, nil
	}
	return NewS3Store(cfg)
}

// S3Store hosts images in a single S3-compatible bucket.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

func NewS3Store(cfg *appconfig.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" { // MinIO or another custom endpoint
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})

	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
	}, nil
}

// storageKey generates a date-sharded object key used as the public ID.
func storageKey() string {
	d := time.Now()
	return fmt.Sprintf("notes/%d/%02d/%02d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *S3Store) PresignUpload(ctx context.Context) (string, string, error) {
	key := storageKey()

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

func (s *S3Store) Destroy(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &publicID,
	})
	return err
}

// NoopStore is used when hosting is not configured. Destroy succeeds so
// note and account deletion keep working; uploads are refused.
type NoopStore struct{}

func (NoopStore) PresignUpload(ctx context.Context) (string, string, error) {
	return "", "", ErrHostingDisabled
}

func (NoopStore) Destroy(ctx context.Context, publicID string) error {
	return nil
}
