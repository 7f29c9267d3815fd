package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"proposalcraft/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// putObjectAPI is the part of *s3.Client the storage uses.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage stores logos and exported documents in an S3 compatible bucket.
type S3Storage struct {
	client    putObjectAPI
	bucket    string
	region    string
	endpoint  string
	publicURL string
	logger    *zap.Logger
}

func NewS3Storage(ctx context.Context, cfg config.S3Config, creds config.AWSConfig, logger *zap.Logger) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, errors.New("S3 region is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.Endpoint != "" {
		// MinIO and LocalStack need explicit credentials and a fixed endpoint.
		endpoint := cfg.Endpoint
		loadOpts = append(loadOpts,
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, "")),
			awsconfig.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
				func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{URL: endpoint, HostnameImmutable: true, SigningRegion: cfg.Region}, nil
				},
			)),
		)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true
		}
	})
	return newS3Storage(client, cfg, logger), nil
}

func newS3Storage(client putObjectAPI, cfg config.S3Config, logger *zap.Logger) *S3Storage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		endpoint:  cfg.Endpoint,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}
}

// Upload writes body under key, replacing any previous object, and returns
// its public URL.
func (s *S3Storage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("[storage][s3] upload failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}
	s.logger.Info("[storage][s3] object uploaded", zap.String("key", key), zap.String("content_type", contentType))
	return s.URL(key), nil
}

// URL returns the public URL of key.
func (s *S3Storage) URL(key string) string {
	switch {
	case s.publicURL != "":
		return fmt.Sprintf("%s/%s", s.publicURL, key)
	case s.endpoint != "":
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	}
}
