package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"agri-works/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ImageStore writes image objects and reports where they are served from.
type ImageStore interface {
	// Put writes body under key in a single request and returns its public URL.
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)

	// Prefix is the key prefix every product image is stored under.
	Prefix() string
}

// objectPutter is the subset of the S3 client used by s3Store.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Store implements ImageStore against an S3-compatible endpoint.
type s3Store struct {
	client    objectPutter
	bucket    string
	prefix    string
	publicURL string
	logger    zerolog.Logger
}

// NewS3Store creates an image store for the configured bucket. Requests use
// path-style addressing so MinIO and Supabase Storage work unchanged.
func NewS3Store(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (ImageStore, error) {
	logger = logger.With().Str("component", "s3-image-store").Logger()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = cfg.Endpoint
	}

	logger.Info().
		Str("endpoint", cfg.Endpoint).
		Str("bucket", cfg.Bucket).
		Str("prefix", cfg.Prefix).
		Msg("image store initialised")

	return newS3Store(client, cfg.Bucket, cfg.Prefix, publicURL, logger), nil
}

func newS3Store(client objectPutter, bucket, prefix, publicURL string, logger zerolog.Logger) *s3Store {
	return &s3Store{
		client:    client,
		bucket:    bucket,
		prefix:    prefix,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

// Put writes body under key and returns its public URL.
func (s *s3Store) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to put object")
		return "", fmt.Errorf("failed to put object (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Int("bytes", len(body)).
		Msg("image stored")

	return s.url(key), nil
}

// Prefix returns the key prefix for product images.
func (s *s3Store) Prefix() string {
	return s.prefix
}

func (s *s3Store) url(key string) string {
	return s.publicURL + "/" + s.bucket + "/" + key
}
