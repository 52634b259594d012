package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ArthurMoreiraS/OperlyService/internal/config"
)

// Uploader stores re-encoded media on S3-compatible object storage.
type Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: cfg.S3PublicURL,
	}
}

func (u *Uploader) Enabled() bool {
	return u != nil
}

// Put writes the object and returns its public URL.
func (u *Uploader) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if u == nil {
		return "", fmt.Errorf("object storage not configured")
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	if u.publicURL != "" {
		return fmt.Sprintf("%s/%s", u.publicURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key), nil
}
