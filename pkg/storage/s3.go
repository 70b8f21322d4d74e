// Package storage uploads generated export files to S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Provider represents the S3-compatible storage provider
type Provider string

const (
	ProviderAWS    Provider = "aws"
	ProviderWasabi Provider = "wasabi"
)

type Config struct {
	Provider        Provider
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// Wasabi only, e.g. "s3.eu-central-1.wasabisys.com"
	WasabiEndpoint string
}

// WasabiEndpoints maps regions to Wasabi endpoints
var WasabiEndpoints = map[string]string{
	"us-east-1":      "s3.us-east-1.wasabisys.com",
	"us-east-2":      "s3.us-east-2.wasabisys.com",
	"us-west-1":      "s3.us-west-1.wasabisys.com",
	"eu-central-1":   "s3.eu-central-1.wasabisys.com",
	"eu-west-1":      "s3.eu-west-1.wasabisys.com",
	"eu-west-2":      "s3.eu-west-2.wasabisys.com",
	"ap-northeast-1": "s3.ap-northeast-1.wasabisys.com",
	"ap-southeast-1": "s3.ap-southeast-1.wasabisys.com",
}

// Endpoint returns the Wasabi endpoint for cfg: the explicit one, else the region's.
func (c Config) Endpoint() (string, error) {
	if c.WasabiEndpoint != "" {
		return c.WasabiEndpoint, nil
	}
	if ep, ok := WasabiEndpoints[c.Region]; ok {
		return ep, nil
	}
	return "", fmt.Errorf("unknown Wasabi region: %s", c.Region)
}

// Archive stores export files. The object key is returned on success.
type Archive interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type s3Archive struct {
	client *s3.Client
	bucket string
}

// NewS3Archive builds an Archive backed by AWS S3 or Wasabi.
func NewS3Archive(ctx context.Context, cfg Config) (Archive, error) {
	client, err := NewS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &s3Archive{client: client, bucket: cfg.Bucket}, nil
}

// NewS3Client creates an S3 client for AWS or Wasabi.
func NewS3Client(ctx context.Context, cfg Config) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.Provider != ProviderWasabi {
		return s3.NewFromConfig(awsCfg), nil
	}

	endpoint, err := cfg.Endpoint()
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String("https://" + endpoint)
		o.UsePathStyle = true
	}), nil
}

func (a *s3Archive) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to bucket %s: %w", key, a.bucket, err)
	}
	return key, nil
}
