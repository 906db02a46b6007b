package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, objectKey string, body io.Reader, contentType string) (string, error)
		GetPublicLinkKey(objectKey string) string
	}

	S3Config struct {
		Bucket    string
		Region    string
		AccessKey string
		SecretKey string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

// NewAwsS3 returns nil, nil when no bucket is configured so callers can treat
// object storage as optional.
func NewAwsS3(ctx context.Context, cfg S3Config) (AwsS3, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: awsCfg.Region,
	}, nil
}

func (a *awsS3) UploadFile(ctx context.Context, objectKey string, body io.Reader, contentType string) (string, error) {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to s3: %w", objectKey, err)
	}
	return objectKey, nil
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}
