package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courtsched/core/config"
	"courtsched/core/logger"
	"courtsched/modules/migration/dto"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Archiver uploads finished migration reports to an S3 bucket as JSON,
// one object per run, for audit.
type S3Archiver struct {
	client *s3.Client
	bucket string
}

func NewS3Archiver(cfg config.ArchiveConfig) *S3Archiver {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return &S3Archiver{
		client: s3.New(opts),
		bucket: cfg.Bucket,
	}
}

func (a *S3Archiver) Archive(ctx context.Context, report *dto.MigrationReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal migration report: %w", err)
	}

	key := fmt.Sprintf("migrations/%s.json", time.Now().UTC().Format("20060102T150405Z"))
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("upload migration report: %w", err)
	}

	logger.Info("S3Archiver:Archive:Uploaded", "bucket", a.bucket, "key", key)
	return nil
}
