package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	appconfig "github.com/ikkim/cart-backend/config"
)

const presignExpiry = 15 * time.Minute

// PresignedUpload is what a browser needs to PUT an image straight to the bucket.
type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
}

type S3Storage struct {
	presign *s3.PresignClient
	bucket  string
	region  string
	baseURL string
}

func NewS3Storage(ctx context.Context, cfg appconfig.S3Config) (*S3Storage, error) {
	var awsCfg aws.Config

	// Static credentials when configured, otherwise the default chain (env, shared files, IAM role).
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg = aws.Config{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		}
	} else {
		var err error
		awsCfg, err = config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}
	}

	return &S3Storage{
		presign: s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// PresignPut returns a presigned PUT for a fresh key under folder.
func (s *S3Storage) PresignPut(ctx context.Context, folder, filename, contentType string) (*PresignedUpload, error) {
	key := ObjectKey(folder, filename)

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		FileURL:   PublicURL(s.baseURL, s.bucket, s.region, key),
		Key:       key,
	}, nil
}

// ObjectKey builds "<folder>/<uuid><ext>"; the original name only contributes its extension.
func ObjectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.NewString(), ext)
}

// PublicURL is the read URL for key: the CDN base when set, else the bucket's S3 URL.
func PublicURL(baseURL, bucket, region, key string) string {
	if baseURL != "" {
		return fmt.Sprintf("%s/%s", baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}
