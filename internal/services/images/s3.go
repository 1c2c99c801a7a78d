package images

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Config holds the S3-compatible storage settings. Endpoint may point at
// any S3-compatible provider, not just AWS.
type Config struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string

	// PublicBaseURL is the prefix public object URLs are built from,
	// e.g. a CDN domain. Trailing slash optional.
	PublicBaseURL string

	// Folder prefixes every object key, default "items".
	Folder string
}

// S3Uploader stores images in an S3-compatible bucket.
type S3Uploader struct {
	client        *s3.S3
	bucket        string
	publicBaseURL string
	folder        string
}

var _ Uploader = (*S3Uploader)(nil)

// NewS3Uploader builds an uploader from config.
func NewS3Uploader(cfg Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("image storage bucket is not configured")
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("creating storage session: %w", err)
	}

	folder := cfg.Folder
	if folder == "" {
		folder = "items"
	}

	return &S3Uploader{
		client:        s3.New(sess),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		folder:        folder,
	}, nil
}

// Upload stores the image publicly and returns its URL and object key.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, contentType string) (string, string, error) {
	key, err := objectKey(u.folder, contentType)
	if err != nil {
		return "", "", err
	}

	_, err = u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", "", fmt.Errorf("uploading image to storage: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.publicBaseURL, key), key, nil
}
