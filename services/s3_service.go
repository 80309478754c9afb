package services

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 5 * time.Minute

// PhotoService issues presigned S3 URLs for contact photos
type PhotoService struct {
	Presigner *s3.PresignClient
	Bucket    string
	Clock     func() time.Time
}

// NewPhotoService builds a presigner from the default AWS configuration
func NewPhotoService(ctx context.Context, region, bucket string) (*PhotoService, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &PhotoService{Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)), Bucket: bucket}, nil
}

// GenerateUploadURL returns a presigned PUT URL and the object key for a photo
// of the given contact
func (ps *PhotoService) GenerateUploadURL(ctx context.Context, contactID, fileName, fileType string) (string, string, error) {
	now := time.Now
	if ps.Clock != nil {
		now = ps.Clock
	}
	key := fmt.Sprintf("contact-photos/%s/%s-%s", contactID, now().UTC().Format("20060102150405"), path.Base(fileName))
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ps.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigned, err := ps.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return presigned.URL, key, nil
}

// GenerateReadURL returns a presigned GET URL for an object key
func (ps *PhotoService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(ps.Bucket),
		Key:    aws.String(key),
	}
	presigned, err := ps.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign read: %w", err)
	}
	return presigned.URL, nil
}
