package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage stores objects in an S3 bucket fronted by baseURL (the bucket
// website endpoint or a CDN distribution).
type S3Storage struct {
	client   *s3.Client
	bucket   string
	baseURL  string
	maxBytes int64
}

func NewS3Storage(region, bucket, baseURL string, maxBytes int64) (*S3Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		client:   s3.NewFromConfig(cfg),
		bucket:   bucket,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

func (s *S3Storage) UploadGarmentImage(data []byte, filename string, garmentID int64) (string, error) {
	if err := validateUpload(data, filename, s.maxBytes); err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%d/%s", garmentFolder, garmentID, uniqueName(filename))
	return s.put(key, data, contentTypeForName(filename))
}

func (s *S3Storage) UploadUserPhoto(data []byte, filename string, profileID int64) (string, error) {
	if err := validateUpload(data, filename, s.maxBytes); err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%d/%s", userPhotosFolder, profileID, uniqueName(filename))
	return s.put(key, data, contentTypeForName(filename))
}

func (s *S3Storage) UploadTryonResult(data []byte, contentType string, profileID, garmentID int64) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("result image is empty")
	}
	return s.put(tryonResultKey(profileID, garmentID, contentType), data, contentType)
}

func (s *S3Storage) put(key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

func (s *S3Storage) Delete(fileURL string) error {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(fileURL, prefix) {
		return fmt.Errorf("not an S3 storage url: %s", fileURL)
	}
	key := strings.TrimPrefix(fileURL, prefix)

	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
