package storage

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"studyhub/models"
)

// S3Client implements StorageInterface for Amazon S3 and S3-compatible
// services
type S3Client struct {
	client   *s3.S3
	uploader *s3manager.Uploader
	provider *models.StorageProvider
	bucket   string
	region   string
}

// NewS3Client creates a new S3 client
func NewS3Client(provider *models.StorageProvider) (*S3Client, error) {
	config := &aws.Config{
		Region: aws.String(provider.Region),
	}

	// Set credentials if provided
	if provider.AccessKey != "" && provider.SecretKey != "" {
		config.Credentials = credentials.NewStaticCredentials(
			provider.AccessKey,
			provider.SecretKey,
			"",
		)
	}

	// Set custom endpoint if provided (for S3-compatible services)
	if provider.Endpoint != "" {
		config.Endpoint = aws.String(provider.Endpoint)
		config.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}

	return &S3Client{
		client:   s3.New(sess),
		uploader: s3manager.NewUploader(sess),
		provider: provider,
		bucket:   provider.Bucket,
		region:   provider.Region,
	}, nil
}

// Upload uploads data to S3
func (s *S3Client) Upload(key string, data []byte) error {
	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})

	if err != nil {
		return NewStorageError("s3", "UPLOAD_FAILED", err.Error(), key)
	}

	return nil
}

// UploadStream uploads data from a stream to S3
func (s *S3Client) UploadStream(key string, reader io.Reader, size int64) error {
	_, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   reader,
	})

	if err != nil {
		return NewStorageError("s3", "UPLOAD_STREAM_FAILED", err.Error(), key)
	}

	return nil
}

// Download downloads data from S3
func (s *S3Client) Download(key string) ([]byte, error) {
	result, err := s.client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return nil, NewStorageError("s3", "DOWNLOAD_FAILED", err.Error(), key)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, NewStorageError("s3", "READ_FAILED", err.Error(), key)
	}

	return data, nil
}

// Delete deletes a file from S3
func (s *S3Client) Delete(key string) error {
	_, err := s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return NewStorageError("s3", "DELETE_FAILED", err.Error(), key)
	}

	return nil
}

// DeleteMultiple deletes multiple files from S3
func (s *S3Client) DeleteMultiple(keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make([]*s3.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, &s3.ObjectIdentifier{Key: aws.String(key)})
	}

	_, err := s.client.DeleteObjects(&s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &s3.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})

	if err != nil {
		return NewStorageError("s3", "DELETE_MULTIPLE_FAILED", err.Error(), "")
	}

	return nil
}

// Exists checks if a file exists in S3
func (s *S3Client) Exists(key string) (bool, error) {
	_, err := s.client.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && (aerr.Code() == "NotFound" || aerr.Code() == s3.ErrCodeNoSuchKey) {
			return false, nil
		}
		return false, NewStorageError("s3", "HEAD_FAILED", err.Error(), key)
	}

	return true, nil
}

// List returns the keys of all objects under the given prefix
func (s *S3Client) List(prefix string) ([]string, error) {
	var keys []string

	err := s.client.ListObjectsV2Pages(&s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, object := range page.Contents {
			keys = append(keys, aws.StringValue(object.Key))
		}
		return true
	})

	if err != nil {
		return nil, NewStorageError("s3", "LIST_FAILED", err.Error(), prefix)
	}

	return keys, nil
}

// GetURL returns the public URL for a key
func (s *S3Client) GetURL(key string) (string, error) {
	if s.provider.BaseURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.provider.BaseURL, "/"), key), nil
	}

	if s.provider.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.provider.Endpoint, "/"), s.bucket, key), nil
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// GetPresignedURL generates a presigned download URL
func (s *S3Client) GetPresignedURL(key string, expiry time.Duration) (string, error) {
	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(expiry)
	if err != nil {
		return "", NewStorageError("s3", "PRESIGN_FAILED", err.Error(), key)
	}

	return url, nil
}

// GetProviderInfo returns provider information
func (s *S3Client) GetProviderInfo() *ProviderInfo {
	return &ProviderInfo{
		Name:     s.provider.Name,
		Type:     "s3",
		Region:   s.region,
		Endpoint: s.provider.Endpoint,
		Bucket:   s.bucket,
	}
}

// HealthCheck verifies the bucket is reachable
func (s *S3Client) HealthCheck() error {
	_, err := s.client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})

	if err != nil {
		return NewStorageError("s3", "HEALTH_CHECK_FAILED", err.Error(), "")
	}

	return nil
}
