package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
)

// ImageStorage uploads image blobs to an S3-compatible bucket and returns
// publicly reachable URLs. Objects are only ever created, never mutated.
type ImageStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// New connects to the object store and ensures the bucket exists.
func New(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*ImageStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return &ImageStorage{
		client:    client,
		bucket:    bucket,
		publicURL: fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket),
	}, nil
}

// Upload stores the blob under path and returns its public URL.
func (s *ImageStorage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})

	logger.Log.Infow(
		"op", "upload object",
		"bucket", s.bucket,
		"path", path,
		"size", len(data),
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return s.publicURL + "/" + path, nil
}
