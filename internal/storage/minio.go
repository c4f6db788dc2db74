package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// To point at Cloudflare R2, change STORAGE_ENDPOINT and credentials.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage creates a MinIO client, ensures the bucket exists and returns
// a ready-to-use MinioStorage. The bucket stays private; photos are served via
// the image proxy.
func NewMinioStorage(ctx context.Context, endpoint, accessKey, secretKey, bucket, region string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		log.Printf("storage: created bucket %q", bucket)
	}

	return &MinioStorage{client: client, bucket: bucket}, nil
}

// Put streams reader to the bucket under key. size must be the exact byte count
// (pass -1 only if the size is genuinely unknown, MinIO will buffer it).
func (s *MinioStorage) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string, meta map[string]string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: meta,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// List walks every object under prefix. User metadata is requested inline;
// servers that ignore the extension return it empty.
func (s *MinioStorage) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:       prefix,
		Recursive:    true,
		WithMetadata: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("list objects %q: %w", prefix, info.Err)
		}
		objects = append(objects, toObject(info))
	}
	return objects, nil
}

// Get opens the object at key, returning ErrNotFound when it does not exist.
func (s *MinioStorage) Get(ctx context.Context, key string) (io.ReadCloser, *Object, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, s.mapErr(key, err)
	}
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, nil, s.mapErr(key, err)
	}
	o := toObject(info)
	return obj, &o, nil
}

// Delete removes the object at key from the bucket.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

func (s *MinioStorage) mapErr(key string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return fmt.Errorf("get object %q: %w", key, err)
}

func toObject(info minio.ObjectInfo) Object {
	return Object{
		Key:          info.Key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
		Metadata:     info.UserMetadata,
	}
}
