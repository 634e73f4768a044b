// Package storage puts objects into an S3-compatible bucket.
package storage

import (
	"context"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type ObjectStore struct {
	client *minio.Client
	bucket string
	base   *url.URL
}

// Connect creates the client and makes sure the bucket exists.
func Connect(ctx context.Context, opts Options) (*ObjectStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, errors.Wrapf(err, "check bucket %s", opts.Bucket)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrapf(err, "create bucket %s", opts.Bucket)
		}
	}

	return &ObjectStore{client: client, bucket: opts.Bucket, base: client.EndpointURL()}, nil
}

// Put uploads r under key and returns the object's public URL.
func (s *ObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "put object %s", key)
	}
	return ObjectURL(s.base, s.bucket, key), nil
}

// ObjectURL builds a path-style URL for bucket/key under base.
func ObjectURL(base *url.URL, bucket, key string) string {
	u := *base
	u.Path = "/" + bucket + "/" + key
	return u.String()
}
