package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSStorage implements the Storage interface for Google Cloud Storage, so
// experiment artifacts can be published to a shared bucket.
type GCSStorage struct {
	client       *storage.Client
	bucket       string
	objectPrefix string
	ctx          context.Context
}

// NewGCSStorage creates a new GCSStorage instance
func NewGCSStorage(ctx context.Context, bucketName, objectPrefix, credentialsFile string) (*GCSStorage, error) {
	var client *storage.Client
	var err error

	if credentialsFile != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	} else {
		// Use application default credentials
		client, err = storage.NewClient(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStorage{
		client:       client,
		bucket:       bucketName,
		objectPrefix: objectPrefix,
		ctx:          ctx,
	}, nil
}

func (s *GCSStorage) objectName(p string) string {
	if s.objectPrefix == "" {
		return p
	}
	return path.Join(s.objectPrefix, p)
}

// GetWriter returns a writer that streams the artifact into the bucket
func (s *GCSStorage) GetWriter(p string) (io.WriteCloser, error) {
	obj := s.client.Bucket(s.bucket).Object(s.objectName(p))
	return obj.NewWriter(s.ctx), nil
}

// GetReader returns a reader for an artifact in the bucket
func (s *GCSStorage) GetReader(p string) (io.ReadCloser, error) {
	obj := s.client.Bucket(s.bucket).Object(s.objectName(p))
	reader, err := obj.NewReader(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open GCS object %s: %w", s.objectName(p), err)
	}
	return reader, nil
}

// FileExists checks if an artifact exists in the bucket
func (s *GCSStorage) FileExists(p string) bool {
	obj := s.client.Bucket(s.bucket).Object(s.objectName(p))
	_, err := obj.Attrs(s.ctx)
	return err == nil
}

// ListFiles lists artifacts under a directory matching a name prefix
func (s *GCSStorage) ListFiles(dir string, prefix string) ([]string, error) {
	query := &storage.Query{Prefix: s.objectName(path.Join(dir, prefix))}

	var results []string
	it := s.client.Bucket(s.bucket).Objects(s.ctx, query)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list GCS objects: %w", err)
		}

		name := attrs.Name
		if s.objectPrefix != "" {
			name = strings.TrimPrefix(name, s.objectPrefix+"/")
		}
		results = append(results, name)
	}

	return results, nil
}

// Close releases the underlying client
func (s *GCSStorage) Close() error {
	return s.client.Close()
}
