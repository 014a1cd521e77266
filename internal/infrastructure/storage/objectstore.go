// Package storage wraps the S3-compatible object storage backend used for
// report attachments. Blobs are addressed by namespaced keys of the form
// tickets/{ticketID}/{filename}; the relational store only ever holds the
// key, never the bytes.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// opTimeout bounds uploads to the storage backend. There is no retry: a
// failed attempt surfaces immediately to the caller. Downloads are bounded
// by the request context instead, since streaming outlives the Get call.
const opTimeout = 10 * time.Second

// ObjectStore is the gateway contract consumed by the application layer.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	URLFor(key string) string
}

// ObjectStorage is the minio-backed ObjectStore implementation. It is
// constructed once at process start from an explicit config struct; there
// is no ambient global client.
type ObjectStorage struct {
	client *minio.Client
	cfg    sharedConfig.StorageConfig
	logger logger.Interface
}

// NewObjectStorage builds the gateway. It fails fast when the storage
// configuration is incomplete: attachment features degrade to a hard
// failure, never a silent skip.
func NewObjectStorage(cfg sharedConfig.StorageConfig, log logger.Interface) (*ObjectStorage, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("object storage is not configured (region, namespace and bucket are required)")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		// OCI S3 compatibility endpoint, derived from the namespace/region pair.
		endpoint = fmt.Sprintf("%s.compat.objectstorage.%s.oraclecloud.com", cfg.Namespace, cfg.Region)
	}

	// A plain-http endpoint is allowed for local development setups.
	secure := true
	if strings.HasPrefix(endpoint, "http://") {
		endpoint = strings.TrimPrefix(endpoint, "http://")
		secure = false
	} else {
		endpoint = strings.TrimPrefix(endpoint, "https://")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &ObjectStorage{
		client: client,
		cfg:    cfg,
		logger: log.Named("storage"),
	}, nil
}

// Put uploads a blob under key. A single failed attempt surfaces as a
// StorageError; the caller decides what to abort.
func (s *ObjectStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Errorw("object upload failed", "key", key, "error", err)
		return errors.NewStorageError("could not upload file to cloud storage", err.Error())
	}

	s.logger.Infow("object uploaded", "key", key, "size", size)
	return nil
}

// Get streams a blob back. Used when the deployment serves attachments
// directly instead of redirecting to a public bucket URL. The returned
// reader owns its request context: the download stays live after Get
// returns and is released on Close.
func (s *ObjectStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	ctx, cancel := context.WithCancel(ctx)

	obj, err := s.client.GetObject(ctx, s.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		cancel()
		return nil, errors.NewStorageError("could not retrieve file from cloud storage", err.Error())
	}

	// GetObject is lazy; Stat forces the request so a missing key fails
	// here instead of on the caller's first Read.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		cancel()
		return nil, errors.NewStorageError("could not retrieve file from cloud storage", err.Error())
	}

	return &objectReader{obj: obj, cancel: cancel}, nil
}

type objectReader struct {
	obj    *minio.Object
	cancel context.CancelFunc
}

func (r *objectReader) Read(p []byte) (int, error) {
	return r.obj.Read(p)
}

func (r *objectReader) Close() error {
	err := r.obj.Close()
	r.cancel()
	return err
}

// URLFor builds the deterministic public retrieval URL for a key from the
// region/namespace/bucket triple, or from an explicitly configured base URL.
func (s *ObjectStorage) URLFor(key string) string {
	if s.cfg.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.cfg.PublicBaseURL, url.PathEscape(key))
	}
	return fmt.Sprintf("https://objectstorage.%s.oraclecloud.com/n/%s/b/%s/o/%s",
		s.cfg.Region, s.cfg.Namespace, s.cfg.Bucket, url.PathEscape(key))
}
