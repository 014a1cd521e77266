package storage

import (
	"context"
	"io"

	"helpdesk/internal/shared/errors"
)

// Disabled is the ObjectStore used when no storage backend is configured.
// Attachment operations fail hard instead of silently dropping files.
type Disabled struct{}

func NewDisabled() Disabled {
	return Disabled{}
}

func (Disabled) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return errors.NewStorageError("object storage is not configured")
}

func (Disabled) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, errors.NewStorageError("object storage is not configured")
}

func (Disabled) URLFor(key string) string {
	return ""
}
