package ports

import (
	"context"
	"io"
)

type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	DeleteObject(ctx context.Context, key string) error
	GetPublicURL(key string) string
	GetBucket() string
}
