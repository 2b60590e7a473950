package metadata

import (
	"context"
)

// Repository is a small persistent key/value table. A missing key is not
// an error: Get returns (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
