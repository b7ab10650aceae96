package ports

import (
	"context"
	"time"

	"catppuccin-api/internal/types"
)

// DocumentCachePort stores raw source documents between process restarts.
// Get returns (nil, false, nil) on a miss.
type DocumentCachePort interface {
	Get(ctx context.Context, kind types.SourceKind) ([]byte, bool, error)
	Set(ctx context.Context, kind types.SourceKind, data []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}
