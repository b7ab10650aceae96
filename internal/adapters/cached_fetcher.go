package adapters

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"catppuccin-api/internal/ports"
	"catppuccin-api/internal/types"
)

// CachedFetcherAdapter serves documents from the cache when present and
// fills it after a successful fetch. Cache failures are logged and the
// underlying fetcher is used instead.
type CachedFetcherAdapter struct {
	Fetcher ports.DocumentFetcherPort
	Cache   ports.DocumentCachePort
	TTL     time.Duration
}

func NewCachedFetcherAdapter(fetcher ports.DocumentFetcherPort, cache ports.DocumentCachePort, ttl time.Duration) CachedFetcherAdapter {
	return CachedFetcherAdapter{Fetcher: fetcher, Cache: cache, TTL: ttl}
}

func (a CachedFetcherAdapter) Fetch(ctx context.Context, kind types.SourceKind) ([]byte, error) {
	if a.Cache == nil {
		return a.Fetcher.Fetch(ctx, kind)
	}
	data, ok, err := a.Cache.Get(ctx, kind)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("document", string(kind)).Msg("document cache read failed")
	} else if ok {
		log.Ctx(ctx).Debug().Str("document", string(kind)).Int("bytes", len(data)).Msg("document cache hit")
		return data, nil
	}

	data, err = a.Fetcher.Fetch(ctx, kind)
	if err != nil {
		return nil, err
	}
	if err := a.Cache.Set(ctx, kind, data, a.TTL); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("document", string(kind)).Msg("document cache write failed")
	}
	return data, nil
}

var _ ports.DocumentFetcherPort = CachedFetcherAdapter{}
