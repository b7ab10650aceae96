package app

import (
	"catppuccin-api/internal/adapters"
	"catppuccin-api/internal/ports"
	"catppuccin-api/internal/types"
)

type Service struct {
	Fetcher ports.DocumentFetcherPort
	Source  ports.SourceDocumentPort
	Cache   ports.DocumentCachePort
}

// NewService wires the document adapters for cfg. Empty locations fall back
// to the upstream URLs. With a redis URL the fetcher is fronted by the
// document cache; the caller owns closing it through Close.
func NewService(cfg SourceConfig) (Service, error) {
	locations := adapters.DefaultLocations()
	if cfg.PortsLocation != "" {
		locations[types.SourceKindPorts] = cfg.PortsLocation
	}
	if cfg.UserstylesLocation != "" {
		locations[types.SourceKindUserstyles] = cfg.UserstylesLocation
	}
	var fetcher ports.DocumentFetcherPort = adapters.NewLocationFetcherAdapter(
		locations,
		cfg.HTTPTimeoutSec,
		cfg.HTTPRetries,
		cfg.HTTPRetryDelayMs,
	)

	service := Service{}
	if cfg.RedisURL != "" {
		cache, err := adapters.NewRedisDocumentCache(cfg.RedisURL)
		if err != nil {
			return Service{}, err
		}
		service.Cache = cache
		fetcher = adapters.NewCachedFetcherAdapter(fetcher, cache, cfg.CacheTTL)
	}
	service.Fetcher = fetcher
	service.Source = adapters.NewDocumentSourceAdapter(fetcher)
	return service, nil
}

// NewServiceWithFetcher builds a Service over an existing fetcher, without a
// cache.
func NewServiceWithFetcher(fetcher ports.DocumentFetcherPort) Service {
	return Service{
		Fetcher: fetcher,
		Source:  adapters.NewDocumentSourceAdapter(fetcher),
	}
}

func (s Service) Close() error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Close()
}
