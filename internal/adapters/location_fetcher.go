package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"catppuccin-api/internal/ports"
	"catppuccin-api/internal/shared"
	"catppuccin-api/internal/types"
)

const (
	DefaultPortsURL      = "https://github.com/catppuccin/catppuccin/raw/main/resources/ports.yml"
	DefaultUserstylesURL = "https://github.com/catppuccin/userstyles/raw/main/scripts/userstyles.yml"
)

const defaultHTTPTimeout = 60 * time.Second
const defaultHTTPRetries = 3
const defaultHTTPRetryDelay = 200 * time.Millisecond
const maxHTTPRetryDelay = 2 * time.Second
const maxDocumentBytes = 32 << 20

type httpRetryConfig struct {
	timeout   time.Duration
	retries   int
	baseDelay time.Duration
}

func normalizeHTTPConfig(timeoutSec int, retries int, delayMs int) httpRetryConfig {
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	retryCount := retries
	if retryCount <= 0 {
		retryCount = defaultHTTPRetries
	}
	baseDelay := time.Duration(delayMs) * time.Millisecond
	if baseDelay <= 0 {
		baseDelay = defaultHTTPRetryDelay
	}
	return httpRetryConfig{
		timeout:   timeout,
		retries:   retryCount,
		baseDelay: baseDelay,
	}
}

// LocationFetcherAdapter reads each source document from its configured
// location: an http(s) URL is downloaded, anything else is a local path.
type LocationFetcherAdapter struct {
	Locations map[types.SourceKind]string
	// MaxBytes caps a downloaded document; zero means maxDocumentBytes.
	// Larger documents are rejected rather than cut short.
	MaxBytes int64
	http     httpRetryConfig
}

func NewLocationFetcherAdapter(locations map[types.SourceKind]string, timeoutSec int, retries int, retryDelayMs int) LocationFetcherAdapter {
	return LocationFetcherAdapter{
		Locations: locations,
		http:      normalizeHTTPConfig(timeoutSec, retries, retryDelayMs),
	}
}

// DefaultLocations points both documents at their upstream URLs.
func DefaultLocations() map[types.SourceKind]string {
	return map[types.SourceKind]string{
		types.SourceKindPorts:      DefaultPortsURL,
		types.SourceKindUserstyles: DefaultUserstylesURL,
	}
}

func (a LocationFetcherAdapter) Fetch(ctx context.Context, kind types.SourceKind) ([]byte, error) {
	location := strings.TrimSpace(a.Locations[kind])
	if location == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no location configured for %s document", kind))
	}
	if !isRemoteLocation(location) {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("%s document not found: %s", kind, location)).
				WithCause(err)
		}
		log.Ctx(ctx).Debug().Str("path", location).Int("bytes", len(data)).Msg("source document read")
		return data, nil
	}

	resp, err := doRequest(ctx, location, a.http)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to fetch %s document", kind)).
			WithCause(shared.HTTPStatusErrorWithBody(resp.StatusCode, location, strings.TrimSpace(string(body))))
	}
	limit := a.maxBytes()
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read %s document", kind)).
			WithCause(err)
	}
	if int64(len(data)) > limit {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s document exceeds %d bytes: %s", kind, limit, location))
	}
	log.Ctx(ctx).Info().Str("url", location).Int("bytes", len(data)).Msg("source document fetched")
	return data, nil
}

func (a LocationFetcherAdapter) maxBytes() int64 {
	if a.MaxBytes <= 0 {
		return maxDocumentBytes
	}
	return a.MaxBytes
}

func isRemoteLocation(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func doRequest(ctx context.Context, url string, cfg httpRetryConfig) (*http.Response, error) {
	client := &http.Client{Timeout: cfg.timeout}
	var lastErr error
	for attempt := 0; attempt < cfg.retries; attempt++ {
		if ctx.Err() != nil {
			return nil, canceled(ctx.Err())
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create request").
				WithCause(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, canceled(ctx.Err())
			}
			lastErr = err
			if attempt < cfg.retries-1 {
				if err := sleepContext(ctx, httpRetryDelay(attempt, cfg)); err != nil {
					return nil, canceled(err)
				}
				continue
			}
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("request failed").
				WithCause(err)
		}
		if (resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests) && attempt < cfg.retries-1 {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			log.Ctx(ctx).Debug().Str("url", url).Int("status", resp.StatusCode).Int("attempt", attempt+1).Msg("retrying request")
			if err := sleepContext(ctx, httpRetryDelay(attempt, cfg)); err != nil {
				return nil, canceled(err)
			}
			continue
		}
		return resp, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("request failed")
	}
	return nil, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("request failed").
		WithCause(lastErr)
}

func canceled(cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("request canceled").
		WithCause(cause)
}

func sleepContext(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func httpRetryDelay(attempt int, cfg httpRetryConfig) time.Duration {
	delay := cfg.baseDelay * time.Duration(1<<attempt)
	if delay > maxHTTPRetryDelay {
		delay = maxHTTPRetryDelay
	}
	jitter := time.Duration(time.Now().UnixNano() % int64(delay/2+1))
	return delay + jitter
}

var _ ports.DocumentFetcherPort = LocationFetcherAdapter{}
