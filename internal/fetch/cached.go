package fetch

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/md-icon-localize/internal/cache"
)

// CachedFetcher fetches remote content through a cache store: an entry already
// in the store is returned without touching the network, otherwise the content
// is downloaded and persisted under the entry name.
type CachedFetcher struct {
	store   cache.Store
	options *Options
	refresh bool
	verbose bool
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	Options *Options
	Refresh bool // always download, still persisting the result
	Verbose bool
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		Options: DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(store cache.Store, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	return &CachedFetcher{
		store:   store,
		options: config.Options,
		refresh: config.Refresh,
		verbose: config.Verbose,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool // Whether this result came from the store
	Persisted bool // Whether a fresh download was written to the store
}

// Fetch returns the content stored under key, downloading it from urlStr when
// the store has no such entry. A failure to persist the download is logged and
// does not fail the fetch.
func (f *CachedFetcher) Fetch(ctx context.Context, key, urlStr string) (*CachedResult, error) {
	if !f.refresh && f.store != nil && f.store.Exists(key) {
		data, err := f.store.Read(key)
		if err == nil {
			if f.verbose {
				log.Printf("[CACHE] Using cached %s (%d bytes)", key, len(data))
			}
			return &CachedResult{
				Result: &Result{
					URL:        urlStr,
					Body:       data,
					StatusCode: 200,
				},
				FromCache: true,
			}, nil
		}
		log.Printf("[CACHE] Cached %s unreadable, downloading again: %v", key, err)
	}

	if f.verbose {
		log.Printf("[FETCH] Downloading %s", urlStr)
	}
	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", key, err)
	}

	cached := &CachedResult{Result: result}
	if f.store != nil {
		if err := f.store.Write(key, result.Body); err != nil {
			log.Printf("[CACHE] Failed to persist %s: %v", key, err)
		} else {
			cached.Persisted = true
		}
	}
	return cached, nil
}
