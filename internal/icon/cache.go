package icon

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/cristianoliveira/tabstrip/internal/logging"
)

const (
	// maxAssetBytes caps the payload size of a fetched icon asset.
	maxAssetBytes = 5 << 20
	// assetTTL is how long a fetched asset stays cached.
	assetTTL = 24 * time.Hour
	// defaultFetchTimeout bounds a single fetch when the caller does not
	// configure one.
	defaultFetchTimeout = 30 * time.Second
)

// allowedMIME is the content-type whitelist for remote assets.
var allowedMIME = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/svg+xml": true,
	"image/webp":    true,
}

// HTTPClient is the http.Client surface the cache depends on.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type cacheEntry struct {
	data      []byte
	createdAt time.Time
	expiresAt time.Time
}

// Cache fetches remote icon assets, deduplicates concurrent fetches for
// the same key, and retains payloads for a fixed TTL. Entries are owned
// exclusively by the cache; Resolve hands out copies.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	group   *singleflight.Group
	epoch   uint64

	client       HTTPClient
	fetchTimeout time.Duration
	now          func() time.Time
	logger       logging.Logger
}

// CacheOptions configures a Cache. Zero values select defaults.
type CacheOptions struct {
	Client       HTTPClient
	FetchTimeout time.Duration
	Logger       logging.Logger
}

// NewCache creates an empty cache.
func NewCache(opts CacheOptions) *Cache {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	timeout := opts.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Noop()
	}
	return &Cache{
		entries:      make(map[string]*cacheEntry),
		group:        &singleflight.Group{},
		client:       client,
		fetchTimeout: timeout,
		now:          time.Now,
		logger:       logger,
	}
}

// Resolve returns the asset bytes for key, fetching them if no fresh
// cached entry exists. Concurrent calls for the same key share a single
// fetch. The context only governs how long the caller waits: an abandoned
// call does not abort the underlying fetch, which may still complete and
// populate the cache for future reuse.
func (c *Cache) Resolve(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && c.now().Before(entry.expiresAt) {
		data := cloneBytes(entry.data)
		c.mu.Unlock()
		return data, nil
	}
	epoch := c.epoch
	group := c.group
	c.mu.Unlock()

	ch := group.DoChan(key, func() (any, error) {
		data, err := c.fetch(key)
		if err != nil {
			return nil, err
		}
		c.store(epoch, key, data)
		return data, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return cloneBytes(res.Val.([]byte)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fetch performs one GET for key and validates status, content type and
// payload size. It runs detached from any caller context, bounded only by
// the configured fetch timeout.
func (c *Cache) fetch(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, key, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d for %s", ErrNetworkFailure, resp.StatusCode, key)
	}

	mediaType := resp.Header.Get("Content-Type")
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = parsed
	}
	if !allowedMIME[mediaType] {
		return nil, fmt.Errorf("%w: content type %q", ErrUnsupportedFormat, mediaType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetworkFailure, err)
	}
	if len(data) > maxAssetBytes {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrOversizedAsset, maxAssetBytes)
	}

	c.logger.Debug("fetched icon asset", "key", key, "bytes", len(data))
	return data, nil
}

// store retains a fetched payload unless the cache was cleared while the
// fetch was in flight. Expired entries are swept on the same mutation.
func (c *Cache) store(epoch uint64, key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		// Cleared mid-flight: waiters still get the result, the cache
		// does not retain it.
		return
	}
	now := c.now()
	c.entries[key] = &cacheEntry{
		data:      cloneBytes(data),
		createdAt: now,
		expiresAt: now.Add(assetTTL),
	}
	c.sweepLocked(now)
}

// sweepLocked drops expired entries. Callers must hold c.mu.
func (c *Cache) sweepLocked(now time.Time) {
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// Clear releases all cached entries and in-flight bookkeeping. In-flight
// fetches complete normally and deliver to their waiters, but their
// results are not retained.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
	c.group = &singleflight.Group{}
	c.epoch++
}

// Len returns the number of retained entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func cloneBytes(data []byte) []byte {
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied
}
