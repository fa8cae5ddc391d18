package icon

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func pngServer(t *testing.T, calls *atomic.Int32, payload []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCache_ResolveFetchesAndCaches(t *testing.T) {
	var calls atomic.Int32
	srv := pngServer(t, &calls, []byte("remote-bytes"))

	c := NewCache(CacheOptions{})

	data, err := c.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("remote-bytes"), data)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, c.Len())

	data, err = c.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("remote-bytes"), data)
	assert.Equal(t, int32(1), calls.Load(), "Second resolve should hit the cache")
}

func TestCache_ResolveReturnsCopies(t *testing.T) {
	srv := pngServer(t, nil, []byte("remote-bytes"))

	c := NewCache(CacheOptions{})

	first, err := c.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	first[0] = 'X'

	second, err := c.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("remote-bytes"), second, "Mutating one result should not affect the cache")
}

func TestCache_ConcurrentResolvesShareOneFetch(t *testing.T) {
	var calls atomic.Int32
	gate := make(chan struct{})
	var gateOnce sync.Once
	openGate := func() { gateOnce.Do(func() { close(gate) }) }

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-gate
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("remote-bytes"))
	}))
	defer srv.Close()
	defer openGate()

	c := NewCache(CacheOptions{})

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			data, err := c.Resolve(context.Background(), srv.URL)
			if err != nil {
				return err
			}
			if string(data) != "remote-bytes" {
				return fmt.Errorf("unexpected payload %q", data)
			}
			return nil
		})
	}

	// Give every goroutine time to join the in-flight fetch before the
	// handler is allowed to answer.
	time.Sleep(100 * time.Millisecond)
	openGate()

	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), calls.Load(), "Concurrent resolves for one key should share a single fetch")
}

func TestCache_ExpiredEntryIsRefetched(t *testing.T) {
	var calls atomic.Int32
	srv := pngServer(t, &calls, []byte("remote-bytes"))

	c := NewCache(CacheOptions{})
	base := time.Now()
	c.now = func() time.Time { return base }

	_, err := c.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())

	c.now = func() time.Time { return base.Add(assetTTL - time.Minute) }
	_, err = c.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "Entry within the TTL should be served from cache")

	c.now = func() time.Time { return base.Add(assetTTL + time.Minute) }
	_, err = c.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "Expired entry should be fetched again")
}

func TestCache_ClearDropsEntries(t *testing.T) {
	var calls atomic.Int32
	srv := pngServer(t, &calls, []byte("remote-bytes"))

	c := NewCache(CacheOptions{})

	_, err := c.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())

	_, err = c.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "Resolve after clear should fetch again")
}

func TestCache_ClearMidFlightDeliversButDoesNotRetain(t *testing.T) {
	started := make(chan struct{}, 1)
	gate := make(chan struct{})
	var gateOnce sync.Once
	openGate := func() { gateOnce.Do(func() { close(gate) }) }

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-gate
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("remote-bytes"))
	}))
	defer srv.Close()
	defer openGate()

	c := NewCache(CacheOptions{})

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := c.Resolve(context.Background(), srv.URL)
		done <- result{data: data, err: err}
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch never reached the server")
	}

	c.Clear()
	openGate()

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.Equal(t, []byte("remote-bytes"), res.data, "Waiter should still receive the in-flight result")
	case <-time.After(2 * time.Second):
		t.Fatal("resolve never returned")
	}
	assert.Equal(t, 0, c.Len(), "Result landing after a clear should not be retained")
}

func TestCache_AbandonedWaiterDoesNotAbortFetch(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{}, 1)
	gate := make(chan struct{})
	var gateOnce sync.Once
	openGate := func() { gateOnce.Do(func() { close(gate) }) }

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		select {
		case started <- struct{}{}:
		default:
		}
		<-gate
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("remote-bytes"))
	}))
	defer srv.Close()
	defer openGate()

	c := NewCache(CacheOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Resolve(ctx, srv.URL)
		done <- err
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch never reached the server")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled, "Abandoning caller should get its context error")
	case <-time.After(2 * time.Second):
		t.Fatal("resolve did not honor cancellation")
	}

	openGate()
	require.Eventually(t, func() bool { return c.Len() == 1 }, 2*time.Second, 10*time.Millisecond,
		"Detached fetch should complete and warm the cache")

	data, err := c.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("remote-bytes"), data)
	assert.Equal(t, int32(1), calls.Load(), "Warmed cache should serve without another fetch")
}

func TestCache_FetchFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantErr: ErrNetworkFailure,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "missing", http.StatusNotFound)
			},
			wantErr: ErrNetworkFailure,
		},
		{
			name: "disallowed content type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				_, _ = w.Write([]byte("hello"))
			},
			wantErr: ErrUnsupportedFormat,
		},
		{
			name: "empty content type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "")
				_, _ = w.Write([]byte("hello"))
			},
			wantErr: ErrUnsupportedFormat,
		},
		{
			name: "oversized payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "image/png")
				_, _ = w.Write(make([]byte, maxAssetBytes+1))
			},
			wantErr: ErrOversizedAsset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewCache(CacheOptions{})

			_, err := c.Resolve(context.Background(), srv.URL)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, c.Len(), "Failed fetches should not populate the cache")
		})
	}
}

func TestCache_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewCache(CacheOptions{})

	_, err := c.Resolve(context.Background(), url)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkFailure)
}
