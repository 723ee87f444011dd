package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapBackend struct {
	mu      sync.Mutex
	data    map[string][]byte
	readErr error
}

func newMapBackend() *mapBackend {
	return &mapBackend{data: map[string][]byte{}}
}

func (m *mapBackend) GetJSON(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return m.readErr
	}
	raw, ok := m.data[key]
	if !ok {
		return redis.Nil
	}
	return json.Unmarshal(raw, dest)
}

func (m *mapBackend) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *mapBackend) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func TestGetOrLoad_CachesLocally(t *testing.T) {
	c := New(nil, time.Minute)
	var loads int32

	load := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&loads, 1)
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		value, err := GetOrLoad(context.Background(), c, "k", load)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, value)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestGetOrLoad_ErrorsAreNotCached(t *testing.T) {
	c := New(nil, time.Minute)
	calls := 0

	load := func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("db down")
		}
		return 42, nil
	}

	_, err := GetOrLoad(context.Background(), c, "k", load)
	require.Error(t, err)

	value, err := GetOrLoad(context.Background(), c, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestGetOrLoad_ExpiresAfterTTL(t *testing.T) {
	c := New(nil, time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	calls := 0
	load := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	first, _ := GetOrLoad(context.Background(), c, "k", load)
	now = now.Add(2 * time.Minute)
	second, _ := GetOrLoad(context.Background(), c, "k", load)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestGetOrLoad_ReadsThroughBackend(t *testing.T) {
	backend := newMapBackend()
	require.NoError(t, backend.SetJSON(context.Background(), keyPrefix+"k", map[string]int{"x": 1}, 0))

	c := New(backend, time.Minute)
	value, err := GetOrLoad(context.Background(), c, "k", func(ctx context.Context) (map[string]int, error) {
		t.Fatal("loader should not be called when backend has the value")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, value["x"])
}

func TestGetOrLoad_BackendFailureFallsBackToLoader(t *testing.T) {
	backend := newMapBackend()
	backend.readErr = errors.New("connection refused")

	c := New(backend, time.Minute)
	value, err := GetOrLoad(context.Background(), c, "k", func(ctx context.Context) (string, error) {
		return "loaded", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "loaded", value)
}

func TestInvalidate(t *testing.T) {
	backend := newMapBackend()
	c := New(backend, time.Minute)

	_, err := GetOrLoad(context.Background(), c, "k", func(ctx context.Context) (string, error) {
		return "v1", nil
	})
	require.NoError(t, err)
	assert.Contains(t, backend.data, keyPrefix+"k")

	c.Invalidate(context.Background(), "k")
	assert.Equal(t, 0, c.Len())
	assert.NotContains(t, backend.data, keyPrefix+"k")

	value, err := GetOrLoad(context.Background(), c, "k", func(ctx context.Context) (string, error) {
		return "v2", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "v2", value)
}

func TestInvalidatePrefix(t *testing.T) {
	c := New(nil, time.Minute)
	for _, key := range []string{"badges:all", "badges:x", "entitytypes:all"} {
		_, _ = GetOrLoad(context.Background(), c, key, func(ctx context.Context) (int, error) { return 1, nil })
	}

	c.InvalidatePrefix("badges:")
	assert.Equal(t, 1, c.Len())
}

func TestGetOrLoad_CollapsesConcurrentMisses(t *testing.T) {
	c := New(nil, time.Minute)
	var loads int32
	release := make(chan struct{})

	load := func(ctx context.Context) (int, error) {
		atomic.AddInt32(&loads, 1)
		<-release
		return 7, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := GetOrLoad(context.Background(), c, "shared", load)
			assert.NoError(t, err)
			assert.Equal(t, 7, value)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&loads), int32(2))
}
