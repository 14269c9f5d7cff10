//go:build !integration

package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setupCache    func() *ttlCache[string, bool]
		key           string
		expectedValue bool
		expectedFound bool
	}{
		{
			name: "returns value when exists and not expired",
			setupCache: func() *ttlCache[string, bool] {
				c := newTTLCache[string, bool]("test", 10, time.Minute)
				c.Set("2026-12-25", true)
				return c
			},
			key:           "2026-12-25",
			expectedValue: true,
			expectedFound: true,
		},
		{
			name: "caches negative lookups",
			setupCache: func() *ttlCache[string, bool] {
				c := newTTLCache[string, bool]("test", 10, time.Minute)
				c.Set("2026-12-24", false)
				return c
			},
			key:           "2026-12-24",
			expectedValue: false,
			expectedFound: true,
		},
		{
			name: "returns false when key not found",
			setupCache: func() *ttlCache[string, bool] {
				return newTTLCache[string, bool]("test", 10, time.Minute)
			},
			key:           "2026-01-01",
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setupCache: func() *ttlCache[string, bool] {
				c := newTTLCache[string, bool]("test", 10, 50*time.Millisecond)
				c.Set("2026-12-25", true)
				time.Sleep(100 * time.Millisecond)
				return c
			},
			key:           "2026-12-25",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setupCache()
			defer c.Stop()
			value, found := c.Get(tt.key)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedValue, value)
			}
		})
	}
}

func TestTTLCache_Set(t *testing.T) {
	type op struct {
		key   string
		value bool
	}
	tests := []struct {
		name     string
		capacity int
		ops      []op
		validate func(*testing.T, *ttlCache[string, bool])
	}{
		{
			name:     "evicts LRU when at capacity",
			capacity: 2,
			ops:      []op{{"a", true}, {"b", true}, {"c", true}},
			validate: func(t *testing.T, c *ttlCache[string, bool]) {
				_, okA := c.Get("a")
				_, okB := c.Get("b")
				_, okC := c.Get("c")
				assert.False(t, okA, "first entry evicted")
				assert.True(t, okB)
				assert.True(t, okC)
				assert.Equal(t, int64(1), c.Metrics().Evictions)
			},
		},
		{
			name:     "updates existing entry",
			capacity: 10,
			ops:      []op{{"a", false}, {"a", true}},
			validate: func(t *testing.T, c *ttlCache[string, bool]) {
				value, ok := c.Get("a")
				assert.True(t, ok)
				assert.True(t, value)
				assert.Equal(t, 1, c.Metrics().Size)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTTLCache[string, bool]("test", tt.capacity, time.Minute)
			defer c.Stop()
			for _, o := range tt.ops {
				c.Set(o.key, o.value)
			}
			tt.validate(t, c)
		})
	}
}

func TestTTLCache_MoveToFront(t *testing.T) {
	c := newTTLCache[string, bool]("test", 3, time.Minute)
	defer c.Stop()

	c.Set("1", true)
	c.Set("2", true)
	c.Set("3", true)

	// "2" becomes the LRU entry
	c.Get("1")
	c.Set("4", true)

	_, ok1 := c.Get("1")
	_, ok2 := c.Get("2")
	_, ok3 := c.Get("3")
	_, ok4 := c.Get("4")

	assert.True(t, ok1)
	assert.False(t, ok2)
	assert.True(t, ok3)
	assert.True(t, ok4)
}

func TestTTLCache_Cleanup(t *testing.T) {
	c := newTTLCache[string, bool]("test", 10, 50*time.Millisecond)
	defer c.Stop()

	c.Set("1", true)
	c.Set("2", false)
	time.Sleep(100 * time.Millisecond)

	c.cleanup()

	assert.Equal(t, 0, c.Metrics().Size)
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	c := newTTLCache[string, bool]("test", 10, time.Minute)
	defer c.Stop()

	c.Set("1", true)
	c.Set("2", true)
	c.Get("1")

	c.Invalidate("1")
	_, ok := c.Get("1")
	assert.False(t, ok)

	c.Invalidate("missing")

	c.Clear()
	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Zero(t, m.Hits)
	assert.Zero(t, m.Misses)
}

func TestTTLCache_StopTwice(t *testing.T) {
	c := newTTLCache[string, bool]("test", 10, time.Minute)
	assert.NotPanics(t, func() {
		c.Stop()
		c.Stop()
	})
}

func TestTTLCache_Concurrency(t *testing.T) {
	c := newTTLCache[string, bool]("test", 100, time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				key := fmt.Sprintf("%d-%d", g, j)
				c.Set(key, j%2 == 0)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, c.Metrics().Size)
}
