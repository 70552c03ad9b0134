package cache

import (
	"testing"

	"github.com/guttosm/pickship/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

type mapCache struct {
	entries map[string]model.Manifest
	stopped bool
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]model.Manifest)}
}

func (m *mapCache) Get(key string) (model.Manifest, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *mapCache) Set(key string, value model.Manifest) { m.entries[key] = value }

func (m *mapCache) Invalidate(key string) { delete(m.entries, key) }

func (m *mapCache) Clear() { m.entries = make(map[string]model.Manifest) }

func (m *mapCache) Stop() { m.stopped = true }

func (m *mapCache) Metrics() Metrics {
	return Metrics{Size: len(m.entries)}
}

func TestCacheContract(t *testing.T) {
	var c CacheWithMetrics = newMapCache()

	_, found := c.Get("k1")
	assert.False(t, found)

	want := model.NewManifest(7, []model.Box{{Number: 0, Weight: 3, LineItems: []model.LineItem{{Code: "A", Quantity: 1}}}})
	c.Set("k1", want)
	c.Set("k2", model.NewManifest(8, nil))

	got, found := c.Get("k1")
	assert.True(t, found)
	assert.Equal(t, want, got)
	assert.Equal(t, 2, c.Metrics().Size)

	c.Invalidate("k1")
	_, found = c.Get("k1")
	assert.False(t, found)

	c.Clear()
	assert.Equal(t, Metrics{}, c.Metrics())

	c.Stop()
	assert.True(t, c.(*mapCache).stopped)
}
