// Package service contains the business logic for the pick-ship service.
package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/pickship/internal/domain/model"
	"github.com/guttosm/pickship/internal/logger"
	"github.com/guttosm/pickship/internal/metrics"
	"github.com/guttosm/pickship/internal/service/cache"
)

// DefaultCapacity is the box capacity used when the caller supplies none.
const DefaultCapacity = 10.0

// ManifestPacker defines the interface for manifest packing operations.
type ManifestPacker interface {
	Pack(order model.Order, inv model.Inventory, capacity float64) (model.Manifest, error)
	PackDefault(order model.Order, inv model.Inventory) (model.Manifest, error)
	// Capacity returns the default box capacity.
	Capacity() float64
	// InvalidateCache clears memoised manifests
	InvalidateCache()
}

// Option configures a PackerService.
type Option func(*PackerService)

// PackerService implements ManifestPacker with first-fit-descending packing.
// Successful manifests can be memoised; results are identical either way.
type PackerService struct {
	capacity float64
	cache    cache.Cache
}

// NewPackerService creates a new PackerService with the given options.
func NewPackerService(opts ...Option) *PackerService {
	s := &PackerService{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCapacity sets the default box capacity. Non-positive values are ignored.
func WithCapacity(capacity float64) Option {
	return func(s *PackerService) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}

// WithCache enables manifest caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *PackerService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *PackerService) {
		s.cache = c
	}
}

// Capacity returns the default box capacity.
func (s *PackerService) Capacity() float64 {
	return s.capacity
}

// PackDefault packs the order using the default capacity.
func (s *PackerService) PackDefault(order model.Order, inv model.Inventory) (model.Manifest, error) {
	return s.Pack(order, inv, s.capacity)
}

// Pack packs the order into boxes of the given capacity.
func (s *PackerService) Pack(order model.Order, inv model.Inventory, capacity float64) (model.Manifest, error) {
	start := time.Now()

	var key string
	if s.cache != nil {
		key = Fingerprint(order, inv, capacity)
		if m, ok := s.cache.Get(key); ok {
			metrics.RecordPacking(time.Since(start), "cached")
			return m, nil
		}
	}

	m, err := Pack(order, inv, capacity)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordPacking(duration, errorStatus(err))
		return model.Manifest{}, err
	}

	log := logger.Logger()
	log.Debug().
		Int("order_number", order.Number).
		Int("line_items", len(order.LineItems)).
		Int("boxes", m.BoxCount()).
		Float64("weight", m.Weight).
		Float64("capacity", capacity).
		Dur("duration", duration).
		Msg("Order packed")

	metrics.RecordPacking(duration, "success")
	metrics.RecordBoxes(m.BoxCount())

	if s.cache != nil {
		s.cache.Set(key, m)
	}
	return m, nil
}

// InvalidateCache clears the manifest cache.
func (s *PackerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Stop releases the cache's background workers.
func (s *PackerService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// Fingerprint builds a cache key covering every input that affects the manifest:
// the capacity, the order number, each line item, and the weight of each referenced item.
func Fingerprint(order model.Order, inv model.Inventory, capacity float64) string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(capacity, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(order.Number))
	for _, li := range order.LineItems {
		b.WriteByte('|')
		b.WriteString(strconv.Quote(li.Code))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(li.Quantity))
		if item, ok := inv[li.Code]; ok {
			b.WriteByte('@')
			b.WriteString(strconv.FormatFloat(item.Weight, 'g', -1, 64))
		}
	}
	return b.String()
}

// errorStatus maps a packing error onto a metrics label.
func errorStatus(err error) string {
	switch {
	case errors.Is(err, model.ErrUnknownItemCode):
		return "unknown_item_code"
	case errors.Is(err, model.ErrItemExceedsCapacity):
		return "item_exceeds_capacity"
	case errors.Is(err, model.ErrInvalidCapacity):
		return "invalid_capacity"
	case errors.Is(err, model.ErrInvalidLineItem):
		return "invalid_line_item"
	default:
		return "error"
	}
}
