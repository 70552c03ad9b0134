package service

import (
	"testing"
	"time"

	"github.com/guttosm/pickship/internal/domain/model"
	"github.com/guttosm/pickship/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func classicOrder() model.Order {
	return model.Order{Number: 1001, CustomerCode: "C1", LineItems: []model.LineItem{
		{Code: "W6", Quantity: 1},
		{Code: "W5", Quantity: 1},
		{Code: "W4", Quantity: 1},
		{Code: "W3", Quantity: 1},
		{Code: "W2", Quantity: 2},
	}}
}

func TestNewPackerService(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		validate func(*testing.T, *PackerService)
	}{
		{
			name:    "uses default capacity when no options",
			options: nil,
			validate: func(t *testing.T, svc *PackerService) {
				assert.Equal(t, DefaultCapacity, svc.Capacity())
				assert.Nil(t, svc.cache)
			},
		},
		{
			name:    "uses custom capacity with option",
			options: []Option{WithCapacity(25)},
			validate: func(t *testing.T, svc *PackerService) {
				assert.Equal(t, 25.0, svc.Capacity())
			},
		},
		{
			name:    "ignores non-positive capacity",
			options: []Option{WithCapacity(-3)},
			validate: func(t *testing.T, svc *PackerService) {
				assert.Equal(t, DefaultCapacity, svc.Capacity())
			},
		},
		{
			name:    "enables cache with option",
			options: []Option{WithCache(100, 5*time.Minute)},
			validate: func(t *testing.T, svc *PackerService) {
				assert.NotNil(t, svc.cache)
			},
		},
		{
			name:    "zero cache size leaves cache disabled",
			options: []Option{WithCache(0, 5*time.Minute)},
			validate: func(t *testing.T, svc *PackerService) {
				assert.Nil(t, svc.cache)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPackerService(tt.options...)
			if tt.validate != nil {
				tt.validate(t, svc)
			}
		})
	}
}

func TestPackerService_PackDefault(t *testing.T) {
	svc := NewPackerService(WithCapacity(10))

	m, err := svc.PackDefault(classicOrder(), weightedInventory())
	require.NoError(t, err)
	assert.Equal(t, 3, m.BoxCount())
	assert.Equal(t, 22.0, m.Weight)
}

func TestPackerService_Pack_CapacityOverridesDefault(t *testing.T) {
	svc := NewPackerService(WithCapacity(10))

	m, err := svc.Pack(classicOrder(), weightedInventory(), 22)
	require.NoError(t, err)
	assert.Equal(t, 1, m.BoxCount())
}

func TestPackerService_Pack_Errors(t *testing.T) {
	svc := NewPackerService()
	inv := weightedInventory()

	_, err := svc.Pack(model.Order{LineItems: []model.LineItem{{Code: "??", Quantity: 1}}}, inv, 10)
	assert.ErrorIs(t, err, model.ErrUnknownItemCode)

	_, err = svc.Pack(model.Order{LineItems: []model.LineItem{{Code: "H11", Quantity: 1}}}, inv, 10)
	assert.ErrorIs(t, err, model.ErrItemExceedsCapacity)

	_, err = svc.Pack(classicOrder(), inv, 0)
	assert.ErrorIs(t, err, model.ErrInvalidCapacity)
}

func TestPackerService_Cache(t *testing.T) {
	svc := NewPackerService(WithCache(10, time.Minute))
	inv := weightedInventory()

	first, err := svc.Pack(classicOrder(), inv, 10)
	require.NoError(t, err)

	second, err := svc.Pack(classicOrder(), inv, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	sc, ok := svc.cache.(*ShardedCache)
	require.True(t, ok)
	assert.Equal(t, int64(1), sc.Metrics().Hits)

	svc.InvalidateCache()
	assert.Zero(t, sc.Metrics().Size)
}

func TestPackerService_CacheInterface(t *testing.T) {
	inv := weightedInventory()
	order := classicOrder()
	key := Fingerprint(order, inv, 10)
	cached := model.NewManifest(order.Number, nil)

	mockCache := new(mocks.MockCache)
	mockCache.On("Get", key).Return(cached, true).Once()

	svc := NewPackerService(WithCacheInterface(mockCache))
	m, err := svc.Pack(order, inv, 10)

	require.NoError(t, err)
	assert.Equal(t, cached, m)
	mockCache.AssertExpectations(t)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestPackerService_ErrorsAreNotCached(t *testing.T) {
	mockCache := new(mocks.MockCache)
	mockCache.On("Get", mock.Anything).Return(model.Manifest{}, false)

	svc := NewPackerService(WithCacheInterface(mockCache))
	_, err := svc.Pack(model.Order{LineItems: []model.LineItem{{Code: "??", Quantity: 1}}}, weightedInventory(), 10)

	assert.ErrorIs(t, err, model.ErrUnknownItemCode)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestPackerService_Stop(t *testing.T) {
	t.Run("stops the cache", func(t *testing.T) {
		mockCache := new(mocks.MockCache)
		mockCache.On("Stop").Return().Once()

		NewPackerService(WithCacheInterface(mockCache)).Stop()
		mockCache.AssertExpectations(t)
	})

	t.Run("without a cache", func(t *testing.T) {
		assert.NotPanics(t, func() { NewPackerService().Stop() })
	})

	t.Run("sharded cache stops more than once", func(t *testing.T) {
		svc := NewPackerService(WithCache(16, time.Minute))
		assert.NotPanics(t, func() {
			svc.Stop()
			svc.Stop()
		})
	})
}

func TestFingerprint(t *testing.T) {
	inv := weightedInventory()
	order := classicOrder()
	base := Fingerprint(order, inv, 10)

	assert.Equal(t, base, Fingerprint(order, inv, 10))
	assert.NotEqual(t, base, Fingerprint(order, inv, 11))

	renumbered := order
	renumbered.Number = 1002
	assert.NotEqual(t, base, Fingerprint(renumbered, inv, 10))

	heavier := model.NewInventory()
	for code, item := range inv {
		heavier[code] = item
	}
	w2 := heavier["W2"]
	w2.Weight = 2.5
	heavier["W2"] = w2
	assert.NotEqual(t, base, Fingerprint(order, heavier, 10))

	renamed := model.NewInventory()
	for code, item := range inv {
		item.Name = "renamed " + item.Name
		renamed[code] = item
	}
	assert.Equal(t, base, Fingerprint(order, renamed, 10))
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, "unknown_item_code", errorStatus(model.ErrUnknownItemCode))
	assert.Equal(t, "item_exceeds_capacity", errorStatus(model.ErrItemExceedsCapacity))
	assert.Equal(t, "invalid_capacity", errorStatus(model.ErrInvalidCapacity))
	assert.Equal(t, "invalid_line_item", errorStatus(model.ErrInvalidLineItem))
	assert.Equal(t, "error", errorStatus(assert.AnError))
}
