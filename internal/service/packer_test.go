package service

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/guttosm/pickship/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightedInventory() model.Inventory {
	return model.NewInventory(
		model.Item{Code: "W6", Name: "Six", Weight: 6},
		model.Item{Code: "W5", Name: "Five", Weight: 5},
		model.Item{Code: "W4", Name: "Four", Weight: 4},
		model.Item{Code: "W3", Name: "Three", Weight: 3},
		model.Item{Code: "W2", Name: "Two", Weight: 2},
		model.Item{Code: "X2", Name: "Other two", Weight: 2},
		model.Item{Code: "H11", Name: "Heavy", Weight: 11},
	)
}

func weights(items []model.Item) []float64 {
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = item.Weight
	}
	return out
}

func TestUnroll(t *testing.T) {
	inv := weightedInventory()

	t.Run("expands quantities in line-item order", func(t *testing.T) {
		order := model.Order{LineItems: []model.LineItem{
			{Code: "W2", Quantity: 2},
			{Code: "W5", Quantity: 1},
			{Code: "W2", Quantity: 1},
		}}

		items, err := Unroll(order, inv)
		require.NoError(t, err)

		codes := make([]string, len(items))
		for i, item := range items {
			codes[i] = item.Code
		}
		assert.Equal(t, []string{"W2", "W2", "W5", "W2"}, codes)
	})

	t.Run("empty order", func(t *testing.T) {
		items, err := Unroll(model.Order{}, inv)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("unknown code fails before anything else", func(t *testing.T) {
		order := model.Order{LineItems: []model.LineItem{
			{Code: "W2", Quantity: 1},
			{Code: "NOPE", Quantity: 1},
		}}
		_, err := Unroll(order, inv)
		assert.ErrorIs(t, err, model.ErrUnknownItemCode)
	})

	t.Run("zero quantity", func(t *testing.T) {
		order := model.Order{LineItems: []model.LineItem{{Code: "W2", Quantity: 0}}}
		_, err := Unroll(order, inv)
		assert.ErrorIs(t, err, model.ErrInvalidLineItem)
	})

	t.Run("negative quantity", func(t *testing.T) {
		order := model.Order{LineItems: []model.LineItem{{Code: "W2", Quantity: -1}}}
		_, err := Unroll(order, inv)
		assert.ErrorIs(t, err, model.ErrInvalidLineItem)
	})

	t.Run("exactly the unit limit", func(t *testing.T) {
		order := model.Order{LineItems: []model.LineItem{
			{Code: "W2", Quantity: MaxUnits - 1},
			{Code: "W3", Quantity: 1},
		}}
		items, err := Unroll(order, inv)
		require.NoError(t, err)
		assert.Len(t, items, MaxUnits)
	})

	unitLimitTests := []struct {
		name      string
		lineItems []model.LineItem
	}{
		{name: "one line over the unit limit", lineItems: []model.LineItem{{Code: "W2", Quantity: MaxUnits + 1}}},
		{name: "huge single quantity", lineItems: []model.LineItem{{Code: "W2", Quantity: 5_000_000_000}}},
		{name: "lines summing past the limit", lineItems: []model.LineItem{{Code: "W2", Quantity: MaxUnits}, {Code: "W3", Quantity: 1}}},
		{name: "quantities that overflow int", lineItems: []model.LineItem{{Code: "W2", Quantity: math.MaxInt}, {Code: "W3", Quantity: math.MaxInt}}},
	}
	for _, tt := range unitLimitTests {
		t.Run(tt.name, func(t *testing.T) {
			var items []model.Item
			var err error
			assert.NotPanics(t, func() {
				items, err = Unroll(model.Order{LineItems: tt.lineItems}, inv)
			})
			assert.ErrorIs(t, err, model.ErrInvalidLineItem)
			assert.Nil(t, items)
		})
	}
}

func TestFirstFitDescending(t *testing.T) {
	inv := weightedInventory()
	item := func(code string) model.Item { return inv[code] }

	tests := []struct {
		name      string
		items     []model.Item
		capacity  float64
		wantBins  [][]float64
		wantTotal []float64
	}{
		{
			name:      "classic example packs into three bins",
			items:     []model.Item{item("W6"), item("W5"), item("W4"), item("W3"), item("W2"), item("W2")},
			capacity:  10,
			wantBins:  [][]float64{{6, 4}, {5, 3, 2}, {2}},
			wantTotal: []float64{10, 10, 2},
		},
		{
			name:      "input order does not matter",
			items:     []model.Item{item("W2"), item("W3"), item("W6"), item("W2"), item("W4"), item("W5")},
			capacity:  10,
			wantBins:  [][]float64{{6, 4}, {5, 3, 2}, {2}},
			wantTotal: []float64{10, 10, 2},
		},
		{
			name:      "item equal to capacity fills a bin",
			items:     []model.Item{item("W5"), item("W5")},
			capacity:  5,
			wantBins:  [][]float64{{5}, {5}},
			wantTotal: []float64{5, 5},
		},
		{
			name:      "earlier bins are filled before new ones open",
			items:     []model.Item{item("W6"), item("W5"), item("W3")},
			capacity:  9,
			wantBins:  [][]float64{{6, 3}, {5}},
			wantTotal: []float64{9, 5},
		},
		{
			name:      "no items",
			items:     nil,
			capacity:  10,
			wantBins:  [][]float64{},
			wantTotal: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bins, err := FirstFitDescending(tt.items, tt.capacity)
			require.NoError(t, err)
			require.Len(t, bins, len(tt.wantBins))
			for i, b := range bins {
				assert.Equal(t, tt.wantBins[i], weights(b.Items), "bin %d", i)
				assert.Equal(t, tt.wantTotal[i], b.Weight, "bin %d", i)
				assert.LessOrEqual(t, b.Weight, tt.capacity)
			}
		})
	}
}

func TestFirstFitDescending_StableTieBreak(t *testing.T) {
	inv := weightedInventory()
	items := []model.Item{inv["X2"], inv["W2"], inv["X2"]}

	bins, err := FirstFitDescending(items, 4)
	require.NoError(t, err)
	require.Len(t, bins, 2)
	assert.Equal(t, "X2", bins[0].Items[0].Code)
	assert.Equal(t, "W2", bins[0].Items[1].Code)
	assert.Equal(t, "X2", bins[1].Items[0].Code)
}

func TestFirstFitDescending_DoesNotReorderInput(t *testing.T) {
	inv := weightedInventory()
	items := []model.Item{inv["W2"], inv["W6"]}

	_, err := FirstFitDescending(items, 10)
	require.NoError(t, err)
	assert.Equal(t, "W2", items[0].Code)
}

func TestFirstFitDescending_Errors(t *testing.T) {
	inv := weightedInventory()

	t.Run("item heavier than capacity", func(t *testing.T) {
		bins, err := FirstFitDescending([]model.Item{inv["W2"], inv["H11"]}, 10)
		assert.ErrorIs(t, err, model.ErrItemExceedsCapacity)
		assert.Contains(t, err.Error(), "H11")
		assert.Nil(t, bins)
	})

	for _, capacity := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		t.Run(fmt.Sprintf("capacity %v", capacity), func(t *testing.T) {
			_, err := FirstFitDescending([]model.Item{inv["W2"]}, capacity)
			assert.ErrorIs(t, err, model.ErrInvalidCapacity)
		})
	}
}

func TestReroll(t *testing.T) {
	inv := weightedInventory()
	bins := []Bin{
		{Items: []model.Item{inv["W6"], inv["W2"], inv["X2"]}, Weight: 10},
		{Items: []model.Item{inv["W3"], inv["W2"], inv["W3"], inv["W2"]}, Weight: 10},
	}

	boxes, err := Reroll(bins, inv)
	require.NoError(t, err)
	require.Len(t, boxes, 2)

	assert.Equal(t, 0, boxes[0].Number)
	assert.Equal(t, []model.LineItem{{Code: "W6", Quantity: 1}, {Code: "W2", Quantity: 1}, {Code: "X2", Quantity: 1}}, boxes[0].LineItems)
	assert.Equal(t, 10.0, boxes[0].Weight)

	assert.Equal(t, 1, boxes[1].Number)
	assert.Equal(t, []model.LineItem{{Code: "W3", Quantity: 2}, {Code: "W2", Quantity: 2}}, boxes[1].LineItems)
	assert.Equal(t, 10.0, boxes[1].Weight)
}

func TestReroll_UnknownCode(t *testing.T) {
	bins := []Bin{{Items: []model.Item{{Code: "GHOST", Weight: 1}}, Weight: 1}}

	_, err := Reroll(bins, weightedInventory())
	assert.ErrorIs(t, err, model.ErrUnknownItemCode)
}

func TestPack(t *testing.T) {
	inv := weightedInventory()

	t.Run("classic example", func(t *testing.T) {
		order := model.Order{Number: 1001, CustomerCode: "C1", LineItems: []model.LineItem{
			{Code: "W6", Quantity: 1},
			{Code: "W5", Quantity: 1},
			{Code: "W4", Quantity: 1},
			{Code: "W3", Quantity: 1},
			{Code: "W2", Quantity: 2},
		}}

		m, err := Pack(order, inv, 10)
		require.NoError(t, err)

		assert.Equal(t, 1001, m.OrderNumber)
		assert.Equal(t, 22.0, m.Weight)
		require.Equal(t, 3, m.BoxCount())
		assert.Equal(t, []model.LineItem{{Code: "W6", Quantity: 1}, {Code: "W4", Quantity: 1}}, m.Boxes[0].LineItems)
		assert.Equal(t, []model.LineItem{{Code: "W5", Quantity: 1}, {Code: "W3", Quantity: 1}, {Code: "W2", Quantity: 1}}, m.Boxes[1].LineItems)
		assert.Equal(t, []model.LineItem{{Code: "W2", Quantity: 1}}, m.Boxes[2].LineItems)
		assert.Equal(t, []float64{10, 10, 2}, []float64{m.Boxes[0].Weight, m.Boxes[1].Weight, m.Boxes[2].Weight})
	})

	t.Run("empty order", func(t *testing.T) {
		m, err := Pack(model.Order{Number: 9}, inv, 10)
		require.NoError(t, err)
		assert.Equal(t, 9, m.OrderNumber)
		assert.Zero(t, m.BoxCount())
		assert.Zero(t, m.Weight)
	})

	t.Run("empty order still rejects bad capacity", func(t *testing.T) {
		_, err := Pack(model.Order{Number: 9}, inv, 0)
		assert.ErrorIs(t, err, model.ErrInvalidCapacity)
	})

	t.Run("unknown code", func(t *testing.T) {
		order := model.Order{LineItems: []model.LineItem{{Code: "W2", Quantity: 1}, {Code: "ZZ", Quantity: 1}}}
		m, err := Pack(order, inv, 10)
		assert.ErrorIs(t, err, model.ErrUnknownItemCode)
		assert.Empty(t, m.Boxes)
	})

	t.Run("single item exceeds capacity", func(t *testing.T) {
		order := model.Order{LineItems: []model.LineItem{{Code: "W2", Quantity: 3}, {Code: "H11", Quantity: 1}}}
		m, err := Pack(order, inv, 10)
		assert.ErrorIs(t, err, model.ErrItemExceedsCapacity)
		assert.Empty(t, m.Boxes)
	})

	t.Run("invalid line item", func(t *testing.T) {
		order := model.Order{LineItems: []model.LineItem{{Code: "W2", Quantity: -4}}}
		_, err := Pack(order, inv, 10)
		assert.ErrorIs(t, err, model.ErrInvalidLineItem)
	})

	t.Run("NaN capacity", func(t *testing.T) {
		order := model.Order{LineItems: []model.LineItem{{Code: "W2", Quantity: 3}}}
		m, err := Pack(order, inv, math.NaN())
		assert.ErrorIs(t, err, model.ErrInvalidCapacity)
		assert.Empty(t, m.Boxes)
	})

	t.Run("overflowing quantities", func(t *testing.T) {
		order := model.Order{LineItems: []model.LineItem{{Code: "W2", Quantity: math.MaxInt}, {Code: "W2", Quantity: math.MaxInt}}}
		m, err := Pack(order, inv, 10)
		assert.ErrorIs(t, err, model.ErrInvalidLineItem)
		assert.Empty(t, m.Boxes)
	})
}

// randomOrder builds an order from integer weights so sums stay exact.
func randomOrder(r *rand.Rand, inv model.Inventory, codes []string) model.Order {
	order := model.Order{Number: r.Intn(10000), CustomerCode: "RAND"}
	n := r.Intn(8)
	for i := 0; i < n; i++ {
		order.LineItems = append(order.LineItems, model.LineItem{
			Code:     codes[r.Intn(len(codes))],
			Quantity: 1 + r.Intn(5),
		})
	}
	return order
}

func TestPack_Properties(t *testing.T) {
	inv := weightedInventory()
	codes := []string{"W6", "W5", "W4", "W3", "W2", "X2"}
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		order := randomOrder(r, inv, codes)
		capacity := float64(6 + r.Intn(10))

		m, err := Pack(order, inv, capacity)
		require.NoError(t, err)

		// conservation
		assert.Equal(t, order.Quantities(), m.Quantities())

		var orderWeight, boxWeight float64
		for _, li := range order.LineItems {
			orderWeight += inv[li.Code].Weight * float64(li.Quantity)
		}
		for j, b := range m.Boxes {
			assert.Equal(t, j, b.Number)
			assert.LessOrEqual(t, b.Weight, capacity)
			boxWeight += b.Weight
		}
		assert.Equal(t, orderWeight, boxWeight)
		assert.Equal(t, orderWeight, m.Weight)

		// determinism
		again, err := Pack(order, inv, capacity)
		require.NoError(t, err)
		assert.Equal(t, m, again)
	}
}
