package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/guttosm/pickship/internal/domain/model"
)

// MaxUnits bounds the number of units a single order may expand to.
const MaxUnits = 10000

// Bin accumulates items during first-fit-descending packing.
type Bin struct {
	Items  []model.Item
	Weight float64
}

func (b *Bin) add(item model.Item) {
	b.Items = append(b.Items, item)
	b.Weight += item.Weight
}

// fits reports whether item can be added without exceeding capacity.
func (b *Bin) fits(item model.Item, capacity float64) bool {
	return item.Weight <= capacity-b.Weight
}

// validCapacity rejects zero, negative, NaN and infinite capacities.
func validCapacity(capacity float64) bool {
	return capacity > 0 && !math.IsInf(capacity, 1)
}

// Unroll expands the order into one inventory item per ordered unit.
// Units appear in line-item order, then quantity order.
func Unroll(order model.Order, inv model.Inventory) ([]model.Item, error) {
	total := 0
	for _, li := range order.LineItems {
		if err := li.Validate(); err != nil {
			return nil, err
		}
		if _, err := inv.Lookup(li.Code); err != nil {
			return nil, err
		}
		if li.Quantity > MaxUnits-total {
			return nil, fmt.Errorf("%w: order exceeds %d units", model.ErrInvalidLineItem, MaxUnits)
		}
		total += li.Quantity
	}

	items := make([]model.Item, 0, total)
	for _, li := range order.LineItems {
		item := inv[li.Code]
		for i := 0; i < li.Quantity; i++ {
			items = append(items, item)
		}
	}
	return items, nil
}

// FirstFitDescending partitions items into bins holding at most capacity weight.
// Items are placed heaviest first, each into the earliest created bin with room.
// Items of equal weight keep their input order.
func FirstFitDescending(items []model.Item, capacity float64) ([]Bin, error) {
	if !validCapacity(capacity) {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidCapacity, capacity)
	}

	sorted := make([]model.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	// Sorted descending, so only the head can be too heavy.
	if len(sorted) > 0 && sorted[0].Weight > capacity {
		return nil, fmt.Errorf("%w: %q weighs %v, capacity is %v",
			model.ErrItemExceedsCapacity, sorted[0].Code, sorted[0].Weight, capacity)
	}

	var bins []*Bin
	for _, item := range sorted {
		var target *Bin
		for _, b := range bins {
			if b.fits(item, capacity) {
				target = b
				break
			}
		}
		if target == nil {
			target = &Bin{}
			bins = append(bins, target)
		}
		target.add(item)
	}

	result := make([]Bin, len(bins))
	for i, b := range bins {
		result[i] = *b
	}
	return result, nil
}

// Reroll turns each bin back into a box of line items, one per distinct code.
// Codes are listed in the order they were first seen in the bin.
func Reroll(bins []Bin, inv model.Inventory) ([]model.Box, error) {
	boxes := make([]model.Box, 0, len(bins))
	for i, b := range bins {
		counts := make(map[string]int, len(b.Items))
		var codes []string
		for _, item := range b.Items {
			if _, seen := counts[item.Code]; !seen {
				codes = append(codes, item.Code)
			}
			counts[item.Code]++
		}

		lineItems := make([]model.LineItem, 0, len(codes))
		for _, code := range codes {
			lineItems = append(lineItems, model.LineItem{Code: code, Quantity: counts[code]})
		}

		box, err := model.NewBox(i, lineItems, inv)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}

// Assemble combines packed boxes into the manifest for an order.
func Assemble(orderNumber int, boxes []model.Box) model.Manifest {
	return model.NewManifest(orderNumber, boxes)
}

// Pack computes the manifest for order using boxes of the given capacity.
// It returns no manifest at all when any step fails.
func Pack(order model.Order, inv model.Inventory, capacity float64) (model.Manifest, error) {
	if !validCapacity(capacity) {
		return model.Manifest{}, fmt.Errorf("%w: %v", model.ErrInvalidCapacity, capacity)
	}

	items, err := Unroll(order, inv)
	if err != nil {
		return model.Manifest{}, err
	}

	bins, err := FirstFitDescending(items, capacity)
	if err != nil {
		return model.Manifest{}, err
	}

	boxes, err := Reroll(bins, inv)
	if err != nil {
		return model.Manifest{}, err
	}

	return Assemble(order.Number, boxes), nil
}
