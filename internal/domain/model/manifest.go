package model

// Box is one shipping container of a manifest.
//
// @Description Packed box with its derived weight
// @Example {"number": 0, "weight": 10, "line_items": [{"code": "A1", "quantity": 1}]}
type Box struct {
	// Number is the 0-based index assigned during packing
	Number int `json:"number" example:"0"`
	// LineItems lists the codes packed in this box
	LineItems []LineItem `json:"line_items"`
	// Weight is the sum of unit weight times quantity over LineItems
	Weight float64 `json:"weight" example:"10"`
}

// NewBox builds a Box and derives its weight from the inventory.
func NewBox(number int, lineItems []LineItem, inv Inventory) (Box, error) {
	var weight float64
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return Box{}, err
		}
		item, err := inv.Lookup(li.Code)
		if err != nil {
			return Box{}, err
		}
		weight += item.Weight * float64(li.Quantity)
	}

	items := make([]LineItem, len(lineItems))
	copy(items, lineItems)

	return Box{
		Number:    number,
		LineItems: items,
		Weight:    weight,
	}, nil
}

// Manifest is the pick-ship list produced for one order.
//
// @Description Packing result for an order
// @Example {"order_number": 1001, "weight": 22, "boxes": []}
type Manifest struct {
	OrderNumber int     `json:"order_number" example:"1001"`
	Boxes       []Box   `json:"boxes"`
	Weight      float64 `json:"weight" example:"22"`
}

// NewManifest builds a Manifest and derives its total weight.
func NewManifest(orderNumber int, boxes []Box) Manifest {
	var weight float64
	for _, b := range boxes {
		weight += b.Weight
	}
	if boxes == nil {
		boxes = []Box{}
	}
	return Manifest{
		OrderNumber: orderNumber,
		Boxes:       boxes,
		Weight:      weight,
	}
}

// BoxCount returns the number of boxes in the manifest.
func (m Manifest) BoxCount() int {
	return len(m.Boxes)
}

// Quantities returns the total packed quantity per item code across all boxes.
func (m Manifest) Quantities() map[string]int {
	var all []LineItem
	for _, b := range m.Boxes {
		all = append(all, b.LineItems...)
	}
	return sumQuantities(all)
}
