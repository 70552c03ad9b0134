// Package model defines the core domain entities for the pick-ship service.
package model

import (
	"fmt"
	"math"
)

// Item is a catalogue entry.
//
// @Description Inventory item with its unit weight
// @Example {"code": "A1", "name": "Anvil", "weight": 6}
type Item struct {
	// Code uniquely identifies the item within an inventory
	Code string `json:"code" example:"A1"`
	// Name is the display name
	Name string `json:"name" example:"Anvil"`
	// Weight is the unit weight, always positive
	Weight float64 `json:"weight" example:"6"`
}

// Validate rejects items without a code or with a weight that is not a positive finite number.
func (it Item) Validate() error {
	if it.Code == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidItem)
	}
	if !(it.Weight > 0) || math.IsInf(it.Weight, 0) {
		return fmt.Errorf("%w: %q has weight %v", ErrInvalidItem, it.Code, it.Weight)
	}
	return nil
}

// Inventory maps item codes to items.
type Inventory map[string]Item

// Lookup returns the item registered under code.
func (inv Inventory) Lookup(code string) (Item, error) {
	item, ok := inv[code]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItemCode, code)
	}
	return item, nil
}

// NewInventory builds an Inventory from a list of items.
// Later duplicates of a code replace earlier ones.
func NewInventory(items ...Item) Inventory {
	inv := make(Inventory, len(items))
	for _, item := range items {
		inv[item.Code] = item
	}
	return inv
}

// LineItem is a quantity of one item code.
//
// @Description Item code and quantity
// @Example {"code": "A1", "quantity": 2}
type LineItem struct {
	Code     string `json:"code" example:"A1"`
	Quantity int    `json:"quantity" example:"2"`
}

// Validate rejects zero or negative quantities.
func (li LineItem) Validate() error {
	if li.Quantity < 1 {
		return fmt.Errorf("%w: %q has quantity %d", ErrInvalidLineItem, li.Code, li.Quantity)
	}
	return nil
}

// Order is a customer request for a list of line items.
// The same code may appear on more than one line.
type Order struct {
	Number       int        `json:"number" example:"1001"`
	CustomerCode string     `json:"customer_code" example:"CUST-42"`
	LineItems    []LineItem `json:"line_items"`
}

// Validate checks every line item of the order.
func (o Order) Validate() error {
	for _, li := range o.LineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Quantities returns the total ordered quantity per item code.
func (o Order) Quantities() map[string]int {
	return sumQuantities(o.LineItems)
}

func sumQuantities(lineItems []LineItem) map[string]int {
	totals := make(map[string]int, len(lineItems))
	for _, li := range lineItems {
		totals[li.Code] += li.Quantity
	}
	return totals
}
