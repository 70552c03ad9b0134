// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"
	"strings"

	"github.com/guttosm/pickship/internal/domain/model"
	"github.com/guttosm/pickship/internal/format"
)

// OrderPayload is the structured form of an order.
//
// @Description Order with its line items
// @Example {"number": 1001, "customer_code": "ACME-7", "line_items": [{"code": "A1", "quantity": 2}]}
type OrderPayload struct {
	Number       int              `json:"number" example:"1001"`
	CustomerCode string           `json:"customer_code" example:"ACME-7"`
	LineItems    []model.LineItem `json:"line_items"`
} // @name OrderPayload

// CreateManifestRequest represents the JSON request body for the manifest endpoint.
//
// The inventory and the order are each supplied either as a text document
// (InventoryText, OrderText) or in structured form (Inventory, Order), never both.
// Capacity is optional; the server default is used when it is omitted.
//
// @Description Request to pack an order into boxes
// @Example {"inventory_text": "INVENTORY START\n...", "order_text": "ORDER START\n...", "capacity": 10}
type CreateManifestRequest struct {
	// InventoryText is an inventory document in the text format
	InventoryText string `json:"inventory_text,omitempty"`
	// OrderText is an order document in the text format
	OrderText string `json:"order_text,omitempty"`
	// Inventory is the structured alternative to InventoryText
	Inventory []model.Item `json:"inventory,omitempty"`
	// Order is the structured alternative to OrderText
	Order *OrderPayload `json:"order,omitempty"`
	// Capacity is the maximum weight of a box
	Capacity *float64 `json:"capacity,omitempty" example:"10"`
} // @name CreateManifestRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingInventory is returned when neither inventory form is present.
	ErrMissingInventory = &ValidationError{
		Field:   "inventory",
		Message: "inventory_text or inventory is required",
	}
	// ErrMissingOrder is returned when neither order form is present.
	ErrMissingOrder = &ValidationError{
		Field:   "order",
		Message: "order_text or order is required",
	}
	// ErrAmbiguousInventory is returned when both inventory forms are present.
	ErrAmbiguousInventory = &ValidationError{
		Field:   "inventory",
		Message: "provide inventory_text or inventory, not both",
	}
	// ErrAmbiguousOrder is returned when both order forms are present.
	ErrAmbiguousOrder = &ValidationError{
		Field:   "order",
		Message: "provide order_text or order, not both",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks that exactly one form of each input is present.
func (r *CreateManifestRequest) Validate() error {
	hasInvText := strings.TrimSpace(r.InventoryText) != ""
	hasInv := r.Inventory != nil
	switch {
	case hasInvText && hasInv:
		return ErrAmbiguousInventory
	case !hasInvText && !hasInv:
		return ErrMissingInventory
	}

	hasOrderText := strings.TrimSpace(r.OrderText) != ""
	hasOrder := r.Order != nil
	switch {
	case hasOrderText && hasOrder:
		return ErrAmbiguousOrder
	case !hasOrderText && !hasOrder:
		return ErrMissingOrder
	}
	return nil
}

// ToDomain converts the request into an order and an inventory.
// Text documents are parsed with the format package; structured items must be valid
// and carry unique codes. Errors wrap format.ErrMalformed or model.ErrInvalidItem.
func (r *CreateManifestRequest) ToDomain() (model.Order, model.Inventory, error) {
	inv, err := r.inventory()
	if err != nil {
		return model.Order{}, nil, err
	}
	order, err := r.order()
	if err != nil {
		return model.Order{}, nil, err
	}
	return order, inv, nil
}

func (r *CreateManifestRequest) inventory() (model.Inventory, error) {
	if r.Inventory == nil {
		return format.ReadInventory(strings.NewReader(r.InventoryText))
	}
	inv := make(model.Inventory, len(r.Inventory))
	for _, item := range r.Inventory {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, dup := inv[item.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %q", model.ErrInvalidItem, item.Code)
		}
		inv[item.Code] = item
	}
	return inv, nil
}

func (r *CreateManifestRequest) order() (model.Order, error) {
	if r.Order == nil {
		return format.ReadOrder(strings.NewReader(r.OrderText))
	}
	return model.Order{
		Number:       r.Order.Number,
		CustomerCode: r.Order.CustomerCode,
		LineItems:    r.Order.LineItems,
	}, nil
}
