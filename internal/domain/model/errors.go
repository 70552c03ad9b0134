package model

import "errors"

// Packing errors. Each one is terminal for the invocation that raised it.
var (
	// ErrUnknownItemCode is returned when a line item references a code absent from the inventory.
	ErrUnknownItemCode = errors.New("unknown item code")
	// ErrItemExceedsCapacity is returned when a single item is heavier than the box capacity.
	ErrItemExceedsCapacity = errors.New("item exceeds box capacity")
	// ErrInvalidCapacity is returned when the box capacity is not positive.
	ErrInvalidCapacity = errors.New("invalid box capacity")
	// ErrInvalidLineItem is returned when a line item quantity is zero or negative.
	ErrInvalidLineItem = errors.New("invalid line item")
	// ErrInvalidItem is returned when an inventory item has no code or a non-positive weight.
	ErrInvalidItem = errors.New("invalid inventory item")
)
