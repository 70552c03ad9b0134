// Package i18n provides internationalization support for the pick-ship service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyRequestTooLarge indicates a request body over the size limit.
	ErrKeyRequestTooLarge = "error.request_too_large"
	// ErrKeyMissingInput indicates that the inventory or the order was not supplied.
	ErrKeyMissingInput = "error.missing_input"
	// ErrKeyMalformedInventory indicates an inventory document that could not be parsed.
	ErrKeyMalformedInventory = "error.malformed_inventory"
	// ErrKeyMalformedOrder indicates an order document that could not be parsed.
	ErrKeyMalformedOrder = "error.malformed_order"
	// ErrKeyUnknownItemCode indicates an order line referencing a code missing from the inventory.
	ErrKeyUnknownItemCode = "error.unknown_item_code"
	// ErrKeyItemExceedsCapacity indicates an item heavier than the box capacity.
	ErrKeyItemExceedsCapacity = "error.item_exceeds_capacity"
	// ErrKeyInvalidCapacity indicates a non-positive box capacity.
	ErrKeyInvalidCapacity = "error.invalid_capacity"
	// ErrKeyInvalidLineItem indicates a line item with a zero or negative quantity.
	ErrKeyInvalidLineItem = "error.invalid_line_item"
	// ErrKeyInvalidItem indicates an inventory item with a missing code or a non-positive weight.
	ErrKeyInvalidItem = "error.invalid_item"
)

// Success message translation keys.
const (
	// SuccessKeyManifestPacked indicates a successfully packed manifest.
	SuccessKeyManifestPacked = "success.manifest_packed"
)
