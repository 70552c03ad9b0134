package dto

import (
	"testing"

	"github.com/guttosm/pickship/internal/domain/model"
	"github.com/guttosm/pickship/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	inventoryText = "INVENTORY START\nITEM START\nCODE: A1\nNAME: Anvil\nWEIGHT: 6\nITEM END\nINVENTORY END\n"
	orderText     = "ORDER START\nORDER NUMBER: 7\nCUSTOMER CODE: C\nITEM: A1, 2\nORDER END\n"
)

func TestCreateManifestRequest_Validate(t *testing.T) {
	structuredOrder := &OrderPayload{Number: 7, LineItems: []model.LineItem{{Code: "A1", Quantity: 1}}}
	structuredInv := []model.Item{{Code: "A1", Name: "Anvil", Weight: 6}}

	tests := []struct {
		name          string
		request       CreateManifestRequest
		expectedError error
	}{
		{
			name:    "text documents",
			request: CreateManifestRequest{InventoryText: inventoryText, OrderText: orderText},
		},
		{
			name:    "structured input",
			request: CreateManifestRequest{Inventory: structuredInv, Order: structuredOrder},
		},
		{
			name:    "mixed forms",
			request: CreateManifestRequest{Inventory: structuredInv, OrderText: orderText},
		},
		{
			name:    "empty structured inventory is present",
			request: CreateManifestRequest{Inventory: []model.Item{}, Order: structuredOrder},
		},
		{
			name:          "missing inventory",
			request:       CreateManifestRequest{OrderText: orderText},
			expectedError: ErrMissingInventory,
		},
		{
			name:          "blank inventory text",
			request:       CreateManifestRequest{InventoryText: "  \n", OrderText: orderText},
			expectedError: ErrMissingInventory,
		},
		{
			name:          "missing order",
			request:       CreateManifestRequest{InventoryText: inventoryText},
			expectedError: ErrMissingOrder,
		},
		{
			name:          "both inventory forms",
			request:       CreateManifestRequest{InventoryText: inventoryText, Inventory: structuredInv, OrderText: orderText},
			expectedError: ErrAmbiguousInventory,
		},
		{
			name:          "both order forms",
			request:       CreateManifestRequest{InventoryText: inventoryText, OrderText: orderText, Order: structuredOrder},
			expectedError: ErrAmbiguousOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "order: order_text or order is required", ErrMissingOrder.Error())
}

func TestCreateManifestRequest_ToDomain(t *testing.T) {
	t.Run("parses text documents", func(t *testing.T) {
		req := CreateManifestRequest{InventoryText: inventoryText, OrderText: orderText}

		order, inv, err := req.ToDomain()
		require.NoError(t, err)

		assert.Equal(t, 7, order.Number)
		assert.Equal(t, []model.LineItem{{Code: "A1", Quantity: 2}}, order.LineItems)
		assert.Equal(t, model.Inventory{"A1": {Code: "A1", Name: "Anvil", Weight: 6}}, inv)
	})

	t.Run("converts structured input", func(t *testing.T) {
		req := CreateManifestRequest{
			Inventory: []model.Item{{Code: "A1", Name: "Anvil", Weight: 6}, {Code: "B2", Weight: 0.5}},
			Order: &OrderPayload{
				Number:       9,
				CustomerCode: "X",
				LineItems:    []model.LineItem{{Code: "B2", Quantity: 3}},
			},
		}

		order, inv, err := req.ToDomain()
		require.NoError(t, err)

		assert.Equal(t, model.Order{Number: 9, CustomerCode: "X", LineItems: []model.LineItem{{Code: "B2", Quantity: 3}}}, order)
		assert.Len(t, inv, 2)
	})

	t.Run("malformed inventory text", func(t *testing.T) {
		req := CreateManifestRequest{InventoryText: "ITEM START\n", OrderText: orderText}

		_, _, err := req.ToDomain()
		assert.ErrorIs(t, err, format.ErrMalformed)
	})

	t.Run("malformed order text", func(t *testing.T) {
		req := CreateManifestRequest{InventoryText: inventoryText, OrderText: "ORDER START\n"}

		_, _, err := req.ToDomain()
		assert.ErrorIs(t, err, format.ErrMalformed)
	})

	t.Run("invalid structured item", func(t *testing.T) {
		req := CreateManifestRequest{Inventory: []model.Item{{Code: "A1", Weight: 0}}, OrderText: orderText}

		_, _, err := req.ToDomain()
		assert.ErrorIs(t, err, model.ErrInvalidItem)
	})

	t.Run("duplicate structured code", func(t *testing.T) {
		req := CreateManifestRequest{
			Inventory: []model.Item{{Code: "A1", Weight: 1}, {Code: "A1", Weight: 2}},
			OrderText: orderText,
		}

		_, _, err := req.ToDomain()
		assert.ErrorIs(t, err, model.ErrInvalidItem)
		assert.Contains(t, err.Error(), "duplicate")
	})
}
