// Package inventory provides standalone stock items.
// Inventory items have no relation to assets or maintenance records.
package inventory

import (
	"context"
	"encoding/json"

	"aktiva/internal/core/apperror"
	"aktiva/internal/core/id"
	"aktiva/internal/core/types"
)

// Status defines the stock state of an inventory item.
// Labels are part of the on-disk contract.
type Status string

const (
	StatusInStock    Status = "In Stock"
	StatusOutOfStock Status = "Out of Stock"
	StatusReserved   Status = "Reserved"
)

// Item represents a counted stock position.
type Item struct {
	ID          id.ID       `json:"id"`
	Name        string      `json:"name"`
	Quantity    int         `json:"quantity"`
	CostPerItem types.Money `json:"cost_per_item"`
	Status      Status      `json:"status"`
}

// New creates an Item with required fields, in stock by default.
func New(name string, quantity int, costPerItem types.Money) *Item {
	return &Item{
		ID:          id.New(),
		Name:        name,
		Quantity:    quantity,
		CostPerItem: costPerItem,
		Status:      StatusInStock,
	}
}

// RecordID implements domain.Record.
func (i *Item) RecordID() id.ID {
	return i.ID
}

// Validate implements domain.Record.
func (i *Item) Validate(ctx context.Context) error {
	if i.Name == "" {
		return apperror.NewValidation("item name is required").
			WithDetail("field", "name")
	}
	if i.Quantity < 0 {
		return apperror.NewValidation("quantity must not be negative").
			WithDetail("field", "quantity").
			WithDetail("value", i.Quantity)
	}
	if i.CostPerItem.IsNegative() {
		return apperror.NewValidation("cost per item must not be negative").
			WithDetail("field", "cost_per_item").
			WithDetail("value", i.CostPerItem.String())
	}
	if !isValidStatus(i.Status) {
		return apperror.NewValidation("invalid inventory status").
			WithDetail("field", "status").
			WithDetail("value", string(i.Status))
	}
	return nil
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusInStock, StatusOutOfStock, StatusReserved:
		return true
	}
	return false
}

// UnmarshalJSON rejects unrecognized status labels instead of coercing them.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperror.NewValidation("inventory status must be a string").WithCause(err)
	}
	if !isValidStatus(Status(raw)) {
		return apperror.NewValidation("unknown inventory status").
			WithDetail("field", "status").
			WithDetail("value", raw)
	}
	*s = Status(raw)
	return nil
}
