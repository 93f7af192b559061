package dto

import (
	"aktiva/internal/core/types"
	"aktiva/internal/domain/inventory"
)

// --- Request DTOs ---

// CreateInventoryItemRequest is the request body for creating an inventory item.
type CreateInventoryItemRequest struct {
	Name        string            `json:"name" binding:"required"`
	Quantity    int               `json:"quantity"`
	CostPerItem types.Money       `json:"costPerItem"`
	Status      *inventory.Status `json:"status"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateInventoryItemRequest) ToEntity() *inventory.Item {
	item := inventory.New(r.Name, r.Quantity, r.CostPerItem)
	if r.Status != nil {
		item.Status = *r.Status
	}
	return item
}

// UpdateInventoryItemRequest is the request body for updating an inventory item.
type UpdateInventoryItemRequest struct {
	Name        string           `json:"name" binding:"required"`
	Quantity    int              `json:"quantity"`
	CostPerItem types.Money      `json:"costPerItem"`
	Status      inventory.Status `json:"status" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateInventoryItemRequest) ApplyTo(item *inventory.Item) {
	item.Name = r.Name
	item.Quantity = r.Quantity
	item.CostPerItem = r.CostPerItem
	item.Status = r.Status
}

// --- Response DTOs ---

// InventoryItemResponse is the response body for an inventory item.
type InventoryItemResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Quantity    int              `json:"quantity"`
	CostPerItem types.Money      `json:"costPerItem"`
	Status      inventory.Status `json:"status"`
}

// FromInventoryItem creates response DTO from domain entity.
func FromInventoryItem(item *inventory.Item) *InventoryItemResponse {
	return &InventoryItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Quantity:    item.Quantity,
		CostPerItem: item.CostPerItem,
		Status:      item.Status,
	}
}
