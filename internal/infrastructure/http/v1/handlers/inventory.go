package handlers

import (
	"aktiva/internal/domain/inventory"
	"aktiva/internal/infrastructure/http/v1/dto"
)

// InventoryHTTPHandler handles the standard CRUD routes for inventory items.
type InventoryHTTPHandler = RecordHandler[
	*inventory.Item,
	dto.CreateInventoryItemRequest,
	dto.UpdateInventoryItemRequest,
]

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service) *InventoryHTTPHandler {
	config := RecordHandlerConfig[
		*inventory.Item,
		dto.CreateInventoryItemRequest,
		dto.UpdateInventoryItemRequest,
	]{
		Service:    service.RecordService,
		EntityName: "inventory item",

		MapCreateDTO: func(req dto.CreateInventoryItemRequest) *inventory.Item {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateInventoryItemRequest, existing *inventory.Item) *inventory.Item {
			// existing aliases the repository's live record; apply the
			// update to a copy so a failed validation leaves it untouched.
			updated := *existing
			req.ApplyTo(&updated)
			return &updated
		},

		MapToDTO: func(item *inventory.Item) any {
			return dto.FromInventoryItem(item)
		},
	}

	return NewRecordHandler(base, config)
}
