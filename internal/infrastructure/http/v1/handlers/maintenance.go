package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aktiva/internal/core/apperror"
	"aktiva/internal/core/id"
	"aktiva/internal/domain/maintenance"
	"aktiva/internal/infrastructure/http/v1/dto"
)

// MaintenanceHTTPHandler handles the standard CRUD routes for maintenance records.
type MaintenanceHTTPHandler = RecordHandler[
	*maintenance.Maintenance,
	dto.CreateMaintenanceRequest,
	dto.UpdateMaintenanceRequest,
]

// MaintenanceHandler wraps the generic record handler with the per-asset
// listing operation.
type MaintenanceHandler struct {
	*MaintenanceHTTPHandler
	service *maintenance.Service
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(base *BaseHandler, service *maintenance.Service) *MaintenanceHandler {
	config := RecordHandlerConfig[
		*maintenance.Maintenance,
		dto.CreateMaintenanceRequest,
		dto.UpdateMaintenanceRequest,
	]{
		Service:    service.RecordService,
		EntityName: "maintenance",

		MapCreateDTO: func(req dto.CreateMaintenanceRequest) *maintenance.Maintenance {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateMaintenanceRequest, existing *maintenance.Maintenance) *maintenance.Maintenance {
			// existing aliases the repository's live record; apply the
			// update to a copy so a failed validation leaves it untouched.
			updated := *existing
			req.ApplyTo(&updated)
			return &updated
		},

		MapToDTO: func(m *maintenance.Maintenance) any {
			return dto.FromMaintenance(m)
		},
	}

	return &MaintenanceHandler{
		MaintenanceHTTPHandler: NewRecordHandler(base, config),
		service:                service,
	}
}

// ListForAsset handles GET /assets/:id/maintenance - maintenance history of one asset.
func (h *MaintenanceHandler) ListForAsset(c *gin.Context) {
	ctx := c.Request.Context()

	assetID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	records, err := h.service.ListForAsset(ctx, assetID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(records))
	for i, m := range records {
		items[i] = dto.FromMaintenance(m)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}
