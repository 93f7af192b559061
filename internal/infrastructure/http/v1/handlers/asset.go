package handlers

import (
	"github.com/gin-gonic/gin"

	"aktiva/internal/domain/asset"
	"aktiva/internal/infrastructure/http/v1/dto"
)

// AssetHTTPHandler handles the standard CRUD routes for assets.
type AssetHTTPHandler = RecordHandler[
	*asset.Asset,
	dto.CreateAssetRequest,
	dto.UpdateAssetRequest,
]

// AssetHandler wraps the generic record handler with the batch
// revaluation operation.
type AssetHandler struct {
	*AssetHTTPHandler
	service *asset.Service
}

// NewAssetHandler creates a new asset handler.
func NewAssetHandler(base *BaseHandler, service *asset.Service) *AssetHandler {
	config := RecordHandlerConfig[
		*asset.Asset,
		dto.CreateAssetRequest,
		dto.UpdateAssetRequest,
	]{
		Service:    service.RecordService,
		EntityName: "asset",

		MapCreateDTO: func(req dto.CreateAssetRequest) *asset.Asset {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateAssetRequest, existing *asset.Asset) *asset.Asset {
			// existing aliases the repository's live record; apply the
			// update to a copy so a failed validation leaves it untouched.
			updated := *existing
			req.ApplyTo(&updated)
			return &updated
		},

		MapToDTO: func(a *asset.Asset) any {
			return dto.FromAsset(a)
		},
	}

	return &AssetHandler{
		AssetHTTPHandler: NewRecordHandler(base, config),
		service:          service,
	}
}

// Revalue handles POST /assets/revalue - apply the depreciation engine to
// every asset as of the given date and persist the batch once.
func (h *AssetHandler) Revalue(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RevalueRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.RevalueAll(ctx, req.AsOf); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "assets revalued as of "+req.AsOf.String())
}
