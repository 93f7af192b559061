package dto

import (
	"aktiva/internal/core/types"
	"aktiva/internal/domain/asset"
)

// --- Request DTOs ---

// CreateAssetRequest is the request body for creating an asset.
type CreateAssetRequest struct {
	Name               string        `json:"name" binding:"required"`
	PurchaseDate       types.Date    `json:"purchaseDate" binding:"required"`
	PurchasePrice      types.Money   `json:"purchasePrice"`
	CurrentValue       *types.Money  `json:"currentValue"`
	Location           string        `json:"location"`
	Category           string        `json:"category"`
	UsefulLifeYears    int           `json:"usefulLifeYears" binding:"required"`
	Status             *asset.Status `json:"status"`
	DepreciationMethod *asset.Method `json:"depreciationMethod"`
	SalvageValue       *types.Money  `json:"salvageValue"`
	SerialNumber       *string       `json:"serialNumber"`
	Description        *string       `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateAssetRequest) ToEntity() *asset.Asset {
	a := asset.New(r.Name, r.PurchaseDate, r.PurchasePrice, r.Location, r.Category, r.UsefulLifeYears)
	if r.CurrentValue != nil {
		a.CurrentValue = *r.CurrentValue
	}
	if r.Status != nil {
		a.Status = *r.Status
	}
	if r.DepreciationMethod != nil {
		a.DepreciationMethod = *r.DepreciationMethod
	}
	if r.SalvageValue != nil {
		a.SalvageValue = *r.SalvageValue
	}
	a.SerialNumber = r.SerialNumber
	a.Description = r.Description
	return a
}

// UpdateAssetRequest is the request body for updating an asset.
// Updates replace the record wholesale; the identifier comes from the path.
type UpdateAssetRequest struct {
	Name               string       `json:"name" binding:"required"`
	PurchaseDate       types.Date   `json:"purchaseDate" binding:"required"`
	PurchasePrice      types.Money  `json:"purchasePrice"`
	CurrentValue       types.Money  `json:"currentValue"`
	Location           string       `json:"location"`
	Category           string       `json:"category"`
	UsefulLifeYears    int          `json:"usefulLifeYears" binding:"required"`
	Status             asset.Status `json:"status" binding:"required"`
	DepreciationMethod asset.Method `json:"depreciationMethod" binding:"required"`
	SalvageValue       types.Money  `json:"salvageValue"`
	SerialNumber       *string      `json:"serialNumber"`
	Description        *string      `json:"description"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateAssetRequest) ApplyTo(a *asset.Asset) {
	a.Name = r.Name
	a.PurchaseDate = r.PurchaseDate
	a.PurchasePrice = r.PurchasePrice
	a.CurrentValue = r.CurrentValue
	a.Location = r.Location
	a.Category = r.Category
	a.UsefulLifeYears = r.UsefulLifeYears
	a.Status = r.Status
	a.DepreciationMethod = r.DepreciationMethod
	a.SalvageValue = r.SalvageValue
	a.SerialNumber = r.SerialNumber
	a.Description = r.Description
}

// RevalueRequest is the request body for the batch revaluation operation.
type RevalueRequest struct {
	AsOf types.Date `json:"asOf" binding:"required"`
}

// --- Response DTOs ---

// AssetResponse is the response body for an asset.
type AssetResponse struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	PurchaseDate       types.Date   `json:"purchaseDate"`
	PurchasePrice      types.Money  `json:"purchasePrice"`
	CurrentValue       types.Money  `json:"currentValue"`
	Location           string       `json:"location"`
	Category           string       `json:"category"`
	UsefulLifeYears    int          `json:"usefulLifeYears"`
	Status             asset.Status `json:"status"`
	DepreciationMethod asset.Method `json:"depreciationMethod"`
	SalvageValue       types.Money  `json:"salvageValue"`
	SerialNumber       *string      `json:"serialNumber,omitempty"`
	Description        *string      `json:"description,omitempty"`
}

// FromAsset creates response DTO from domain entity.
func FromAsset(a *asset.Asset) *AssetResponse {
	return &AssetResponse{
		ID:                 a.ID.String(),
		Name:               a.Name,
		PurchaseDate:       a.PurchaseDate,
		PurchasePrice:      a.PurchasePrice,
		CurrentValue:       a.CurrentValue,
		Location:           a.Location,
		Category:           a.Category,
		UsefulLifeYears:    a.UsefulLifeYears,
		Status:             a.Status,
		DepreciationMethod: a.DepreciationMethod,
		SalvageValue:       a.SalvageValue,
		SerialNumber:       a.SerialNumber,
		Description:        a.Description,
	}
}
