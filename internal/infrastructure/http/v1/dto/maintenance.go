package dto

import (
	"aktiva/internal/core/id"
	"aktiva/internal/core/types"
	"aktiva/internal/domain/maintenance"
)

// --- Request DTOs ---

// CreateMaintenanceRequest is the request body for creating a maintenance record.
// The referenced asset is not required to exist.
type CreateMaintenanceRequest struct {
	AssetID     id.ID               `json:"assetId" binding:"required"`
	Date        types.Date          `json:"date" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Cost        types.Money         `json:"cost"`
	PerformedBy string              `json:"performedBy"`
	Type        maintenance.Type    `json:"maintenanceType" binding:"required"`
	Status      *maintenance.Status `json:"status"`
	Notes       *string             `json:"notes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateMaintenanceRequest) ToEntity() *maintenance.Maintenance {
	m := maintenance.New(r.AssetID, r.Date, r.Description, r.Cost, r.PerformedBy, r.Type)
	if r.Status != nil {
		m.Status = *r.Status
	}
	m.Notes = r.Notes
	return m
}

// UpdateMaintenanceRequest is the request body for updating a maintenance record.
type UpdateMaintenanceRequest struct {
	AssetID     id.ID              `json:"assetId" binding:"required"`
	Date        types.Date         `json:"date" binding:"required"`
	Description string             `json:"description" binding:"required"`
	Cost        types.Money        `json:"cost"`
	PerformedBy string             `json:"performedBy"`
	Type        maintenance.Type   `json:"maintenanceType" binding:"required"`
	Status      maintenance.Status `json:"status" binding:"required"`
	Notes       *string            `json:"notes"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateMaintenanceRequest) ApplyTo(m *maintenance.Maintenance) {
	m.AssetID = r.AssetID
	m.Date = r.Date
	m.Description = r.Description
	m.Cost = r.Cost
	m.PerformedBy = r.PerformedBy
	m.Type = r.Type
	m.Status = r.Status
	m.Notes = r.Notes
}

// --- Response DTOs ---

// MaintenanceResponse is the response body for a maintenance record.
type MaintenanceResponse struct {
	ID          string             `json:"id"`
	AssetID     string             `json:"assetId"`
	Date        types.Date         `json:"date"`
	Description string             `json:"description"`
	Cost        types.Money        `json:"cost"`
	PerformedBy string             `json:"performedBy"`
	Type        maintenance.Type   `json:"maintenanceType"`
	Status      maintenance.Status `json:"status"`
	Notes       *string            `json:"notes,omitempty"`
}

// FromMaintenance creates response DTO from domain entity.
func FromMaintenance(m *maintenance.Maintenance) *MaintenanceResponse {
	return &MaintenanceResponse{
		ID:          m.ID.String(),
		AssetID:     m.AssetID.String(),
		Date:        m.Date,
		Description: m.Description,
		Cost:        m.Cost,
		PerformedBy: m.PerformedBy,
		Type:        m.Type,
		Status:      m.Status,
		Notes:       m.Notes,
	}
}
