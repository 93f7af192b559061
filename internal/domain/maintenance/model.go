// Package maintenance provides maintenance records for fixed assets.
// A record references its asset by identifier only; deleting an asset does
// not cascade to its maintenance history.
package maintenance

import (
	"context"
	"encoding/json"

	"aktiva/internal/core/apperror"
	"aktiva/internal/core/id"
	"aktiva/internal/core/types"
)

// Type defines the kind of maintenance work.
// Labels are part of the on-disk contract.
type Type string

const (
	TypePreventive Type = "Preventive"
	TypeCorrective Type = "Corrective"
	TypePredictive Type = "Predictive"
)

// Status defines the lifecycle state of a maintenance record.
type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// Maintenance represents a single maintenance event for an asset.
type Maintenance struct {
	ID          id.ID       `json:"id"`
	AssetID     id.ID       `json:"asset_id"`
	Date        types.Date  `json:"date"`
	Description string      `json:"description"`
	Cost        types.Money `json:"cost"`
	PerformedBy string      `json:"performed_by"`
	Type        Type        `json:"maintenance_type"`
	Status      Status      `json:"status"`
	Notes       *string     `json:"notes,omitempty"`
}

// New creates a Maintenance record with required fields, scheduled by default.
func New(assetID id.ID, date types.Date, description string, cost types.Money, performedBy string, mType Type) *Maintenance {
	return &Maintenance{
		ID:          id.New(),
		AssetID:     assetID,
		Date:        date,
		Description: description,
		Cost:        cost,
		PerformedBy: performedBy,
		Type:        mType,
		Status:      StatusScheduled,
	}
}

// RecordID implements domain.Record.
func (m *Maintenance) RecordID() id.ID {
	return m.ID
}

// Validate implements domain.Record.
// The referenced asset is not required to exist; records may outlive or
// precede their asset.
func (m *Maintenance) Validate(ctx context.Context) error {
	if id.IsNil(m.AssetID) {
		return apperror.NewValidation("asset id is required").
			WithDetail("field", "asset_id")
	}
	if m.Date.IsZero() {
		return apperror.NewValidation("maintenance date is required").
			WithDetail("field", "date")
	}
	if m.Description == "" {
		return apperror.NewValidation("description is required").
			WithDetail("field", "description")
	}
	if m.Cost.IsNegative() {
		return apperror.NewValidation("cost must not be negative").
			WithDetail("field", "cost").
			WithDetail("value", m.Cost.String())
	}
	if !isValidType(m.Type) {
		return apperror.NewValidation("invalid maintenance type").
			WithDetail("field", "maintenance_type").
			WithDetail("value", string(m.Type))
	}
	if !isValidStatus(m.Status) {
		return apperror.NewValidation("invalid maintenance status").
			WithDetail("field", "status").
			WithDetail("value", string(m.Status))
	}
	return nil
}

// --- Enumeration helpers ---

func isValidType(t Type) bool {
	switch t {
	case TypePreventive, TypeCorrective, TypePredictive:
		return true
	}
	return false
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// UnmarshalJSON rejects unrecognized type labels instead of coercing them.
func (t *Type) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperror.NewValidation("maintenance type must be a string").WithCause(err)
	}
	if !isValidType(Type(raw)) {
		return apperror.NewValidation("unknown maintenance type").
			WithDetail("field", "maintenance_type").
			WithDetail("value", raw)
	}
	*t = Type(raw)
	return nil
}

// UnmarshalJSON rejects unrecognized status labels instead of coercing them.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperror.NewValidation("maintenance status must be a string").WithCause(err)
	}
	if !isValidStatus(Status(raw)) {
		return apperror.NewValidation("unknown maintenance status").
			WithDetail("field", "status").
			WithDetail("value", raw)
	}
	*s = Status(raw)
	return nil
}
