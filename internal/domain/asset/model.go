// Package asset provides the fixed-asset record and its valuation engine.
// An asset carries its acquisition facts (date, price, useful life) and a
// current value that is recomputed from those facts by the depreciation
// engine; the stored current value is never an input to the computation.
package asset

import (
	"context"
	"encoding/json"

	"aktiva/internal/core/apperror"
	"aktiva/internal/core/id"
	"aktiva/internal/core/types"
)

// Status defines the lifecycle state of an asset.
// Labels are part of the on-disk contract.
type Status string

const (
	StatusActive      Status = "Active"
	StatusInactive    Status = "Inactive"
	StatusMaintenance Status = "Under Maintenance"
	StatusDisposed    Status = "Disposed"
)

// Method defines the depreciation schedule applied to an asset.
type Method string

const (
	MethodStraightLine     Method = "Straight Line"
	MethodDecliningBalance Method = "Declining Balance"
	MethodSumOfYearsDigits Method = "Sum of Years Digits"
)

// Asset represents a fixed asset tracked over its useful life.
type Asset struct {
	ID                 id.ID       `json:"id"`
	Name               string      `json:"name"`
	PurchaseDate       types.Date  `json:"purchase_date"`
	PurchasePrice      types.Money `json:"purchase_price"`
	CurrentValue       types.Money `json:"current_value"`
	Location           string      `json:"location"`
	Category           string      `json:"category"`
	UsefulLifeYears    int         `json:"useful_life_years"`
	Status             Status      `json:"status"`
	DepreciationMethod Method      `json:"depreciation_method"`
	SalvageValue       types.Money `json:"salvage_value"`
	SerialNumber       *string     `json:"serial_number,omitempty"`
	Description        *string     `json:"description,omitempty"`
}

// New creates an Asset with required fields and defaults:
// active, straight-line, zero salvage, current value equal to purchase price.
func New(name string, purchaseDate types.Date, purchasePrice types.Money, location, category string, usefulLifeYears int) *Asset {
	return &Asset{
		ID:                 id.New(),
		Name:               name,
		PurchaseDate:       purchaseDate,
		PurchasePrice:      purchasePrice,
		CurrentValue:       purchasePrice,
		Location:           location,
		Category:           category,
		UsefulLifeYears:    usefulLifeYears,
		Status:             StatusActive,
		DepreciationMethod: MethodStraightLine,
		SalvageValue:       types.Zero(),
	}
}

// RecordID implements domain.Record.
func (a *Asset) RecordID() id.ID {
	return a.ID
}

// Validate implements domain.Record.
func (a *Asset) Validate(ctx context.Context) error {
	if a.Name == "" {
		return apperror.NewValidation("asset name is required").
			WithDetail("field", "name")
	}
	if a.PurchaseDate.IsZero() {
		return apperror.NewValidation("purchase date is required").
			WithDetail("field", "purchase_date")
	}
	if a.PurchasePrice.IsNegative() {
		return apperror.NewValidation("purchase price must not be negative").
			WithDetail("field", "purchase_price").
			WithDetail("value", a.PurchasePrice.String())
	}
	if a.UsefulLifeYears < 1 {
		return apperror.NewValidation("useful life must be a positive number of whole years").
			WithDetail("field", "useful_life_years").
			WithDetail("value", a.UsefulLifeYears)
	}
	if a.SalvageValue.IsNegative() {
		return apperror.NewValidation("salvage value must not be negative").
			WithDetail("field", "salvage_value").
			WithDetail("value", a.SalvageValue.String())
	}
	if a.SalvageValue.GreaterThan(a.PurchasePrice) {
		return apperror.NewValidation("salvage value must not exceed purchase price").
			WithDetail("salvage_value", a.SalvageValue.String()).
			WithDetail("purchase_price", a.PurchasePrice.String())
	}
	if !isValidStatus(a.Status) {
		return apperror.NewValidation("invalid asset status").
			WithDetail("field", "status").
			WithDetail("value", string(a.Status))
	}
	if !isValidMethod(a.DepreciationMethod) {
		return apperror.NewValidation("invalid depreciation method").
			WithDetail("field", "depreciation_method").
			WithDetail("value", string(a.DepreciationMethod))
	}
	return nil
}

// --- Enumeration helpers ---

func isValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusInactive, StatusMaintenance, StatusDisposed:
		return true
	}
	return false
}

func isValidMethod(m Method) bool {
	switch m {
	case MethodStraightLine, MethodDecliningBalance, MethodSumOfYearsDigits:
		return true
	}
	return false
}

// UnmarshalJSON rejects unrecognized status labels instead of coercing them.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperror.NewValidation("asset status must be a string").WithCause(err)
	}
	if !isValidStatus(Status(raw)) {
		return apperror.NewValidation("unknown asset status").
			WithDetail("field", "status").
			WithDetail("value", raw)
	}
	*s = Status(raw)
	return nil
}

// UnmarshalJSON rejects unrecognized method labels instead of coercing them.
func (m *Method) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperror.NewValidation("depreciation method must be a string").WithCause(err)
	}
	if !isValidMethod(Method(raw)) {
		return apperror.NewValidation("unknown depreciation method").
			WithDetail("field", "depreciation_method").
			WithDetail("value", raw)
	}
	*m = Method(raw)
	return nil
}
