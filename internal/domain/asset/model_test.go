package asset

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aktiva/internal/core/apperror"
	"aktiva/internal/core/id"
	"aktiva/internal/core/types"
)

func TestAsset_JSONRoundTrip(t *testing.T) {
	serial := "SN-0042"
	description := "Dev workstation"

	a := laptopAsset()
	a.SerialNumber = &serial
	a.Description = &description

	data, err := json.Marshal(a)
	require.NoError(t, err)

	// Money travels as quoted decimal strings, dates as YYYY-MM-DD.
	assert.Contains(t, string(data), `"purchase_price":"1500.00"`)
	assert.Contains(t, string(data), `"purchase_date":"2023-01-01"`)

	var parsed Asset
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, a.ID, parsed.ID)
	assert.Equal(t, a.Name, parsed.Name)
	assert.True(t, parsed.PurchaseDate.Equal(a.PurchaseDate))
	assert.True(t, parsed.PurchasePrice.Equal(a.PurchasePrice))
	assert.True(t, parsed.SalvageValue.Equal(a.SalvageValue))
	assert.Equal(t, a.Status, parsed.Status)
	assert.Equal(t, a.DepreciationMethod, parsed.DepreciationMethod)
	require.NotNil(t, parsed.SerialNumber)
	assert.Equal(t, serial, *parsed.SerialNumber)
	require.NotNil(t, parsed.Description)
	assert.Equal(t, description, *parsed.Description)
}

func TestAsset_OptionalFieldsOmitted(t *testing.T) {
	data, err := json.Marshal(laptopAsset())
	require.NoError(t, err)

	assert.NotContains(t, string(data), "serial_number")
	assert.NotContains(t, string(data), "description")
}

func TestStatus_UnmarshalRejectsUnknownLabels(t *testing.T) {
	var a Asset
	err := json.Unmarshal([]byte(`{"name":"x","status":"Broken"}`), &a)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	err = json.Unmarshal([]byte(`{"name":"x","depreciation_method":"Units of Production"}`), &a)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestAsset_Validate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(a *Asset)
		wantErr bool
	}{
		{"valid defaults", func(a *Asset) {}, false},
		{"empty name", func(a *Asset) { a.Name = "" }, true},
		{"zero purchase date", func(a *Asset) { a.PurchaseDate = types.Date{} }, true},
		{"negative price", func(a *Asset) { a.PurchasePrice = types.MustMoney("-1") }, true},
		{"zero useful life", func(a *Asset) { a.UsefulLifeYears = 0 }, true},
		{"negative salvage", func(a *Asset) { a.SalvageValue = types.MustMoney("-0.01") }, true},
		{"salvage above price", func(a *Asset) { a.SalvageValue = types.MustMoney("2000") }, true},
		{"unknown status", func(a *Asset) { a.Status = Status("Retired") }, true},
		{"unknown method", func(a *Asset) { a.DepreciationMethod = Method("MACRS") }, true},
		{"salvage equal to price", func(a *Asset) { a.SalvageValue = a.PurchasePrice }, false},
		{"free asset", func(a *Asset) {
			a.PurchasePrice = types.Zero()
			a.CurrentValue = types.Zero()
			a.SalvageValue = types.Zero()
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := laptopAsset()
			tt.mutate(a)

			err := a.Validate(ctx)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsValidation(err), "expected a validation error, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	a := New("Printer", types.NewDate(2024, time.March, 1), types.MustMoney("400.00"), "Office", "IT Equipment", 5)

	assert.False(t, id.IsNil(a.ID))
	assert.Equal(t, StatusActive, a.Status)
	assert.Equal(t, MethodStraightLine, a.DepreciationMethod)
	assert.True(t, a.CurrentValue.Equal(a.PurchasePrice))
	assert.True(t, a.SalvageValue.IsZero())
}
