package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductInput_ValidatePrice(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		wantErr string
	}{
		{name: "Whole rupees", price: 285000},
		{name: "Two decimal places", price: 1234.56},
		{name: "One decimal place", price: 0.5},
		{name: "Largest storable price", price: 9999999999.99},
		{name: "Zero", price: 0, wantErr: "price must be greater than zero"},
		{name: "Negative", price: -10, wantErr: "price must be greater than zero"},
		{name: "Three decimal places", price: 1234.567, wantErr: "price must have at most two decimal places"},
		{name: "Below one paisa", price: 0.001, wantErr: "price must have at most two decimal places"},
		{name: "Too large", price: 1e10, wantErr: "price must be less than 10000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := ProductInput{Name: "Disc Plough", Price: tt.price, Category: CategoryPloughs}
			err := input.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())

			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, ErrCodeInvalidField, domainErr.Code)
		})
	}
}

func TestProductPatch_Validate(t *testing.T) {
	price := func(v float64) *float64 { return &v }
	status := func(v ProductStatus) *ProductStatus { return &v }
	empty := BuildType("")

	tests := []struct {
		name    string
		patch   ProductPatch
		wantErr string
	}{
		{name: "Status only", patch: ProductPatch{Status: status(StatusOutOfStock)}},
		{name: "Cleared build type", patch: ProductPatch{BuildType: &empty}},
		{name: "Exact price", patch: ProductPatch{Price: price(68999.99)}},
		{name: "Unknown status", patch: ProductPatch{Status: status("Sold")}, wantErr: `unknown status "Sold"`},
		{name: "Rounded price", patch: ProductPatch{Price: price(0.001)}, wantErr: "price must have at most two decimal places"},
		{name: "Oversized price", patch: ProductPatch{Price: price(12345678901)}, wantErr: "price must be less than 10000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
