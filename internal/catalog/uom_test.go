package catalog

import (
	"testing"

	"kasirpos-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBaseQuantity(t *testing.T) {
	p := models.Product{
		Name: "Susu UHT",
		Unit: "pcs",
		Conversions: []models.UnitConversion{
			{Unit: "box", Factor: 12},
			{Unit: "carton", Factor: 48},
		},
	}

	got, err := ToBaseQuantity(p, 3, "pcs")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	got, err = ToBaseQuantity(p, 2, "box")
	require.NoError(t, err)
	assert.Equal(t, 24.0, got)

	got, err = ToBaseQuantity(p, 0.5, "carton")
	require.NoError(t, err)
	assert.Equal(t, 24.0, got)
}

func TestToBaseQuantityEmptyUnitMeansBase(t *testing.T) {
	p := models.Product{Name: "Gula", Unit: "kg"}

	got, err := ToBaseQuantity(p, 1.5, "")
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)
}

func TestToBaseQuantityUnknownUnit(t *testing.T) {
	p := models.Product{Name: "Gula", Unit: "kg"}

	_, err := ToBaseQuantity(p, 1, "sack")
	assert.Error(t, err)
}
