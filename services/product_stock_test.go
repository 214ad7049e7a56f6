package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/models"
)

func TestDecrementSKU(t *testing.T) {
	skus := []models.SKU{
		{Name: "250g", Stock: 10},
		{Name: "500g", Stock: 3},
	}

	out, err := decrementSKU(skus, "500g", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, out[1].Stock)
	assert.Equal(t, 10, out[0].Stock, "other SKUs untouched")
	assert.Equal(t, 3, skus[1].Stock, "input slice is not mutated")

	out, err = decrementSKU(skus, "500g", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, out[1].Stock, "exact stock drains to zero")
}

func TestDecrementSKUErrors(t *testing.T) {
	skus := []models.SKU{{Name: "250g", Stock: 2}}

	_, err := decrementSKU(skus, "250g", 5)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.StatusOf(err))
	assert.Equal(t, 2, skus[0].Stock)

	_, err = decrementSKU(skus, "1kg", 1)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.StatusOf(err))
}
