package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixeldesignindia/organic-api/models"
)

func moduleNames(perms []models.Permission) []string {
	names := make([]string, len(perms))
	for i, p := range perms {
		names[i] = p.Module
	}
	return names
}

func TestSortPermissions(t *testing.T) {
	perms := []models.Permission{
		{Module: "orders"},
		{Module: "Banners"},
		{Module: "products"},
		{Module: "coupons"},
	}

	sortPermissions(perms)
	assert.Equal(t, []string{"Banners", "coupons", "orders", "products"}, moduleNames(perms))

	sortPermissionsFold(perms)
	assert.Equal(t, []string{"Banners", "coupons", "orders", "products"}, moduleNames(perms))
}

func TestSortPermissionsFold(t *testing.T) {
	perms := []models.Permission{
		{Module: "Zones"},
		{Module: "banners"},
		{Module: "Orders"},
	}

	sortPermissions(perms)
	assert.Equal(t, []string{"Orders", "Zones", "banners"}, moduleNames(perms),
		"byte order puts uppercase first")

	sortPermissionsFold(perms)
	assert.Equal(t, []string{"banners", "Orders", "Zones"}, moduleNames(perms))
}
