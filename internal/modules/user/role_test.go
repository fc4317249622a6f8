package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "shopkeeper", "client"} {
		role, err := ParseRole(valid)
		assert.NoError(t, err)
		assert.Equal(t, Role(valid), role)
	}

	_, err := ParseRole("manager")
	assert.Error(t, err)
	_, err = ParseRole("Admin") // roles are case-sensitive
	assert.Error(t, err)
}

func TestCapabilities(t *testing.T) {
	assert.True(t, CanManageUsers(RoleAdmin))
	assert.False(t, CanManageUsers(RoleShopkeeper))
	assert.False(t, CanManageUsers(RoleClient))

	assert.True(t, CanManageCatalog(RoleAdmin))
	assert.False(t, CanManageCatalog(RoleShopkeeper))
	assert.False(t, CanManageCatalog(RoleClient))

	assert.False(t, CanBill(RoleAdmin))
	assert.True(t, CanBill(RoleShopkeeper))
	assert.False(t, CanBill(RoleClient))

	assert.True(t, CanViewProducts(RoleAdmin))
	assert.True(t, CanViewProducts(RoleShopkeeper))
	assert.True(t, CanViewProducts(RoleClient))

	assert.True(t, CanViewSalesReport(RoleAdmin))
	assert.False(t, CanViewSalesReport(RoleShopkeeper))
	assert.False(t, CanViewSalesReport(RoleClient))
}
