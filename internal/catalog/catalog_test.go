package catalog

import (
	"testing"

	"cyberlearn/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	tests := []struct {
		name  string
		role  entity.UserRole
		price int64
		tier  entity.CourseTier
	}{
		{"Gói Cơ Bản", entity.RoleUserBasic, 39000, entity.CourseTierBasic},
		{"Gói Nâng Cao", entity.RoleUserPremium, 89000, entity.CourseTierPremium},
		{"Gói Năm", entity.RoleUserYear, 1299000, entity.CourseTierYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, ok := cat.Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.role, pkg.Role)
			assert.Equal(t, tt.price, pkg.Price)
			assert.Equal(t, tt.tier, pkg.CourseTier)
		})
	}
}

func TestLookupUnknownPackage(t *testing.T) {
	cat := Default()

	_, ok := cat.Lookup("Gói Không Tồn Tại")
	assert.False(t, ok)

	_, ok = cat.Lookup("")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	cat := Default()
	assert.Len(t, cat.Names(), 3)
}

func TestRolePriority(t *testing.T) {
	order := DefaultRoleOrder()

	assert.Equal(t, 0, order.Priority(entity.RoleUser))
	assert.Equal(t, 1, order.Priority(entity.RoleUserBasic))
	assert.Equal(t, 2, order.Priority(entity.RoleUserPremium))
	assert.Equal(t, 3, order.Priority(entity.RoleUserYear))

	// Roles outside the ladder rank as baseline.
	assert.Equal(t, 0, order.Priority(entity.RoleAdmin))
	assert.Equal(t, 0, order.Priority(entity.UserRole("ghost")))
}

func TestIsUpgrade(t *testing.T) {
	order := DefaultRoleOrder()

	assert.True(t, order.IsUpgrade(entity.RoleUser, entity.RoleUserBasic))
	assert.True(t, order.IsUpgrade(entity.RoleUser, entity.RoleUserYear))
	assert.True(t, order.IsUpgrade(entity.RoleUserBasic, entity.RoleUserPremium))

	// Equal rank is not an upgrade.
	assert.False(t, order.IsUpgrade(entity.RoleUserBasic, entity.RoleUserBasic))

	// Downward moves are never upgrades.
	assert.False(t, order.IsUpgrade(entity.RoleUserPremium, entity.RoleUserBasic))
	assert.False(t, order.IsUpgrade(entity.RoleUserYear, entity.RoleUserPremium))
}
