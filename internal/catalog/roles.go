package catalog

import (
	"cyberlearn/internal/data/entity"
)

// RoleOrder is the total order over purchasable roles. Higher priority means
// a higher entitlement level; a payment may only ever move a user upward.
type RoleOrder struct {
	priority map[entity.UserRole]int
}

// DefaultRoleOrder mirrors the production ladder:
// user < user_basic < user_premium < user_year.
func DefaultRoleOrder() *RoleOrder {
	return &RoleOrder{
		priority: map[entity.UserRole]int{
			entity.RoleUser:        0,
			entity.RoleUserBasic:   1,
			entity.RoleUserPremium: 2,
			entity.RoleUserYear:    3,
		},
	}
}

// Priority returns the ladder position of role. Unknown roles rank as
// baseline so comparisons are always defined.
func (o *RoleOrder) Priority(role entity.UserRole) int {
	return o.priority[role]
}

// IsUpgrade reports whether candidate is a strict upgrade over current.
func (o *RoleOrder) IsUpgrade(current, candidate entity.UserRole) bool {
	return o.Priority(candidate) > o.Priority(current)
}
