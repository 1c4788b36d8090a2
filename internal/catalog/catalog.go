// Package catalog holds the purchasable package definitions and the role
// upgrade ordering. Both are built once at startup and never mutated.
package catalog

import (
	"cyberlearn/internal/data/entity"
)

// Package maps a purchasable tier to the role it grants, its fixed price in
// whole đồng and the course tier unlocked by that role.
type Package struct {
	Name       string
	Role       entity.UserRole
	Price      int64
	CourseTier entity.CourseTier
}

type Catalog struct {
	packages map[string]Package
}

// Default returns the production price list.
func Default() *Catalog {
	return New([]Package{
		{Name: "Gói Cơ Bản", Role: entity.RoleUserBasic, Price: 39000, CourseTier: entity.CourseTierBasic},
		{Name: "Gói Nâng Cao", Role: entity.RoleUserPremium, Price: 89000, CourseTier: entity.CourseTierPremium},
		{Name: "Gói Năm", Role: entity.RoleUserYear, Price: 1299000, CourseTier: entity.CourseTierYear},
	})
}

func New(packages []Package) *Catalog {
	m := make(map[string]Package, len(packages))
	for _, p := range packages {
		m[p.Name] = p
	}
	return &Catalog{packages: m}
}

// Lookup returns the package definition for name. The second return value is
// false for unknown packages; callers treat that as a validation failure.
func (c *Catalog) Lookup(name string) (Package, bool) {
	p, ok := c.packages[name]
	return p, ok
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.packages))
	for name := range c.packages {
		names = append(names, name)
	}
	return names
}
