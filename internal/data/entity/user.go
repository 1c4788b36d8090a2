package entity

import (
	"time"
)

type UserRole string

// Purchasable roles form a ladder (see catalog.RoleOrder); admin sits outside
// the ladder and is never granted through a payment.
const (
	RoleUser        UserRole = "user"
	RoleUserBasic   UserRole = "user_basic"
	RoleUserPremium UserRole = "user_premium"
	RoleUserYear    UserRole = "user_year"
	RoleAdmin       UserRole = "admin"
)

type CourseTier string

const (
	CourseTierNone    CourseTier = ""
	CourseTierBasic   CourseTier = "basic"
	CourseTierPremium CourseTier = "premium"
	CourseTierYear    CourseTier = "year"
)

type User struct {
	Base
	Name         string     `db:"ten"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"matkhau"`
	BirthDate    *time.Time `db:"ngaysinh"`
	Role         UserRole   `db:"role"`
	CourseTier   CourseTier `db:"course_type"`
}
