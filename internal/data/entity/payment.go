package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRejected  PaymentStatus = "rejected"
)

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMomo         PaymentMethod = "momo"
)

// Payment is a purchase intent and its adjudication. Rows are created as
// pending and transition exactly once to completed or rejected; Amount is
// whole đồng, never a float.
type Payment struct {
	Base
	UserID        uuid.UUID     `db:"user_id"`
	FullName      string        `db:"ho_ten"`
	Email         string        `db:"email"`
	Phone         *string       `db:"so_dien_thoai"`
	Method        PaymentMethod `db:"phuong_thuc_thanh_toan"`
	PackageName   string        `db:"ten_goi"`
	Amount        int64         `db:"so_tien"`
	ProofImageURL *string       `db:"hinh_anh_chung_minh"`
	Status        PaymentStatus `db:"trang_thai"`
}

// PendingApproval is the joined row the approval transaction re-reads under
// lock: the pending payment plus its owner's current role.
type PendingApproval struct {
	PaymentID   uuid.UUID
	UserID      uuid.UUID
	PackageName string
	Amount      int64
	CurrentRole UserRole
}
