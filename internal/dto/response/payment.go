package response

import (
	"time"

	"cyberlearn/internal/data/entity"
)

type PaymentResponse struct {
	ID            string                `json:"id"`
	UserID        string                `json:"user_id"`
	FullName      string                `json:"ho_ten"`
	Email         string                `json:"email"`
	Phone         *string               `json:"so_dien_thoai,omitempty"`
	Method        entity.PaymentMethod  `json:"phuong_thuc_thanh_toan"`
	PackageName   string                `json:"ten_goi"`
	Amount        int64                 `json:"so_tien"`
	ProofImageURL *string               `json:"hinh_anh_chung_minh,omitempty"`
	Status        entity.PaymentStatus  `json:"trang_thai"`
	PaidAt        time.Time             `json:"ngay_thanh_toan"`
}

// PaymentSubmissionResponse acknowledges a newly created pending request.
// NewRole is the role the user will receive once an admin approves.
type PaymentSubmissionResponse struct {
	PaymentID     string              `json:"payment_id"`
	Status        entity.PaymentStatus `json:"status"`
	NewRole       entity.UserRole     `json:"new_role"`
	ProofImageURL *string             `json:"proof_image_url,omitempty"`
}

type ApprovalResponse struct {
	Payment PaymentResponse `json:"payment"`
	NewRole entity.UserRole `json:"new_role"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		UserID:        payment.UserID.String(),
		FullName:      payment.FullName,
		Email:         payment.Email,
		Phone:         payment.Phone,
		Method:        payment.Method,
		PackageName:   payment.PackageName,
		Amount:        payment.Amount,
		ProofImageURL: payment.ProofImageURL,
		Status:        payment.Status,
		PaidAt:        payment.CreatedAt,
	}
}
