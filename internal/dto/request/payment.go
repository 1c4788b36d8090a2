package request

// CreatePaymentRequest carries a purchase intent. Field names follow the
// public API contract; amounts are whole đồng.
type CreatePaymentRequest struct {
	FullName      string  `json:"ho_ten" validate:"required,max=100"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         *string `json:"so_dien_thoai,omitempty" validate:"omitempty,max=20"`
	Method        string  `json:"phuong_thuc_thanh_toan" validate:"omitempty,oneof=bank_transfer momo"`
	PackageName   string  `json:"ten_goi" validate:"required"`
	Amount        int64   `json:"so_tien" validate:"required,min=1"`
	ProofImageURL *string `json:"hinh_anh_chung_minh,omitempty" validate:"omitempty,url"`
}

// PaymentListRequest is the admin listing filter.
type PaymentListRequest struct {
	Status      string `json:"trang_thai" validate:"omitempty,oneof=pending completed rejected"`
	PackageName string `json:"ten_goi"`
	Limit       int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset      int    `json:"offset" validate:"omitempty,min=0"`
}
