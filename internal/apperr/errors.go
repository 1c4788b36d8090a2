// Package apperr defines the closed set of business error kinds shared by the
// repository, usecase and HTTP layers. Handlers map these to status codes
// through a static table; nothing anywhere matches on message text.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// Payment validation
	ErrMissingField     = errors.New("thiếu thông tin bắt buộc")
	ErrProofRequired    = errors.New("vui lòng cung cấp hình ảnh chứng minh thanh toán")
	ErrUnknownPackage   = errors.New("gói không hợp lệ")
	ErrAmountMismatch   = errors.New("số tiền không khớp với gói")
	ErrIdentityMismatch = errors.New("email không khớp với tài khoản")
	ErrNoDowngrade      = errors.New("không thể hạ cấp hoặc mua gói tương đương")

	// Payment lifecycle
	ErrPaymentNotFoundOrProcessed = errors.New("không tìm thấy giao dịch pending")
	ErrPaymentNotPending          = errors.New("chỉ có thể xử lý giao dịch đang pending")

	// Auth
	ErrEmailTaken         = errors.New("email đã được đăng ký")
	ErrInvalidCredentials = errors.New("email hoặc mật khẩu không đúng")

	// Access gate
	ErrForbidden = errors.New("không có quyền truy cập")

	// Generic lookups
	ErrNotFound = errors.New("không tìm thấy dữ liệu")
)

// Wrap annotates kind with detail while keeping errors.Is(err, kind) true.
func Wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
