package usecase

import (
	"context"
	"testing"
	"time"

	"cyberlearn/internal/apperr"
	"cyberlearn/internal/catalog"
	"cyberlearn/internal/data/entity"
	"cyberlearn/internal/data/repository"
	"cyberlearn/internal/dto/request"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func testUser(role entity.UserRole) *entity.User {
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Nguyễn Văn A",
		Email: "a@example.com",
		Role:  role,
	}
}

func validRequest() *request.CreatePaymentRequest {
	return &request.CreatePaymentRequest{
		FullName:      "Nguyễn Văn A",
		Email:         "a@example.com",
		Method:        "bank_transfer",
		PackageName:   "Gói Cơ Bản",
		Amount:        39000,
		ProofImageURL: strPtr("https://cdn.example.com/proof.png"),
	}
}

func TestValidateUpgrade(t *testing.T) {
	cat := catalog.Default()
	roles := catalog.DefaultRoleOrder()

	t.Run("valid basic package", func(t *testing.T) {
		pkg, err := validateUpgrade(cat, roles, validRequest(), testUser(entity.RoleUser))
		require.NoError(t, err)
		assert.Equal(t, entity.RoleUserBasic, pkg.Role)
		assert.Equal(t, entity.CourseTierBasic, pkg.CourseTier)
	})

	t.Run("missing full name", func(t *testing.T) {
		req := validRequest()
		req.FullName = ""
		_, err := validateUpgrade(cat, roles, req, testUser(entity.RoleUser))
		assert.ErrorIs(t, err, apperr.ErrMissingField)
	})

	t.Run("bank transfer without proof", func(t *testing.T) {
		req := validRequest()
		req.ProofImageURL = nil
		_, err := validateUpgrade(cat, roles, req, testUser(entity.RoleUser))
		assert.ErrorIs(t, err, apperr.ErrProofRequired)
	})

	t.Run("momo without proof is accepted", func(t *testing.T) {
		req := validRequest()
		req.Method = "momo"
		req.ProofImageURL = nil
		_, err := validateUpgrade(cat, roles, req, testUser(entity.RoleUser))
		assert.NoError(t, err)
	})

	t.Run("unknown package", func(t *testing.T) {
		req := validRequest()
		req.PackageName = "Gói Bạch Kim"
		_, err := validateUpgrade(cat, roles, req, testUser(entity.RoleUser))
		assert.ErrorIs(t, err, apperr.ErrUnknownPackage)
	})

	t.Run("amount below price", func(t *testing.T) {
		req := validRequest()
		req.Amount = 38000
		_, err := validateUpgrade(cat, roles, req, testUser(entity.RoleUser))
		assert.ErrorIs(t, err, apperr.ErrAmountMismatch)
	})

	t.Run("amount above price", func(t *testing.T) {
		req := validRequest()
		req.Amount = 40000
		_, err := validateUpgrade(cat, roles, req, testUser(entity.RoleUser))
		assert.ErrorIs(t, err, apperr.ErrAmountMismatch)
	})

	t.Run("email differs from account", func(t *testing.T) {
		req := validRequest()
		req.Email = "b@example.com"
		_, err := validateUpgrade(cat, roles, req, testUser(entity.RoleUser))
		assert.ErrorIs(t, err, apperr.ErrIdentityMismatch)
	})

	t.Run("premium user buying basic is a downgrade", func(t *testing.T) {
		_, err := validateUpgrade(cat, roles, validRequest(), testUser(entity.RoleUserPremium))
		assert.ErrorIs(t, err, apperr.ErrNoDowngrade)
	})

	t.Run("same tier is not an upgrade", func(t *testing.T) {
		_, err := validateUpgrade(cat, roles, validRequest(), testUser(entity.RoleUserBasic))
		assert.ErrorIs(t, err, apperr.ErrNoDowngrade)
	})

	t.Run("validation order: amount checked before identity", func(t *testing.T) {
		req := validRequest()
		req.Amount = 38000
		req.Email = "b@example.com"
		_, err := validateUpgrade(cat, roles, req, testUser(entity.RoleUser))
		assert.ErrorIs(t, err, apperr.ErrAmountMismatch)
	})
}

func newPaymentService(t *testing.T) (PaymentService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := repository.NewRepository(mock, zap.NewNop())
	svc := NewPaymentService(mock, repo, catalog.Default(), catalog.DefaultRoleOrder(), zap.NewNop())

	return svc, mock
}

func paymentRow(id, userID uuid.UUID, status entity.PaymentStatus) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "user_id", "ho_ten", "email", "so_dien_thoai", "phuong_thuc_thanh_toan",
		"ten_goi", "so_tien", "hinh_anh_chung_minh", "trang_thai", "ngay_thanh_toan", "updated_at",
	}).AddRow(
		id, userID, "Nguyễn Văn A", "a@example.com", (*string)(nil), entity.PaymentMethodBankTransfer,
		"Gói Cơ Bản", int64(39000), strPtr("https://cdn.example.com/proof.png"), status, now, now,
	)
}

func TestApprovePayment(t *testing.T) {
	svc, mock := newPaymentService(t)

	paymentID := uuid.New()
	userID := uuid.New()
	adminID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE OF t, u`).
		WithArgs(paymentID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "ten_goi", "so_tien", "role"}).
			AddRow(paymentID, userID, "Gói Cơ Bản", int64(39000), entity.RoleUser))
	mock.ExpectExec(`UPDATE thanhtoan`).
		WithArgs(paymentID, entity.PaymentStatusCompleted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE users`).
		WithArgs(userID, entity.RoleUserBasic, entity.CourseTierBasic).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT .+ FROM thanhtoan WHERE id`).
		WithArgs(paymentID).
		WillReturnRows(paymentRow(paymentID, userID, entity.PaymentStatusCompleted))

	resp, err := svc.ApprovePayment(context.Background(), paymentID, adminID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUserBasic, resp.NewRole)
	assert.Equal(t, entity.PaymentStatusCompleted, resp.Payment.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovePaymentAlreadyProcessed(t *testing.T) {
	svc, mock := newPaymentService(t)

	paymentID := uuid.New()

	// The locked pending re-read sees zero rows: payment missing or already
	// adjudicated. No writes happen, the transaction rolls back.
	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE OF t, u`).
		WithArgs(paymentID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "ten_goi", "so_tien", "role"}))
	mock.ExpectRollback()

	_, err := svc.ApprovePayment(context.Background(), paymentID, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrPaymentNotFoundOrProcessed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovePaymentRoleAlreadyHigher(t *testing.T) {
	svc, mock := newPaymentService(t)

	paymentID := uuid.New()
	userID := uuid.New()

	// A basic-package payment left pending after the user was upgraded to
	// premium through another payment must not pull the role back down.
	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE OF t, u`).
		WithArgs(paymentID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "ten_goi", "so_tien", "role"}).
			AddRow(paymentID, userID, "Gói Cơ Bản", int64(39000), entity.RoleUserPremium))
	mock.ExpectRollback()

	_, err := svc.ApprovePayment(context.Background(), paymentID, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNoDowngrade)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovePaymentUpgradeFailureRollsBack(t *testing.T) {
	svc, mock := newPaymentService(t)

	paymentID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE OF t, u`).
		WithArgs(paymentID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "ten_goi", "so_tien", "role"}).
			AddRow(paymentID, userID, "Gói Cơ Bản", int64(39000), entity.RoleUser))
	mock.ExpectExec(`UPDATE thanhtoan`).
		WithArgs(paymentID, entity.PaymentStatusCompleted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE users`).
		WithArgs(userID, entity.RoleUserBasic, entity.CourseTierBasic).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	_, err := svc.ApprovePayment(context.Background(), paymentID, uuid.New())
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectPayment(t *testing.T) {
	svc, mock := newPaymentService(t)

	paymentID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM thanhtoan WHERE id`).
		WithArgs(paymentID).
		WillReturnRows(paymentRow(paymentID, userID, entity.PaymentStatusPending))
	mock.ExpectExec(`UPDATE thanhtoan`).
		WithArgs(paymentID, entity.PaymentStatusRejected).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	resp, err := svc.RejectPayment(context.Background(), paymentID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRejected, resp.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectPaymentNotPending(t *testing.T) {
	svc, mock := newPaymentService(t)

	paymentID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM thanhtoan WHERE id`).
		WithArgs(paymentID).
		WillReturnRows(paymentRow(paymentID, userID, entity.PaymentStatusCompleted))

	_, err := svc.RejectPayment(context.Background(), paymentID)
	assert.ErrorIs(t, err, apperr.ErrPaymentNotPending)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectPaymentMissing(t *testing.T) {
	svc, mock := newPaymentService(t)

	paymentID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM thanhtoan WHERE id`).
		WithArgs(paymentID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "ho_ten", "email", "so_dien_thoai", "phuong_thuc_thanh_toan",
			"ten_goi", "so_tien", "hinh_anh_chung_minh", "trang_thai", "ngay_thanh_toan", "updated_at",
		}))

	_, err := svc.RejectPayment(context.Background(), paymentID)
	assert.ErrorIs(t, err, apperr.ErrPaymentNotFoundOrProcessed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentByIDAccessGate(t *testing.T) {
	paymentID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	t.Run("owner reads own payment", func(t *testing.T) {
		svc, mock := newPaymentService(t)

		mock.ExpectQuery(`SELECT .+ FROM thanhtoan WHERE id`).
			WithArgs(paymentID).
			WillReturnRows(paymentRow(paymentID, ownerID, entity.PaymentStatusPending))

		resp, err := svc.GetPaymentByID(context.Background(), ownerID, entity.RoleUser, paymentID)
		require.NoError(t, err)
		assert.Equal(t, ownerID.String(), resp.UserID)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		svc, mock := newPaymentService(t)

		mock.ExpectQuery(`SELECT .+ FROM thanhtoan WHERE id`).
			WithArgs(paymentID).
			WillReturnRows(paymentRow(paymentID, ownerID, entity.PaymentStatusPending))

		_, err := svc.GetPaymentByID(context.Background(), strangerID, entity.RoleUser, paymentID)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("admin reads any payment", func(t *testing.T) {
		svc, mock := newPaymentService(t)

		mock.ExpectQuery(`SELECT .+ FROM thanhtoan WHERE id`).
			WithArgs(paymentID).
			WillReturnRows(paymentRow(paymentID, ownerID, entity.PaymentStatusPending))

		resp, err := svc.GetPaymentByID(context.Background(), strangerID, entity.RoleAdmin, paymentID)
		require.NoError(t, err)
		assert.Equal(t, ownerID.String(), resp.UserID)
	})
}

func TestCreatePaymentRequest(t *testing.T) {
	svc, mock := newPaymentService(t)

	user := testUser(entity.RoleUser)

	mock.ExpectQuery(`FROM users\s+WHERE`).
		WithArgs(user.ID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "ten", "email", "matkhau", "ngaysinh", "role", "course_type", "created_at", "updated_at",
		}).AddRow(
			user.ID, user.Name, user.Email, "hash", (*time.Time)(nil),
			user.Role, entity.CourseTierNone, user.CreatedAt, user.UpdatedAt,
		))
	mock.ExpectExec(`INSERT INTO thanhtoan`).
		WithArgs(pgxmock.AnyArg(), user.ID, "Nguyễn Văn A", "a@example.com", (*string)(nil),
			entity.PaymentMethod("bank_transfer"), "Gói Cơ Bản", int64(39000),
			strPtr("https://cdn.example.com/proof.png"), entity.PaymentStatusPending,
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	resp, err := svc.CreatePaymentRequest(context.Background(), user.ID, validRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, resp.Status)
	assert.Equal(t, entity.RoleUserBasic, resp.NewRole)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentRequestRejectedBeforePersisting(t *testing.T) {
	svc, mock := newPaymentService(t)

	user := testUser(entity.RoleUser)

	// A failing validation never reaches the ledger: only the user read runs.
	mock.ExpectQuery(`FROM users\s+WHERE`).
		WithArgs(user.ID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "ten", "email", "matkhau", "ngaysinh", "role", "course_type", "created_at", "updated_at",
		}).AddRow(
			user.ID, user.Name, user.Email, "hash", (*time.Time)(nil),
			user.Role, entity.CourseTierNone, user.CreatedAt, user.UpdatedAt,
		))

	req := validRequest()
	req.Amount = 38000

	_, err := svc.CreatePaymentRequest(context.Background(), user.ID, req)
	assert.ErrorIs(t, err, apperr.ErrAmountMismatch)

	assert.NoError(t, mock.ExpectationsWereMet())
}
