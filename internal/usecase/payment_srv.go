package usecase

import (
	"context"
	"fmt"
	"time"

	"cyberlearn/internal/apperr"
	"cyberlearn/internal/catalog"
	"cyberlearn/internal/data/entity"
	"cyberlearn/internal/data/repository"
	"cyberlearn/internal/dto/request"
	"cyberlearn/internal/dto/response"
	"cyberlearn/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentService interface {
	// User endpoints
	CreatePaymentRequest(ctx context.Context, userID uuid.UUID, req *request.CreatePaymentRequest) (*response.PaymentSubmissionResponse, error)
	GetPaymentByID(ctx context.Context, callerID uuid.UUID, callerRole entity.UserRole, id uuid.UUID) (*response.PaymentResponse, error)
	GetAllPayments(ctx context.Context, callerID uuid.UUID, callerRole entity.UserRole, req *request.PaymentListRequest) ([]response.PaymentResponse, error)

	// Admin endpoints
	ApprovePayment(ctx context.Context, paymentID, adminID uuid.UUID) (*response.ApprovalResponse, error)
	RejectPayment(ctx context.Context, paymentID uuid.UUID) (*response.PaymentResponse, error)
}

type paymentService struct {
	db      database.PgxIface
	repo    *repository.Repository
	catalog *catalog.Catalog
	roles   *catalog.RoleOrder
	log     *zap.Logger
}

func NewPaymentService(
	db database.PgxIface,
	repo *repository.Repository,
	cat *catalog.Catalog,
	roles *catalog.RoleOrder,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		db:      db,
		repo:    repo,
		catalog: cat,
		roles:   roles,
		log:     log.With(zap.String("service", "payment")),
	}
}

// validateUpgrade checks a purchase intent against the catalog and the
// requesting user's current state. Pure: no side effects, rules applied in a
// fixed order, each failure a distinct error kind.
func validateUpgrade(cat *catalog.Catalog, roles *catalog.RoleOrder, req *request.CreatePaymentRequest, user *entity.User) (catalog.Package, error) {
	if req.FullName == "" || req.Email == "" || req.PackageName == "" || req.Amount <= 0 {
		return catalog.Package{}, apperr.ErrMissingField
	}

	if entity.PaymentMethod(req.Method) == entity.PaymentMethodBankTransfer &&
		(req.ProofImageURL == nil || *req.ProofImageURL == "") {
		return catalog.Package{}, apperr.ErrProofRequired
	}

	pkg, ok := cat.Lookup(req.PackageName)
	if !ok {
		return catalog.Package{}, apperr.Wrap(apperr.ErrUnknownPackage, "%s", req.PackageName)
	}

	if req.Amount != pkg.Price {
		return catalog.Package{}, apperr.Wrap(apperr.ErrAmountMismatch, "%s", req.PackageName)
	}

	if req.Email != user.Email {
		return catalog.Package{}, apperr.ErrIdentityMismatch
	}

	if !roles.IsUpgrade(user.Role, pkg.Role) {
		return catalog.Package{}, apperr.Wrap(apperr.ErrNoDowngrade, "vai trò hiện tại %s", string(user.Role))
	}

	return pkg, nil
}

func (s *paymentService) CreatePaymentRequest(ctx context.Context, userID uuid.UUID, req *request.CreatePaymentRequest) (*response.PaymentSubmissionResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", userID.String(), err)
	}
	if user == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "user %s", userID.String())
	}

	if req.Method == "" {
		req.Method = string(entity.PaymentMethodBankTransfer)
	}

	pkg, err := validateUpgrade(s.catalog, s.roles, req, user)
	if err != nil {
		s.log.Warn("Payment request rejected",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("package", req.PackageName),
		)
		return nil, err
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userID,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Method:        entity.PaymentMethod(req.Method),
		PackageName:   req.PackageName,
		Amount:        req.Amount,
		ProofImageURL: req.ProofImageURL,
		Status:        entity.PaymentStatusPending,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.log.Info("Payment request created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("package", payment.PackageName),
		zap.Int64("amount", payment.Amount),
	)

	return &response.PaymentSubmissionResponse{
		PaymentID:     payment.ID.String(),
		Status:        payment.Status,
		NewRole:       pkg.Role,
		ProofImageURL: payment.ProofImageURL,
	}, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, callerID uuid.UUID, callerRole entity.UserRole, id uuid.UUID) (*response.PaymentResponse, error) {
	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "payment %s", id.String())
	}

	// Access gate: admins read anything, everyone else only their own rows.
	if callerRole != entity.RoleAdmin && payment.UserID != callerID {
		return nil, apperr.Wrap(apperr.ErrForbidden, "payment %s", id.String())
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) GetAllPayments(ctx context.Context, callerID uuid.UUID, callerRole entity.UserRole, req *request.PaymentListRequest) ([]response.PaymentResponse, error) {
	var filter repository.PaymentFilter

	if callerRole == entity.RoleAdmin {
		if req.Status != "" {
			status := entity.PaymentStatus(req.Status)
			filter.Status = &status
		}
		if req.PackageName != "" {
			filter.PackageName = &req.PackageName
		}
	} else {
		// Non-admins are pinned to their own history regardless of filters.
		filter.UserID = &callerID
	}

	payments, err := s.repo.Payment.FindFiltered(ctx, filter, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	responses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = response.PaymentToResponse(payment)
	}

	return responses, nil
}

// ApprovePayment atomically completes a pending payment and upgrades the
// owning user's role and course tier, or does neither. The pending-filtered
// re-read under lock makes completion at-most-once: of two concurrent
// approvals, the second observes zero rows and aborts with no effect.
func (s *paymentService) ApprovePayment(ctx context.Context, paymentID, adminID uuid.UUID) (*response.ApprovalResponse, error) {
	var newRole entity.UserRole

	err := database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		row, err := s.repo.Payment.FindPendingForUpdate(ctx, tx, paymentID)
		if err != nil {
			return err
		}
		if row == nil {
			return apperr.Wrap(apperr.ErrPaymentNotFoundOrProcessed, "payment %s", paymentID.String())
		}

		pkg, ok := s.catalog.Lookup(row.PackageName)
		if !ok {
			return apperr.Wrap(apperr.ErrUnknownPackage, "%s", row.PackageName)
		}

		// Re-checked under the transaction: another approval may have raised
		// the user's role since this payment was submitted.
		if !s.roles.IsUpgrade(row.CurrentRole, pkg.Role) {
			return apperr.Wrap(apperr.ErrNoDowngrade, "vai trò hiện tại %s", string(row.CurrentRole))
		}

		if err := s.repo.Payment.CompleteTx(ctx, tx, paymentID); err != nil {
			return err
		}

		if err := s.repo.User.UpgradeEntitlementsTx(ctx, tx, row.UserID, pkg.Role, pkg.CourseTier); err != nil {
			return err
		}

		newRole = pkg.Role
		return nil
	})
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.Payment.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "payment %s", paymentID.String())
	}

	s.log.Info("Payment approved",
		zap.String("payment_id", paymentID.String()),
		zap.String("admin_id", adminID.String()),
		zap.String("new_role", string(newRole)),
	)

	return &response.ApprovalResponse{
		Payment: response.PaymentToResponse(payment),
		NewRole: newRole,
	}, nil
}

func (s *paymentService) RejectPayment(ctx context.Context, paymentID uuid.UUID) (*response.PaymentResponse, error) {
	payment, err := s.repo.Payment.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperr.Wrap(apperr.ErrPaymentNotFoundOrProcessed, "payment %s", paymentID.String())
	}

	if payment.Status != entity.PaymentStatusPending {
		return nil, apperr.Wrap(apperr.ErrPaymentNotPending, "trạng thái %s", string(payment.Status))
	}

	// The repository re-applies the pending guard in SQL; a racing approval
	// between the read above and this write still loses cleanly.
	if err := s.repo.Payment.MarkRejected(ctx, paymentID); err != nil {
		return nil, err
	}

	payment.Status = entity.PaymentStatusRejected

	s.log.Info("Payment rejected", zap.String("payment_id", paymentID.String()))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}
