package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cyberlearn/internal/apperr"
	"cyberlearn/internal/data/entity"
	"cyberlearn/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PaymentFilter narrows FindFiltered; nil fields are ignored.
type PaymentFilter struct {
	UserID      *uuid.UUID
	Status      *entity.PaymentStatus
	PackageName *string
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindFiltered(ctx context.Context, filter PaymentFilter, limit, offset int) ([]*entity.Payment, error)

	// One-way transitions. The SQL itself is guarded with status = 'pending';
	// a row in any other state yields ErrPaymentNotPending.
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkRejected(ctx context.Context, id uuid.UUID) error

	// Approval-transaction statements. These bypass the plain helpers and run
	// on the caller's transaction so the re-read and both writes share one
	// isolation scope.
	FindPendingForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.PendingApproval, error)
	CompleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, user_id, ho_ten, email, so_dien_thoai, phuong_thuc_thanh_toan, ten_goi, so_tien, hinh_anh_chung_minh, trang_thai, ngay_thanh_toan, updated_at`

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO thanhtoan (id, user_id, ho_ten, email, so_dien_thoai, phuong_thuc_thanh_toan, ten_goi, so_tien, hinh_anh_chung_minh, trang_thai, ngay_thanh_toan, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.UserID,
		payment.FullName,
		payment.Email,
		payment.Phone,
		payment.Method,
		payment.PackageName,
		payment.Amount,
		payment.ProofImageURL,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("user_id", payment.UserID.String()),
			zap.String("package", payment.PackageName),
		)
		return fmt.Errorf("create payment for user %s: %w", payment.UserID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM thanhtoan WHERE id = $1`

	payment, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return payment, nil
}

func (r *paymentRepository) FindFiltered(ctx context.Context, filter PaymentFilter, limit, offset int) ([]*entity.Payment, error) {
	var query strings.Builder
	query.WriteString(`SELECT ` + paymentColumns + ` FROM thanhtoan`)

	var clauses []string
	var args []any

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		clauses = append(clauses, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("trang_thai = $%d", len(args)))
	}
	if filter.PackageName != nil {
		args = append(args, *filter.PackageName)
		clauses = append(clauses, fmt.Sprintf("ten_goi = $%d", len(args)))
	}

	if len(clauses) > 0 {
		query.WriteString(" WHERE " + strings.Join(clauses, " AND "))
	}

	query.WriteString(" ORDER BY ngay_thanh_toan DESC")

	if limit > 0 {
		args = append(args, limit)
		query.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}
	if offset > 0 {
		args = append(args, offset)
		query.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	rows, err := r.db.Query(ctx, query.String(), args...)
	if err != nil {
		r.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

func (r *paymentRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, entity.PaymentStatusCompleted)
}

func (r *paymentRepository) MarkRejected(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, entity.PaymentStatusRejected)
}

func (r *paymentRepository) transition(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	query := `
		UPDATE thanhtoan
		SET trang_thai = $2, updated_at = NOW()
		WHERE id = $1 AND trang_thai = 'pending'
	`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to transition payment",
			zap.Error(err),
			zap.String("payment_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("transition payment %s to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.Wrap(apperr.ErrPaymentNotPending, "payment %s", id.String())
	}

	return nil
}

// FindPendingForUpdate re-reads the pending payment joined with the owner's
// current role and locks both rows. Zero rows means the payment is missing or
// was already adjudicated, so a concurrent approval loses here cleanly.
func (r *paymentRepository) FindPendingForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.PendingApproval, error) {
	query := `
		SELECT t.id, t.user_id, t.ten_goi, t.so_tien, u.role
		FROM thanhtoan t
		JOIN users u ON u.id = t.user_id
		WHERE t.id = $1 AND t.trang_thai = 'pending'
		FOR UPDATE OF t, u
	`

	var row entity.PendingApproval
	err := tx.QueryRow(ctx, query, id).Scan(
		&row.PaymentID,
		&row.UserID,
		&row.PackageName,
		&row.Amount,
		&row.CurrentRole,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock pending payment %s: %w", id.String(), err)
	}

	return &row, nil
}

func (r *paymentRepository) CompleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `
		UPDATE thanhtoan
		SET trang_thai = $2, updated_at = NOW()
		WHERE id = $1 AND trang_thai = 'pending'
	`

	result, err := tx.Exec(ctx, query, id, entity.PaymentStatusCompleted)
	if err != nil {
		return fmt.Errorf("complete payment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.Wrap(apperr.ErrPaymentNotFoundOrProcessed, "payment %s", id.String())
	}

	return nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	err := row.Scan(
		&payment.ID,
		&payment.UserID,
		&payment.FullName,
		&payment.Email,
		&payment.Phone,
		&payment.Method,
		&payment.PackageName,
		&payment.Amount,
		&payment.ProofImageURL,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
