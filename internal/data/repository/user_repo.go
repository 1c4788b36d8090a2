package repository

import (
	"context"
	"errors"
	"fmt"

	"cyberlearn/internal/data/entity"
	"cyberlearn/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// DashboardStats are the headline counters on the user dashboard.
type DashboardStats struct {
	ActiveCourses    int64
	CompletedLessons int64
	CompletedLabs    int64
	CompletedTests   int64
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	DashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error)

	// UpgradeEntitlementsTx writes the role/course-tier pair inside the
	// approval transaction. No other code path may lower or raise them.
	UpgradeEntitlementsTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, role entity.UserRole, tier entity.CourseTier) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, ten, email, matkhau, ngaysinh, role, course_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.BirthDate,
		user.Role,
		user.CourseTier,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, ten, email, matkhau, ngaysinh, role, course_type, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return r.scanUser(r.db.QueryRow(ctx, query, id), id.String())
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, ten, email, matkhau, ngaysinh, role, course_type, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	return r.scanUser(r.db.QueryRow(ctx, query, email), email)
}

func (r *userRepository) scanUser(row pgx.Row, key string) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.BirthDate,
		&user.Role,
		&user.CourseTier,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("find user %s: %w", key, err)
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, ten, email, matkhau, ngaysinh, role, course_type, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.BirthDate,
			&user.Role,
			&user.CourseTier,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET ten = $2, email = $3, matkhau = $4, ngaysinh = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.BirthDate,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	r.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}

func (r *userRepository) DashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	var stats DashboardStats

	queries := []struct {
		sql  string
		dest *int64
	}{
		{`SELECT COUNT(*) FROM user_khoahoc WHERE user_id = $1 AND trangthai = 'in-progress'`, &stats.ActiveCourses},
		{`SELECT COUNT(*) FROM user_baihoc WHERE user_id = $1 AND hoanthanh_baihoc = true`, &stats.CompletedLessons},
		{`SELECT COUNT(*) FROM lab_user WHERE user_id = $1 AND tiendo >= 100`, &stats.CompletedLabs},
		{`SELECT COUNT(*) FROM user_baikiemtra WHERE user_id = $1 AND trangthai = 'completed'`, &stats.CompletedTests},
	}

	for _, q := range queries {
		if err := r.db.QueryRow(ctx, q.sql, userID).Scan(q.dest); err != nil {
			r.log.Error("Failed to load dashboard stats",
				zap.Error(err),
				zap.String("user_id", userID.String()),
			)
			return nil, fmt.Errorf("dashboard stats for %s: %w", userID.String(), err)
		}
	}

	return &stats, nil
}

func (r *userRepository) UpgradeEntitlementsTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, role entity.UserRole, tier entity.CourseTier) error {
	query := `
		UPDATE users
		SET role = $2, course_type = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, userID, role, tier)
	if err != nil {
		return fmt.Errorf("upgrade user %s to %s: %w", userID.String(), string(role), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found for upgrade", userID.String())
	}

	return nil
}
