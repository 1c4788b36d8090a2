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

type LabRepository interface {
	FindAllWithProgress(ctx context.Context, userID uuid.UUID) ([]*entity.LabProgress, error)
	FindByID(ctx context.Context, id int64) (*entity.Lab, error)
	FindByIDWithProgress(ctx context.Context, userID uuid.UUID, id int64) (*entity.LabProgress, error)
	Create(ctx context.Context, lab *entity.Lab) error
	UpsertProgress(ctx context.Context, userID uuid.UUID, labID int64, progress int) error
}

type labRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLabRepository(db database.PgxIface, log *zap.Logger) LabRepository {
	return &labRepository{
		db:  db,
		log: log.With(zap.String("repository", "lab")),
	}
}

func (r *labRepository) FindAllWithProgress(ctx context.Context, userID uuid.UUID) ([]*entity.LabProgress, error) {
	query := `
		SELECT l.id, l.ten, l.loai, l.mota, l.pdf_url,
		       COALESCE(lu.tiendo, 0)
		FROM lab l
		LEFT JOIN lab_user lu ON lu.lab_id = l.id AND lu.user_id = $1
		ORDER BY l.id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list labs", zap.Error(err))
		return nil, fmt.Errorf("list labs: %w", err)
	}
	defer rows.Close()

	var labs []*entity.LabProgress
	for rows.Next() {
		var lab entity.LabProgress
		if err := rows.Scan(
			&lab.ID,
			&lab.Title,
			&lab.Category,
			&lab.Description,
			&lab.PDFURL,
			&lab.Progress,
		); err != nil {
			return nil, fmt.Errorf("scan lab row: %w", err)
		}
		labs = append(labs, &lab)
	}

	return labs, rows.Err()
}

func (r *labRepository) FindByID(ctx context.Context, id int64) (*entity.Lab, error) {
	query := `
		SELECT id, ten, loai, mota, pdf_url
		FROM lab
		WHERE id = $1
	`

	var lab entity.Lab
	err := r.db.QueryRow(ctx, query, id).Scan(
		&lab.ID,
		&lab.Title,
		&lab.Category,
		&lab.Description,
		&lab.PDFURL,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find lab", zap.Error(err), zap.Int64("lab_id", id))
		return nil, fmt.Errorf("find lab %d: %w", id, err)
	}

	return &lab, nil
}

func (r *labRepository) FindByIDWithProgress(ctx context.Context, userID uuid.UUID, id int64) (*entity.LabProgress, error) {
	query := `
		SELECT l.id, l.ten, l.loai, l.mota, l.pdf_url,
		       COALESCE(lu.tiendo, 0)
		FROM lab l
		LEFT JOIN lab_user lu ON lu.lab_id = l.id AND lu.user_id = $1
		WHERE l.id = $2
	`

	var lab entity.LabProgress
	err := r.db.QueryRow(ctx, query, userID, id).Scan(
		&lab.ID,
		&lab.Title,
		&lab.Category,
		&lab.Description,
		&lab.PDFURL,
		&lab.Progress,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find lab", zap.Error(err), zap.Int64("lab_id", id))
		return nil, fmt.Errorf("find lab %d: %w", id, err)
	}

	return &lab, nil
}

func (r *labRepository) Create(ctx context.Context, lab *entity.Lab) error {
	query := `
		INSERT INTO lab (ten, loai, mota, pdf_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		lab.Title,
		lab.Category,
		lab.Description,
		lab.PDFURL,
	).Scan(&lab.ID)

	if err != nil {
		r.log.Error("Failed to create lab", zap.Error(err), zap.String("title", lab.Title))
		return fmt.Errorf("create lab %q: %w", lab.Title, err)
	}

	return nil
}

func (r *labRepository) UpsertProgress(ctx context.Context, userID uuid.UUID, labID int64, progress int) error {
	query := `
		INSERT INTO lab_user (user_id, lab_id, tiendo)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, lab_id)
		DO UPDATE SET tiendo = GREATEST(lab_user.tiendo, EXCLUDED.tiendo)
	`

	_, err := r.db.Exec(ctx, query, userID, labID, progress)
	if err != nil {
		r.log.Error("Failed to update lab progress",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("lab_id", labID),
		)
		return fmt.Errorf("update progress for lab %d: %w", labID, err)
	}

	return nil
}
