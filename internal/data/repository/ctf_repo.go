package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cyberlearn/internal/data/entity"
	"cyberlearn/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CTFFilter narrows the challenge listing; zero values are ignored.
type CTFFilter struct {
	Search   string
	Category string
	Status   string // completed | available | locked
}

type CTFRepository interface {
	FindAllWithProgress(ctx context.Context, userID uuid.UUID, filter CTFFilter) ([]*entity.CTFProgress, error)
	FindByID(ctx context.Context, id int64) (*entity.CTFChallenge, error)
	FindByIDWithProgress(ctx context.Context, userID uuid.UUID, id int64) (*entity.CTFProgress, error)
	Create(ctx context.Context, challenge *entity.CTFChallenge) error
	UpsertProgress(ctx context.Context, userID uuid.UUID, challengeID int64, progress int) error
	SubmitAnswer(ctx context.Context, userID uuid.UUID, challengeID int64, answerText, answerFileURL *string) error
}

type ctfRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCTFRepository(db database.PgxIface, log *zap.Logger) CTFRepository {
	return &ctfRepository{
		db:  db,
		log: log.With(zap.String("repository", "ctf")),
	}
}

func (r *ctfRepository) FindAllWithProgress(ctx context.Context, userID uuid.UUID, filter CTFFilter) ([]*entity.CTFProgress, error) {
	var query strings.Builder
	query.WriteString(`
		SELECT c.id, c.ten, c.mota, c.loaictf, c.choai, c.tacgia, c.diem,
		       COALESCE(cu.tiendo, 0)
		FROM ctf c
		LEFT JOIN ctf_user cu ON cu.ctf_id = c.id AND cu.user_id = $1
	`)

	args := []any{userID}
	var clauses []string

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clauses = append(clauses, fmt.Sprintf("c.ten ILIKE $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("c.loaictf = $%d", len(args)))
	}
	switch filter.Status {
	case "completed":
		clauses = append(clauses, "cu.tiendo = 100")
	case "available":
		clauses = append(clauses, "cu.tiendo > 0 AND cu.tiendo < 100")
	case "locked":
		clauses = append(clauses, "(cu.tiendo IS NULL OR cu.tiendo = 0)")
	}

	if len(clauses) > 0 {
		query.WriteString(" WHERE " + strings.Join(clauses, " AND "))
	}

	query.WriteString(" ORDER BY c.id")

	rows, err := r.db.Query(ctx, query.String(), args...)
	if err != nil {
		r.log.Error("Failed to list CTF challenges", zap.Error(err))
		return nil, fmt.Errorf("list ctf challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*entity.CTFProgress
	for rows.Next() {
		var ch entity.CTFProgress
		if err := rows.Scan(
			&ch.ID,
			&ch.Title,
			&ch.Description,
			&ch.Category,
			&ch.Audience,
			&ch.Author,
			&ch.Points,
			&ch.Progress,
		); err != nil {
			return nil, fmt.Errorf("scan ctf row: %w", err)
		}
		challenges = append(challenges, &ch)
	}

	return challenges, rows.Err()
}

func (r *ctfRepository) FindByID(ctx context.Context, id int64) (*entity.CTFChallenge, error) {
	query := `
		SELECT id, ten, mota, loaictf, choai, tacgia, diem
		FROM ctf
		WHERE id = $1
	`

	var ch entity.CTFChallenge
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ch.ID,
		&ch.Title,
		&ch.Description,
		&ch.Category,
		&ch.Audience,
		&ch.Author,
		&ch.Points,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find CTF challenge", zap.Error(err), zap.Int64("ctf_id", id))
		return nil, fmt.Errorf("find ctf challenge %d: %w", id, err)
	}

	return &ch, nil
}

func (r *ctfRepository) FindByIDWithProgress(ctx context.Context, userID uuid.UUID, id int64) (*entity.CTFProgress, error) {
	query := `
		SELECT c.id, c.ten, c.mota, c.loaictf, c.choai, c.tacgia, c.diem,
		       COALESCE(cu.tiendo, 0), cu.dap_an, cu.dap_an_file
		FROM ctf c
		LEFT JOIN ctf_user cu ON cu.ctf_id = c.id AND cu.user_id = $1
		WHERE c.id = $2
	`

	var ch entity.CTFProgress
	err := r.db.QueryRow(ctx, query, userID, id).Scan(
		&ch.ID,
		&ch.Title,
		&ch.Description,
		&ch.Category,
		&ch.Audience,
		&ch.Author,
		&ch.Points,
		&ch.Progress,
		&ch.AnswerText,
		&ch.AnswerFileURL,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find CTF challenge", zap.Error(err), zap.Int64("ctf_id", id))
		return nil, fmt.Errorf("find ctf challenge %d: %w", id, err)
	}

	return &ch, nil
}

func (r *ctfRepository) Create(ctx context.Context, challenge *entity.CTFChallenge) error {
	query := `
		INSERT INTO ctf (ten, mota, loaictf, choai, tacgia, diem)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		challenge.Title,
		challenge.Description,
		challenge.Category,
		challenge.Audience,
		challenge.Author,
		challenge.Points,
	).Scan(&challenge.ID)

	if err != nil {
		r.log.Error("Failed to create CTF challenge", zap.Error(err), zap.String("title", challenge.Title))
		return fmt.Errorf("create ctf challenge %q: %w", challenge.Title, err)
	}

	return nil
}

func (r *ctfRepository) UpsertProgress(ctx context.Context, userID uuid.UUID, challengeID int64, progress int) error {
	query := `
		INSERT INTO ctf_user (user_id, ctf_id, tiendo)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, ctf_id)
		DO UPDATE SET tiendo = GREATEST(ctf_user.tiendo, EXCLUDED.tiendo)
	`

	_, err := r.db.Exec(ctx, query, userID, challengeID, progress)
	if err != nil {
		r.log.Error("Failed to update CTF progress",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("ctf_id", challengeID),
		)
		return fmt.Errorf("update progress for ctf %d: %w", challengeID, err)
	}

	return nil
}

// SubmitAnswer records a user's answer and marks the challenge solved. A nil
// answer part keeps whatever was stored before, so text and file submissions
// can arrive separately.
func (r *ctfRepository) SubmitAnswer(ctx context.Context, userID uuid.UUID, challengeID int64, answerText, answerFileURL *string) error {
	query := `
		INSERT INTO ctf_user (user_id, ctf_id, tiendo, dap_an, dap_an_file)
		VALUES ($1, $2, 100, $3, $4)
		ON CONFLICT (user_id, ctf_id)
		DO UPDATE SET dap_an = COALESCE(EXCLUDED.dap_an, ctf_user.dap_an),
		              dap_an_file = COALESCE(EXCLUDED.dap_an_file, ctf_user.dap_an_file),
		              tiendo = 100
	`

	_, err := r.db.Exec(ctx, query, userID, challengeID, answerText, answerFileURL)
	if err != nil {
		r.log.Error("Failed to submit CTF answer",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("ctf_id", challengeID),
		)
		return fmt.Errorf("submit answer for ctf %d: %w", challengeID, err)
	}

	return nil
}
