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

type CourseRepository interface {
	FindAll(ctx context.Context, limit int) ([]*entity.Course, error)
	FindByID(ctx context.Context, id int64) (*entity.Course, error)
	IsEnrolled(ctx context.Context, userID uuid.UUID, courseID int64) (bool, error)
	Enroll(ctx context.Context, userID uuid.UUID, courseID int64) error
	LessonsWithProgress(ctx context.Context, userID uuid.UUID, courseID int64) ([]*entity.LessonProgress, error)
	FindLessonByID(ctx context.Context, id int64) (*entity.Lesson, error)
	MarkLessonComplete(ctx context.Context, userID uuid.UUID, lessonID int64) error
}

type courseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCourseRepository(db database.PgxIface, log *zap.Logger) CourseRepository {
	return &courseRepository{
		db:  db,
		log: log.With(zap.String("repository", "course")),
	}
}

func (r *courseRepository) FindAll(ctx context.Context, limit int) ([]*entity.Course, error) {
	query := `
		SELECT kh.id, kh.ten, kh.mota, kh.thoiluong, kh.danhgia,
		       STRING_AGG(t.mota, ', ') AS tags
		FROM khoahoc kh
		LEFT JOIN tag t ON t.id_khoahoc = kh.id
		GROUP BY kh.id, kh.ten, kh.mota, kh.thoiluong, kh.danhgia
		ORDER BY kh.id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to list courses", zap.Error(err))
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []*entity.Course
	for rows.Next() {
		var course entity.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.Duration,
			&course.Rating,
			&course.Tags,
		); err != nil {
			return nil, fmt.Errorf("scan course row: %w", err)
		}
		courses = append(courses, &course)
	}

	return courses, rows.Err()
}

func (r *courseRepository) FindByID(ctx context.Context, id int64) (*entity.Course, error) {
	query := `
		SELECT id, ten, mota, thoiluong, danhgia, NULL AS tags
		FROM khoahoc
		WHERE id = $1
	`

	var course entity.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Duration,
		&course.Rating,
		&course.Tags,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find course", zap.Error(err), zap.Int64("course_id", id))
		return nil, fmt.Errorf("find course %d: %w", id, err)
	}

	return &course, nil
}

func (r *courseRepository) IsEnrolled(ctx context.Context, userID uuid.UUID, courseID int64) (bool, error) {
	query := `
		SELECT COUNT(*) > 0
		FROM user_khoahoc
		WHERE user_id = $1 AND khoahoc_id = $2
	`

	var enrolled bool
	if err := r.db.QueryRow(ctx, query, userID, courseID).Scan(&enrolled); err != nil {
		return false, fmt.Errorf("check enrollment: %w", err)
	}

	return enrolled, nil
}

func (r *courseRepository) Enroll(ctx context.Context, userID uuid.UUID, courseID int64) error {
	query := `
		INSERT INTO user_khoahoc (user_id, khoahoc_id, trangthai, ngaydangky)
		VALUES ($1, $2, 'in-progress', NOW())
		ON CONFLICT (user_id, khoahoc_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, userID, courseID)
	if err != nil {
		r.log.Error("Failed to enroll user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("course_id", courseID),
		)
		return fmt.Errorf("enroll user %s in course %d: %w", userID.String(), courseID, err)
	}

	return nil
}

func (r *courseRepository) LessonsWithProgress(ctx context.Context, userID uuid.UUID, courseID int64) ([]*entity.LessonProgress, error) {
	query := `
		SELECT bh.id, bh.id_khoahoc, bh.ten, bh.mota, bh.thoiluong,
		       COALESCE(ub.hoanthanh_baihoc, false)
		FROM baihoc bh
		LEFT JOIN user_baihoc ub ON ub.baihoc_id = bh.id AND ub.user_id = $1
		WHERE bh.id_khoahoc = $2
		ORDER BY bh.id
	`

	rows, err := r.db.Query(ctx, query, userID, courseID)
	if err != nil {
		r.log.Error("Failed to list lessons",
			zap.Error(err),
			zap.Int64("course_id", courseID),
		)
		return nil, fmt.Errorf("list lessons for course %d: %w", courseID, err)
	}
	defer rows.Close()

	var lessons []*entity.LessonProgress
	for rows.Next() {
		var lesson entity.LessonProgress
		if err := rows.Scan(
			&lesson.ID,
			&lesson.CourseID,
			&lesson.Title,
			&lesson.Description,
			&lesson.Duration,
			&lesson.Completed,
		); err != nil {
			return nil, fmt.Errorf("scan lesson row: %w", err)
		}
		lessons = append(lessons, &lesson)
	}

	return lessons, rows.Err()
}

func (r *courseRepository) FindLessonByID(ctx context.Context, id int64) (*entity.Lesson, error) {
	query := `
		SELECT id, id_khoahoc, ten, mota, thoiluong
		FROM baihoc
		WHERE id = $1
	`

	var lesson entity.Lesson
	err := r.db.QueryRow(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&lesson.Description,
		&lesson.Duration,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find lesson %d: %w", id, err)
	}

	return &lesson, nil
}

func (r *courseRepository) MarkLessonComplete(ctx context.Context, userID uuid.UUID, lessonID int64) error {
	query := `
		INSERT INTO user_baihoc (user_id, baihoc_id, hoanthanh_baihoc, ngayhoanthanh)
		VALUES ($1, $2, true, NOW())
		ON CONFLICT (user_id, baihoc_id)
		DO UPDATE SET hoanthanh_baihoc = true, ngayhoanthanh = NOW()
	`

	_, err := r.db.Exec(ctx, query, userID, lessonID)
	if err != nil {
		r.log.Error("Failed to mark lesson complete",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("lesson_id", lessonID),
		)
		return fmt.Errorf("complete lesson %d for user %s: %w", lessonID, userID.String(), err)
	}

	return nil
}
