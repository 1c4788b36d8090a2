package usecase

import (
	"context"
	"fmt"

	"cyberlearn/internal/apperr"
	"cyberlearn/internal/data/entity"
	"cyberlearn/internal/data/repository"
	"cyberlearn/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const courseListLimit = 6

// Lessons visible to enrolled users who have not bought a package. Paid roles
// see the full course.
const previewLessonLimit = 2

type CourseService interface {
	GetCourses(ctx context.Context) ([]response.CourseSummaryResponse, error)
	GetCourseDetail(ctx context.Context, userID uuid.UUID, role entity.UserRole, courseID int64) (*response.CourseDetailResponse, error)
	EnrollCourse(ctx context.Context, userID uuid.UUID, courseID int64) error
	CompleteLesson(ctx context.Context, userID uuid.UUID, lessonID int64) error
}

type courseService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCourseService(repo *repository.Repository, log *zap.Logger) CourseService {
	return &courseService{
		repo: repo,
		log:  log.With(zap.String("service", "course")),
	}
}

func (s *courseService) GetCourses(ctx context.Context) ([]response.CourseSummaryResponse, error) {
	courses, err := s.repo.Course.FindAll(ctx, courseListLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]response.CourseSummaryResponse, len(courses))
	for i, course := range courses {
		responses[i] = response.CourseSummaryResponse{
			ID:          course.ID,
			Title:       course.Title,
			Description: course.Description,
			Duration:    fmt.Sprintf("%d giờ", course.Duration),
			Rating:      fmt.Sprintf("%d/5", course.Rating),
			Tags:        course.Tags,
		}
	}

	return responses, nil
}

func (s *courseService) GetCourseDetail(ctx context.Context, userID uuid.UUID, role entity.UserRole, courseID int64) (*response.CourseDetailResponse, error) {
	course, err := s.repo.Course.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "course %d", courseID)
	}

	enrolled, err := s.repo.Course.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	lessons, err := s.repo.Course.LessonsWithProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	paidRole := role == entity.RoleUserBasic || role == entity.RoleUserPremium || role == entity.RoleUserYear

	completed := 0
	lessonResponses := make([]response.LessonResponse, len(lessons))
	for i, lesson := range lessons {
		// Non-enrolled users see every lesson locked; enrolled users without
		// a paid package only get the preview lessons.
		locked := !enrolled || (!paidRole && i >= previewLessonLimit)
		if lesson.Completed && !locked {
			completed++
		}
		lessonResponses[i] = response.LessonToResponse(lesson, fmt.Sprintf("%d phút", lesson.Duration), locked)
	}

	progress := 0.0
	if enrolled && len(lessons) > 0 {
		progress = float64(completed) / float64(len(lessons)) * 100
	}

	return &response.CourseDetailResponse{
		ID:                 course.ID,
		Title:              course.Title,
		Description:        course.Description,
		Rating:             fmt.Sprintf("%d/5", course.Rating),
		IsEnrolled:         enrolled,
		CompletedCount:     completed,
		TotalCount:         len(lessons),
		ProgressPercentage: progress,
		Lessons:            lessonResponses,
	}, nil
}

func (s *courseService) EnrollCourse(ctx context.Context, userID uuid.UUID, courseID int64) error {
	course, err := s.repo.Course.FindByID(ctx, courseID)
	if err != nil {
		return err
	}
	if course == nil {
		return apperr.Wrap(apperr.ErrNotFound, "course %d", courseID)
	}

	if err := s.repo.Course.Enroll(ctx, userID, courseID); err != nil {
		return err
	}

	s.log.Info("User enrolled in course",
		zap.String("user_id", userID.String()),
		zap.Int64("course_id", courseID),
	)

	return nil
}

func (s *courseService) CompleteLesson(ctx context.Context, userID uuid.UUID, lessonID int64) error {
	lesson, err := s.repo.Course.FindLessonByID(ctx, lessonID)
	if err != nil {
		return err
	}
	if lesson == nil {
		return apperr.Wrap(apperr.ErrNotFound, "lesson %d", lessonID)
	}

	enrolled, err := s.repo.Course.IsEnrolled(ctx, userID, lesson.CourseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return apperr.Wrap(apperr.ErrForbidden, "course %d", lesson.CourseID)
	}

	return s.repo.Course.MarkLessonComplete(ctx, userID, lessonID)
}
