package response

import (
	"cyberlearn/internal/data/entity"
)

type CourseSummaryResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Duration    string  `json:"duration"`
	Rating      string  `json:"rating"`
	Tags        *string `json:"tags,omitempty"`
}

type LessonResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Duration    string  `json:"duration"`
	IsCompleted bool    `json:"is_completed"`
	IsLocked    bool    `json:"is_locked"`
}

type CourseDetailResponse struct {
	ID                 int64            `json:"id"`
	Title              string           `json:"title"`
	Description        *string          `json:"description,omitempty"`
	Rating             string           `json:"rating"`
	IsEnrolled         bool             `json:"is_enrolled"`
	CompletedCount     int              `json:"completed_count"`
	TotalCount         int              `json:"total_count"`
	ProgressPercentage float64          `json:"progress_percentage"`
	Lessons            []LessonResponse `json:"lessons"`
}

func LessonToResponse(lesson *entity.LessonProgress, duration string, locked bool) LessonResponse {
	return LessonResponse{
		ID:          lesson.ID,
		Title:       lesson.Title,
		Description: lesson.Description,
		Duration:    duration,
		IsCompleted: lesson.Completed && !locked,
		IsLocked:    locked,
	}
}
