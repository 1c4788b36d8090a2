package request

type EnrollCourseRequest struct {
	CourseID int64 `json:"course_id" validate:"required,min=1"`
}

type CompleteLessonRequest struct {
	LessonID int64 `json:"lesson_id" validate:"required,min=1"`
}
