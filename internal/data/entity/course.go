package entity

import (
	"time"
)

// Course rows live in khoahoc; lessons in baihoc. Content tables keep the
// original serial keys instead of UUIDs.
type Course struct {
	ID          int64   `db:"id"`
	Title       string  `db:"ten"`
	Description *string `db:"mota"`
	Duration    int     `db:"thoiluong"`
	Rating      int     `db:"danhgia"`
	Tags        *string `db:"tags"`
}

type Lesson struct {
	ID          int64   `db:"id"`
	CourseID    int64   `db:"id_khoahoc"`
	Title       string  `db:"ten"`
	Description *string `db:"mota"`
	Duration    int     `db:"thoiluong"`
}

type Enrollment struct {
	UserID   string    `db:"user_id"`
	CourseID int64     `db:"khoahoc_id"`
	Status   string    `db:"trangthai"`
	Since    time.Time `db:"ngaydangky"`
}

// LessonProgress joins a lesson with one user's completion flag.
type LessonProgress struct {
	Lesson
	Completed bool
}
