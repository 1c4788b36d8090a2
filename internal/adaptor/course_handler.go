package adaptor

import (
	"net/http"
	"strconv"

	"cyberlearn/internal/data/entity"
	"cyberlearn/internal/dto/request"
	"cyberlearn/internal/usecase"
	"cyberlearn/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CourseHandler struct {
	service usecase.CourseService
	log     *zap.Logger
}

func NewCourseHandler(service usecase.CourseService, log *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		log:     log.With(zap.String("handler", "course")),
	}
}

// List handles GET /api/courses
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetCourses(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Lấy danh sách khóa học thành công", resp)
}

// Detail handles GET /api/courses/{id}
func (h *CourseHandler) Detail(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	courseID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	resp, err := h.service.GetCourseDetail(r.Context(), userID, entity.UserRole(role), courseID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Lấy chi tiết khóa học thành công", resp)
}

// Enroll handles POST /api/courses/enroll
func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.EnrollCourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.EnrollCourse(r.Context(), userID, req.CourseID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Đăng ký khóa học thành công", nil)
}

// CompleteLesson handles POST /api/courses/lessons/complete
func (h *CourseHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CompleteLessonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.CompleteLesson(r.Context(), userID, req.LessonID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Hoàn thành bài học thành công", nil)
}
