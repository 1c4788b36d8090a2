package adaptor

import (
	"net/http"
	"strconv"

	"cyberlearn/internal/dto/request"
	"cyberlearn/internal/usecase"
	"cyberlearn/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LabHandler struct {
	service usecase.LabService
	log     *zap.Logger
}

func NewLabHandler(service usecase.LabService, log *zap.Logger) *LabHandler {
	return &LabHandler{
		service: service,
		log:     log.With(zap.String("handler", "lab")),
	}
}

// List handles GET /api/labs
func (h *LabHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.GetLabs(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Lấy danh sách lab thành công", resp)
}

// Get handles GET /api/labs/{id}
func (h *LabHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	labID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid lab ID", nil)
		return
	}

	resp, err := h.service.GetLab(r.Context(), userID, labID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Lấy chi tiết lab thành công", resp)
}

// Create handles POST /api/admin/labs
func (h *LabHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLabRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.CreateLab(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Tạo lab thành công", resp)
}

// UpdateProgress handles PUT /api/labs/{id}/progress
func (h *LabHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	labID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid lab ID", nil)
		return
	}

	var req request.UpdateLabProgressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.UpdateProgress(r.Context(), userID, labID, req.Progress); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Cập nhật tiến độ lab thành công", nil)
}
