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

type CTFHandler struct {
	service usecase.CTFService
	log     *zap.Logger
}

func NewCTFHandler(service usecase.CTFService, log *zap.Logger) *CTFHandler {
	return &CTFHandler{
		service: service,
		log:     log.With(zap.String("handler", "ctf")),
	}
}

// List handles GET /api/ctf
func (h *CTFHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := request.CTFListRequest{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
	}

	if errs := utils.ValidateStruct(&req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	resp, err := h.service.GetChallenges(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Lấy danh sách thử thách thành công", resp)
}

// Get handles GET /api/ctf/{id}
func (h *CTFHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	challengeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid challenge ID", nil)
		return
	}

	resp, err := h.service.GetChallenge(r.Context(), userID, challengeID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Lấy chi tiết thử thách thành công", resp)
}

// Create handles POST /api/admin/ctf
func (h *CTFHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCTFRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.CreateChallenge(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Tạo thử thách thành công", resp)
}

// Submit handles POST /api/ctf/{id}/submit
func (h *CTFHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	challengeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid challenge ID", nil)
		return
	}

	var req request.SubmitCTFAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.SubmitAnswer(r.Context(), userID, challengeID, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Nộp bài thành công", nil)
}

// UpdateProgress handles PUT /api/ctf/{id}/progress
func (h *CTFHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	challengeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid challenge ID", nil)
		return
	}

	var req request.UpdateCTFProgressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.UpdateProgress(r.Context(), userID, challengeID, req.Progress); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Cập nhật tiến độ thử thách thành công", nil)
}
