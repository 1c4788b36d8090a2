package adaptor

import (
	"net/http"

	"cyberlearn/internal/data/entity"
	"cyberlearn/internal/dto/request"
	"cyberlearn/internal/usecase"
	"cyberlearn/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// Create handles POST /api/payment
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreatePaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.CreatePaymentRequest(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Tạo yêu cầu thanh toán thành công", resp)
}

// GetByID handles GET /api/payment/{id}
func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	callerID, callerRole, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	paymentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid payment ID", nil)
		return
	}

	resp, err := h.service.GetPaymentByID(r.Context(), callerID, callerRole, paymentID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Lấy thông tin thanh toán thành công", resp)
}

// List handles GET /api/payment. Admins may filter by status and package;
// everyone else only ever sees their own history.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, callerRole, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := request.PaymentListRequest{
		Status:      r.URL.Query().Get("trang_thai"),
		PackageName: r.URL.Query().Get("ten_goi"),
		Limit:       utils.ParseInt(r.URL.Query().Get("limit"), 20),
		Offset:      int(utils.ParseInt64(r.URL.Query().Get("offset"))),
	}

	if errs := utils.ValidateStruct(&req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	resp, err := h.service.GetAllPayments(r.Context(), callerID, callerRole, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Lấy danh sách thanh toán thành công", resp)
}

// Approve handles PUT /api/admin/payment/{id}/approve
func (h *PaymentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	paymentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid payment ID", nil)
		return
	}

	resp, err := h.service.ApprovePayment(r.Context(), paymentID, adminID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Duyệt thanh toán thành công", resp)
}

// Reject handles PUT /api/admin/payment/{id}/reject
func (h *PaymentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	paymentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid payment ID", nil)
		return
	}

	resp, err := h.service.RejectPayment(r.Context(), paymentID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Từ chối thanh toán thành công", resp)
}

func callerFromContext(r *http.Request) (uuid.UUID, entity.UserRole, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, "", false
	}

	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		return uuid.Nil, "", false
	}

	return userID, entity.UserRole(role), true
}
