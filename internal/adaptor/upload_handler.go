package adaptor

import (
	"net/http"

	"cyberlearn/internal/dto/request"
	"cyberlearn/internal/usecase"
	"cyberlearn/pkg/utils"

	"go.uber.org/zap"
)

type UploadHandler struct {
	service usecase.UploadService
	log     *zap.Logger
}

func NewUploadHandler(service usecase.UploadService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service: service,
		log:     log.With(zap.String("handler", "upload")),
	}
}

// Signature handles POST /api/upload/signature
func (h *UploadHandler) Signature(w http.ResponseWriter, r *http.Request) {
	var req request.UploadSignatureRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.SignUpload(&req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Tạo chữ ký upload thành công", resp)
}
