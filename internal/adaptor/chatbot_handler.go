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

type ChatbotHandler struct {
	service usecase.ChatbotService
	log     *zap.Logger
}

func NewChatbotHandler(service usecase.ChatbotService, log *zap.Logger) *ChatbotHandler {
	return &ChatbotHandler{
		service: service,
		log:     log.With(zap.String("handler", "chatbot")),
	}
}

// Chat handles POST /api/chatbot. The upstream payload is streamed back
// verbatim so the frontend sees the same shape the provider emits.
func (h *ChatbotHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req request.ChatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.Raw)
}

// Topics handles GET /api/chatbot/topics
func (h *ChatbotHandler) Topics(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.GetTopics(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Lấy danh sách chủ đề thành công", resp)
}

// Questions handles GET /api/chatbot/topics/{id}/questions
func (h *ChatbotHandler) Questions(w http.ResponseWriter, r *http.Request) {
	topicID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid topic ID", nil)
		return
	}

	resp, err := h.service.GetQuestions(r.Context(), topicID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Lấy danh sách câu hỏi thành công", resp)
}
