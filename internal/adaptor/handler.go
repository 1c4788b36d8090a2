package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cyberlearn/internal/apperr"
	"cyberlearn/internal/usecase"
	"cyberlearn/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Payment *PaymentHandler
	Course  *CourseHandler
	Lab     *LabHandler
	CTF     *CTFHandler
	Chatbot *ChatbotHandler
	Upload  *UploadHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Course:  NewCourseHandler(service.Course, log),
		Lab:     NewLabHandler(service.Lab, log),
		CTF:     NewCTFHandler(service.CTF, log),
		Chatbot: NewChatbotHandler(service.Chatbot, log),
		Upload:  NewUploadHandler(service.Upload, log),
	}
}

// errorStatus is the single place business error kinds become HTTP codes.
// Handlers go through respondError; none of them inspect message text.
var errorStatus = []struct {
	kind error
	code int
}{
	{apperr.ErrMissingField, http.StatusBadRequest},
	{apperr.ErrProofRequired, http.StatusBadRequest},
	{apperr.ErrUnknownPackage, http.StatusBadRequest},
	{apperr.ErrAmountMismatch, http.StatusBadRequest},
	{apperr.ErrIdentityMismatch, http.StatusBadRequest},
	{apperr.ErrNoDowngrade, http.StatusBadRequest},
	{apperr.ErrPaymentNotFoundOrProcessed, http.StatusNotFound},
	{apperr.ErrPaymentNotPending, http.StatusConflict},
	{apperr.ErrEmailTaken, http.StatusConflict},
	{apperr.ErrInvalidCredentials, http.StatusUnauthorized},
	{apperr.ErrForbidden, http.StatusForbidden},
	{apperr.ErrNotFound, http.StatusNotFound},
}

func respondError(w http.ResponseWriter, log *zap.Logger, err error) {
	for _, entry := range errorStatus {
		if errors.Is(err, entry.kind) {
			utils.ResponseJSON(w, entry.code, false, entry.kind.Error(), nil, nil)
			return
		}
	}

	log.Error("Unhandled error", zap.Error(err))
	utils.ResponseInternalError(w, "Internal server error")
}

// decodeAndValidate parses the JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether the handler may
// proceed.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if errs := utils.ValidateStruct(dst); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return false
	}

	return true
}
