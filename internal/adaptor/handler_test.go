package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cyberlearn/internal/apperr"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRespondErrorStatusTable(t *testing.T) {
	tests := []struct {
		err  error
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

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, zap.NewNop(), tt.err)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestRespondErrorWrappedKindsKeepTheirStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, zap.NewNop(), apperr.Wrap(apperr.ErrAmountMismatch, "Gói Cơ Bản"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	respondError(rec, zap.NewNop(), fmt.Errorf("approve: %w", apperr.ErrPaymentNotPending))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRespondErrorUnknownIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, zap.NewNop(), fmt.Errorf("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestDecodeAndValidate(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))

		var dst payload
		assert.False(t, decodeAndValidate(rec, req, &dst))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"not-an-email"}`))

		var dst payload
		assert.False(t, decodeAndValidate(rec, req, &dst))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@example.com"}`))

		var dst payload
		assert.True(t, decodeAndValidate(rec, req, &dst))
		assert.Equal(t, "a@example.com", dst.Email)
	})
}
