package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cyberlearn/internal/data/repository"
	"cyberlearn/internal/dto/request"
	"cyberlearn/pkg/utils"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestChatForwardsToUpstream(t *testing.T) {
	var gotAuth, gotReferer string
	var gotBody map[string]any

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReferer = r.Header.Get("HTTP-Referer")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"xin chào"}}]}`))
	}))
	defer upstream.Close()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	svc := NewChatbotService(repository.NewRepository(mock, zap.NewNop()), utils.ChatbotConfig{
		Endpoint: upstream.URL,
		APIKey:   "sk-test",
		Model:    "openai/gpt-4o",
		SiteURL:  "https://cyberlearn.vn",
	}, zap.NewNop())

	resp, err := svc.Chat(context.Background(), &request.ChatRequest{
		Messages: []request.ChatMessage{{Role: "user", Content: "hello"}},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"choices":[{"message":{"content":"xin chào"}}]}`, string(resp.Raw))
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "https://cyberlearn.vn", gotReferer)

	// Empty request model falls back to the configured default.
	assert.Equal(t, "openai/gpt-4o", gotBody["model"])
}

func TestChatUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	svc := NewChatbotService(repository.NewRepository(mock, zap.NewNop()), utils.ChatbotConfig{
		Endpoint: upstream.URL,
		APIKey:   "sk-test",
		Model:    "openai/gpt-4o",
	}, zap.NewNop())

	_, err = svc.Chat(context.Background(), &request.ChatRequest{
		Messages: []request.ChatMessage{{Role: "user", Content: "hello"}},
	})

	assert.Error(t, err)
}
