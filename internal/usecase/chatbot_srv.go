package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cyberlearn/internal/data/repository"
	"cyberlearn/internal/dto/request"
	"cyberlearn/internal/dto/response"
	"cyberlearn/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatbotService interface {
	Chat(ctx context.Context, req *request.ChatRequest) (*response.ChatResponse, error)
	GetTopics(ctx context.Context, userID uuid.UUID) ([]response.AITopicResponse, error)
	GetQuestions(ctx context.Context, topicID int64) ([]response.AIQuestionResponse, error)
}

type chatbotService struct {
	repo   *repository.Repository
	config utils.ChatbotConfig
	client *http.Client
	log    *zap.Logger
}

func NewChatbotService(repo *repository.Repository, config utils.ChatbotConfig, log *zap.Logger) ChatbotService {
	return &chatbotService{
		repo:   repo,
		config: config,
		client: &http.Client{Timeout: 60 * time.Second},
		log:    log.With(zap.String("service", "chatbot")),
	}
}

// Chat forwards the conversation to the upstream chat-completions endpoint and
// returns its payload untouched. The API key never reaches the client.
func (s *chatbotService) Chat(ctx context.Context, req *request.ChatRequest) (*response.ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = s.config.Model
	}

	body, err := json.Marshal(map[string]any{
		"model":    model,
		"messages": req.Messages,
	})
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	if s.config.SiteURL != "" {
		httpReq.Header.Set("HTTP-Referer", s.config.SiteURL)
	}
	if s.config.SiteName != "" {
		httpReq.Header.Set("X-Title", s.config.SiteName)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.log.Error("Chat upstream unreachable", zap.Error(err))
		return nil, fmt.Errorf("chat upstream: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.log.Error("Chat upstream error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", payload),
		)
		return nil, fmt.Errorf("chat upstream returned %d", resp.StatusCode)
	}

	return &response.ChatResponse{Raw: payload}, nil
}

func (s *chatbotService) GetTopics(ctx context.Context, userID uuid.UUID) ([]response.AITopicResponse, error) {
	topics, err := s.repo.Chatbot.FindTopicsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]response.AITopicResponse, len(topics))
	for i, topic := range topics {
		responses[i] = response.AITopicResponse{
			ID:          topic.ID,
			Title:       topic.Title,
			Description: topic.Description,
		}
	}

	return responses, nil
}

func (s *chatbotService) GetQuestions(ctx context.Context, topicID int64) ([]response.AIQuestionResponse, error) {
	questions, err := s.repo.Chatbot.FindQuestionsByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}

	responses := make([]response.AIQuestionResponse, len(questions))
	for i, q := range questions {
		responses[i] = response.AIQuestionResponse{
			ID:       q.ID,
			Question: q.Question,
			Answer:   q.Answer,
			AskedAt:  q.AskedAt,
		}
	}

	return responses, nil
}
