package repository

import (
	"context"
	"fmt"

	"cyberlearn/internal/data/entity"
	"cyberlearn/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatbotRepository interface {
	FindTopicsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AITopic, error)
	FindQuestionsByTopic(ctx context.Context, topicID int64) ([]*entity.AIQuestion, error)
}

type chatbotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewChatbotRepository(db database.PgxIface, log *zap.Logger) ChatbotRepository {
	return &chatbotRepository{
		db:  db,
		log: log.With(zap.String("repository", "chatbot")),
	}
}

func (r *chatbotRepository) FindTopicsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AITopic, error) {
	query := `
		SELECT id, ten, mota, userid
		FROM chudeai
		WHERE userid = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list AI topics", zap.Error(err))
		return nil, fmt.Errorf("list ai topics: %w", err)
	}
	defer rows.Close()

	var topics []*entity.AITopic
	for rows.Next() {
		var topic entity.AITopic
		if err := rows.Scan(&topic.ID, &topic.Title, &topic.Description, &topic.UserID); err != nil {
			return nil, fmt.Errorf("scan ai topic row: %w", err)
		}
		topics = append(topics, &topic)
	}

	return topics, rows.Err()
}

func (r *chatbotRepository) FindQuestionsByTopic(ctx context.Context, topicID int64) ([]*entity.AIQuestion, error) {
	query := `
		SELECT id, cauhoi, cautraloi, thoigian, id_chudeai
		FROM hoidapai
		WHERE id_chudeai = $1
		ORDER BY thoigian ASC
	`

	rows, err := r.db.Query(ctx, query, topicID)
	if err != nil {
		r.log.Error("Failed to list topic questions", zap.Error(err), zap.Int64("topic_id", topicID))
		return nil, fmt.Errorf("list questions for topic %d: %w", topicID, err)
	}
	defer rows.Close()

	var questions []*entity.AIQuestion
	for rows.Next() {
		var q entity.AIQuestion
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.AskedAt, &q.TopicID); err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		questions = append(questions, &q)
	}

	return questions, rows.Err()
}
