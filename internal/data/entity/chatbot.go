package entity

import (
	"time"

	"github.com/google/uuid"
)

// AITopic groups a user's saved chatbot conversations.
type AITopic struct {
	ID          int64     `db:"id"`
	UserID      uuid.UUID `db:"userid"`
	Title       string    `db:"ten"`
	Description *string   `db:"mota"`
}

// AIQuestion is one saved question/answer exchange inside a topic.
type AIQuestion struct {
	ID       int64     `db:"id"`
	TopicID  int64     `db:"id_chudeai"`
	Question string    `db:"cauhoi"`
	Answer   string    `db:"cautraloi"`
	AskedAt  time.Time `db:"thoigian"`
}
