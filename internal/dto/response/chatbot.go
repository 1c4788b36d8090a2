package response

import (
	"encoding/json"
	"time"
)

// ChatResponse is the upstream chat-completions payload passed through as-is.
type ChatResponse struct {
	Raw json.RawMessage `json:"-"`
}

type AITopicResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"ten"`
	Description *string `json:"mota,omitempty"`
}

type AIQuestionResponse struct {
	ID       int64     `json:"id"`
	Question string    `json:"cauhoi"`
	Answer   string    `json:"cautraloi"`
	AskedAt  time.Time `json:"thoigian"`
}
