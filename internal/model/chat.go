package model

import "time"

// ChatRequest represents an incoming chat message.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"user_id,omitempty"`
}

// ChatData carries the filtered results attached to a chat reply. Both
// slices are capped at five entries.
type ChatData struct {
	Jobs      []Job     `json:"jobs"`
	Companies []Company `json:"companies"`
}

// ChatResponse represents a rendered chat reply.
type ChatResponse struct {
	Message string   `json:"message"`
	Intent  Intent   `json:"intent"`
	Data    ChatData `json:"data"`
}

// Conversation is one persisted chat exchange.
type Conversation struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id,omitempty" db:"user_id"`
	UserMessage string    `json:"user_message" db:"user_message"`
	BotMessage  string    `json:"bot_message" db:"bot_message"`
	Intent      string    `json:"intent" db:"intent"`
	Metadata    JSONMap   `json:"metadata,omitempty" db:"metadata"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
