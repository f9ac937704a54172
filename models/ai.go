package models

import "time"

// ChatRequest is the payload coming from the frontend into /api/ai/chat.
type ChatRequest struct {
	Text string `json:"text"` // user's typed message
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	ResponseText string `json:"response"`
	Source       string `json:"source"` // "gemini" or "fallback"
}

// ChatMessage is a persisted conversation turn.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Sender    string    `json:"sender"` // "user" or "assistant"
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
