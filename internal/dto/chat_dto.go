package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	// Language is a BCP 47 tag; unknown or empty tags fall back to hi-IN.
	Language string `json:"language"`
}

type CreateConversationResponse struct {
	Id       uuid.UUID `json:"id"`
	Language string    `json:"language"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Chat      string    `json:"chat"`
	CreatedAt time.Time `json:"created_at"`
}

type TranscriptResponse struct {
	Id       uuid.UUID             `json:"id"`
	Language string                `json:"language"`
	State    string                `json:"state"`
	Speaking bool                  `json:"speaking"`
	Seeded   bool                  `json:"seeded"`
	Messages []ChatMessageResponse `json:"messages"`
}

type SendMessageRequest struct {
	Chat string `json:"chat" validate:"required"`
}

type SendMessageResponse struct {
	Sent  *ChatMessageResponse `json:"sent"`
	Reply *ChatMessageResponse `json:"reply"`
}

type SeedConversationRequest struct {
	Text string `json:"text" validate:"required"`
}

type SeedConversationResponse struct {
	// Seeded is false when the conversation was already seeded and the
	// call was ignored.
	Seeded bool                 `json:"seeded"`
	Sent   *ChatMessageResponse `json:"sent,omitempty"`
	Reply  *ChatMessageResponse `json:"reply,omitempty"`
}

// AssistantReplyMessage travels over the in-process pub/sub from the chat
// service to the speech-synthesis consumer.
type AssistantReplyMessage struct {
	ConversationId uuid.UUID `json:"conversation_id"`
	MessageId      uuid.UUID `json:"message_id"`
	Text           string    `json:"text"`
	Language       string    `json:"language"`
}

type QuickReplyRequest struct {
	Query    string `json:"query" validate:"required"`
	Language string `json:"language"`
}

type QuickReplyResponse struct {
	Response string `json:"response"`
	Topic    string `json:"topic,omitempty"`
	Category string `json:"category,omitempty"`
	Matched  bool   `json:"matched"`
}
