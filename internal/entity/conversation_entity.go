package entity

import (
	"time"

	"github.com/Shravansapate/legislate-voice-aid/pkg/i18n"

	"github.com/google/uuid"
)

type ConversationState string

const (
	// ConversationStateIdle accepts a new submission.
	ConversationStateIdle ConversationState = "idle"
	// ConversationStateAwaitingReply rejects submissions until the current
	// turn resolves.
	ConversationStateAwaitingReply ConversationState = "awaiting_reply"
)

// Conversation is one anonymous chat session. It lives only in memory;
// nothing ties it to a user account.
type Conversation struct {
	Id       uuid.UUID
	Language i18n.Language
	State    ConversationState
	// Speaking tracks audio playback independently of State.
	Speaking bool
	// Seeded is set once the first OCR scan has been injected; later seeds
	// are ignored.
	Seeded    bool
	Messages  []ChatMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatMessage is one transcript entry. The transcript is append-only.
type ChatMessage struct {
	Id        uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}
