package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "OCR_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain implementation; the constructors below build the
// domain events this service emits.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes.
const (
	TypeDocumentGenerated = "DOCUMENT_GENERATED"
	TypeOCRCompleted      = "OCR_COMPLETED"
)

// NewDocumentGenerated marks that a draft document was rendered.
func NewDocumentGenerated(kind, filename string, language string) Event {
	return BaseEvent{
		Type: TypeDocumentGenerated,
		Data: map[string]interface{}{
			"kind":     kind,
			"filename": filename,
			"language": language,
		},
		OccurredAt: time.Now(),
	}
}

// NewOCRCompleted marks that text extraction finished for an upload.
// conversationID may be uuid.Nil when the scan was not tied to a conversation.
func NewOCRCompleted(conversationID uuid.UUID, confidence float64, textLength int) Event {
	data := map[string]interface{}{
		"confidence":  confidence,
		"text_length": textLength,
	}
	if conversationID != uuid.Nil {
		data["conversation_id"] = conversationID.String()
	}
	return BaseEvent{
		Type:       TypeOCRCompleted,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
