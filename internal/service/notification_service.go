package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/logger"
	"github.com/Shravansapate/legislate-voice-aid/internal/websocket"
	"github.com/Shravansapate/legislate-voice-aid/pkg/events"
	pktNats "github.com/Shravansapate/legislate-voice-aid/pkg/nats" // Renamed to avoid collision

	"github.com/google/uuid"
)

// NotificationService relays bus events to connected browsers. An event
// carrying a conversation_id is sent only to that conversation's stream;
// everything else is broadcast.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	delivery   StreamDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, delivery StreamDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	// Subscribe to all events with a durable consumer
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// Strip "events." prefix from type if present (NATS subject includes stream name)
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", typeCode), map[string]interface{}{"type": typeCode})

	if s.delivery == nil {
		return nil
	}

	payload := event.Payload()
	frame := map[string]interface{}{
		"event":   typeCode,
		"payload": payload,
	}

	if cidStr, ok := payload["conversation_id"].(string); ok {
		if cid, err := uuid.Parse(cidStr); err == nil {
			s.delivery.Send(cid, websocket.FrameEvent, frame)
			return nil
		}
	}

	s.delivery.Broadcast(websocket.FrameEvent, frame)
	return nil
}
