package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Frame types pushed to browser clients over the conversation stream.
const (
	FrameAssistantReply = "assistant_reply"
	FrameSpeechAudio    = "speech_audio"
	FrameSpeechState    = "speech_state"
	FrameOcrProgress    = "ocr_progress"
	FrameEvent          = "event"
)

// InboundHandler receives frames sent by the browser on a conversation stream.
type InboundHandler func(conversationID uuid.UUID, frameType string, data json.RawMessage)

type Hub struct {
	// Registered clients map: ConversationID -> List of Clients (multi-tab)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Handler for frames arriving from the browser, set once during wiring.
	inbound InboundHandler

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

// SetInboundHandler wires the receiver for browser frames. Must be called
// before the first client connects.
func (h *Hub) SetInboundHandler(handler InboundHandler) {
	h.inbound = handler
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ConversationID] = append(h.clients[client.ConversationID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"conversation_id": client.ConversationID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.ConversationID]; ok {
				for i, c := range clients {
					if c == client {
						// Remove from slice
						h.clients[client.ConversationID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.ConversationID]) == 0 {
					delete(h.clients, client.ConversationID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"conversation_id": client.ConversationID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a frame to ALL connected clients regardless of conversation.
func (h *Hub) Broadcast(frameType string, payload interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": frameType,
		"data": payload,
	})

	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				close(client.Send)
				h.unregister <- client
			}
		}
	}
	h.mu.RUnlock()

	// Publish to Redis for other instances
	if h.rdb != nil {
		msg := map[string]interface{}{
			"target_conversation_id": "*", // Wildcard for broadcast
			"message":                data,
		}
		jsonPayload, _ := json.Marshal(msg)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// Send delivers a frame to every client attached to the conversation.
func (h *Hub) Send(conversationID uuid.UUID, frameType string, payload interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": frameType,
		"data": payload,
	})

	// Check locally
	h.mu.RLock()
	clients, localFound := h.clients[conversationID]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"conversation_id": conversationID})
				close(client.Send)
				h.unregister <- client
			}
		}
	}

	// Always publish so instances holding other tabs of the same
	// conversation can deliver too.
	if h.rdb != nil {
		msg := map[string]interface{}{
			"target_conversation_id": conversationID.String(),
			"message":                data,
		}
		jsonPayload, _ := json.Marshal(msg)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

func (h *Hub) handleInbound(conversationID uuid.UUID, raw []byte) {
	if h.inbound == nil {
		return
	}
	var frame struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &frame); err != nil || frame.Type == "" {
		h.logger.Warn("Hub", "Dropping malformed inbound frame", map[string]interface{}{"conversation_id": conversationID})
		return
	}
	h.inbound(conversationID, frame.Type, frame.Data)
}

func (h *Hub) subscribeToRedis() {
	// All instances subscribe to "cluster_events". Each payload carries
	// {target_conversation_id, message}; an instance delivers only to
	// conversations it holds locally.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetConversationID string          `json:"target_conversation_id"`
			Message              json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		// Check for Broadcast
		if payload.TargetConversationID == "*" {
			h.mu.RLock()
			for _, clients := range h.clients {
				for _, client := range clients {
					select {
					case client.Send <- payload.Message:
					default:
						close(client.Send)
						h.unregister <- client
					}
				}
			}
			h.mu.RUnlock()
			continue
		}

		cid, err := uuid.Parse(payload.TargetConversationID)
		if err != nil {
			continue
		}

		// Check local
		h.mu.RLock()
		clients, ok := h.clients[cid]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					close(client.Send)
					h.unregister <- client
				}
			}
		}
	}
}
