package handler

import (
	"errors"

	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/logger"
	"github.com/Shravansapate/legislate-voice-aid/internal/service"
	internalWS "github.com/Shravansapate/legislate-voice-aid/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// StreamHandler upgrades browsers onto a conversation's realtime stream.
// Conversations are anonymous, so possession of the conversation id is the
// only credential.
type StreamHandler struct {
	chatService service.IChatService
	hub         *internalWS.Hub
	logger      logger.ILogger
}

func NewStreamHandler(chatService service.IChatService, hub *internalWS.Hub, log logger.ILogger) *StreamHandler {
	return &StreamHandler{
		chatService: chatService,
		hub:         hub,
		logger:      log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *StreamHandler) ServeWs(c *fiber.Ctx) error {
	conversationID, err := uuid.Parse(c.Params("conversationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid conversation ID"})
	}

	// Refuse streams for conversations that never existed or expired.
	if _, err := h.chatService.GetTranscript(c.Context(), conversationID); err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Conversation not found"})
		}
		return err
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("StreamHandler", "Starting WebSocket session", map[string]interface{}{"conversation_id": conversationID})
			internalWS.ServeWs(h.hub, conn, conversationID)
			h.logger.Info("StreamHandler", "WebSocket session ended", map[string]interface{}{"conversation_id": conversationID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the stream route.
func (h *StreamHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/v1/:conversationId", h.ServeWs)
}
