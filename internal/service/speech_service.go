package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"

	"github.com/Shravansapate/legislate-voice-aid/internal/dto"
	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/logger"
	"github.com/Shravansapate/legislate-voice-aid/internal/repository/preference"
	"github.com/Shravansapate/legislate-voice-aid/internal/websocket"
	"github.com/Shravansapate/legislate-voice-aid/pkg/speech"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type ISpeechService interface {
	Consume(ctx context.Context) error
}

// speechService turns finished assistant replies into audio. The whole
// pipeline is best-effort: without a configured credential, or on any
// synthesis failure, the text reply has already been delivered and the
// turn is complete.
type speechService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	keys        *preference.SpeechKeyRepository
	synthesizer speech.Synthesizer
	chat        IChatService
	delivery    StreamDelivery
	logger      logger.ILogger
}

func NewSpeechService(
	pubSub *gochannel.GoChannel,
	topicName string,
	keys *preference.SpeechKeyRepository,
	synthesizer speech.Synthesizer,
	chat IChatService,
	delivery StreamDelivery,
	log logger.ILogger,
) ISpeechService {
	return &speechService{
		pubSub:      pubSub,
		topicName:   topicName,
		keys:        keys,
		synthesizer: synthesizer,
		chat:        chat,
		delivery:    delivery,
		logger:      log,
	}
}

func (ss *speechService) Consume(ctx context.Context) error {
	messages, err := ss.pubSub.Subscribe(ctx, ss.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ss.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ss *speechService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AssistantReplyMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal reply message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	apiKey, configured, err := ss.keys.Get(ctx)
	if err != nil {
		ss.logger.Warn("SpeechService", "Credential lookup failed, skipping synthesis", map[string]interface{}{
			"conversation_id": payload.ConversationId,
			"error":           err.Error(),
		})
		msg.Ack()
		return
	}
	if !configured {
		// Voice output is optional; no key means text-only mode.
		msg.Ack()
		return
	}

	audio, err := ss.synthesizer.Synthesize(ctx, speech.Request{
		APIKey: apiKey,
		Text:   payload.Text,
	})
	if err != nil {
		// A failed synthesis never fails the turn; retrying stale audio
		// for an old reply is worse than staying silent.
		ss.logger.Warn("SpeechService", "Synthesis failed", map[string]interface{}{
			"conversation_id": payload.ConversationId,
			"error":           err.Error(),
		})
		msg.Ack()
		return
	}

	ss.chat.MarkSpeaking(payload.ConversationId, true)

	if ss.delivery != nil {
		ss.delivery.Send(payload.ConversationId, websocket.FrameSpeechAudio, map[string]interface{}{
			"message_id": payload.MessageId,
			"mime_type":  "audio/mpeg",
			"audio":      base64.StdEncoding.EncodeToString(audio),
		})
	}

	ss.logger.Info("SpeechService", "Reply audio dispatched", map[string]interface{}{
		"conversation_id": payload.ConversationId,
		"bytes":           len(audio),
	})
	msg.Ack()
}
