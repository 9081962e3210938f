package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Shravansapate/legislate-voice-aid/internal/constant"
	"github.com/Shravansapate/legislate-voice-aid/internal/dto"
	"github.com/Shravansapate/legislate-voice-aid/internal/entity"
	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/logger"
	"github.com/Shravansapate/legislate-voice-aid/internal/repository/memory"
	"github.com/Shravansapate/legislate-voice-aid/internal/websocket"
	"github.com/Shravansapate/legislate-voice-aid/pkg/i18n"
	"github.com/Shravansapate/legislate-voice-aid/pkg/legal"
	"github.com/Shravansapate/legislate-voice-aid/pkg/llm"

	"github.com/google/uuid"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message is empty")
	ErrReplyInFlight        = errors.New("a reply is already being generated")
)

const (
	replyTemperature = 0.7
	replyMaxTokens   = 1000
)

// StreamDelivery defines how to push real-time frames to browser clients.
// Typically implemented by the WebSocket Hub.
type StreamDelivery interface {
	Send(conversationID uuid.UUID, frameType string, payload interface{})
	Broadcast(frameType string, payload interface{})
}

type IChatService interface {
	CreateConversation(ctx context.Context, req *dto.CreateConversationRequest) (*dto.CreateConversationResponse, error)
	GetTranscript(ctx context.Context, id uuid.UUID) (*dto.TranscriptResponse, error)
	SendMessage(ctx context.Context, id uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	SeedFromScan(ctx context.Context, id uuid.UUID, req *dto.SeedConversationRequest) (*dto.SeedConversationResponse, error)
	QuickReply(ctx context.Context, req *dto.QuickReplyRequest) (*dto.QuickReplyResponse, error)
	StopSpeech(ctx context.Context, id uuid.UUID) error
	MarkSpeaking(id uuid.UUID, speaking bool)
	HandleStreamFrame(conversationID uuid.UUID, frameType string, data json.RawMessage)
}

type chatService struct {
	conversations *memory.ConversationRepository
	llmProvider   llm.LLMProvider
	publisher     IPublisherService
	delivery      StreamDelivery
	replyTimeout  time.Duration
	logger        logger.ILogger

	// One mutex per conversation guards transcript read-modify-write. The
	// mutex is NOT held across the completion call; the awaiting_reply state
	// is what rejects concurrent submissions.
	locks sync.Map
}

func NewChatService(
	conversations *memory.ConversationRepository,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	delivery StreamDelivery,
	replyTimeout time.Duration,
	log logger.ILogger,
) IChatService {
	return &chatService{
		conversations: conversations,
		llmProvider:   llmProvider,
		publisher:     publisher,
		delivery:      delivery,
		replyTimeout:  replyTimeout,
		logger:        log,
	}
}

func (cs *chatService) lockFor(id uuid.UUID) *sync.Mutex {
	mu, _ := cs.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (cs *chatService) CreateConversation(ctx context.Context, req *dto.CreateConversationRequest) (*dto.CreateConversationResponse, error) {
	lang := i18n.Parse(req.Language)
	now := time.Now()

	conversation := &entity.Conversation{
		Id:        uuid.New(),
		Language:  lang,
		State:     entity.ConversationStateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	cs.conversations.Save(conversation)

	cs.logger.Info("ChatService", "Conversation created", map[string]interface{}{
		"conversation_id": conversation.Id,
		"language":        string(lang),
	})

	return &dto.CreateConversationResponse{
		Id:       conversation.Id,
		Language: string(lang),
	}, nil
}

func (cs *chatService) GetTranscript(ctx context.Context, id uuid.UUID) (*dto.TranscriptResponse, error) {
	mu := cs.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	conversation, found := cs.conversations.Get(id)
	if !found {
		return nil, ErrConversationNotFound
	}

	messages := make([]dto.ChatMessageResponse, 0, len(conversation.Messages))
	for _, m := range conversation.Messages {
		messages = append(messages, toChatMessageResponse(m))
	}

	return &dto.TranscriptResponse{
		Id:       conversation.Id,
		Language: string(conversation.Language),
		State:    string(conversation.State),
		Speaking: conversation.Speaking,
		Seeded:   conversation.Seeded,
		Messages: messages,
	}, nil
}

func (cs *chatService) SendMessage(ctx context.Context, id uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	text := strings.TrimSpace(req.Chat)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	sent, lang, err := cs.acceptSubmission(id, text)
	if err != nil {
		return nil, err
	}

	reply := cs.generateReply(ctx, id, lang)

	return &dto.SendMessageResponse{
		Sent:  sent,
		Reply: reply,
	}, nil
}

// acceptSubmission appends the user message and flips the conversation to
// awaiting_reply, or rejects it. The state flip is the submit guard.
func (cs *chatService) acceptSubmission(id uuid.UUID, text string) (*dto.ChatMessageResponse, i18n.Language, error) {
	mu := cs.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	conversation, found := cs.conversations.Get(id)
	if !found {
		return nil, "", ErrConversationNotFound
	}
	if conversation.State == entity.ConversationStateAwaitingReply {
		return nil, "", ErrReplyInFlight
	}

	msg := entity.ChatMessage{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleUser,
		Content:   text,
		CreatedAt: time.Now(),
	}
	conversation.Messages = append(conversation.Messages, msg)
	conversation.State = entity.ConversationStateAwaitingReply
	conversation.UpdatedAt = time.Now()
	cs.conversations.Save(conversation)

	sent := toChatMessageResponse(msg)
	return &sent, conversation.Language, nil
}

// generateReply runs the completion for the pending turn and appends the
// assistant message. Failures produce a localized apology instead of leaving
// the conversation stuck in awaiting_reply.
func (cs *chatService) generateReply(ctx context.Context, id uuid.UUID, lang i18n.Language) *dto.ChatMessageResponse {
	history := cs.buildHistory(id, lang)

	llmCtx, cancel := context.WithTimeout(ctx, cs.replyTimeout)
	defer cancel()

	replyText, err := cs.llmProvider.Chat(llmCtx, history,
		llm.WithTemperature(replyTemperature),
		llm.WithMaxTokens(replyMaxTokens),
	)
	if err != nil || strings.TrimSpace(replyText) == "" {
		cs.logger.Error("ChatService", "Completion failed, sending fallback reply", map[string]interface{}{
			"conversation_id": id,
			"error":           fmt.Sprintf("%v", err),
		})
		replyText = i18n.Lookup("chatError", lang)
	}

	mu := cs.lockFor(id)
	mu.Lock()
	conversation, found := cs.conversations.Get(id)
	if !found {
		// Expired mid-turn. Nothing left to append to.
		mu.Unlock()
		return nil
	}
	msg := entity.ChatMessage{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleAssistant,
		Content:   replyText,
		CreatedAt: time.Now(),
	}
	conversation.Messages = append(conversation.Messages, msg)
	conversation.State = entity.ConversationStateIdle
	conversation.UpdatedAt = time.Now()
	cs.conversations.Save(conversation)
	mu.Unlock()

	reply := toChatMessageResponse(msg)

	if cs.delivery != nil {
		cs.delivery.Send(id, websocket.FrameAssistantReply, reply)
	}

	if cs.publisher != nil {
		if err := cs.publisher.PublishAssistantReply(dto.AssistantReplyMessage{
			ConversationId: id,
			MessageId:      msg.Id,
			Text:           replyText,
			Language:       string(lang),
		}); err != nil {
			cs.logger.Warn("ChatService", "Failed to publish reply for speech synthesis", map[string]interface{}{
				"conversation_id": id,
				"error":           err.Error(),
			})
		}
	}

	return &reply
}

func (cs *chatService) buildHistory(id uuid.UUID, lang i18n.Language) []llm.Message {
	mu := cs.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	history := []llm.Message{
		{
			Role:    constant.ChatMessageRoleSystem,
			Content: fmt.Sprintf(constant.LegalSystemPromptTemplate, lang.Name()),
		},
	}

	conversation, found := cs.conversations.Get(id)
	if !found {
		return history
	}
	for _, m := range conversation.Messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}
	return history
}

func (cs *chatService) SeedFromScan(ctx context.Context, id uuid.UUID, req *dto.SeedConversationRequest) (*dto.SeedConversationResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	mu := cs.lockFor(id)
	mu.Lock()
	conversation, found := cs.conversations.Get(id)
	if !found {
		mu.Unlock()
		return nil, ErrConversationNotFound
	}
	if conversation.Seeded {
		// Only the first scan seeds a conversation.
		mu.Unlock()
		return &dto.SeedConversationResponse{Seeded: false}, nil
	}
	if conversation.State == entity.ConversationStateAwaitingReply {
		mu.Unlock()
		return nil, ErrReplyInFlight
	}
	conversation.Seeded = true
	cs.conversations.Save(conversation)
	mu.Unlock()

	sent, lang, err := cs.acceptSubmission(id, text)
	if err != nil {
		return nil, err
	}
	reply := cs.generateReply(ctx, id, lang)

	return &dto.SeedConversationResponse{
		Seeded: true,
		Sent:   sent,
		Reply:  reply,
	}, nil
}

// QuickReply resolves a canned answer without touching any conversation.
func (cs *chatService) QuickReply(ctx context.Context, req *dto.QuickReplyRequest) (*dto.QuickReplyResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyMessage
	}

	result := legal.Resolve(query, i18n.Parse(req.Language))
	return &dto.QuickReplyResponse{
		Response: result.Answer,
		Topic:    result.Topic,
		Category: result.Category,
		Matched:  result.Matched,
	}, nil
}

func (cs *chatService) StopSpeech(ctx context.Context, id uuid.UUID) error {
	mu := cs.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	conversation, found := cs.conversations.Get(id)
	if !found {
		return ErrConversationNotFound
	}
	if !conversation.Speaking {
		return nil
	}
	conversation.Speaking = false
	conversation.UpdatedAt = time.Now()
	cs.conversations.Save(conversation)

	if cs.delivery != nil {
		cs.delivery.Send(id, websocket.FrameSpeechState, map[string]interface{}{"speaking": false})
	}
	return nil
}

// MarkSpeaking flips the playback flag. Speaking is independent of the
// submit guard; typing while audio plays is allowed.
func (cs *chatService) MarkSpeaking(id uuid.UUID, speaking bool) {
	mu := cs.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	conversation, found := cs.conversations.Get(id)
	if !found {
		return
	}
	conversation.Speaking = speaking
	conversation.UpdatedAt = time.Now()
	cs.conversations.Save(conversation)

	if cs.delivery != nil {
		cs.delivery.Send(id, websocket.FrameSpeechState, map[string]interface{}{"speaking": speaking})
	}
}

// HandleStreamFrame dispatches frames the browser sends on its conversation
// stream. Shape matches websocket.InboundHandler.
func (cs *chatService) HandleStreamFrame(conversationID uuid.UUID, frameType string, data json.RawMessage) {
	switch frameType {
	case "speech_ended":
		cs.MarkSpeaking(conversationID, false)

	case "transcript_final":
		var payload struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(data, &payload); err != nil || strings.TrimSpace(payload.Text) == "" {
			return
		}
		// Voice submissions run the same turn pipeline as typed ones; the
		// reply reaches the browser through the assistant_reply frame.
		go func() {
			_, err := cs.SendMessage(context.Background(), conversationID, &dto.SendMessageRequest{Chat: payload.Text})
			if err != nil && !errors.Is(err, ErrReplyInFlight) {
				cs.logger.Warn("ChatService", "Voice submission rejected", map[string]interface{}{
					"conversation_id": conversationID,
					"error":           err.Error(),
				})
			}
		}()

	case "transcript_interim":
		// Interim transcripts are display-only on the client; nothing to do.
	}
}

func toChatMessageResponse(m entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:        m.Id,
		Role:      m.Role,
		Chat:      m.Content,
		CreatedAt: m.CreatedAt,
	}
}
