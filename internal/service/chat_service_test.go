package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Shravansapate/legislate-voice-aid/internal/constant"
	"github.com/Shravansapate/legislate-voice-aid/internal/dto"
	"github.com/Shravansapate/legislate-voice-aid/internal/repository/memory"
	"github.com/Shravansapate/legislate-voice-aid/pkg/i18n"
	"github.com/Shravansapate/legislate-voice-aid/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeLLM answers with a fixed reply, optionally failing or blocking until
// released.
type fakeLLM struct {
	mu      sync.Mutex
	reply   string
	err     error
	release chan struct{}
	calls   int
	history []llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.mu.Lock()
	f.calls++
	f.history = history
	release := f.release
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: constant.ChatMessageRoleUser, Content: prompt}}, options...)
}

type recordedFrame struct {
	conversationID uuid.UUID
	frameType      string
	payload        interface{}
}

type fakeDelivery struct {
	mu     sync.Mutex
	frames []recordedFrame
}

func (f *fakeDelivery) Send(conversationID uuid.UUID, frameType string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, recordedFrame{conversationID, frameType, payload})
}

func (f *fakeDelivery) Broadcast(frameType string, payload interface{}) {
	f.Send(uuid.Nil, frameType, payload)
}

func (f *fakeDelivery) byType(frameType string) []recordedFrame {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedFrame
	for _, fr := range f.frames {
		if fr.frameType == frameType {
			out = append(out, fr)
		}
	}
	return out
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []dto.AssistantReplyMessage
}

func (f *fakePublisher) PublishAssistantReply(msg dto.AssistantReplyMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return nil
}

func newTestChatService(provider llm.LLMProvider) (IChatService, *fakeDelivery, *fakePublisher) {
	delivery := &fakeDelivery{}
	publisher := &fakePublisher{}
	svc := NewChatService(memory.NewConversationRepository(), provider, publisher, delivery, 5*time.Second, nopLogger{})
	return svc, delivery, publisher
}

func createConversation(t *testing.T, svc IChatService, language string) uuid.UUID {
	t.Helper()
	res, err := svc.CreateConversation(context.Background(), &dto.CreateConversationRequest{Language: language})
	require.NoError(t, err)
	return res.Id
}

func TestCreateConversationLanguageFallback(t *testing.T) {
	svc, _, _ := newTestChatService(&fakeLLM{reply: "ok"})

	tests := []struct {
		name     string
		language string
		want     string
	}{
		{"telugu", "te-IN", "te-IN"},
		{"empty falls back", "", "hi-IN"},
		{"unknown falls back", "fr-FR", "hi-IN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.CreateConversation(context.Background(), &dto.CreateConversationRequest{Language: tt.language})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Language)
			assert.NotEqual(t, uuid.Nil, res.Id)
		})
	}
}

func TestSendMessageAppendsTurn(t *testing.T) {
	provider := &fakeLLM{reply: "आप तहसीलदार से संपर्क करें।"}
	svc, delivery, publisher := newTestChatService(provider)
	id := createConversation(t, svc, "hi-IN")

	res, err := svc.SendMessage(context.Background(), id, &dto.SendMessageRequest{Chat: "जमीन का विवाद है"})
	require.NoError(t, err)
	require.NotNil(t, res.Sent)
	require.NotNil(t, res.Reply)
	assert.Equal(t, constant.ChatMessageRoleUser, res.Sent.Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, res.Reply.Role)
	assert.Equal(t, provider.reply, res.Reply.Chat)

	transcript, err := svc.GetTranscript(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "idle", transcript.State)
	require.Len(t, transcript.Messages, 2)
	assert.Equal(t, "जमीन का विवाद है", transcript.Messages[0].Chat)

	// The system prompt frames the request in the conversation language.
	require.NotEmpty(t, provider.history)
	assert.Equal(t, constant.ChatMessageRoleSystem, provider.history[0].Role)
	assert.Contains(t, provider.history[0].Content, "Hindi")

	// Reply travels to the browser and into the speech pipeline.
	assert.Len(t, delivery.byType("assistant_reply"), 1)
	require.Len(t, publisher.messages, 1)
	assert.Equal(t, id, publisher.messages[0].ConversationId)
	assert.Equal(t, provider.reply, publisher.messages[0].Text)
}

func TestSendMessageValidation(t *testing.T) {
	svc, _, _ := newTestChatService(&fakeLLM{reply: "ok"})
	id := createConversation(t, svc, "hi-IN")

	_, err := svc.SendMessage(context.Background(), id, &dto.SendMessageRequest{Chat: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{Chat: "hello"})
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestSendMessageRejectsWhileReplyInFlight(t *testing.T) {
	provider := &fakeLLM{reply: "ok", release: make(chan struct{})}
	svc, _, _ := newTestChatService(provider)
	id := createConversation(t, svc, "en-IN")

	done := make(chan error, 1)
	go func() {
		_, err := svc.SendMessage(context.Background(), id, &dto.SendMessageRequest{Chat: "first"})
		done <- err
	}()

	// Wait until the first submission holds the turn.
	require.Eventually(t, func() bool {
		transcript, err := svc.GetTranscript(context.Background(), id)
		return err == nil && transcript.State == "awaiting_reply"
	}, time.Second, 5*time.Millisecond)

	_, err := svc.SendMessage(context.Background(), id, &dto.SendMessageRequest{Chat: "second"})
	assert.ErrorIs(t, err, ErrReplyInFlight)

	close(provider.release)
	require.NoError(t, <-done)

	// Exactly one user and one assistant message made it in.
	transcript, err := svc.GetTranscript(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, transcript.Messages, 2)
	assert.Equal(t, "idle", transcript.State)
}

func TestSendMessageFailureAppendsLocalizedFallback(t *testing.T) {
	provider := &fakeLLM{err: errors.New("upstream 500")}
	svc, _, publisher := newTestChatService(provider)
	id := createConversation(t, svc, "te-IN")

	res, err := svc.SendMessage(context.Background(), id, &dto.SendMessageRequest{Chat: "hello"})
	require.NoError(t, err)
	require.NotNil(t, res.Reply)
	assert.Equal(t, i18n.Lookup("chatError", i18n.LanguageTelugu), res.Reply.Chat)

	// The conversation recovers; the next submission is accepted.
	transcript, err := svc.GetTranscript(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "idle", transcript.State)

	// Even the apology goes to the speech pipeline.
	assert.Len(t, publisher.messages, 1)
}

func TestSeedFromScan(t *testing.T) {
	provider := &fakeLLM{reply: "summary of the notice"}
	svc, _, _ := newTestChatService(provider)
	id := createConversation(t, svc, "en-IN")

	res, err := svc.SeedFromScan(context.Background(), id, &dto.SeedConversationRequest{Text: "scanned notice text"})
	require.NoError(t, err)
	assert.True(t, res.Seeded)
	require.NotNil(t, res.Sent)
	assert.Equal(t, "scanned notice text", res.Sent.Chat)
	require.NotNil(t, res.Reply)

	// A second scan is ignored without touching the transcript.
	res, err = svc.SeedFromScan(context.Background(), id, &dto.SeedConversationRequest{Text: "another scan"})
	require.NoError(t, err)
	assert.False(t, res.Seeded)
	assert.Nil(t, res.Sent)

	transcript, err := svc.GetTranscript(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, transcript.Seeded)
	assert.Len(t, transcript.Messages, 2)
}

func TestQuickReply(t *testing.T) {
	svc, _, _ := newTestChatService(&fakeLLM{reply: "unused"})

	res, err := svc.QuickReply(context.Background(), &dto.QuickReplyRequest{Query: "pension scheme", Language: "en-IN"})
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Equal(t, "pension", res.Topic)
	assert.Equal(t, "welfare", res.Category)

	res, err = svc.QuickReply(context.Background(), &dto.QuickReplyRequest{Query: "something unrelated", Language: "en-IN"})
	require.NoError(t, err)
	assert.False(t, res.Matched)
	assert.Contains(t, res.Response, "something unrelated")

	_, err = svc.QuickReply(context.Background(), &dto.QuickReplyRequest{Query: "  "})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSpeakingLifecycle(t *testing.T) {
	svc, delivery, _ := newTestChatService(&fakeLLM{reply: "ok"})
	id := createConversation(t, svc, "hi-IN")

	svc.MarkSpeaking(id, true)
	transcript, err := svc.GetTranscript(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, transcript.Speaking)

	require.NoError(t, svc.StopSpeech(context.Background(), id))
	transcript, err = svc.GetTranscript(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, transcript.Speaking)

	// Stopping when nothing plays is a no-op, not an error.
	require.NoError(t, svc.StopSpeech(context.Background(), id))
	assert.Len(t, delivery.byType("speech_state"), 2)

	assert.ErrorIs(t, svc.StopSpeech(context.Background(), uuid.New()), ErrConversationNotFound)
}

func TestHandleStreamFrameSpeechEnded(t *testing.T) {
	svc, _, _ := newTestChatService(&fakeLLM{reply: "ok"})
	id := createConversation(t, svc, "hi-IN")
	svc.MarkSpeaking(id, true)

	svc.HandleStreamFrame(id, "speech_ended", nil)

	transcript, err := svc.GetTranscript(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, transcript.Speaking)
}

func TestHandleStreamFrameTranscriptFinal(t *testing.T) {
	provider := &fakeLLM{reply: "spoken answer"}
	svc, delivery, _ := newTestChatService(provider)
	id := createConversation(t, svc, "en-IN")

	svc.HandleStreamFrame(id, "transcript_final", []byte(`{"text":"what is RTI"}`))

	require.Eventually(t, func() bool {
		transcript, err := svc.GetTranscript(context.Background(), id)
		return err == nil && len(transcript.Messages) == 2
	}, time.Second, 5*time.Millisecond)

	assert.Len(t, delivery.byType("assistant_reply"), 1)
}
