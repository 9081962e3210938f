package constant

// Message roles as stored in a conversation transcript.
const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
)

// LegalSystemPromptTemplate frames every completion request. The single %s
// verb takes the English display name of the conversation language.
const LegalSystemPromptTemplate = "You are a helpful legal assistant for Indian law. Respond in %s language. Provide accurate, simple legal guidance for common issues like land disputes, domestic violence, consumer rights, employment issues, and government schemes. Keep responses clear and actionable."

// AssistantReplyTopic is the in-process topic carrying finished assistant
// replies into the speech-synthesis pipeline.
const AssistantReplyTopic = "ASSISTANT_REPLY"
