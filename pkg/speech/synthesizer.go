package speech

import "context"

// Request is one synthesis job. The API key travels with the request because
// the credential is a per-deployment stored preference, not a process secret.
type Request struct {
	APIKey string
	Text   string
}

// Synthesizer defines the contract for a text-to-speech backend.
type Synthesizer interface {
	// Synthesize renders the text to encoded audio (audio/mpeg).
	Synthesize(ctx context.Context, req Request) ([]byte, error)
}
