package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Shravansapate/legislate-voice-aid/pkg/speech"
)

type Synthesizer struct {
	baseURL string
	voiceID string
	modelID string
	client  *http.Client
}

var _ speech.Synthesizer = &Synthesizer{}

func NewSynthesizer(baseURL, voiceID, modelID string) *Synthesizer {
	if baseURL == "" {
		baseURL = "https://api.elevenlabs.io/v1"
	}
	if voiceID == "" {
		voiceID = "9BWtsMINqrJLrRacOk9x"
	}
	if modelID == "" {
		modelID = "eleven_multilingual_v2"
	}
	return &Synthesizer{
		baseURL: baseURL,
		voiceID: voiceID,
		modelID: modelID,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

func (s *Synthesizer) Synthesize(ctx context.Context, req speech.Request) ([]byte, error) {
	if req.APIKey == "" {
		return nil, fmt.Errorf("missing api key")
	}

	body := ttsRequest{
		Text:    req.Text,
		ModelID: s.modelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.5,
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", s.baseURL, s.voiceID)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("xi-api-key", req.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("elevenlabs api error (status %d): %s", resp.StatusCode, string(audio))
	}

	return audio, nil
}
