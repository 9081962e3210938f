package dto

type SpeechKeyStatusResponse struct {
	// Configured reports presence only; the stored key is never echoed back.
	Configured bool `json:"configured"`
}

type SetSpeechKeyRequest struct {
	ApiKey string `json:"api_key" validate:"required"`
}
