package ocrspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/Shravansapate/legislate-voice-aid/pkg/ocr"
)

// Provider is an OCR.space client. The free tier accepts multipart uploads
// and recognizes Devanagari and Telugu alongside Latin text.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ ocr.Provider = &Provider{}

func NewProvider(apiKey, baseURL string) *Provider {
	if baseURL == "" {
		baseURL = "https://api.ocr.space/parse/image"
	}
	return &Provider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type parseResponse struct {
	ParsedResults []struct {
		ParsedText        string `json:"ParsedText"`
		FileParseExitCode int    `json:"FileParseExitCode"`
	} `json:"ParsedResults"`
	OCRExitCode           int  `json:"OCRExitCode"`
	IsErroredOnProcessing bool `json:"IsErroredOnProcessing"`
	// ErrorMessage is a string or an array of strings depending on the failure.
	ErrorMessage json.RawMessage `json:"ErrorMessage"`
}

func (p *Provider) Extract(ctx context.Context, req ocr.Request) (*ocr.Result, error) {
	report := req.OnProgress
	if report == nil {
		report = func(float64) {}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	// OCR.space takes one language per request; first hint wins.
	language := "eng"
	if len(req.Languages) > 0 {
		language = req.Languages[0]
	}
	if err := writer.WriteField("language", language); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if err := writer.WriteField("OCREngine", "2"); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}

	filename := req.Filename
	if filename == "" {
		filename = "upload.png"
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if _, err := part.Write(req.Image); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}

	report(10)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.baseURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	if p.apiKey != "" {
		httpReq.Header.Set("apikey", p.apiKey)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ocrspace request failed: %w", err)
	}
	defer resp.Body.Close()

	report(60)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocrspace api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed parseResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if parsed.IsErroredOnProcessing || parsed.OCRExitCode >= 3 {
		return nil, fmt.Errorf("ocrspace processing error (exit code %d): %s", parsed.OCRExitCode, string(parsed.ErrorMessage))
	}

	var texts []string
	confidence := 0.0
	for _, result := range parsed.ParsedResults {
		if result.FileParseExitCode == 1 {
			texts = append(texts, result.ParsedText)
			// The API reports success/failure per file but no score;
			// treat a clean parse as full confidence.
			confidence = 100
		}
	}

	report(100)

	return &ocr.Result{
		Text:       strings.TrimSpace(strings.Join(texts, "\n")),
		Confidence: confidence,
	}, nil
}
