package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Shravansapate/legislate-voice-aid/internal/dto"
	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/logger"
	"github.com/Shravansapate/legislate-voice-aid/internal/websocket"
	"github.com/Shravansapate/legislate-voice-aid/pkg/events"
	pktNats "github.com/Shravansapate/legislate-voice-aid/pkg/nats"
	"github.com/Shravansapate/legislate-voice-aid/pkg/ocr"

	"github.com/google/uuid"
)

// Error strings double as user-facing messages; the frontend shows them
// verbatim.
var (
	ErrOcrInvalidImage     = errors.New("Please upload a valid image file")
	ErrOcrImageTooLarge    = errors.New("File size must be less than 10MB")
	ErrOcrNoTextFound      = errors.New("No text found in the image. Please try with a clearer image.")
	ErrOcrProcessingFailed = errors.New("Failed to process the image. Please try again.")
)

const maxImageBytes = 10 * 1024 * 1024

type IOcrService interface {
	// ExtractText recognizes text in an uploaded image. conversationID may be
	// uuid.Nil for scans not attached to a conversation.
	ExtractText(ctx context.Context, conversationID uuid.UUID, image []byte, filename, contentType string) (*dto.ExtractTextResponse, error)
}

type ocrService struct {
	provider  ocr.Provider
	languages []string
	publisher *pktNats.Publisher
	delivery  StreamDelivery
	logger    logger.ILogger
}

func NewOcrService(
	provider ocr.Provider,
	languages []string,
	publisher *pktNats.Publisher,
	delivery StreamDelivery,
	log logger.ILogger,
) IOcrService {
	return &ocrService{
		provider:  provider,
		languages: languages,
		publisher: publisher,
		delivery:  delivery,
		logger:    log,
	}
}

func (os *ocrService) ExtractText(ctx context.Context, conversationID uuid.UUID, image []byte, filename, contentType string) (*dto.ExtractTextResponse, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrOcrInvalidImage
	}
	if len(image) == 0 {
		return nil, ErrOcrInvalidImage
	}
	if len(image) > maxImageBytes {
		return nil, ErrOcrImageTooLarge
	}

	var onProgress ocr.ProgressFunc
	if os.delivery != nil && conversationID != uuid.Nil {
		onProgress = func(percent float64) {
			os.delivery.Send(conversationID, websocket.FrameOcrProgress, map[string]interface{}{
				"progress": percent,
			})
		}
	}

	result, err := os.provider.Extract(ctx, ocr.Request{
		Image:      image,
		Filename:   filename,
		Languages:  os.languages,
		OnProgress: onProgress,
	})
	if err != nil {
		os.logger.Error("OcrService", "Extraction failed", map[string]interface{}{
			"filename": filename,
			"error":    err.Error(),
		})
		return nil, ErrOcrProcessingFailed
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		return nil, ErrOcrNoTextFound
	}

	if os.publisher != nil {
		if err := os.publisher.Publish(ctx, events.NewOCRCompleted(conversationID, result.Confidence, len(text))); err != nil {
			os.logger.Warn("OcrService", "Failed to publish OCR event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.ExtractTextResponse{
		Text:       text,
		Confidence: result.Confidence,
	}, nil
}
