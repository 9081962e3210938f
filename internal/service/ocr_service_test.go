package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Shravansapate/legislate-voice-aid/pkg/ocr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOcrProvider struct {
	result *ocr.Result
	err    error
}

func (f *fakeOcrProvider) Extract(ctx context.Context, req ocr.Request) (*ocr.Result, error) {
	if req.OnProgress != nil {
		req.OnProgress(10)
		req.OnProgress(100)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestOcrService(provider ocr.Provider) (IOcrService, *fakeDelivery) {
	delivery := &fakeDelivery{}
	svc := NewOcrService(provider, []string{"eng"}, nil, delivery, nopLogger{})
	return svc, delivery
}

func TestExtractTextValidation(t *testing.T) {
	svc, _ := newTestOcrService(&fakeOcrProvider{result: &ocr.Result{Text: "hello"}})
	image := []byte{0xFF, 0xD8, 0xFF}

	tests := []struct {
		name        string
		image       []byte
		contentType string
		wantErr     error
	}{
		{"pdf rejected", image, "application/pdf", ErrOcrInvalidImage},
		{"plain text rejected", image, "text/plain", ErrOcrInvalidImage},
		{"empty body rejected", nil, "image/jpeg", ErrOcrInvalidImage},
		{"oversized rejected", bytes.Repeat([]byte{0x1}, 10*1024*1024+1), "image/png", ErrOcrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ExtractText(context.Background(), uuid.Nil, tt.image, "scan.jpg", tt.contentType)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractTextNoTextVersusFailure(t *testing.T) {
	image := []byte{0xFF, 0xD8, 0xFF}

	// Blank image: the engine worked, there was just nothing to read.
	svc, _ := newTestOcrService(&fakeOcrProvider{result: &ocr.Result{Text: "   "}})
	_, err := svc.ExtractText(context.Background(), uuid.Nil, image, "blank.png", "image/png")
	assert.ErrorIs(t, err, ErrOcrNoTextFound)

	// Transport failure: a different message so the user retries the upload.
	svc, _ = newTestOcrService(&fakeOcrProvider{err: errors.New("connection refused")})
	_, err = svc.ExtractText(context.Background(), uuid.Nil, image, "scan.png", "image/png")
	assert.ErrorIs(t, err, ErrOcrProcessingFailed)
}

func TestExtractTextSuccess(t *testing.T) {
	svc, delivery := newTestOcrService(&fakeOcrProvider{result: &ocr.Result{Text: "  नोटिस का पाठ  ", Confidence: 100}})
	conversationID := uuid.New()

	res, err := svc.ExtractText(context.Background(), conversationID, []byte{0xFF, 0xD8, 0xFF}, "notice.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "नोटिस का पाठ", res.Text)
	assert.Equal(t, float64(100), res.Confidence)

	// Progress frames reach the conversation stream.
	frames := delivery.byType("ocr_progress")
	require.Len(t, frames, 2)
	assert.Equal(t, conversationID, frames[0].conversationID)
}

func TestExtractTextWithoutConversationSkipsProgress(t *testing.T) {
	svc, delivery := newTestOcrService(&fakeOcrProvider{result: &ocr.Result{Text: "text"}})

	_, err := svc.ExtractText(context.Background(), uuid.Nil, []byte{0xFF, 0xD8, 0xFF}, "notice.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Empty(t, delivery.byType("ocr_progress"))
}
