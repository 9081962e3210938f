package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Shravansapate/legislate-voice-aid/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDocument(t *testing.T) {
	svc := NewDocumentService(nil, nopLogger{})

	res, err := svc.Generate(context.Background(), &dto.GenerateDocumentRequest{
		Kind:     "fir",
		Query:    "जमीन पर कब्जा",
		Response: "आप तहसीलदार से संपर्क करें।",
		Language: "hi-IN",
	})
	require.NoError(t, err)

	assert.Equal(t, "fir", res.Kind)
	assert.Contains(t, res.Body, "प्राथमिकी (FIR)")
	assert.Contains(t, res.Body, "जमीन पर कब्जा")
	assert.True(t, strings.HasPrefix(res.Filename, "FIR_Draft_"))
	assert.True(t, strings.HasSuffix(res.Filename, ".txt"))
	assert.Contains(t, res.ShareUrl, "https://wa.me/")
	assert.Contains(t, res.PrintHtml, "FIR Draft")
	assert.NotEmpty(t, res.GeneratedDate)
	assert.NotEmpty(t, res.Disclaimer)
}

func TestGenerateDocumentRTI(t *testing.T) {
	svc := NewDocumentService(nil, nopLogger{})

	res, err := svc.Generate(context.Background(), &dto.GenerateDocumentRequest{
		Kind:     "rti",
		Query:    "pension status",
		Response: "Apply under section 6(1).",
		Language: "en-IN",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Body, "सूचना का अधिकार")
	assert.True(t, strings.HasPrefix(res.Filename, "RTI_Draft_"))
	assert.Equal(t, "This is an AI assistant. Consult a qualified lawyer for legal advice.", res.Disclaimer)
}

func TestGenerateDocumentUnknownKind(t *testing.T) {
	svc := NewDocumentService(nil, nopLogger{})

	_, err := svc.Generate(context.Background(), &dto.GenerateDocumentRequest{
		Kind:     "affidavit",
		Query:    "q",
		Response: "r",
	})
	assert.Error(t, err)
}
