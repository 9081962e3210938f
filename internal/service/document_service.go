package service

import (
	"context"
	"time"

	"github.com/Shravansapate/legislate-voice-aid/internal/dto"
	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/logger"
	"github.com/Shravansapate/legislate-voice-aid/pkg/docgen"
	"github.com/Shravansapate/legislate-voice-aid/pkg/events"
	"github.com/Shravansapate/legislate-voice-aid/pkg/export"
	"github.com/Shravansapate/legislate-voice-aid/pkg/i18n"
	pktNats "github.com/Shravansapate/legislate-voice-aid/pkg/nats"
)

type IDocumentService interface {
	Generate(ctx context.Context, req *dto.GenerateDocumentRequest) (*dto.GenerateDocumentResponse, error)
}

type documentService struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewDocumentService(publisher *pktNats.Publisher, log logger.ILogger) IDocumentService {
	return &documentService{
		publisher: publisher,
		logger:    log,
	}
}

// Generate renders a draft plus all its export targets in one call. No copy
// of the draft is stored server-side.
func (ds *documentService) Generate(ctx context.Context, req *dto.GenerateDocumentRequest) (*dto.GenerateDocumentResponse, error) {
	kind, err := docgen.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	lang := i18n.Parse(req.Language)
	now := time.Now()

	doc := docgen.Render(kind, req.Query, req.Response, now)
	filename := export.Filename(kind, now)

	if ds.publisher != nil {
		if err := ds.publisher.Publish(ctx, events.NewDocumentGenerated(string(kind), filename, string(lang))); err != nil {
			ds.logger.Warn("DocumentService", "Failed to publish document event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.GenerateDocumentResponse{
		Kind:          string(kind),
		Body:          doc.Body,
		Filename:      filename,
		ShareUrl:      export.DocumentShareLink(kind, doc.Body),
		PrintHtml:     export.PrintHTML(kind, doc.Body),
		GeneratedDate: doc.GeneratedDate,
		Disclaimer:    i18n.Lookup("disclaimer", lang),
	}, nil
}
