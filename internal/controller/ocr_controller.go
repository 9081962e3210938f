package controller

import (
	"errors"
	"io"

	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/serverutils"
	"github.com/Shravansapate/legislate-voice-aid/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOcrController interface {
	RegisterRoutes(r fiber.Router)
	Extract(ctx *fiber.Ctx) error
}

type ocrController struct {
	ocrService service.IOcrService
}

func NewOcrController(ocrService service.IOcrService) IOcrController {
	return &ocrController{
		ocrService: ocrService,
	}
}

func (c *ocrController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ocr/v1")
	h.Post("extract", c.Extract)
}

func (c *ocrController) Extract(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, service.ErrOcrInvalidImage.Error())
	}

	// conversation_id ties progress frames and the completion event to an
	// open chat; scans from the standalone reader leave it out.
	conversationID := uuid.Nil
	if raw := ctx.FormValue("conversation_id"); raw != "" {
		conversationID, err = uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid conversation id")
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	contentType := fileHeader.Header.Get("Content-Type")

	res, err := c.ocrService.ExtractText(ctx.Context(), conversationID, image, fileHeader.Filename, contentType)
	if err != nil {
		return mapOcrError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success extract text", res))
}

func mapOcrError(err error) error {
	switch {
	case errors.Is(err, service.ErrOcrInvalidImage), errors.Is(err, service.ErrOcrImageTooLarge):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrOcrNoTextFound):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrOcrProcessingFailed):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return err
	}
}
