package controller

import (
	"github.com/Shravansapate/legislate-voice-aid/internal/dto"
	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/serverutils"
	"github.com/Shravansapate/legislate-voice-aid/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	GetSpeechKey(ctx *fiber.Ctx) error
	SetSpeechKey(ctx *fiber.Ctx) error
	DeleteSpeechKey(ctx *fiber.Ctx) error
}

type settingsController struct {
	settingsService service.ISettingsService
}

func NewSettingsController(settingsService service.ISettingsService) ISettingsController {
	return &settingsController{
		settingsService: settingsService,
	}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/settings/v1")
	h.Get("speech-key", c.GetSpeechKey)
	h.Put("speech-key", c.SetSpeechKey)
	h.Delete("speech-key", c.DeleteSpeechKey)
}

func (c *settingsController) GetSpeechKey(ctx *fiber.Ctx) error {
	res, err := c.settingsService.GetSpeechKeyStatus(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get speech key status", res))
}

func (c *settingsController) SetSpeechKey(ctx *fiber.Ctx) error {
	var req dto.SetSpeechKeyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.settingsService.SetSpeechKey(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success set speech key", nil))
}

func (c *settingsController) DeleteSpeechKey(ctx *fiber.Ctx) error {
	if err := c.settingsService.ClearSpeechKey(ctx.Context()); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete speech key", nil))
}
