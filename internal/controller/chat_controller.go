package controller

import (
	"errors"

	"github.com/Shravansapate/legislate-voice-aid/internal/dto"
	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/serverutils"
	"github.com/Shravansapate/legislate-voice-aid/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	SeedSession(ctx *fiber.Ctx) error
	StopSpeech(ctx *fiber.Ctx) error
	QuickReply(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("session", c.CreateSession)
	h.Get("session/:id", c.GetSession)
	h.Post("session/:id/message", c.SendMessage)
	h.Post("session/:id/seed", c.SeedSession)
	h.Post("session/:id/speech/stop", c.StopSpeech)
	h.Post("quick", c.QuickReply)
}

// mapChatError turns service sentinels into HTTP statuses; anything else
// bubbles to the error handler as a 500.
func mapChatError(err error) error {
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmptyMessage):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrReplyInFlight):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}

func parseConversationID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid conversation id")
	}
	return id, nil
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateConversationRequest
	if err := ctx.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return err
	}

	res, err := c.chatService.CreateConversation(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create conversation", res))
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	id, err := parseConversationID(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.GetTranscript(ctx.Context(), id)
	if err != nil {
		return mapChatError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get transcript", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	id, err := parseConversationID(ctx)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), id, &req)
	if err != nil {
		return mapChatError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) SeedSession(ctx *fiber.Ctx) error {
	id, err := parseConversationID(ctx)
	if err != nil {
		return err
	}

	var req dto.SeedConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SeedFromScan(ctx.Context(), id, &req)
	if err != nil {
		return mapChatError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success seed conversation", res))
}

func (c *chatController) StopSpeech(ctx *fiber.Ctx) error {
	id, err := parseConversationID(ctx)
	if err != nil {
		return err
	}

	if err := c.chatService.StopSpeech(ctx.Context(), id); err != nil {
		return mapChatError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success stop speech", nil))
}

func (c *chatController) QuickReply(ctx *fiber.Ctx) error {
	var req dto.QuickReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.QuickReply(ctx.Context(), &req)
	if err != nil {
		return mapChatError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success quick reply", res))
}
