package controller

import (
	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/serverutils"
	"github.com/Shravansapate/legislate-voice-aid/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INgoController interface {
	RegisterRoutes(r fiber.Router)
	GetDirectory(ctx *fiber.Ctx) error
	GetRegions(ctx *fiber.Ctx) error
	GetHelplines(ctx *fiber.Ctx) error
}

type ngoController struct {
	ngoService service.INgoService
}

func NewNgoController(ngoService service.INgoService) INgoController {
	return &ngoController{
		ngoService: ngoService,
	}
}

func (c *ngoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ngo/v1")
	h.Get("directory", c.GetDirectory)
	h.Get("regions", c.GetRegions)
	h.Get("helplines", c.GetHelplines)
}

func (c *ngoController) GetDirectory(ctx *fiber.Ctx) error {
	region := ctx.Query("region", "all")
	language := ctx.Query("language", "")

	res, err := c.ngoService.ListNgos(ctx.Context(), region, language)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get directory", res))
}

func (c *ngoController) GetRegions(ctx *fiber.Ctx) error {
	language := ctx.Query("language", "")
	res := c.ngoService.ListRegions(ctx.Context(), language)
	return ctx.JSON(serverutils.SuccessResponse("Success get regions", res))
}

func (c *ngoController) GetHelplines(ctx *fiber.Ctx) error {
	language := ctx.Query("language", "")
	res := c.ngoService.ListHelplines(ctx.Context(), language)
	return ctx.JSON(serverutils.SuccessResponse("Success get helplines", res))
}
