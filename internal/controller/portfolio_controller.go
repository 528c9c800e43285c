package controller

import (
	"photo-portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPortfolioController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	ListShots(ctx *fiber.Ctx) error
}

type portfolioController struct {
	service service.IPortfolioService
}

func NewPortfolioController(service service.IPortfolioService) IPortfolioController {
	return &portfolioController{service: service}
}

func (c *portfolioController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	r.Get("/api/shots", c.ListShots)
}

func (c *portfolioController) Home(ctx *fiber.Ctx) error {
	res, err := c.service.HomeView(ctx.Context())
	if err != nil {
		return err
	}

	// Flash travels via query params; Fiber has no session-backed flash.
	return ctx.Render("index", fiber.Map{
		"Photographer":  res.Photographer,
		"Shots":         res.Shots,
		"FlashMessage":  ctx.Query("status"),
		"FlashCategory": ctx.Query("category"),
	})
}

func (c *portfolioController) ListShots(ctx *fiber.Ctx) error {
	res, err := c.service.ListShots(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
