package controller

import "github.com/gofiber/fiber/v2"

// pagesController serves the fixed category pages. One path, one template,
// no data.
type IPagesController interface {
	RegisterRoutes(r fiber.Router)
}

type pagesController struct{}

func NewPagesController() IPagesController {
	return &pagesController{}
}

func (c *pagesController) RegisterRoutes(r fiber.Router) {
	r.Get("/gallery", c.render("gallery"))
	r.Get("/gallery/wedding", c.render("wedding"))
	r.Get("/gallery/baby", c.render("baby"))
}

func (c *pagesController) render(view string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.Render(view, fiber.Map{})
	}
}
