package controller

import (
	"errors"
	"net/url"

	"photo-portfolio-be/internal/dto"
	"photo-portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInquiryController interface {
	RegisterRoutes(r fiber.Router)
	SubmitContact(ctx *fiber.Ctx) error
	SubmitSchedule(ctx *fiber.Ctx) error
	SubmitScheduleEmail(ctx *fiber.Ctx) error
}

type inquiryController struct {
	service service.IInquiryService
}

func NewInquiryController(service service.IInquiryService) IInquiryController {
	return &inquiryController{service: service}
}

func (c *inquiryController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.SubmitContact)
	r.Post("/schedule", c.SubmitSchedule)
	r.Post("/schedule/email", c.SubmitScheduleEmail)
}

func redirectWithFlash(ctx *fiber.Ctx, category, message string) error {
	target := "/?category=" + category + "&status=" + url.QueryEscape(message)
	return ctx.Redirect(target, fiber.StatusFound)
}

func (c *inquiryController) SubmitContact(ctx *fiber.Ctx) error {
	var req dto.SubmitContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return redirectWithFlash(ctx, "danger", "Please fill in all contact fields.")
	}

	_, err := c.service.SubmitContact(ctx.Context(), &req)
	if errors.Is(err, service.ErrValidation) {
		return redirectWithFlash(ctx, "danger", "Please fill in all contact fields.")
	}
	if err != nil {
		return err
	}

	return redirectWithFlash(ctx, "success", "Message received. Thank you, I will get back to you.")
}

func (c *inquiryController) SubmitSchedule(ctx *fiber.Ctx) error {
	var req dto.SubmitScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return redirectWithFlash(ctx, "danger", "Please provide name and email to schedule.")
	}

	res, err := c.service.SubmitSchedule(ctx.Context(), &req, true)
	if errors.Is(err, service.ErrValidation) {
		return redirectWithFlash(ctx, "danger", "Please provide name and email to schedule.")
	}
	if err != nil {
		return err
	}

	// The record is committed either way; a failed send only changes the flash.
	if !res.Notified {
		return redirectWithFlash(ctx, "warning", "Schedule request saved, but email notification failed.")
	}
	return redirectWithFlash(ctx, "success", "Schedule request sent. I will confirm ASAP.")
}

// SubmitScheduleEmail persists the request and then notifies the operator,
// answering with a plain-text outcome instead of a redirect.
func (c *inquiryController) SubmitScheduleEmail(ctx *fiber.Ctx) error {
	var req dto.SubmitScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString("Please provide name and email to schedule.")
	}

	res, err := c.service.SubmitSchedule(ctx.Context(), &req, true)
	if errors.Is(err, service.ErrValidation) {
		return ctx.Status(fiber.StatusBadRequest).SendString("Please provide name and email to schedule.")
	}
	if err != nil {
		return err
	}

	if !res.Notified {
		return ctx.SendString("Request saved, but email notification failed.")
	}
	return ctx.SendString("Request sent via Email!")
}
