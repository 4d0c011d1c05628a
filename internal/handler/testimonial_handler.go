package handler

import (
	"github.com/gofiber/fiber/v2"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/middleware"
	"ignite-backend/internal/service"
)

type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

func (h *TestimonialHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateTestimonialInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" || input.Role == "" || input.Quote == "" {
		return middleware.BadRequest("Name, role and quote are required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return middleware.BadRequest("Rating must be between 1 and 5")
	}

	testimonial, err := h.testimonialService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"testimonial": testimonial,
		"message":     "Thank you! Your testimonial is pending review.",
	})
}

func (h *TestimonialHandler) ListVisible(c *fiber.Ctx) error {
	testimonials, err := h.testimonialService.ListVisible(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"testimonials": testimonials})
}
