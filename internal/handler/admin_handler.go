package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/middleware"
	"ignite-backend/internal/service"
)

type AdminHandler struct {
	adminService       service.AdminService
	applicationService service.ApplicationService
}

func NewAdminHandler(adminService service.AdminService, applicationService service.ApplicationService) *AdminHandler {
	return &AdminHandler{
		adminService:       adminService,
		applicationService: applicationService,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"users": users})
}

func (h *AdminHandler) UserStats(c *fiber.Ctx) error {
	stats, err := h.adminService.GetUserStats(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"stats": stats})
}

func (h *AdminHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.adminService.ListProjects(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"projects": projects})
}

func (h *AdminHandler) ListApplicants(c *fiber.Ctx) error {
	applicants, err := h.adminService.ListApplicants(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"applicants": applicants})
}

// SetApplicantStatus is the admin override; unlike the owner route it also
// accepts "pending" to undo a decision.
func (h *AdminHandler) SetApplicantStatus(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}
	applicantID, err := uuid.Parse(c.Params("applicantId"))
	if err != nil {
		return middleware.BadRequest("Invalid applicant ID")
	}

	var input struct {
		Status domain.ApplicantStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	applicant, err := h.applicationService.AdminSetApplicantStatus(c.Context(), projectID, applicantID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return middleware.BadRequest("Invalid status")
		case errors.Is(err, service.ErrProjectNotFound):
			return middleware.NotFound("Project not found")
		case errors.Is(err, service.ErrApplicantNotFound):
			return middleware.NotFound("Applicant not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"applicant": applicant})
}

func (h *AdminHandler) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.adminService.ListTestimonials(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"testimonials": testimonials})
}

func (h *AdminHandler) SetTestimonialVisibility(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid testimonial ID")
	}

	var input struct {
		Visible bool `json:"visible"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	testimonial, err := h.adminService.SetTestimonialVisibility(c.Context(), id, input.Visible)
	if err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			return middleware.NotFound("Testimonial not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"testimonial": testimonial})
}

func (h *AdminHandler) SetProjectFeatured(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	var input struct {
		Featured bool `json:"featured"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	project, err := h.adminService.SetProjectFeatured(c.Context(), id, input.Featured)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"project": project})
}
