package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/middleware"
	"ignite-backend/internal/service"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	var input domain.CreateProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Title == "" || input.Description == "" {
		return middleware.BadRequest("Title and description are required")
	}

	project, err := h.projectService.Create(c.Context(), user, input)
	if err != nil {
		if errors.Is(err, service.ErrOnlyClients) {
			return middleware.Forbidden("Only clients can create projects")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"project": project})
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.projectService.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"projects": projects})
}

// Get serves the project detail page. Authentication is optional here; a
// logged-in accepted applicant sees the client's contact details.
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	viewer := middleware.GetCurrentUser(c)

	project, err := h.projectService.Get(c.Context(), id, viewer)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"project": project})
}

func (h *ProjectHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	projects, err := h.projectService.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"projects": projects})
}

func (h *ProjectHandler) MyProjects(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	projects, err := h.projectService.MyProjects(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"projects": projects})
}

func (h *ProjectHandler) Applications(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	project, err := h.projectService.Applications(c.Context(), user, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOnlyClients):
			return middleware.Forbidden("Only clients can view applications")
		case errors.Is(err, service.ErrProjectNotFound):
			return middleware.NotFound("Project not found")
		case errors.Is(err, service.ErrNotProjectOwner):
			return middleware.Forbidden("You do not own this project")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"project":    project,
		"applicants": project.Applicants,
	})
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	var input domain.UpdateProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	project, err := h.projectService.Update(c.Context(), userID, id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			return middleware.NotFound("Project not found")
		case errors.Is(err, service.ErrNotProjectOwner):
			return middleware.Forbidden("You do not own this project")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"project": project})
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	if err := h.projectService.Delete(c.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			return middleware.NotFound("Project not found")
		case errors.Is(err, service.ErrNotProjectOwner):
			return middleware.Forbidden("You do not own this project")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Project deleted successfully",
	})
}
