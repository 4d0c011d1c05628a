package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/middleware"
	"ignite-backend/internal/service"
)

type ApplicationHandler struct {
	applicationService service.ApplicationService
}

func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	var input domain.ApplyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.CoverLetter == "" {
		return middleware.BadRequest("Cover letter is required")
	}

	applicant, err := h.applicationService.Apply(c.Context(), user, projectID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOnlyFreelancers):
			return middleware.Forbidden("Only freelancers can apply to projects")
		case errors.Is(err, service.ErrProjectNotFound):
			return middleware.NotFound("Project not found")
		case errors.Is(err, service.ErrAlreadyApplied):
			return middleware.Conflict("You have already applied to this project")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"applicant": applicant})
}

func (h *ApplicationHandler) SetApplicantStatus(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}
	applicantID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}

	var input struct {
		Status domain.ApplicantStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	applicant, err := h.applicationService.SetApplicantStatus(c.Context(), userID, projectID, applicantID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return middleware.BadRequest("Status must be accepted or rejected")
		case errors.Is(err, service.ErrProjectNotFound):
			return middleware.NotFound("Project not found")
		case errors.Is(err, service.ErrNotProjectOwner):
			return middleware.Forbidden("You do not own this project")
		case errors.Is(err, service.ErrApplicantNotFound):
			return middleware.NotFound("Applicant not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"applicant": applicant})
}

func (h *ApplicationHandler) MyApplications(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user.Role != domain.RoleFreelancer {
		return middleware.Forbidden("Only freelancers have applications")
	}

	applications, err := h.applicationService.MyApplications(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"applications": applications})
}

func (h *ApplicationHandler) AddTask(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}
	applicantID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}

	var input struct {
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Description == "" {
		return middleware.BadRequest("Task description is required")
	}

	task, err := h.applicationService.AddTask(c.Context(), userID, projectID, applicantID, input.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			return middleware.NotFound("Project not found")
		case errors.Is(err, service.ErrNotProjectOwner):
			return middleware.Forbidden("You do not own this project")
		case errors.Is(err, service.ErrApplicantNotFound):
			return middleware.NotFound("Applicant not found")
		case errors.Is(err, service.ErrTasksRequireAccepted):
			return middleware.BadRequest("Tasks can only be assigned to accepted applicants")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"task": task})
}

func (h *ApplicationHandler) ToggleTask(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}
	applicantID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return middleware.BadRequest("Invalid task ID")
	}

	var input struct {
		Completed bool `json:"completed"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	task, err := h.applicationService.ToggleTask(c.Context(), user, projectID, applicantID, taskID, input.Completed)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			return middleware.NotFound("Project not found")
		case errors.Is(err, service.ErrApplicantNotFound):
			return middleware.NotFound("Applicant not found")
		case errors.Is(err, service.ErrTaskAccessDenied):
			return middleware.Forbidden("Not allowed to modify this task")
		case errors.Is(err, service.ErrTaskNotFound):
			return middleware.NotFound("Task not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"task": task})
}

func (h *ApplicationHandler) DeleteTask(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}
	applicantID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return middleware.BadRequest("Invalid task ID")
	}

	if err := h.applicationService.DeleteTask(c.Context(), userID, projectID, applicantID, taskID); err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			return middleware.NotFound("Project not found")
		case errors.Is(err, service.ErrNotProjectOwner):
			return middleware.Forbidden("You do not own this project")
		case errors.Is(err, service.ErrApplicantNotFound):
			return middleware.NotFound("Applicant not found")
		case errors.Is(err, service.ErrTaskNotFound):
			return middleware.NotFound("Task not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Task deleted successfully",
	})
}

func (h *ApplicationHandler) SubmitWork(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	var input domain.SubmitWorkInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	submission, err := h.applicationService.SubmitWork(c.Context(), user, projectID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionIncomplete):
			return middleware.BadRequest("Message and GitHub URL are required")
		case errors.Is(err, service.ErrProjectNotFound):
			return middleware.NotFound("Project not found")
		case errors.Is(err, service.ErrNotAcceptedApplicant):
			return middleware.Forbidden("Only accepted applicants can submit work")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"submission": submission})
}

func (h *ApplicationHandler) ReviewSubmission(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}
	submissionID, err := uuid.Parse(c.Params("submissionId"))
	if err != nil {
		return middleware.BadRequest("Invalid submission ID")
	}

	var input struct {
		Status   domain.SubmissionStatus `json:"status"`
		Feedback *string                 `json:"feedback"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	submission, err := h.applicationService.ReviewSubmission(c.Context(), userID, projectID, submissionID, input.Status, input.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return middleware.BadRequest("Status must be approved or changes_requested")
		case errors.Is(err, service.ErrFeedbackRequired):
			return middleware.BadRequest("Feedback is required when requesting changes")
		case errors.Is(err, service.ErrProjectNotFound):
			return middleware.NotFound("Project not found")
		case errors.Is(err, service.ErrNotProjectOwner):
			return middleware.Forbidden("You do not own this project")
		case errors.Is(err, service.ErrSubmissionNotFound):
			return middleware.NotFound("Submission not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"submission": submission})
}
