package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/repository"
)

var (
	ErrOnlyFreelancers      = errors.New("only freelancers can perform this action")
	ErrAlreadyApplied       = errors.New("you have already applied to this project")
	ErrApplicantNotFound    = errors.New("applicant not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrFeedbackRequired     = errors.New("feedback is required when requesting changes")
	ErrTasksRequireAccepted = errors.New("tasks can only be assigned to accepted applicants")
	ErrNotAcceptedApplicant = errors.New("only accepted applicants can submit work")
	ErrSubmissionIncomplete = errors.New("message and github url are required")
	ErrTaskAccessDenied     = errors.New("not allowed to modify this task")
)

// ApplicationService drives the applicant, task and submission state machines
// that live under a project.
type ApplicationService interface {
	Apply(ctx context.Context, caller *domain.User, projectID uuid.UUID, input domain.ApplyInput) (*domain.Applicant, error)
	SetApplicantStatus(ctx context.Context, callerID uuid.UUID, projectID, applicantID uuid.UUID, status domain.ApplicantStatus) (*domain.Applicant, error)
	AdminSetApplicantStatus(ctx context.Context, projectID, applicantID uuid.UUID, status domain.ApplicantStatus) (*domain.Applicant, error)
	MyApplications(ctx context.Context, freelancerID uuid.UUID) ([]domain.ApplicationSummary, error)

	AddTask(ctx context.Context, callerID uuid.UUID, projectID, applicantID uuid.UUID, description string) (*domain.Task, error)
	ToggleTask(ctx context.Context, caller *domain.User, projectID, applicantID, taskID uuid.UUID, completed bool) (*domain.Task, error)
	DeleteTask(ctx context.Context, callerID uuid.UUID, projectID, applicantID, taskID uuid.UUID) error

	SubmitWork(ctx context.Context, caller *domain.User, projectID uuid.UUID, input domain.SubmitWorkInput) (*domain.Submission, error)
	ReviewSubmission(ctx context.Context, callerID uuid.UUID, projectID, submissionID uuid.UUID, status domain.SubmissionStatus, feedback *string) (*domain.Submission, error)
}

type applicationService struct {
	projectRepo    repository.ProjectRepository
	applicantRepo  repository.ApplicantRepository
	taskRepo       repository.TaskRepository
	submissionRepo repository.SubmissionRepository
	notifSvc       NotificationService
}

func NewApplicationService(
	projectRepo repository.ProjectRepository,
	applicantRepo repository.ApplicantRepository,
	taskRepo repository.TaskRepository,
	submissionRepo repository.SubmissionRepository,
	notifSvc NotificationService,
) ApplicationService {
	return &applicationService{
		projectRepo:    projectRepo,
		applicantRepo:  applicantRepo,
		taskRepo:       taskRepo,
		submissionRepo: submissionRepo,
		notifSvc:       notifSvc,
	}
}

func (s *applicationService) Apply(ctx context.Context, caller *domain.User, projectID uuid.UUID, input domain.ApplyInput) (*domain.Applicant, error) {
	if caller.Role != domain.RoleFreelancer {
		return nil, ErrOnlyFreelancers
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	exists, err := s.applicantRepo.ExistsByProjectAndFreelancer(ctx, projectID, caller.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	applicant := &domain.Applicant{
		ID:           uuid.New(),
		ProjectID:    projectID,
		FreelancerID: caller.ID,
		CoverLetter:  input.CoverLetter,
		Status:       domain.ApplicantPending,
	}

	if err := s.applicantRepo.Create(ctx, applicant); err != nil {
		return nil, err
	}

	s.notifSvc.NotifyNewApplicant(ctx, project.ClientID, project.ID, project.Title)

	return applicant, nil
}

// SetApplicantStatus is the project owner's accept/reject decision. It is an
// idempotent overwrite: re-sending the same decision, or reversing an earlier
// one, simply writes the new value and fires a fresh notification.
func (s *applicationService) SetApplicantStatus(ctx context.Context, callerID uuid.UUID, projectID, applicantID uuid.UUID, status domain.ApplicantStatus) (*domain.Applicant, error) {
	if !status.IsDecision() {
		return nil, ErrInvalidStatus
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if project.ClientID != callerID {
		return nil, ErrNotProjectOwner
	}

	return s.setStatus(ctx, project, applicantID, status, true)
}

// AdminSetApplicantStatus accepts any valid status, including moving an
// applicant back to pending. No notification is sent for admin overrides.
func (s *applicationService) AdminSetApplicantStatus(ctx context.Context, projectID, applicantID uuid.UUID, status domain.ApplicantStatus) (*domain.Applicant, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	return s.setStatus(ctx, project, applicantID, status, false)
}

func (s *applicationService) setStatus(ctx context.Context, project *domain.Project, applicantID uuid.UUID, status domain.ApplicantStatus, notify bool) (*domain.Applicant, error) {
	applicant, err := s.applicantRepo.GetByID(ctx, project.ID, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrApplicantNotFound
	}

	if err := s.applicantRepo.UpdateStatus(ctx, applicant.ID, status); err != nil {
		return nil, err
	}
	applicant.Status = status

	if notify {
		s.notifSvc.NotifyApplicationStatus(ctx, applicant.FreelancerID, project.Title, status)
	}

	return applicant, nil
}

// MyApplications builds the freelancer's application-centric view: one entry
// per project applied to, with that project's tasks and the latest submission.
// Feedback on the latest submission comes from the newest submission that has
// any; after a resubmission that the client has not reviewed yet, this shows
// the previous round's feedback alongside the new pending status.
func (s *applicationService) MyApplications(ctx context.Context, freelancerID uuid.UUID) ([]domain.ApplicationSummary, error) {
	projects, err := s.projectRepo.ListByApplicant(ctx, freelancerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ApplicationSummary, 0, len(projects))
	for i := range projects {
		project := &projects[i]

		applicant, err := s.applicantRepo.GetByProjectAndFreelancer(ctx, project.ID, freelancerID)
		if err != nil {
			return nil, err
		}
		if applicant == nil {
			continue
		}

		tasks, err := s.taskRepo.ListByApplicant(ctx, applicant.ID)
		if err != nil {
			return nil, err
		}

		submissions, err := s.submissionRepo.ListByProjectAndFreelancer(ctx, project.ID, freelancerID)
		if err != nil {
			return nil, err
		}

		summary := domain.ApplicationSummary{
			ApplicationID:      applicant.ID,
			ProjectID:          project.ID,
			ProjectTitle:       project.Title,
			ProjectDescription: project.Description,
			Status:             applicant.Status,
			HasSubmitted:       len(submissions) > 0,
			Tasks:              tasks,
			AppliedAt:          applicant.AppliedAt,
		}

		if len(submissions) > 0 {
			latest := submissions[0]
			view := &domain.SubmissionView{
				ID:          latest.ID,
				Status:      latest.Status,
				SubmittedAt: latest.SubmittedAt,
			}
			for _, sub := range submissions {
				if sub.ClientFeedback != nil {
					view.ClientFeedback = sub.ClientFeedback
					break
				}
			}
			summary.Submission = view
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *applicationService) AddTask(ctx context.Context, callerID uuid.UUID, projectID, applicantID uuid.UUID, description string) (*domain.Task, error) {
	project, applicant, err := s.ownedApplicant(ctx, callerID, projectID, applicantID)
	if err != nil {
		return nil, err
	}

	if applicant.Status != domain.ApplicantAccepted {
		return nil, ErrTasksRequireAccepted
	}

	task := &domain.Task{
		ID:          uuid.New(),
		ApplicantID: applicant.ID,
		Description: description,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.notifSvc.NotifyNewTask(ctx, applicant.FreelancerID, project.Title)

	return task, nil
}

// ToggleTask may be called by the project owner or by the freelancer the task
// belongs to; both sides of the engagement track completion.
func (s *applicationService) ToggleTask(ctx context.Context, caller *domain.User, projectID, applicantID, taskID uuid.UUID, completed bool) (*domain.Task, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	applicant, err := s.applicantRepo.GetByID(ctx, projectID, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrApplicantNotFound
	}

	if project.ClientID != caller.ID && applicant.FreelancerID != caller.ID {
		return nil, ErrTaskAccessDenied
	}

	task, err := s.taskRepo.GetByID(ctx, applicant.ID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if err := s.taskRepo.SetCompleted(ctx, task.ID, completed); err != nil {
		return nil, err
	}
	task.Completed = completed

	return task, nil
}

func (s *applicationService) DeleteTask(ctx context.Context, callerID uuid.UUID, projectID, applicantID, taskID uuid.UUID) error {
	_, applicant, err := s.ownedApplicant(ctx, callerID, projectID, applicantID)
	if err != nil {
		return err
	}

	task, err := s.taskRepo.GetByID(ctx, applicant.ID, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	return s.taskRepo.Delete(ctx, task.ID)
}

// SubmitWork appends a new submission; earlier rounds are kept, so the
// project's submission list is the full back-and-forth history.
func (s *applicationService) SubmitWork(ctx context.Context, caller *domain.User, projectID uuid.UUID, input domain.SubmitWorkInput) (*domain.Submission, error) {
	if input.Message == "" || input.GithubURL == "" {
		return nil, ErrSubmissionIncomplete
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	accepted, err := s.applicantRepo.IsAccepted(ctx, projectID, caller.ID)
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, ErrNotAcceptedApplicant
	}

	submission := &domain.Submission{
		ID:           uuid.New(),
		ProjectID:    projectID,
		FreelancerID: caller.ID,
		Message:      input.Message,
		GithubURL:    input.GithubURL,
		Link:         input.Link,
		Status:       domain.SubmissionPending,
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	s.notifSvc.NotifyWorkSubmitted(ctx, project.ClientID, project.Title)

	return submission, nil
}

func (s *applicationService) ReviewSubmission(ctx context.Context, callerID uuid.UUID, projectID, submissionID uuid.UUID, status domain.SubmissionStatus, feedback *string) (*domain.Submission, error) {
	if !status.IsReview() {
		return nil, ErrInvalidStatus
	}
	if status == domain.SubmissionChangesRequested && (feedback == nil || *feedback == "") {
		return nil, ErrFeedbackRequired
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if project.ClientID != callerID {
		return nil, ErrNotProjectOwner
	}

	submission, err := s.submissionRepo.GetByID(ctx, projectID, submissionID)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrSubmissionNotFound
	}

	if err := s.submissionRepo.UpdateReview(ctx, submission.ID, status, feedback); err != nil {
		return nil, err
	}
	submission.Status = status
	if feedback != nil {
		submission.ClientFeedback = feedback
	}

	s.notifSvc.NotifySubmissionReviewed(ctx, submission.FreelancerID, project.Title, status)

	return submission, nil
}

func (s *applicationService) ownedApplicant(ctx context.Context, callerID uuid.UUID, projectID, applicantID uuid.UUID) (*domain.Project, *domain.Applicant, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	if project == nil {
		return nil, nil, ErrProjectNotFound
	}
	if project.ClientID != callerID {
		return nil, nil, ErrNotProjectOwner
	}

	applicant, err := s.applicantRepo.GetByID(ctx, projectID, applicantID)
	if err != nil {
		return nil, nil, err
	}
	if applicant == nil {
		return nil, nil, ErrApplicantNotFound
	}

	return project, applicant, nil
}
