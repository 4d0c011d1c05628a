package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/repository"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNotProjectOwner = errors.New("not the project owner")
	ErrOnlyClients     = errors.New("only clients can perform this action")
)

type ProjectService interface {
	Create(ctx context.Context, caller *domain.User, input domain.CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, projectID uuid.UUID, viewer *domain.User) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	MyProjects(ctx context.Context, clientID uuid.UUID) ([]domain.Project, error)
	Applications(ctx context.Context, caller *domain.User, projectID uuid.UUID) (*domain.Project, error)
	Update(ctx context.Context, callerID uuid.UUID, projectID uuid.UUID, input domain.UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, callerID uuid.UUID, projectID uuid.UUID) error
}

type projectService struct {
	projectRepo    repository.ProjectRepository
	applicantRepo  repository.ApplicantRepository
	taskRepo       repository.TaskRepository
	submissionRepo repository.SubmissionRepository
	userRepo       repository.UserRepository
	notifSvc       NotificationService
}

func NewProjectService(
	projectRepo repository.ProjectRepository,
	applicantRepo repository.ApplicantRepository,
	taskRepo repository.TaskRepository,
	submissionRepo repository.SubmissionRepository,
	userRepo repository.UserRepository,
	notifSvc NotificationService,
) ProjectService {
	return &projectService{
		projectRepo:    projectRepo,
		applicantRepo:  applicantRepo,
		taskRepo:       taskRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		notifSvc:       notifSvc,
	}
}

func (s *projectService) Create(ctx context.Context, caller *domain.User, input domain.CreateProjectInput) (*domain.Project, error) {
	if caller.Role != domain.RoleClient {
		return nil, ErrOnlyClients
	}

	project := &domain.Project{
		ID:             uuid.New(),
		ClientID:       caller.ID,
		Title:          input.Title,
		Description:    input.Description,
		SkillsRequired: input.SkillsRequired,
		ProjectType:    input.ProjectType,
		Deadline:       input.Deadline,
		ImageURL:       input.ImageURL,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Get returns the full project aggregate. The owning client's contact fields
// (email, LinkedIn) are included only when the viewer is an accepted
// applicant on this project; anonymous and non-accepted viewers get the
// reduced projection.
func (s *projectService) Get(ctx context.Context, projectID uuid.UUID, viewer *domain.User) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if err := s.loadAggregate(ctx, project, false); err != nil {
		return nil, err
	}

	revealContact := false
	if viewer != nil {
		for _, applicant := range project.Applicants {
			if applicant.FreelancerID == viewer.ID && applicant.Status == domain.ApplicantAccepted {
				revealContact = true
				break
			}
		}
	}

	client, err := s.userRepo.GetByID(ctx, project.ClientID)
	if err != nil {
		return nil, err
	}
	if client != nil {
		project.Client = domain.NewClientInfo(client, revealContact)
	}

	return project, nil
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.attachClientInfo(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *projectService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	return s.projectRepo.ListByClient(ctx, userID)
}

func (s *projectService) MyProjects(ctx context.Context, clientID uuid.UUID) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if err := s.loadAggregate(ctx, &projects[i], true); err != nil {
			return nil, err
		}
	}

	if err := s.attachClientInfo(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *projectService) Applications(ctx context.Context, caller *domain.User, projectID uuid.UUID) (*domain.Project, error) {
	if caller.Role != domain.RoleClient {
		return nil, ErrOnlyClients
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if project.ClientID != caller.ID {
		return nil, ErrNotProjectOwner
	}

	if err := s.loadAggregate(ctx, project, true); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, callerID uuid.UUID, projectID uuid.UUID, input domain.UpdateProjectInput) (*domain.Project, error) {
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

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.SkillsRequired != nil {
		project.SkillsRequired = input.SkillsRequired
	}
	if input.ProjectType != nil {
		project.ProjectType = *input.ProjectType
	}
	if input.Deadline != nil {
		project.Deadline = input.Deadline
	}
	if input.ImageURL != nil {
		project.ImageURL = input.ImageURL
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete notifies every current applicant before the project rows go away.
// The two writes are not transactional with each other; a failure after the
// notifications leaves them pointing at a gone project.
func (s *projectService) Delete(ctx context.Context, callerID uuid.UUID, projectID uuid.UUID) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}

	if project.ClientID != callerID {
		return ErrNotProjectOwner
	}

	applicants, err := s.applicantRepo.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}

	applicantIDs := make([]uuid.UUID, len(applicants))
	for i, applicant := range applicants {
		applicantIDs[i] = applicant.FreelancerID
	}
	s.notifSvc.NotifyProjectDeleted(ctx, applicantIDs, project.Title)

	return s.projectRepo.Delete(ctx, projectID)
}

// loadAggregate attaches applicants (with tasks) and submissions to the
// project. When withUsers is set, freelancer profiles are attached to both.
func (s *projectService) loadAggregate(ctx context.Context, project *domain.Project, withUsers bool) error {
	applicants, err := s.applicantRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return err
	}

	applicantIDs := make([]uuid.UUID, len(applicants))
	for i := range applicants {
		applicantIDs[i] = applicants[i].ID
	}

	tasks, err := s.taskRepo.ListByApplicants(ctx, applicantIDs)
	if err != nil {
		return err
	}

	tasksByApplicant := make(map[uuid.UUID][]domain.Task)
	for _, task := range tasks {
		tasksByApplicant[task.ApplicantID] = append(tasksByApplicant[task.ApplicantID], task)
	}
	for i := range applicants {
		applicants[i].Tasks = tasksByApplicant[applicants[i].ID]
	}

	submissions, err := s.submissionRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return err
	}

	if withUsers {
		userIDs := make([]uuid.UUID, 0, len(applicants)+len(submissions))
		for i := range applicants {
			userIDs = append(userIDs, applicants[i].FreelancerID)
		}
		for i := range submissions {
			userIDs = append(userIDs, submissions[i].FreelancerID)
		}

		users, err := s.userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			return err
		}

		usersByID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			usersByID[users[i].ID] = &users[i]
		}
		for i := range applicants {
			applicants[i].Freelancer = usersByID[applicants[i].FreelancerID]
		}
		for i := range submissions {
			submissions[i].Freelancer = usersByID[submissions[i].FreelancerID]
		}
	}

	project.Applicants = applicants
	project.Submissions = submissions
	return nil
}

func (s *projectService) attachClientInfo(ctx context.Context, projects []domain.Project) error {
	if len(projects) == 0 {
		return nil
	}

	clientIDs := make([]uuid.UUID, len(projects))
	for i := range projects {
		clientIDs[i] = projects[i].ClientID
	}

	clients, err := s.userRepo.GetByIDs(ctx, clientIDs)
	if err != nil {
		return err
	}

	clientsByID := make(map[uuid.UUID]*domain.User, len(clients))
	for i := range clients {
		clientsByID[clients[i].ID] = &clients[i]
	}

	for i := range projects {
		if client := clientsByID[projects[i].ClientID]; client != nil {
			projects[i].Client = domain.NewClientInfo(client, false)
		}
	}
	return nil
}
