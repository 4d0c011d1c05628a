package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ignite-backend/internal/domain"
)

type projectFixture struct {
	projectRepo    *mockProjectRepository
	applicantRepo  *mockApplicantRepository
	taskRepo       *mockTaskRepository
	submissionRepo *mockSubmissionRepository
	userRepo       *mockUserRepository
	notifSvc       *mockNotificationService
	svc            ProjectService
}

func newProjectFixture() *projectFixture {
	f := &projectFixture{
		projectRepo:    new(mockProjectRepository),
		applicantRepo:  new(mockApplicantRepository),
		taskRepo:       new(mockTaskRepository),
		submissionRepo: new(mockSubmissionRepository),
		userRepo:       new(mockUserRepository),
		notifSvc:       new(mockNotificationService),
	}
	f.svc = NewProjectService(f.projectRepo, f.applicantRepo, f.taskRepo, f.submissionRepo, f.userRepo, f.notifSvc)
	return f
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	input := domain.CreateProjectInput{
		Title:          "Landing Page",
		Description:    "Marketing site",
		SkillsRequired: []string{"React"},
	}

	t.Run("Success", func(t *testing.T) {
		f := newProjectFixture()
		client := &domain.User{ID: uuid.New(), Role: domain.RoleClient}

		f.projectRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Project) bool {
			return p.ClientID == client.ID && p.Title == input.Title && !p.Featured
		})).Return(nil).Once()

		project, err := f.svc.Create(ctx, client, input)

		assert.NoError(t, err)
		assert.Equal(t, client.ID, project.ClientID)
	})

	t.Run("Freelancer Forbidden", func(t *testing.T) {
		f := newProjectFixture()
		freelancer := &domain.User{ID: uuid.New(), Role: domain.RoleFreelancer}

		project, err := f.svc.Create(ctx, freelancer, input)

		assert.Nil(t, project)
		assert.ErrorIs(t, err, ErrOnlyClients)
	})
}

func TestProjectService_Get_ContactReveal(t *testing.T) {
	ctx := context.Background()

	client := &domain.User{
		ID:          uuid.New(),
		Name:        "Grace",
		Email:       "grace@example.com",
		LinkedinURL: "https://linkedin.com/in/grace",
		Role:        domain.RoleClient,
	}
	project := &domain.Project{ID: uuid.New(), ClientID: client.ID, Title: "Dashboard"}
	acceptedViewer := &domain.User{ID: uuid.New(), Role: domain.RoleFreelancer}
	pendingViewer := &domain.User{ID: uuid.New(), Role: domain.RoleFreelancer}

	applicants := []domain.Applicant{
		{ID: uuid.New(), ProjectID: project.ID, FreelancerID: acceptedViewer.ID, Status: domain.ApplicantAccepted},
		{ID: uuid.New(), ProjectID: project.ID, FreelancerID: pendingViewer.ID, Status: domain.ApplicantPending},
	}

	setup := func(f *projectFixture) {
		proj := *project
		f.projectRepo.On("GetByID", ctx, project.ID).Return(&proj, nil).Once()
		f.applicantRepo.On("ListByProject", ctx, project.ID).Return(applicants, nil).Once()
		f.taskRepo.On("ListByApplicants", ctx, mock.Anything).Return([]domain.Task{}, nil).Once()
		f.submissionRepo.On("ListByProject", ctx, project.ID).Return([]domain.Submission{}, nil).Once()
		f.userRepo.On("GetByID", ctx, client.ID).Return(client, nil).Once()
	}

	t.Run("Accepted Applicant Sees Contact", func(t *testing.T) {
		f := newProjectFixture()
		setup(f)

		got, err := f.svc.Get(ctx, project.ID, acceptedViewer)

		assert.NoError(t, err)
		assert.Equal(t, client.Email, got.Client.Email)
		assert.Equal(t, client.LinkedinURL, got.Client.Linkedin)
	})

	t.Run("Pending Applicant Sees Reduced Info", func(t *testing.T) {
		f := newProjectFixture()
		setup(f)

		got, err := f.svc.Get(ctx, project.ID, pendingViewer)

		assert.NoError(t, err)
		assert.Empty(t, got.Client.Email)
		assert.Empty(t, got.Client.Linkedin)
		assert.Equal(t, client.Name, got.Client.Name)
	})

	t.Run("Anonymous Viewer Sees Reduced Info", func(t *testing.T) {
		f := newProjectFixture()
		setup(f)

		got, err := f.svc.Get(ctx, project.ID, nil)

		assert.NoError(t, err)
		assert.Empty(t, got.Client.Email)
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newProjectFixture()
		f.projectRepo.On("GetByID", ctx, project.ID).Return(nil, nil).Once()

		_, err := f.svc.Get(ctx, project.ID, nil)

		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()

	clientID := uuid.New()
	project := &domain.Project{ID: uuid.New(), ClientID: clientID, Title: "Old Title", Description: "Old"}

	t.Run("Partial Update", func(t *testing.T) {
		f := newProjectFixture()

		proj := *project
		f.projectRepo.On("GetByID", ctx, project.ID).Return(&proj, nil).Once()
		f.projectRepo.On("Update", ctx, mock.MatchedBy(func(p *domain.Project) bool {
			return p.Title == "New Title" && p.Description == "Old"
		})).Return(nil).Once()

		got, err := f.svc.Update(ctx, clientID, project.ID, domain.UpdateProjectInput{Title: stringPtr("New Title")})

		assert.NoError(t, err)
		assert.Equal(t, "New Title", got.Title)
	})

	t.Run("Non-Owner Forbidden", func(t *testing.T) {
		f := newProjectFixture()

		proj := *project
		f.projectRepo.On("GetByID", ctx, project.ID).Return(&proj, nil).Once()

		_, err := f.svc.Update(ctx, uuid.New(), project.ID, domain.UpdateProjectInput{})

		assert.ErrorIs(t, err, ErrNotProjectOwner)
		f.projectRepo.AssertNotCalled(t, "Update")
	})
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()

	clientID := uuid.New()
	project := &domain.Project{ID: uuid.New(), ClientID: clientID, Title: "Doomed Project"}

	t.Run("Notifies Applicants Then Deletes", func(t *testing.T) {
		f := newProjectFixture()

		freelancerA := uuid.New()
		freelancerB := uuid.New()
		applicants := []domain.Applicant{
			{ID: uuid.New(), FreelancerID: freelancerA},
			{ID: uuid.New(), FreelancerID: freelancerB},
		}

		f.projectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()
		f.applicantRepo.On("ListByProject", ctx, project.ID).Return(applicants, nil).Once()
		f.notifSvc.On("NotifyProjectDeleted", ctx, []uuid.UUID{freelancerA, freelancerB}, project.Title).Once()
		f.projectRepo.On("Delete", ctx, project.ID).Return(nil).Once()

		err := f.svc.Delete(ctx, clientID, project.ID)

		assert.NoError(t, err)
		f.notifSvc.AssertExpectations(t)
		f.projectRepo.AssertExpectations(t)
	})

	t.Run("Non-Owner Forbidden", func(t *testing.T) {
		f := newProjectFixture()

		f.projectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()

		err := f.svc.Delete(ctx, uuid.New(), project.ID)

		assert.ErrorIs(t, err, ErrNotProjectOwner)
		f.projectRepo.AssertNotCalled(t, "Delete")
	})
}

func TestProjectService_Applications(t *testing.T) {
	ctx := context.Background()

	client := &domain.User{ID: uuid.New(), Role: domain.RoleClient}
	freelancer := domain.User{ID: uuid.New(), Name: "Ada", Role: domain.RoleFreelancer}
	project := &domain.Project{ID: uuid.New(), ClientID: client.ID, Title: "Dashboard"}
	applicants := []domain.Applicant{
		{ID: uuid.New(), ProjectID: project.ID, FreelancerID: freelancer.ID, Status: domain.ApplicantPending},
	}

	t.Run("Attaches Freelancer Details And Tasks", func(t *testing.T) {
		f := newProjectFixture()

		task := domain.Task{ID: uuid.New(), ApplicantID: applicants[0].ID, Description: "Wireframes"}

		proj := *project
		f.projectRepo.On("GetByID", ctx, project.ID).Return(&proj, nil).Once()
		f.applicantRepo.On("ListByProject", ctx, project.ID).Return(applicants, nil).Once()
		f.taskRepo.On("ListByApplicants", ctx, []uuid.UUID{applicants[0].ID}).Return([]domain.Task{task}, nil).Once()
		f.submissionRepo.On("ListByProject", ctx, project.ID).Return([]domain.Submission{}, nil).Once()
		f.userRepo.On("GetByIDs", ctx, mock.Anything).Return([]domain.User{freelancer}, nil).Once()

		got, err := f.svc.Applications(ctx, client, project.ID)

		assert.NoError(t, err)
		assert.Len(t, got.Applicants, 1)
		assert.Equal(t, "Ada", got.Applicants[0].Freelancer.Name)
		assert.Len(t, got.Applicants[0].Tasks, 1)
	})

	t.Run("Freelancer Forbidden", func(t *testing.T) {
		f := newProjectFixture()
		caller := &domain.User{ID: freelancer.ID, Role: domain.RoleFreelancer}

		_, err := f.svc.Applications(ctx, caller, project.ID)

		assert.ErrorIs(t, err, ErrOnlyClients)
	})

	t.Run("Other Client Forbidden", func(t *testing.T) {
		f := newProjectFixture()
		other := &domain.User{ID: uuid.New(), Role: domain.RoleClient}

		proj := *project
		f.projectRepo.On("GetByID", ctx, project.ID).Return(&proj, nil).Once()

		_, err := f.svc.Applications(ctx, other, project.ID)

		assert.ErrorIs(t, err, ErrNotProjectOwner)
	})
}
