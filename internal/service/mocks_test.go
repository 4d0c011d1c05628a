package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/repository"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) CountByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) CountRegisteredSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) CountRegisteredBetween(ctx context.Context, role domain.UserRole, from, to time.Time) (int64, error) {
	args := m.Called(ctx, role, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) SetPasswordResetOTP(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, code, expiresAt)
	return args.Error(0)
}

func (m *mockUserRepository) GetByEmailAndOTP(ctx context.Context, email, code string) (*domain.User, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) ClearPasswordResetOTP(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, session *repository.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*repository.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Session), args.Error(1)
}

func (m *mockSessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSessionRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *mockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProjectRepository) DeleteByClient(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *mockProjectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *mockProjectRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Project, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *mockProjectRepository) ListByApplicant(ctx context.Context, freelancerID uuid.UUID) ([]domain.Project, error) {
	args := m.Called(ctx, freelancerID)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *mockProjectRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*domain.Project, error) {
	args := m.Called(ctx, id, featured)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

type mockApplicantRepository struct {
	mock.Mock
}

func (m *mockApplicantRepository) Create(ctx context.Context, applicant *domain.Applicant) error {
	args := m.Called(ctx, applicant)
	return args.Error(0)
}

func (m *mockApplicantRepository) GetByID(ctx context.Context, projectID, applicantID uuid.UUID) (*domain.Applicant, error) {
	args := m.Called(ctx, projectID, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *mockApplicantRepository) GetByProjectAndFreelancer(ctx context.Context, projectID, freelancerID uuid.UUID) (*domain.Applicant, error) {
	args := m.Called(ctx, projectID, freelancerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *mockApplicantRepository) ExistsByProjectAndFreelancer(ctx context.Context, projectID, freelancerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, freelancerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockApplicantRepository) IsAccepted(ctx context.Context, projectID, freelancerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, freelancerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockApplicantRepository) UpdateStatus(ctx context.Context, applicantID uuid.UUID, status domain.ApplicantStatus) error {
	args := m.Called(ctx, applicantID, status)
	return args.Error(0)
}

func (m *mockApplicantRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Applicant, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.Applicant), args.Error(1)
}

func (m *mockApplicantRepository) ListAll(ctx context.Context) ([]domain.AdminApplicant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AdminApplicant), args.Error(1)
}

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *mockTaskRepository) GetByID(ctx context.Context, applicantID, taskID uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, applicantID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskRepository) SetCompleted(ctx context.Context, taskID uuid.UUID, completed bool) error {
	args := m.Called(ctx, taskID, completed)
	return args.Error(0)
}

func (m *mockTaskRepository) Delete(ctx context.Context, taskID uuid.UUID) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *mockTaskRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, applicantID)
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *mockTaskRepository) ListByApplicants(ctx context.Context, applicantIDs []uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, applicantIDs)
	return args.Get(0).([]domain.Task), args.Error(1)
}

type mockSubmissionRepository struct {
	mock.Mock
}

func (m *mockSubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *mockSubmissionRepository) GetByID(ctx context.Context, projectID, submissionID uuid.UUID) (*domain.Submission, error) {
	args := m.Called(ctx, projectID, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *mockSubmissionRepository) UpdateReview(ctx context.Context, submissionID uuid.UUID, status domain.SubmissionStatus, feedback *string) error {
	args := m.Called(ctx, submissionID, status, feedback)
	return args.Error(0)
}

func (m *mockSubmissionRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Submission, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.Submission), args.Error(1)
}

func (m *mockSubmissionRepository) ListByProjectAndFreelancer(ctx context.Context, projectID, freelancerID uuid.UUID) ([]domain.Submission, error) {
	args := m.Called(ctx, projectID, freelancerID)
	return args.Get(0).([]domain.Submission), args.Error(1)
}

type mockNotificationRepository struct {
	mock.Mock
}

func (m *mockNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *mockNotificationRepository) CreateMany(ctx context.Context, notifications []domain.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).([]domain.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockTestimonialRepository struct {
	mock.Mock
}

func (m *mockTestimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *mockTestimonialRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Testimonial), args.Error(1)
}

func (m *mockTestimonialRepository) ListVisible(ctx context.Context, limit int) ([]domain.Testimonial, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func (m *mockTestimonialRepository) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func (m *mockTestimonialRepository) SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error {
	args := m.Called(ctx, id, visible)
	return args.Error(0)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendPasswordResetOTP(ctx context.Context, toEmail, name, otp string) error {
	args := m.Called(ctx, toEmail, name, otp)
	return args.Error(0)
}

type mockCaptchaService struct {
	mock.Mock
}

func (m *mockCaptchaService) Verify(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type mockMediaService struct {
	mock.Mock
}

func (m *mockMediaService) UploadImage(ctx context.Context, folder, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	args := m.Called(ctx, folder, fileName, fileSize, mimeType, reader)
	return args.String(0), args.Error(1)
}

type mockNotificationService struct {
	mock.Mock
}

func (m *mockNotificationService) List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}

func (m *mockNotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockNotificationService) NotifyNewApplicant(ctx context.Context, clientID, projectID uuid.UUID, projectTitle string) {
	m.Called(ctx, clientID, projectID, projectTitle)
}

func (m *mockNotificationService) NotifyApplicationStatus(ctx context.Context, freelancerID uuid.UUID, projectTitle string, status domain.ApplicantStatus) {
	m.Called(ctx, freelancerID, projectTitle, status)
}

func (m *mockNotificationService) NotifyNewTask(ctx context.Context, freelancerID uuid.UUID, projectTitle string) {
	m.Called(ctx, freelancerID, projectTitle)
}

func (m *mockNotificationService) NotifyProjectDeleted(ctx context.Context, applicantIDs []uuid.UUID, projectTitle string) {
	m.Called(ctx, applicantIDs, projectTitle)
}

func (m *mockNotificationService) NotifyWorkSubmitted(ctx context.Context, clientID uuid.UUID, projectTitle string) {
	m.Called(ctx, clientID, projectTitle)
}

func (m *mockNotificationService) NotifySubmissionReviewed(ctx context.Context, freelancerID uuid.UUID, projectTitle string, status domain.SubmissionStatus) {
	m.Called(ctx, freelancerID, projectTitle, status)
}

func stringPtr(s string) *string {
	return &s
}
