package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/repository"
)

// NotificationService creates fire-and-forget notification rows as a side
// effect of project mutations. Creation failures are logged and never fail
// the primary mutation; there is no retry and no push delivery.
type NotificationService interface {
	List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error

	NotifyNewApplicant(ctx context.Context, clientID, projectID uuid.UUID, projectTitle string)
	NotifyApplicationStatus(ctx context.Context, freelancerID uuid.UUID, projectTitle string, status domain.ApplicantStatus)
	NotifyNewTask(ctx context.Context, freelancerID uuid.UUID, projectTitle string)
	NotifyProjectDeleted(ctx context.Context, applicantIDs []uuid.UUID, projectTitle string)
	NotifyWorkSubmitted(ctx context.Context, clientID uuid.UUID, projectTitle string)
	NotifySubmissionReviewed(ctx context.Context, freelancerID uuid.UUID, projectTitle string, status domain.SubmissionStatus)
}

type notificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notifRepo: notifRepo}
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) create(ctx context.Context, userID uuid.UUID, message string, link *string) {
	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Message: message,
		Link:    link,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		log.Printf("Failed to create notification for user %s: %v", userID, err)
	}
}

func (s *notificationService) NotifyNewApplicant(ctx context.Context, clientID, projectID uuid.UUID, projectTitle string) {
	link := fmt.Sprintf("/projects/%s/applicants", projectID)
	message := fmt.Sprintf("You have a new applicant for your project %q.", projectTitle)
	s.create(ctx, clientID, message, &link)
}

func (s *notificationService) NotifyApplicationStatus(ctx context.Context, freelancerID uuid.UUID, projectTitle string, status domain.ApplicantStatus) {
	link := "/my-applications"
	message := fmt.Sprintf("Your application for the project %q has been %s.", projectTitle, status)
	s.create(ctx, freelancerID, message, &link)
}

func (s *notificationService) NotifyNewTask(ctx context.Context, freelancerID uuid.UUID, projectTitle string) {
	link := "/my-applications"
	message := fmt.Sprintf("You have a new task for the project %q.", projectTitle)
	s.create(ctx, freelancerID, message, &link)
}

func (s *notificationService) NotifyProjectDeleted(ctx context.Context, applicantIDs []uuid.UUID, projectTitle string) {
	if len(applicantIDs) == 0 {
		return
	}

	notifs := make([]domain.Notification, len(applicantIDs))
	for i, userID := range applicantIDs {
		notifs[i] = domain.Notification{
			ID:      uuid.New(),
			UserID:  userID,
			Message: fmt.Sprintf("The project %q you applied for has been deleted by the client.", projectTitle),
		}
	}

	if err := s.notifRepo.CreateMany(ctx, notifs); err != nil {
		log.Printf("Failed to create project deletion notifications: %v", err)
	}
}

func (s *notificationService) NotifyWorkSubmitted(ctx context.Context, clientID uuid.UUID, projectTitle string) {
	link := "/team"
	message := fmt.Sprintf("A freelancer has submitted work for your project %q.", projectTitle)
	s.create(ctx, clientID, message, &link)
}

func (s *notificationService) NotifySubmissionReviewed(ctx context.Context, freelancerID uuid.UUID, projectTitle string, status domain.SubmissionStatus) {
	link := "/my-tasks"
	message := fmt.Sprintf("Your submission for %q has been %s.", projectTitle, strings.ReplaceAll(string(status), "_", " "))
	s.create(ctx, freelancerID, message, &link)
}
