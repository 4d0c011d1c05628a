package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Project      ProjectRepository
	Applicant    ApplicantRepository
	Task         TaskRepository
	Submission   SubmissionRepository
	Notification NotificationRepository
	Testimonial  TestimonialRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Project:      NewProjectRepository(db),
		Applicant:    NewApplicantRepository(db),
		Task:         NewTaskRepository(db),
		Submission:   NewSubmissionRepository(db),
		Notification: NewNotificationRepository(db),
		Testimonial:  NewTestimonialRepository(db),
	}
}
