package handler

import "ignite-backend/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Project      *ProjectHandler
	Application  *ApplicationHandler
	Notification *NotificationHandler
	Testimonial  *TestimonialHandler
	Admin        *AdminHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User, services.Auth, services.Media),
		Project:      NewProjectHandler(services.Project),
		Application:  NewApplicationHandler(services.Application),
		Notification: NewNotificationHandler(services.Notification),
		Testimonial:  NewTestimonialHandler(services.Testimonial),
		Admin:        NewAdminHandler(services.Admin, services.Application),
	}
}
