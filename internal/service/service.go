package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"ignite-backend/internal/config"
	"ignite-backend/internal/repository"
)

type Services struct {
	Auth         AuthService
	User         UserService
	Project      ProjectService
	Application  ApplicationService
	Notification NotificationService
	Testimonial  TestimonialService
	Admin        AdminService
	Media        MediaService
	Email        EmailService
	Captcha      CaptchaService
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := NewEmailService(cfg)
	captchaService := NewCaptchaService(cfg)
	mediaService := NewMediaService(minioClient, cfg)
	authService := NewAuthService(repos.User, repos.Session, emailService, captchaService, cfg)
	userService := NewUserService(repos.User, repos.Project)
	notificationService := NewNotificationService(repos.Notification)
	projectService := NewProjectService(repos.Project, repos.Applicant, repos.Task, repos.Submission, repos.User, notificationService)
	applicationService := NewApplicationService(repos.Project, repos.Applicant, repos.Task, repos.Submission, notificationService)
	testimonialService := NewTestimonialService(repos.Testimonial, redisClient)
	adminService := NewAdminService(repos.User, repos.Project, repos.Applicant, repos.Testimonial, testimonialService, projectService)

	return &Services{
		Auth:         authService,
		User:         userService,
		Project:      projectService,
		Application:  applicationService,
		Notification: notificationService,
		Testimonial:  testimonialService,
		Admin:        adminService,
		Media:        mediaService,
		Email:        emailService,
		Captcha:      captchaService,
	}
}
