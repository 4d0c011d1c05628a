package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/repository"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

type UserStats struct {
	TotalUsers       int64       `json:"total_users"`
	TotalFreelancers int64       `json:"total_freelancers"`
	TotalClients     int64       `json:"total_clients"`
	TotalAdmins      int64       `json:"total_admins"`
	Recent7Days      int64       `json:"recent_7_days"`
	Recent30Days     int64       `json:"recent_30_days"`
	DailyStats       []DailyStat `json:"daily_stats"`
}

type DailyStat struct {
	Date        string `json:"date"`
	Freelancers int64  `json:"freelancers"`
	Clients     int64  `json:"clients"`
}

// AdminService aggregates data across all aggregates for the admin dashboard.
// Admin reads always hit the database directly; nothing here is cached.
type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserStats(ctx context.Context) (*UserStats, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListApplicants(ctx context.Context) ([]domain.AdminApplicant, error)
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	SetTestimonialVisibility(ctx context.Context, id uuid.UUID, visible bool) (*domain.Testimonial, error)
	SetProjectFeatured(ctx context.Context, id uuid.UUID, featured bool) (*domain.Project, error)
}

type adminService struct {
	userRepo        repository.UserRepository
	projectRepo     repository.ProjectRepository
	applicantRepo   repository.ApplicantRepository
	testimonialRepo repository.TestimonialRepository
	testimonialSvc  TestimonialService
	projectSvc      ProjectService
}

func NewAdminService(
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	applicantRepo repository.ApplicantRepository,
	testimonialRepo repository.TestimonialRepository,
	testimonialSvc TestimonialService,
	projectSvc ProjectService,
) AdminService {
	return &adminService{
		userRepo:        userRepo,
		projectRepo:     projectRepo,
		applicantRepo:   applicantRepo,
		testimonialRepo: testimonialRepo,
		testimonialSvc:  testimonialSvc,
		projectSvc:      projectSvc,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

// GetUserStats produces the dashboard counters plus a per-day registration
// histogram over the last 7 calendar days (oldest first).
func (s *adminService) GetUserStats(ctx context.Context) (*UserStats, error) {
	stats := &UserStats{}
	var err error

	if stats.TotalUsers, err = s.userRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.TotalFreelancers, err = s.userRepo.CountByRole(ctx, domain.RoleFreelancer); err != nil {
		return nil, err
	}
	if stats.TotalClients, err = s.userRepo.CountByRole(ctx, domain.RoleClient); err != nil {
		return nil, err
	}
	if stats.TotalAdmins, err = s.userRepo.CountByRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	now := time.Now()
	if stats.Recent7Days, err = s.userRepo.CountRegisteredSince(ctx, now.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}
	if stats.Recent30Days, err = s.userRepo.CountRegisteredSince(ctx, now.AddDate(0, 0, -30)); err != nil {
		return nil, err
	}

	stats.DailyStats = make([]DailyStat, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		to := from.AddDate(0, 0, 1).Add(-time.Nanosecond)

		freelancers, err := s.userRepo.CountRegisteredBetween(ctx, domain.RoleFreelancer, from, to)
		if err != nil {
			return nil, err
		}
		clients, err := s.userRepo.CountRegisteredBetween(ctx, domain.RoleClient, from, to)
		if err != nil {
			return nil, err
		}

		stats.DailyStats = append(stats.DailyStats, DailyStat{
			Date:        from.Format("2006-01-02"),
			Freelancers: freelancers,
			Clients:     clients,
		})
	}

	return stats, nil
}

func (s *adminService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectSvc.List(ctx)
}

func (s *adminService) ListApplicants(ctx context.Context) ([]domain.AdminApplicant, error) {
	return s.applicantRepo.ListAll(ctx)
}

func (s *adminService) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonialRepo.ListAll(ctx)
}

func (s *adminService) SetTestimonialVisibility(ctx context.Context, id uuid.UUID, visible bool) (*domain.Testimonial, error) {
	testimonial, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if testimonial == nil {
		return nil, ErrTestimonialNotFound
	}

	if err := s.testimonialRepo.SetVisibility(ctx, id, visible); err != nil {
		return nil, err
	}
	testimonial.Visible = visible

	s.testimonialSvc.InvalidateCache(ctx)

	return testimonial, nil
}

func (s *adminService) SetProjectFeatured(ctx context.Context, id uuid.UUID, featured bool) (*domain.Project, error) {
	project, err := s.projectRepo.SetFeatured(ctx, id, featured)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}
