package service

import (
	"context"

	"github.com/google/uuid"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/repository"
)

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput, imageURL *string) (*domain.User, error)
	GetPublicProfile(ctx context.Context, id uuid.UUID) (map[string]interface{}, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
}

func NewUserService(userRepo repository.UserRepository, projectRepo repository.ProjectRepository) UserService {
	return &userService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput, imageURL *string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.GroupName != nil {
		user.GroupName = *input.GroupName
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if imageURL != nil {
		user.ImageURL = imageURL
	}

	if user.Role == domain.RoleFreelancer {
		if input.Skills != nil {
			user.Skills = input.Skills
		}
		if input.Social != nil {
			user.GithubURL = input.Social.Github
			user.LinkedinURL = input.Social.Linkedin
		}
		if input.PastProjects != nil {
			user.PastProjects = *input.PastProjects
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetPublicProfile(ctx context.Context, id uuid.UUID) (map[string]interface{}, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.PublicProfile(), nil
}

// DeleteAccount removes the account; client accounts take their projects
// with them. Applicants on those projects are not notified, matching the
// behavior of project cascade (unlike an explicit project delete).
func (s *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.Role == domain.RoleClient {
		if err := s.projectRepo.DeleteByClient(ctx, userID); err != nil {
			return err
		}
	}

	return s.userRepo.Delete(ctx, userID)
}
