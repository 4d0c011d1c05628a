package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ignite-backend/internal/domain"
	"ignite-backend/internal/repository"
)

const (
	testimonialCacheKey = "testimonials:public"
	testimonialCacheTTL = 5 * time.Minute
	testimonialLimit    = 10
)

// TestimonialService handles the public landing-page testimonials. The
// visible list is cached in Redis; admin reads always hit the database.
type TestimonialService interface {
	Create(ctx context.Context, input domain.CreateTestimonialInput) (*domain.Testimonial, error)
	ListVisible(ctx context.Context) ([]domain.Testimonial, error)
	InvalidateCache(ctx context.Context)
}

type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
	redis           *redis.Client
}

func NewTestimonialService(testimonialRepo repository.TestimonialRepository, redisClient *redis.Client) TestimonialService {
	return &testimonialService{
		testimonialRepo: testimonialRepo,
		redis:           redisClient,
	}
}

// Create stores a visitor-submitted testimonial. New entries are hidden until
// an admin approves them, so the public list is never touched here.
func (s *testimonialService) Create(ctx context.Context, input domain.CreateTestimonialInput) (*domain.Testimonial, error) {
	testimonial := &domain.Testimonial{
		ID:        uuid.New(),
		Name:      input.Name,
		Role:      input.Role,
		Quote:     input.Quote,
		Rating:    input.Rating,
		AvatarURL: domain.DefaultTestimonialAvatar,
		Visible:   false,
	}

	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (s *testimonialService) ListVisible(ctx context.Context) ([]domain.Testimonial, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, testimonialCacheKey).Result(); err == nil {
			var testimonials []domain.Testimonial
			if json.Unmarshal([]byte(cached), &testimonials) == nil {
				return testimonials, nil
			}
		}
	}

	testimonials, err := s.testimonialRepo.ListVisible(ctx, testimonialLimit)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(testimonials); err == nil {
			_ = s.redis.Set(ctx, testimonialCacheKey, data, testimonialCacheTTL).Err()
		}
	}

	return testimonials, nil
}

func (s *testimonialService) InvalidateCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Del(ctx, testimonialCacheKey).Err()
}
