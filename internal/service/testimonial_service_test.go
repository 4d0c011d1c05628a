package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ignite-backend/internal/domain"
)

func TestTestimonialService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTestimonialRepository)
	svc := NewTestimonialService(repo, nil)

	input := domain.CreateTestimonialInput{
		Name:   "Ada",
		Role:   "Freelancer",
		Quote:  "Found my first client here.",
		Rating: 5,
	}

	repo.On("Create", ctx, mock.MatchedBy(func(tm *domain.Testimonial) bool {
		return tm.Name == "Ada" &&
			!tm.Visible &&
			tm.AvatarURL == domain.DefaultTestimonialAvatar
	})).Return(nil).Once()

	testimonial, err := svc.Create(ctx, input)

	assert.NoError(t, err)
	assert.False(t, testimonial.Visible)
	repo.AssertExpectations(t)
}

func TestTestimonialService_ListVisible(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTestimonialRepository)
	// No Redis in unit tests; the cache path is nil-guarded.
	svc := NewTestimonialService(repo, nil)

	visible := []domain.Testimonial{
		{Name: "Ada", Visible: true},
		{Name: "Grace", Visible: true},
	}
	repo.On("ListVisible", ctx, testimonialLimit).Return(visible, nil).Once()

	got, err := svc.ListVisible(ctx)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
}
