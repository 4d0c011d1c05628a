package domain

import (
	"time"

	"github.com/google/uuid"
)

const DefaultTestimonialAvatar = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&w=100&q=80"

type Testimonial struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	Quote     string    `json:"quote" db:"quote"`
	Rating    int       `json:"rating" db:"rating"`
	AvatarURL string    `json:"avatar_url" db:"avatar_url"`
	Visible   bool      `json:"visible" db:"visible"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateTestimonialInput struct {
	Name   string `json:"name" validate:"required"`
	Role   string `json:"role" validate:"required"`
	Quote  string `json:"quote" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}
