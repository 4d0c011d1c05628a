package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ignite-backend/internal/domain"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *domain.Testimonial) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error)
	ListVisible(ctx context.Context, limit int) ([]domain.Testimonial, error)
	ListAll(ctx context.Context) ([]domain.Testimonial, error)
	SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error
}

type testimonialRepository struct {
	db *sqlx.DB
}

func NewTestimonialRepository(db *sqlx.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, name, role, quote, rating, avatar_url, visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		testimonial.ID, testimonial.Name, testimonial.Role, testimonial.Quote,
		testimonial.Rating, testimonial.AvatarURL, testimonial.Visible,
	).Scan(&testimonial.CreatedAt)
}

func (r *testimonialRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	var testimonial domain.Testimonial
	query := `SELECT * FROM testimonials WHERE id = $1`

	err := r.db.GetContext(ctx, &testimonial, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) ListVisible(ctx context.Context, limit int) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	query := `SELECT * FROM testimonials WHERE visible = true ORDER BY created_at DESC LIMIT $1`

	err := r.db.SelectContext(ctx, &testimonials, query, limit)
	return testimonials, err
}

func (r *testimonialRepository) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	query := `SELECT * FROM testimonials ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &testimonials, query)
	return testimonials, err
}

func (r *testimonialRepository) SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error {
	query := `UPDATE testimonials SET visible = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, visible)
	return err
}
