package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ignite-backend/internal/domain"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) error
	GetByID(ctx context.Context, projectID, submissionID uuid.UUID) (*domain.Submission, error)
	UpdateReview(ctx context.Context, submissionID uuid.UUID, status domain.SubmissionStatus, feedback *string) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Submission, error)
	ListByProjectAndFreelancer(ctx context.Context, projectID, freelancerID uuid.UUID) ([]domain.Submission, error)
}

type submissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	query := `
		INSERT INTO submissions (id, project_id, freelancer_id, message, link, github_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING submitted_at`

	return r.db.QueryRowxContext(ctx, query,
		submission.ID, submission.ProjectID, submission.FreelancerID,
		submission.Message, submission.Link, submission.GithubURL, submission.Status,
	).Scan(&submission.SubmittedAt)
}

func (r *submissionRepository) GetByID(ctx context.Context, projectID, submissionID uuid.UUID) (*domain.Submission, error) {
	var submission domain.Submission
	query := `SELECT * FROM submissions WHERE id = $1 AND project_id = $2`

	err := r.db.GetContext(ctx, &submission, query, submissionID, projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) UpdateReview(ctx context.Context, submissionID uuid.UUID, status domain.SubmissionStatus, feedback *string) error {
	if feedback != nil {
		query := `UPDATE submissions SET status = $2, client_feedback = $3 WHERE id = $1`
		_, err := r.db.ExecContext(ctx, query, submissionID, status, feedback)
		return err
	}

	query := `UPDATE submissions SET status = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, submissionID, status)
	return err
}

func (r *submissionRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Submission, error) {
	var submissions []domain.Submission
	query := `SELECT * FROM submissions WHERE project_id = $1 ORDER BY submitted_at DESC`

	err := r.db.SelectContext(ctx, &submissions, query, projectID)
	return submissions, err
}

func (r *submissionRepository) ListByProjectAndFreelancer(ctx context.Context, projectID, freelancerID uuid.UUID) ([]domain.Submission, error) {
	var submissions []domain.Submission
	query := `SELECT * FROM submissions WHERE project_id = $1 AND freelancer_id = $2 ORDER BY submitted_at DESC`

	err := r.db.SelectContext(ctx, &submissions, query, projectID, freelancerID)
	return submissions, err
}
