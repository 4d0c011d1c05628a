package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ignite-backend/internal/domain"
)

type ApplicantRepository interface {
	Create(ctx context.Context, applicant *domain.Applicant) error
	GetByID(ctx context.Context, projectID, applicantID uuid.UUID) (*domain.Applicant, error)
	GetByProjectAndFreelancer(ctx context.Context, projectID, freelancerID uuid.UUID) (*domain.Applicant, error)
	ExistsByProjectAndFreelancer(ctx context.Context, projectID, freelancerID uuid.UUID) (bool, error)
	IsAccepted(ctx context.Context, projectID, freelancerID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, applicantID uuid.UUID, status domain.ApplicantStatus) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Applicant, error)
	ListAll(ctx context.Context) ([]domain.AdminApplicant, error)
}

type applicantRepository struct {
	db *sqlx.DB
}

func NewApplicantRepository(db *sqlx.DB) ApplicantRepository {
	return &applicantRepository{db: db}
}

func (r *applicantRepository) Create(ctx context.Context, applicant *domain.Applicant) error {
	query := `
		INSERT INTO applicants (id, project_id, freelancer_id, cover_letter, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING applied_at`

	return r.db.QueryRowxContext(ctx, query,
		applicant.ID, applicant.ProjectID, applicant.FreelancerID,
		applicant.CoverLetter, applicant.Status,
	).Scan(&applicant.AppliedAt)
}

func (r *applicantRepository) GetByID(ctx context.Context, projectID, applicantID uuid.UUID) (*domain.Applicant, error) {
	var applicant domain.Applicant
	query := `SELECT * FROM applicants WHERE id = $1 AND project_id = $2`

	err := r.db.GetContext(ctx, &applicant, query, applicantID, projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (r *applicantRepository) GetByProjectAndFreelancer(ctx context.Context, projectID, freelancerID uuid.UUID) (*domain.Applicant, error) {
	var applicant domain.Applicant
	query := `SELECT * FROM applicants WHERE project_id = $1 AND freelancer_id = $2`

	err := r.db.GetContext(ctx, &applicant, query, projectID, freelancerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (r *applicantRepository) ExistsByProjectAndFreelancer(ctx context.Context, projectID, freelancerID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applicants WHERE project_id = $1 AND freelancer_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, projectID, freelancerID)
	return exists, err
}

func (r *applicantRepository) IsAccepted(ctx context.Context, projectID, freelancerID uuid.UUID) (bool, error) {
	var accepted bool
	query := `SELECT EXISTS(SELECT 1 FROM applicants WHERE project_id = $1 AND freelancer_id = $2 AND status = 'accepted')`
	err := r.db.GetContext(ctx, &accepted, query, projectID, freelancerID)
	return accepted, err
}

func (r *applicantRepository) UpdateStatus(ctx context.Context, applicantID uuid.UUID, status domain.ApplicantStatus) error {
	query := `UPDATE applicants SET status = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, applicantID, status)
	return err
}

func (r *applicantRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Applicant, error) {
	var applicants []domain.Applicant
	query := `SELECT * FROM applicants WHERE project_id = $1 ORDER BY applied_at DESC`

	err := r.db.SelectContext(ctx, &applicants, query, projectID)
	return applicants, err
}

func (r *applicantRepository) ListAll(ctx context.Context) ([]domain.AdminApplicant, error) {
	rows := []struct {
		domain.Applicant
		ProjectTitle string `db:"project_title"`
	}{}

	query := `
		SELECT a.*, p.title AS project_title
		FROM applicants a
		JOIN projects p ON p.id = a.project_id
		ORDER BY a.applied_at DESC`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	applicants := make([]domain.AdminApplicant, len(rows))
	for i, row := range rows {
		applicants[i] = domain.AdminApplicant{
			Applicant:    row.Applicant,
			ProjectTitle: row.ProjectTitle,
		}
	}
	return applicants, nil
}
