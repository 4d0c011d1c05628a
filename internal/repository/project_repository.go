package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ignite-backend/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByClient(ctx context.Context, clientID uuid.UUID) error
	ListAll(ctx context.Context) ([]domain.Project, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Project, error)
	ListByApplicant(ctx context.Context, freelancerID uuid.UUID) ([]domain.Project, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*domain.Project, error)
}

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (id, client_id, title, description, skills_required, project_type, deadline, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		project.ID, project.ClientID, project.Title, project.Description,
		project.SkillsRequired, project.ProjectType, project.Deadline, project.ImageURL,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	query := `SELECT * FROM projects WHERE id = $1`

	err := r.db.GetContext(ctx, &project, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET title = :title, description = :description, skills_required = :skills_required,
			project_type = :project_type, deadline = :deadline, image_url = :image_url,
			updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, project)
	return err
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *projectRepository) DeleteByClient(ctx context.Context, clientID uuid.UUID) error {
	query := `DELETE FROM projects WHERE client_id = $1`
	_, err := r.db.ExecContext(ctx, query, clientID)
	return err
}

func (r *projectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	query := `SELECT * FROM projects ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &projects, query)
	return projects, err
}

func (r *projectRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Project, error) {
	var projects []domain.Project
	query := `SELECT * FROM projects WHERE client_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &projects, query, clientID)
	return projects, err
}

func (r *projectRepository) ListByApplicant(ctx context.Context, freelancerID uuid.UUID) ([]domain.Project, error) {
	var projects []domain.Project
	query := `
		SELECT p.* FROM projects p
		WHERE EXISTS (SELECT 1 FROM applicants a WHERE a.project_id = p.id AND a.freelancer_id = $1)
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &projects, query, freelancerID)
	return projects, err
}

func (r *projectRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*domain.Project, error) {
	var project domain.Project
	query := `
		UPDATE projects SET featured = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING *`

	err := r.db.GetContext(ctx, &project, query, id, featured)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}
