package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ignite-backend/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, applicantID, taskID uuid.UUID) (*domain.Task, error)
	SetCompleted(ctx context.Context, taskID uuid.UUID, completed bool) error
	Delete(ctx context.Context, taskID uuid.UUID) error
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Task, error)
	ListByApplicants(ctx context.Context, applicantIDs []uuid.UUID) ([]domain.Task, error)
}

type taskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (id, applicant_id, description, completed)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		task.ID, task.ApplicantID, task.Description, task.Completed,
	).Scan(&task.CreatedAt)
}

func (r *taskRepository) GetByID(ctx context.Context, applicantID, taskID uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	query := `SELECT * FROM tasks WHERE id = $1 AND applicant_id = $2`

	err := r.db.GetContext(ctx, &task, query, taskID, applicantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) SetCompleted(ctx context.Context, taskID uuid.UUID, completed bool) error {
	query := `UPDATE tasks SET completed = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, taskID, completed)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, taskID uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, taskID)
	return err
}

func (r *taskRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Task, error) {
	var tasks []domain.Task
	query := `SELECT * FROM tasks WHERE applicant_id = $1 ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &tasks, query, applicantID)
	return tasks, err
}

func (r *taskRepository) ListByApplicants(ctx context.Context, applicantIDs []uuid.UUID) ([]domain.Task, error) {
	if len(applicantIDs) == 0 {
		return []domain.Task{}, nil
	}

	idStrings := make([]string, len(applicantIDs))
	for i, id := range applicantIDs {
		idStrings[i] = id.String()
	}

	var tasks []domain.Task
	query := `SELECT * FROM tasks WHERE applicant_id = ANY($1::uuid[]) ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &tasks, query, idStrings)
	return tasks, err
}
