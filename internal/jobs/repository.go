package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j *Job) error
	List(ctx context.Context, keyword string) ([]*Job, error)
	FindByID(ctx context.Context, id string) (*Job, error)
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, j *Job) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO jobs (id, recruiter_id, title, description, industry, location, salary, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, j.ID, j.RecruiterID, j.Title, j.Description, j.Industry, j.Location, j.Salary, j.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, keyword string) ([]*Job, error) {
	query := `SELECT id, recruiter_id, title, description, industry, location, salary, created_at FROM jobs`
	args := []any{}
	if keyword != "" {
		query += ` WHERE title ILIKE $1 OR description ILIKE $1`
		args = append(args, "%"+keyword+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	result := []*Job{}
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.Industry, &j.Location, &j.Salary, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		result = append(result, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Job, error) {
	var j Job
	err := r.db.QueryRow(ctx, `
        SELECT id, recruiter_id, title, description, industry, location, salary, created_at
        FROM jobs WHERE id = $1
    `, id).Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.Industry, &j.Location, &j.Salary, &j.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &j, nil
}
