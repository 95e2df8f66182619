package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Repository is the persistence surface the handlers depend on.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error
	ListAll(ctx context.Context) ([]*User, error)
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, fullname, email, phone_number, password, role, bio, skills,
    COALESCE(profile_photo_url, ''), COALESCE(resume_url, ''),
    applications, job_listings, interview_calls, matched_skills, created_at`

func (r *PostgresRepository) Create(ctx context.Context, u *User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, fullname, email, phone_number, password, role, bio, skills, profile_photo_url, resume_url, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11)
    `, u.ID, u.Fullname, u.Email, u.PhoneNumber, u.Password, u.Role,
		u.Profile.Bio, u.Profile.Skills, u.Profile.ProfilePhoto, u.Profile.Resume, u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresRepository) Update(ctx context.Context, u *User) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE users
        SET fullname = $2,
            email = $3,
            phone_number = $4,
            bio = $5,
            skills = $6,
            profile_photo_url = NULLIF($7, ''),
            resume_url = NULLIF($8, '')
        WHERE id = $1
    `, u.ID, u.Fullname, u.Email, u.PhoneNumber,
		u.Profile.Bio, u.Profile.Skills, u.Profile.ProfilePhoto, u.Profile.Resume)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	result := []*User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	var apps, listings, calls, matched []byte
	err := row.Scan(
		&u.ID, &u.Fullname, &u.Email, &u.PhoneNumber, &u.Password, &u.Role,
		&u.Profile.Bio, &u.Profile.Skills, &u.Profile.ProfilePhoto, &u.Profile.Resume,
		&apps, &listings, &calls, &matched, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	if err := json.Unmarshal(apps, &u.Applications); err != nil {
		return nil, fmt.Errorf("bad applications payload: %w", err)
	}
	if err := json.Unmarshal(listings, &u.JobListings); err != nil {
		return nil, fmt.Errorf("bad job_listings payload: %w", err)
	}
	if err := json.Unmarshal(calls, &u.InterviewCalls); err != nil {
		return nil, fmt.Errorf("bad interview_calls payload: %w", err)
	}
	if err := json.Unmarshal(matched, &u.MatchedSkills); err != nil {
		return nil, fmt.Errorf("bad matched_skills payload: %w", err)
	}
	return &u, nil
}
