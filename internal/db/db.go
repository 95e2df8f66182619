package db

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var Conn *pgxpool.Pool

// Init connects to Postgres and makes sure the schema is usable.
func Init(dsn string) {
	var err error
	Conn, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	if err = Conn.Ping(context.Background()); err != nil {
		log.Fatalf("Unable to ping database: %v\n", err)
	}

	log.Println("Connected to Postgres successfully")

	// Ensure tables used by the handlers exist
	ensureUsersTable()
	ensureJobsTable()
}

// ensureUsersTable creates the users table if it doesn't exist.
// Email uniqueness lives here as a constraint: the application-level
// existence check is only for the friendly error message, the database
// is authoritative when two registrations race.
func ensureUsersTable() {
	ctx := context.Background()
	_, err := Conn.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY,
            fullname TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            phone_number TEXT NOT NULL,
            password TEXT NOT NULL,
            role TEXT NOT NULL CHECK (role IN ('student', 'recruiter')),
            bio TEXT NOT NULL DEFAULT '',
            skills TEXT[] NOT NULL DEFAULT '{}',
            profile_photo_url TEXT NULL,
            resume_url TEXT NULL,
            applications JSONB NOT NULL DEFAULT '[]',
            job_listings JSONB NOT NULL DEFAULT '[]',
            interview_calls JSONB NOT NULL DEFAULT '[]',
            matched_skills JSONB NOT NULL DEFAULT '[]',
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        );
    `)
	if err != nil {
		log.Printf("failed to create users table: %v", err)
	}
}

// ensureJobsTable creates the jobs table if it doesn't exist.
func ensureJobsTable() {
	ctx := context.Background()
	_, err := Conn.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS jobs (
            id UUID PRIMARY KEY,
            recruiter_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            industry TEXT NOT NULL,
            location TEXT NOT NULL DEFAULT '',
            salary TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        )
    `)
	if err != nil {
		log.Printf("failed to create jobs table: %v", err)
	}

	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_jobs_created ON jobs(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_industry ON jobs(industry)`,
	} {
		if _, err := Conn.Exec(ctx, stmt); err != nil {
			log.Printf("failed to create jobs index: %v", err)
		}
	}
}
