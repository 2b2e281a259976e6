package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate creates the schema at startup. Statements are idempotent so repeated
// boots are safe.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		phone TEXT UNIQUE,
		password_hash TEXT NOT NULL,
		user_type TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		age INTEGER,
		gender TEXT,
		location TEXT,
		medical_history TEXT,
		family_members INTEGER NOT NULL DEFAULT 1,
		monthly_income DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		specialization TEXT NOT NULL,
		experience INTEGER,
		qualification TEXT,
		location TEXT,
		consultation_fee DOUBLE PRECISION,
		phone TEXT,
		whatsapp TEXT,
		is_available BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS pharmacies (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		phone TEXT,
		license_number TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS medicines (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		generic_name TEXT,
		category TEXT,
		description TEXT,
		usage TEXT,
		dosage TEXT,
		side_effects TEXT,
		price DOUBLE PRECISION,
		pharmacy_id BIGINT NOT NULL REFERENCES pharmacies(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_medicines_name ON medicines (name)`,
	`CREATE INDEX IF NOT EXISTS idx_medicines_category ON medicines (category)`,
	`CREATE TABLE IF NOT EXISTS prescriptions (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
		doctor_id BIGINT REFERENCES doctors(id),
		image_path TEXT NOT NULL,
		extracted_text TEXT NOT NULL DEFAULT '',
		ai_analysis JSONB NOT NULL DEFAULT '{}',
		medicines JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		post_type TEXT NOT NULL DEFAULT 'general',
		image_url TEXT,
		likes INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS insurance_plans (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		provider TEXT NOT NULL,
		plan_type TEXT,
		coverage_amount DOUBLE PRECISION,
		premium DOUBLE PRECISION,
		age_limit TEXT,
		description TEXT,
		eligibility JSONB
	)`,
}
