package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/feedback-service/internal/domain"
)

// CredentialRepository stores login credentials keyed by email.
type CredentialRepository interface {
	Upsert(ctx context.Context, cred *domain.Credential) error
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
}

type credentialRepository struct {
	pool *pgxpool.Pool
}

// NewCredentialRepository returns a Postgres-backed implementation.
func NewCredentialRepository(pool *pgxpool.Pool) CredentialRepository {
	return &credentialRepository{pool: pool}
}

func (r *credentialRepository) Upsert(ctx context.Context, cred *domain.Credential) error {
	const query = `
        INSERT INTO credentials (email, password_hash, user_id)
        VALUES ($1, $2, $3)
        ON CONFLICT (email) DO UPDATE SET password_hash=EXCLUDED.password_hash, user_id=EXCLUDED.user_id`

	_, err := r.pool.Exec(ctx, query, cred.Email, cred.PasswordHash, cred.UserID)
	return err
}

func (r *credentialRepository) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	const query = `
        SELECT email, password_hash, user_id
        FROM credentials WHERE email=$1`

	var cred domain.Credential
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&cred.Email,
		&cred.PasswordHash,
		&cred.UserID,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cred, nil
}
