package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/feedback-service/internal/domain"
)

// FeedbackRepository encapsulates feedback persistence. Listing
// operations return records in creation order; recency sorting is the
// caller's concern.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	Update(ctx context.Context, feedback *domain.Feedback) error
	GetByID(ctx context.Context, id string) (*domain.Feedback, error)
	ListByRecipient(ctx context.Context, userID string) ([]domain.Feedback, error)
	ListByAuthor(ctx context.Context, managerID string) ([]domain.Feedback, error)
}

type feedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository returns a Postgres-backed implementation.
func NewFeedbackRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &feedbackRepository{pool: pool}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	const query = `
        INSERT INTO feedback (id, from_user_id, to_user_id, strengths, areas_to_improve, sentiment, tags, created_at, updated_at, is_acknowledged, acknowledged_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	_, err := r.pool.Exec(ctx, query,
		feedback.ID,
		feedback.FromUserID,
		feedback.ToUserID,
		feedback.Strengths,
		feedback.AreasToImprove,
		feedback.Sentiment,
		feedback.Tags,
		feedback.CreatedAt,
		feedback.UpdatedAt,
		feedback.IsAcknowledged,
		feedback.AcknowledgedAt,
	)
	return err
}

func (r *feedbackRepository) Update(ctx context.Context, feedback *domain.Feedback) error {
	const query = `
        UPDATE feedback SET strengths=$1, areas_to_improve=$2, sentiment=$3, tags=$4,
            updated_at=$5, is_acknowledged=$6, acknowledged_at=$7
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		feedback.Strengths,
		feedback.AreasToImprove,
		feedback.Sentiment,
		feedback.Tags,
		feedback.UpdatedAt,
		feedback.IsAcknowledged,
		feedback.AcknowledgedAt,
		feedback.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *feedbackRepository) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	const query = `
        SELECT id, from_user_id, to_user_id, strengths, areas_to_improve, sentiment, tags,
               created_at, updated_at, is_acknowledged, acknowledged_at
        FROM feedback WHERE id=$1`

	var feedback domain.Feedback
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&feedback.ID,
		&feedback.FromUserID,
		&feedback.ToUserID,
		&feedback.Strengths,
		&feedback.AreasToImprove,
		&feedback.Sentiment,
		&feedback.Tags,
		&feedback.CreatedAt,
		&feedback.UpdatedAt,
		&feedback.IsAcknowledged,
		&feedback.AcknowledgedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) ListByRecipient(ctx context.Context, userID string) ([]domain.Feedback, error) {
	const query = `
        SELECT id, from_user_id, to_user_id, strengths, areas_to_improve, sentiment, tags,
               created_at, updated_at, is_acknowledged, acknowledged_at
        FROM feedback WHERE to_user_id=$1
        ORDER BY created_at ASC, id ASC`
	return r.list(ctx, query, userID)
}

func (r *feedbackRepository) ListByAuthor(ctx context.Context, managerID string) ([]domain.Feedback, error) {
	const query = `
        SELECT id, from_user_id, to_user_id, strengths, areas_to_improve, sentiment, tags,
               created_at, updated_at, is_acknowledged, acknowledged_at
        FROM feedback WHERE from_user_id=$1
        ORDER BY created_at ASC, id ASC`
	return r.list(ctx, query, managerID)
}

func (r *feedbackRepository) list(ctx context.Context, query string, arg any) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFeedback(rows)
}

func scanFeedback(rows pgx.Rows) ([]domain.Feedback, error) {
	var result []domain.Feedback
	for rows.Next() {
		var feedback domain.Feedback
		if err := rows.Scan(
			&feedback.ID,
			&feedback.FromUserID,
			&feedback.ToUserID,
			&feedback.Strengths,
			&feedback.AreasToImprove,
			&feedback.Sentiment,
			&feedback.Tags,
			&feedback.CreatedAt,
			&feedback.UpdatedAt,
			&feedback.IsAcknowledged,
			&feedback.AcknowledgedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, feedback)
	}
	return result, rows.Err()
}
