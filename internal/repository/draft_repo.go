package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mailcraft/internal/model"
)

type DraftRepository struct {
	db *pgxpool.Pool
}

func NewDraftRepository(db *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{db: db}
}

// Insert records a successfully generated email.
func (r *DraftRepository) Insert(ctx context.Context, d *model.Draft) error {
	query := `
        INSERT INTO drafts (user_id, description, subject, greeting, body, closing, model, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
        RETURNING id, created_at
    `
	return r.db.QueryRow(ctx, query,
		d.UserID,
		d.Description,
		d.Subject,
		d.Greeting,
		d.Body,
		d.Closing,
		d.Model,
	).Scan(&d.ID, &d.CreatedAt)
}

// ListByUser returns a user's generation history, newest first.
func (r *DraftRepository) ListByUser(ctx context.Context, userID, limit int) ([]model.Draft, error) {
	query := `
        SELECT id, user_id, description, subject, greeting, body, closing, model, created_at
        FROM drafts
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drafts := []model.Draft{}
	for rows.Next() {
		var d model.Draft
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Description,
			&d.Subject,
			&d.Greeting,
			&d.Body,
			&d.Closing,
			&d.Model,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}

	return drafts, rows.Err()
}
