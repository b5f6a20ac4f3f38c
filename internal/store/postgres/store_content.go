package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"storecopy-backend/internal/models"
	"storecopy-backend/internal/store"
)

const createSavedContent = `-- name: CreateSavedContent :one
INSERT INTO saved_contents (id, store_id, owner_id, headline, description, cta, hashtags, platform)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, store_id, owner_id, headline, description, cta, hashtags, platform, created_at, updated_at;
`

func (s *PostgresStore) CreateSavedContent(ctx context.Context, arg store.CreateSavedContentParams) (*models.SavedContent, error) {
	row := s.db.QueryRow(ctx, createSavedContent,
		arg.ID,
		arg.StoreID,
		arg.OwnerID,
		arg.Headline,
		arg.Description,
		arg.CTA,
		arg.Hashtags,
		arg.Platform,
	)

	var c models.SavedContent
	if err := scanSavedContent(row, &c); err != nil {
		return nil, fmt.Errorf("error scanning created content: %w", err)
	}
	return &c, nil
}

const listSavedContentByOwner = `-- name: ListSavedContentByOwner :many
SELECT id, store_id, owner_id, headline, description, cta, hashtags, platform, created_at, updated_at
FROM saved_contents
WHERE owner_id = $1
ORDER BY created_at DESC;
`

func (s *PostgresStore) ListSavedContentByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.SavedContent, error) {
	rows, err := s.db.Query(ctx, listSavedContentByOwner, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying saved content: %w", err)
	}
	defer rows.Close()

	var items []models.SavedContent
	for rows.Next() {
		var c models.SavedContent
		if err := scanSavedContent(rows, &c); err != nil {
			return nil, fmt.Errorf("error scanning content row: %w", err)
		}
		items = append(items, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content rows: %w", err)
	}

	return items, nil
}

const deleteSavedContent = `-- name: DeleteSavedContent :exec
DELETE FROM saved_contents
WHERE id = $1 AND owner_id = $2;
`

func (s *PostgresStore) DeleteSavedContent(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, deleteSavedContent, id, ownerID)
	if err != nil {
		return fmt.Errorf("error executing delete content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Wrong ID or not this owner's row
		return store.ErrNotFound
	}
	return nil
}

const countSavedContentByOwner = `-- name: CountSavedContentByOwner :one
SELECT COUNT(*)
FROM saved_contents
WHERE owner_id = $1;
`

func (s *PostgresStore) CountSavedContentByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := s.db.QueryRow(ctx, countSavedContentByOwner, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting saved content: %w", err)
	}
	return count, nil
}

func scanSavedContent(row pgx.Row, c *models.SavedContent) error {
	return row.Scan(
		&c.ID,
		&c.StoreID,
		&c.OwnerID,
		&c.Headline,
		&c.Description,
		&c.CTA,
		&c.Hashtags,
		&c.Platform,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}
