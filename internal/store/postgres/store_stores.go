package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"storecopy-backend/internal/models"
	"storecopy-backend/internal/store"
)

const createStore = `-- name: CreateStore :exec
INSERT INTO stores (id, name, description, category, logo_url)
VALUES ($1, $2, $3, $4, $5);
`

func (s *PostgresStore) CreateStore(ctx context.Context, st *models.Store) error {
	_, err := s.db.Exec(ctx, createStore,
		st.ID,
		st.Name,
		st.Description,
		st.Category,
		st.LogoURL,
	)
	if err != nil {
		log.Printf("ERROR [PostgresStore] CreateStore: Failed to insert store %s: %v", st.Name, err)
		return fmt.Errorf("database error creating store: %w", err)
	}
	return nil
}

const getStoreByID = `-- name: GetStoreByID :one
SELECT id, name, description, category, logo_url, created_at, updated_at
FROM stores
WHERE id = $1;
`

func (s *PostgresStore) GetStoreByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	row := s.db.QueryRow(ctx, getStoreByID, id)

	var st models.Store
	err := row.Scan(
		&st.ID,
		&st.Name,
		&st.Description,
		&st.Category,
		&st.LogoURL,
		&st.CreatedAt,
		&st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning store: %w", err)
	}
	return &st, nil
}

const updateStore = `-- name: UpdateStore :one
UPDATE stores
SET name = $1, description = $2, category = $3, logo_url = $4, updated_at = NOW()
WHERE id = $5
RETURNING id, name, description, category, logo_url, created_at, updated_at;
`

func (s *PostgresStore) UpdateStore(ctx context.Context, arg store.UpdateStoreParams) (*models.Store, error) {
	row := s.db.QueryRow(ctx, updateStore,
		arg.Name,
		arg.Description,
		arg.Category,
		arg.LogoURL,
		arg.ID,
	)

	var st models.Store
	err := row.Scan(
		&st.ID,
		&st.Name,
		&st.Description,
		&st.Category,
		&st.LogoURL,
		&st.CreatedAt,
		&st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning updated store: %w", err)
	}
	return &st, nil
}
