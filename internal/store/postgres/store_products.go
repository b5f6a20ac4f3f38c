package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"storecopy-backend/internal/models"
	"storecopy-backend/internal/store"
)

const createProduct = `-- name: CreateProduct :one
INSERT INTO products (id, store_id, owner_id, name, description, price, category, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, store_id, owner_id, name, description, price, category, image_url, created_at, updated_at;
`

func (s *PostgresStore) CreateProduct(ctx context.Context, arg store.CreateProductParams) (*models.Product, error) {
	row := s.db.QueryRow(ctx, createProduct,
		arg.ID,
		arg.StoreID,
		arg.OwnerID,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.Category,
		arg.ImageURL,
	)

	var p models.Product
	if err := scanProduct(row, &p); err != nil {
		return nil, fmt.Errorf("error scanning created product: %w", err)
	}
	return &p, nil
}

const getProductByID = `-- name: GetProductByID :one
SELECT id, store_id, owner_id, name, description, price, category, image_url, created_at, updated_at
FROM products
WHERE id = $1 AND owner_id = $2;
`

func (s *PostgresStore) GetProductByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRow(ctx, getProductByID, id, ownerID)

	var p models.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning product: %w", err)
	}
	return &p, nil
}

const listProductsByOwner = `-- name: ListProductsByOwner :many
SELECT id, store_id, owner_id, name, description, price, category, image_url, created_at, updated_at
FROM products
WHERE owner_id = $1
ORDER BY created_at DESC;
`

func (s *PostgresStore) ListProductsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error) {
	rows, err := s.db.Query(ctx, listProductsByOwner, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("error scanning product row: %w", err)
		}
		items = append(items, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return items, nil
}

// UpdateProduct builds the query dynamically based on which fields are provided.
func (s *PostgresStore) UpdateProduct(ctx context.Context, arg store.UpdateProductParams) (*models.Product, error) {
	setClauses := []string{}
	args := []interface{}{}
	argID := 1

	if arg.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		args = append(args, *arg.Name)
		argID++
	}
	if arg.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argID))
		args = append(args, *arg.Description)
		argID++
	}
	if arg.Price != nil {
		setClauses = append(setClauses, fmt.Sprintf("price = $%d", argID))
		args = append(args, *arg.Price)
		argID++
	}
	if arg.Category != nil {
		setClauses = append(setClauses, fmt.Sprintf("category = $%d", argID))
		args = append(args, *arg.Category)
		argID++
	}
	if arg.ImageURL != nil {
		setClauses = append(setClauses, fmt.Sprintf("image_url = $%d", argID))
		args = append(args, *arg.ImageURL)
		argID++
	}

	if len(setClauses) == 0 {
		return s.GetProductByID(ctx, arg.ID, arg.OwnerID)
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argID))
	args = append(args, time.Now())
	argID++

	args = append(args, arg.ID)
	args = append(args, arg.OwnerID)

	query := fmt.Sprintf(`-- name: UpdateProduct :one
		UPDATE products
		SET %s
		WHERE id = $%d AND owner_id = $%d
		RETURNING id, store_id, owner_id, name, description, price, category, image_url, created_at, updated_at;`,
		strings.Join(setClauses, ", "),
		argID,
		argID+1,
	)

	row := s.db.QueryRow(ctx, query, args...)
	var p models.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning updated product: %w", err)
	}
	return &p, nil
}

const deleteProduct = `-- name: DeleteProduct :exec
DELETE FROM products
WHERE id = $1 AND owner_id = $2;
`

func (s *PostgresStore) DeleteProduct(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, deleteProduct, id, ownerID)
	if err != nil {
		return fmt.Errorf("error executing delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Wrong ID or not this owner's row
		return store.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(
		&p.ID,
		&p.StoreID,
		&p.OwnerID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.ImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}
