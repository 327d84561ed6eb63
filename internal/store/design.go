// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store handles all database operations on the designs table.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"designforge/internal/models"
)

// DesignStore handles all design-related database operations.
type DesignStore struct {
	db *sql.DB
}

// NewDesignStore creates a new DesignStore with the given database connection.
func NewDesignStore(db *sql.DB) *DesignStore {
	return &DesignStore{db: db}
}

// designColumns lists the columns selected in design queries.
const designColumns = `id, title, description, image_url, category, code, slug, prompt, created_at`

// scanDesign scans a design row from the result set.
func scanDesign(scanner interface{ Scan(...any) error }) (*models.Design, error) {
	var d models.Design
	err := scanner.Scan(
		&d.ID, &d.Title, &d.Description, &d.ImageURL, &d.Category,
		&d.Code, &d.Slug, &d.Prompt, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Insert commits a new design row and returns it with the store-assigned
// id and creation timestamp.
func (s *DesignStore) Insert(ctx context.Context, d *models.Design) (*models.Design, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO designs (title, description, image_url, category, code, slug, prompt)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+designColumns,
		d.Title, d.Description, d.ImageURL, d.Category, d.Code, d.Slug, d.Prompt,
	)
	stored, err := scanDesign(row)
	if err != nil {
		return nil, fmt.Errorf("insert design: %w", err)
	}
	return stored, nil
}

// ListPage returns designs ordered by creation date ascending, with
// stable pagination for the startup fingerprint scan.
func (s *DesignStore) ListPage(ctx context.Context, limit, offset int) ([]models.Design, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+designColumns+`
		FROM designs
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()

	var items []models.Design
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan design: %w", err)
		}
		items = append(items, *d)
	}
	return items, rows.Err()
}

// Count returns the total number of committed designs. The orchestrator
// seeds its gallery running index from this value.
func (s *DesignStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM designs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count designs: %w", err)
	}
	return count, nil
}

// IsUniqueViolation reports whether the error is a Postgres unique
// constraint violation — in this schema, only the slug index can raise
// one. The committer uses this to distinguish a slug race (retryable
// with a fresh slug) from any other insert failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
