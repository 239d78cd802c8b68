package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// documentID is the key of the single progress document row.
const documentID = 1

// ProgressDocumentRepository stores the whole progress document in one JSONB row.
type ProgressDocumentRepository struct {
	db *pgxpool.Pool
}

// NewProgressDocumentRepository creates a new ProgressDocumentRepository with the provided database pool.
func NewProgressDocumentRepository(db *pgxpool.Pool) *ProgressDocumentRepository {
	return &ProgressDocumentRepository{db: db}
}

// Migrate creates the document table if it does not exist.
func (r *ProgressDocumentRepository) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS progress_documents (
			id         SMALLINT PRIMARY KEY,
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return nil
}

// Load returns the stored document, or nil if the row does not exist yet.
func (r *ProgressDocumentRepository) Load(ctx context.Context) ([]byte, error) {
	query := `SELECT document FROM progress_documents WHERE id = $1`

	var data []byte
	err := r.db.QueryRow(ctx, query, documentID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load: %w", err)
	}

	return data, nil
}

// Save overwrites the document row.
func (r *ProgressDocumentRepository) Save(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO progress_documents (id, document, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id)
		DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(ctx, query, documentID, string(data)); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	return nil
}
