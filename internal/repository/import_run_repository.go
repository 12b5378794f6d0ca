package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dev-modakk/modakk-backend/internal/domain"
)

// PostgresImportRunRepository implements ImportRunRepository using PostgreSQL.
type PostgresImportRunRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresImportRunRepository creates a new PostgresImportRunRepository.
func NewPostgresImportRunRepository(pool *pgxpool.Pool) *PostgresImportRunRepository {
	return &PostgresImportRunRepository{pool: pool}
}

// CreateImportRun records a new import run.
func (r *PostgresImportRunRepository) CreateImportRun(ctx context.Context, run *domain.ImportRun) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO import_runs (id, resource_type, file_name, status, total_rows,
			success_count, error_count, error_message, request_id, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, run.ID, run.ResourceType, run.FileName, run.Status, run.TotalRows,
		run.SuccessCount, run.ErrorCount, run.ErrorMessage, run.RequestID, run.CreatedAt, run.CompletedAt)

	if err != nil {
		return fmt.Errorf("insert import run: %w", err)
	}

	return nil
}

// GetImportRun retrieves an import run by ID.
func (r *PostgresImportRunRepository) GetImportRun(ctx context.Context, id string) (*domain.ImportRun, error) {
	var run domain.ImportRun

	err := r.pool.QueryRow(ctx, `
		SELECT id, resource_type, file_name, status, total_rows,
			success_count, error_count, error_message, request_id, created_at, completed_at
		FROM import_runs
		WHERE id = $1
	`, id).Scan(&run.ID, &run.ResourceType, &run.FileName, &run.Status, &run.TotalRows,
		&run.SuccessCount, &run.ErrorCount, &run.ErrorMessage, &run.RequestID, &run.CreatedAt, &run.CompletedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get import run: %w", err)
	}

	return &run, nil
}

// UpdateImportRun stores the final counters and status of an import run.
func (r *PostgresImportRunRepository) UpdateImportRun(ctx context.Context, run *domain.ImportRun) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE import_runs
		SET status = $2, total_rows = $3, success_count = $4, error_count = $5,
			error_message = $6, completed_at = $7
		WHERE id = $1
	`, run.ID, run.Status, run.TotalRows, run.SuccessCount, run.ErrorCount,
		run.ErrorMessage, run.CompletedAt)

	if err != nil {
		return fmt.Errorf("update import run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
