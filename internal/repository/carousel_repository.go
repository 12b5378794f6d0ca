package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dev-modakk/modakk-backend/internal/domain"
)

// PostgresCarouselRepository implements CarouselRepository using PostgreSQL.
type PostgresCarouselRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCarouselRepository creates a new PostgresCarouselRepository.
func NewPostgresCarouselRepository(pool *pgxpool.Pool) *PostgresCarouselRepository {
	return &PostgresCarouselRepository{pool: pool}
}

// Latest retrieves the most recently created carousel.
func (r *PostgresCarouselRepository) Latest(ctx context.Context) (*domain.Carousel, error) {
	var (
		c      domain.Carousel
		slides []byte
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, slides, created_at, updated_at
		FROM carousels
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&c.ID, &slides, &c.CreatedAt, &c.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get carousel: %w", err)
	}

	if err := json.Unmarshal(slides, &c.Slides); err != nil {
		return nil, fmt.Errorf("unmarshal slides: %w", err)
	}
	return &c, nil
}

// Create inserts a new carousel.
func (r *PostgresCarouselRepository) Create(ctx context.Context, c *domain.Carousel) error {
	slides, err := json.Marshal(c.Slides)
	if err != nil {
		return fmt.Errorf("marshal slides: %w", err)
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO carousels (id, slides, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING created_at, updated_at
	`, c.ID, slides).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert carousel: %w", err)
	}
	return nil
}

// UpdateSlides replaces the slides of an existing carousel.
func (r *PostgresCarouselRepository) UpdateSlides(ctx context.Context, c *domain.Carousel) error {
	slides, err := json.Marshal(c.Slides)
	if err != nil {
		return fmt.Errorf("marshal slides: %w", err)
	}

	err = r.pool.QueryRow(ctx, `
		UPDATE carousels SET slides = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, c.ID, slides).Scan(&c.CreatedAt, &c.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update carousel: %w", err)
	}
	return nil
}
