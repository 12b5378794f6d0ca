package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dev-modakk/modakk-backend/internal/domain"
)

const giftBoxColumns = `id, display_id, name, description, price, image, badge, rating, reviews,
	is_wishlisted, is_sold_out, category, images, created_at, updated_at`

// displayIDConstraint is the unique constraint on gift_boxes.display_id.
const displayIDConstraint = "gift_boxes_display_id_key"

var browseOrder = map[domain.SortOrder]string{
	domain.SortPriceAsc:   "price ASC, created_at DESC, id",
	domain.SortPriceDesc:  "price DESC, created_at DESC, id",
	domain.SortRatingDesc: "rating DESC, reviews DESC, created_at DESC, id",
	domain.SortNewest:     "created_at DESC, id",
	domain.SortFeatured:   "is_wishlisted DESC, rating DESC, reviews DESC, created_at DESC, id",
}

// PostgresGiftBoxRepository implements GiftBoxRepository using PostgreSQL.
type PostgresGiftBoxRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresGiftBoxRepository creates a new PostgresGiftBoxRepository.
func NewPostgresGiftBoxRepository(pool *pgxpool.Pool) *PostgresGiftBoxRepository {
	return &PostgresGiftBoxRepository{pool: pool}
}

// Create inserts a gift box. A display ID collision is reported as
// domain.ErrDuplicateDisplayID.
func (r *PostgresGiftBoxRepository) Create(ctx context.Context, g *domain.GiftBox) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO gift_boxes (id, display_id, name, description, price, image, badge, rating, reviews,
			is_wishlisted, is_sold_out, category, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING created_at, updated_at
	`, g.ID, g.DisplayID, g.Name, g.Description, g.Price, g.Image, g.Badge, g.Rating, g.Reviews,
		g.IsWishlisted, g.IsSoldOut, string(g.Category), imagesOrEmpty(g.Images),
	).Scan(&g.CreatedAt, &g.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == displayIDConstraint {
			return fmt.Errorf("insert gift box %s: %w", g.DisplayID, domain.ErrDuplicateDisplayID)
		}
		return fmt.Errorf("insert gift box: %w", err)
	}

	return nil
}

// GetByID retrieves a gift box by storage key.
func (r *PostgresGiftBoxRepository) GetByID(ctx context.Context, id string) (*domain.GiftBox, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByDisplayID retrieves a gift box by display ID.
func (r *PostgresGiftBoxRepository) GetByDisplayID(ctx context.Context, displayID string) (*domain.GiftBox, error) {
	return r.getOne(ctx, "display_id = $1", displayID)
}

func (r *PostgresGiftBoxRepository) getOne(ctx context.Context, where string, arg any) (*domain.GiftBox, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+giftBoxColumns+` FROM gift_boxes WHERE `+where, arg)

	g, err := scanGiftBox(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get gift box: %w", err)
	}
	return g, nil
}

// List returns gift boxes newest first, optionally filtered by category.
func (r *PostgresGiftBoxRepository) List(ctx context.Context, category domain.Category) ([]domain.GiftBox, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+giftBoxColumns+`
		FROM gift_boxes
		WHERE ($1::text = '' OR category = $1::text)
		ORDER BY created_at DESC, id
	`, string(category))
	if err != nil {
		return nil, fmt.Errorf("list gift boxes: %w", err)
	}
	defer rows.Close()

	return collectGiftBoxes(rows)
}

// Browse returns one page of gift boxes and the total number of matches.
func (r *PostgresGiftBoxRepository) Browse(ctx context.Context, q domain.BrowseQuery) ([]domain.GiftBox, int, error) {
	where := `($1::text = '' OR name ILIKE '%' || $1::text || '%' OR description ILIKE '%' || $1::text || '%')
		AND ($2::text = '' OR category = $2::text)`
	args := []any{escapeLike(q.Query), string(q.Category)}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM gift_boxes WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count gift boxes: %w", err)
	}

	order, ok := browseOrder[q.Sort]
	if !ok {
		order = browseOrder[domain.SortFeatured]
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+giftBoxColumns+`
		FROM gift_boxes
		WHERE `+where+`
		ORDER BY `+order+`
		LIMIT $3 OFFSET $4
	`, append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("browse gift boxes: %w", err)
	}
	defer rows.Close()

	items, err := collectGiftBoxes(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update overwrites every mutable field of a gift box.
func (r *PostgresGiftBoxRepository) Update(ctx context.Context, g *domain.GiftBox) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE gift_boxes
		SET name = $2, description = $3, price = $4, image = $5, badge = $6, rating = $7,
			reviews = $8, is_wishlisted = $9, is_sold_out = $10, category = $11, images = $12,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, g.ID, g.Name, g.Description, g.Price, g.Image, g.Badge, g.Rating,
		g.Reviews, g.IsWishlisted, g.IsSoldOut, string(g.Category), imagesOrEmpty(g.Images),
	).Scan(&g.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update gift box: %w", err)
	}
	return nil
}

// Delete removes a gift box by storage key.
func (r *PostgresGiftBoxRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM gift_boxes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gift box: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// StreamAll streams every gift box, oldest first, to callback.
func (r *PostgresGiftBoxRepository) StreamAll(ctx context.Context, callback func(domain.GiftBox) error) error {
	rows, err := r.pool.Query(ctx, `SELECT `+giftBoxColumns+` FROM gift_boxes ORDER BY created_at, id`)
	if err != nil {
		return fmt.Errorf("query gift boxes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		g, err := scanGiftBox(rows)
		if err != nil {
			return fmt.Errorf("scan gift box: %w", err)
		}
		if err := callback(*g); err != nil {
			return err
		}
	}

	return rows.Err()
}

// DisplayIDExists reports whether any gift box carries displayID.
func (r *PostgresGiftBoxRepository) DisplayIDExists(ctx context.Context, displayID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM gift_boxes WHERE display_id = $1)`, displayID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check display id: %w", err)
	}
	return exists, nil
}

// NextSequence reserves the next sequence number for a sequential display ID
// prefix. The counter row is seeded from the highest existing ID on first use
// and incremented atomically afterwards.
func (r *PostgresGiftBoxRepository) NextSequence(ctx context.Context, prefix string) (int, error) {
	var next int
	err := r.pool.QueryRow(ctx, `
		INSERT INTO display_id_sequences (prefix, last_value)
		VALUES ($1, COALESCE((
			SELECT MAX(CASE WHEN RIGHT(display_id, 4) ~ '^[0-9]{4}$' THEN RIGHT(display_id, 4)::INTEGER END)
			FROM gift_boxes
			WHERE display_id LIKE $1::text || '-____'
		), 0) + 1)
		ON CONFLICT (prefix) DO UPDATE SET last_value = display_id_sequences.last_value + 1
		RETURNING last_value
	`, prefix).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return next, nil
}

func scanGiftBox(row pgx.Row) (*domain.GiftBox, error) {
	var (
		g        domain.GiftBox
		category string
	)
	err := row.Scan(&g.ID, &g.DisplayID, &g.Name, &g.Description, &g.Price, &g.Image, &g.Badge,
		&g.Rating, &g.Reviews, &g.IsWishlisted, &g.IsSoldOut, &category, &g.Images,
		&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	g.Category = domain.Category(strings.TrimSpace(category))
	if g.Images == nil {
		g.Images = []string{}
	}
	return &g, nil
}

func collectGiftBoxes(rows pgx.Rows) ([]domain.GiftBox, error) {
	items := []domain.GiftBox{}
	for rows.Next() {
		g, err := scanGiftBox(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gift box: %w", err)
		}
		items = append(items, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gift boxes: %w", err)
	}
	return items, nil
}

func imagesOrEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

// escapeLike escapes LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
