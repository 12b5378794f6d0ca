package repository

import (
	"context"

	"github.com/dev-modakk/modakk-backend/internal/domain"
)

// GiftBoxRepository defines methods for gift box data access. Lookups
// return nil, nil when no record matches.
type GiftBoxRepository interface {
	Create(ctx context.Context, g *domain.GiftBox) error
	GetByID(ctx context.Context, id string) (*domain.GiftBox, error)
	GetByDisplayID(ctx context.Context, displayID string) (*domain.GiftBox, error)
	List(ctx context.Context, category domain.Category) ([]domain.GiftBox, error)
	Browse(ctx context.Context, q domain.BrowseQuery) ([]domain.GiftBox, int, error)
	Update(ctx context.Context, g *domain.GiftBox) error
	Delete(ctx context.Context, id string) error
	StreamAll(ctx context.Context, callback func(domain.GiftBox) error) error

	// DisplayIDExists and NextSequence back the identifier generator.
	DisplayIDExists(ctx context.Context, displayID string) (bool, error)
	NextSequence(ctx context.Context, prefix string) (int, error)
}

// CarouselRepository defines methods for carousel data access.
type CarouselRepository interface {
	// Latest returns the most recently created carousel.
	Latest(ctx context.Context) (*domain.Carousel, error)
	Create(ctx context.Context, c *domain.Carousel) error
	UpdateSlides(ctx context.Context, c *domain.Carousel) error
}

// ImportRunRepository defines methods for import run data access.
type ImportRunRepository interface {
	CreateImportRun(ctx context.Context, run *domain.ImportRun) error
	GetImportRun(ctx context.Context, id string) (*domain.ImportRun, error)
	UpdateImportRun(ctx context.Context, run *domain.ImportRun) error
}
