package service

import (
	"context"

	"github.com/dev-modakk/modakk-backend/internal/domain"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// GiftBoxServiceInterface defines gift box catalog operations.
// Used for dependency injection and mocking in tests.
type GiftBoxServiceInterface interface {
	Create(ctx context.Context, in domain.GiftBoxInput) (*domain.GiftBox, error)
	// Get resolves ref as a display ID first, then as a storage key.
	Get(ctx context.Context, ref string) (*domain.GiftBox, error)
	List(ctx context.Context, category string) ([]domain.GiftBox, error)
	Browse(ctx context.Context, q domain.BrowseQuery) (*domain.BrowsePage, error)
	Update(ctx context.Context, ref string, patch domain.GiftBoxPatch) (*domain.GiftBox, error)
	Delete(ctx context.Context, ref string) error
	AddImages(ctx context.Context, ref string, urls []string) (*domain.GiftBox, error)
	ReplaceImages(ctx context.Context, ref string, urls []string) (*domain.GiftBox, error)
	RemoveImages(ctx context.Context, ref string, urls []string) (*domain.GiftBox, error)
	// Export streams every gift box to writer and returns the record count.
	Export(ctx context.Context, format string, writer StreamWriter) (int, error)
}

// ImportServiceInterface defines bulk import operations.
type ImportServiceInterface interface {
	ImportGiftBoxes(ctx context.Context, data []byte, fileName, requestID string) (*domain.ImportReport, error)
	GetImportRun(ctx context.Context, id string) (*domain.ImportRun, error)
}

// CarouselServiceInterface defines homepage carousel operations.
type CarouselServiceInterface interface {
	Get(ctx context.Context) (*domain.Carousel, error)
	Create(ctx context.Context, slides []domain.Slide) (*domain.Carousel, error)
	// Put replaces the current carousel, creating one if none exists.
	Put(ctx context.Context, slides []domain.Slide) (*domain.Carousel, bool, error)
	Import(ctx context.Context, data []byte, fileName, requestID string) (*domain.Carousel, bool, error)
}

var (
	_ GiftBoxServiceInterface  = (*GiftBoxService)(nil)
	_ ImportServiceInterface   = (*ImportService)(nil)
	_ CarouselServiceInterface = (*CarouselService)(nil)
)
