package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dev-modakk/modakk-backend/internal/cache"
	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/identifier"
	"github.com/dev-modakk/modakk-backend/internal/logger"
	"github.com/dev-modakk/modakk-backend/internal/metrics"
	"github.com/dev-modakk/modakk-backend/internal/repository"
	"github.com/dev-modakk/modakk-backend/internal/tabular"
	"github.com/dev-modakk/modakk-backend/internal/validator"
)

// Export formats.
const (
	FormatCSV    = "csv"
	FormatNDJSON = "ndjson"
)

// ErrUnsupportedFormat is returned for an unknown export format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// GiftBoxService implements the gift box catalog.
type GiftBoxService struct {
	repo      repository.GiftBoxRepository
	ids       *identifier.Generator
	validator *validator.Validator
	cache     cache.BrowseCache
}

// NewGiftBoxService creates a new GiftBoxService. A nil cache disables caching.
func NewGiftBoxService(
	repo repository.GiftBoxRepository,
	ids *identifier.Generator,
	v *validator.Validator,
	browseCache cache.BrowseCache,
) *GiftBoxService {
	if browseCache == nil {
		browseCache = cache.Nop{}
	}
	return &GiftBoxService{
		repo:      repo,
		ids:       ids,
		validator: v,
		cache:     browseCache,
	}
}

// Create validates in and stores it under a sequential display ID.
func (s *GiftBoxService) Create(ctx context.Context, in domain.GiftBoxInput) (*domain.GiftBox, error) {
	if in.Category == "" {
		in.Category = domain.DefaultCategory
	}
	if in.Images == nil {
		in.Images = []string{}
	}
	if err := s.validator.ValidateGiftBox(&in); err != nil {
		return nil, err
	}

	displayID, err := s.ids.Sequential(ctx, in.Category)
	if err != nil {
		return nil, fmt.Errorf("generate display id: %w", err)
	}

	g := &domain.GiftBox{
		ID:           uuid.New().String(),
		DisplayID:    displayID,
		GiftBoxInput: in,
	}
	err = s.repo.Create(ctx, g)
	if errors.Is(err, domain.ErrDuplicateDisplayID) {
		metrics.IDCollisions.WithLabelValues(string(identifier.SchemeSequential)).Inc()
		g.DisplayID = s.ids.Timestamp()
		err = s.repo.Create(ctx, g)
	}
	if err != nil {
		return nil, fmt.Errorf("create gift box: %w", err)
	}

	s.invalidate(ctx)
	return g, nil
}

// Get resolves ref as a display ID, then as a UUID storage key.
func (s *GiftBoxService) Get(ctx context.Context, ref string) (*domain.GiftBox, error) {
	var (
		g   *domain.GiftBox
		err error
	)
	switch {
	case s.ids.IsValidID(ref):
		g, err = s.repo.GetByDisplayID(ctx, ref)
	case uuid.Validate(ref) == nil:
		g, err = s.repo.GetByID(ctx, ref)
	default:
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

// List returns every gift box, newest first. An empty category lists all.
func (s *GiftBoxService) List(ctx context.Context, category string) ([]domain.GiftBox, error) {
	if category != "" && !domain.IsValidCategory(category) {
		return nil, validator.FieldErrors{{Field: "category", Message: "must be a valid category"}}
	}
	return s.repo.List(ctx, domain.Category(category))
}

// Browse returns one storefront page, served from the cache when possible.
func (s *GiftBoxService) Browse(ctx context.Context, q domain.BrowseQuery) (*domain.BrowsePage, error) {
	if page, ok := s.cache.Get(ctx, q); ok {
		return page, nil
	}

	items, total, err := s.repo.Browse(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("browse gift boxes: %w", err)
	}

	page := domain.NewBrowsePage(q, items, total)
	s.cache.Set(ctx, q, page)
	return page, nil
}

// Update applies a partial update.
func (s *GiftBoxService) Update(ctx context.Context, ref string, patch domain.GiftBoxPatch) (*domain.GiftBox, error) {
	if err := s.validator.ValidatePatch(&patch); err != nil {
		return nil, err
	}
	return s.mutate(ctx, ref, func(g *domain.GiftBox) error {
		*g = patch.Apply(*g)
		return nil
	})
}

// Delete removes a gift box.
func (s *GiftBoxService) Delete(ctx context.Context, ref string) error {
	g, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, g.ID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// AddImages appends urls to the gallery, skipping ones already present.
// A gallery that would exceed domain.MaxGalleryImages is rejected.
func (s *GiftBoxService) AddImages(ctx context.Context, ref string, urls []string) (*domain.GiftBox, error) {
	if err := s.validator.ValidateImageURLs(urls); err != nil {
		return nil, err
	}
	return s.mutate(ctx, ref, func(g *domain.GiftBox) error {
		merged := dedupe(append(append([]string{}, g.Images...), urls...))
		if len(merged) > domain.MaxGalleryImages {
			return domain.ErrTooManyImages
		}
		g.Images = merged
		return nil
	})
}

// ReplaceImages sets the gallery to the distinct urls.
func (s *GiftBoxService) ReplaceImages(ctx context.Context, ref string, urls []string) (*domain.GiftBox, error) {
	if err := s.validator.ValidateImageURLs(urls); err != nil {
		return nil, err
	}
	return s.mutate(ctx, ref, func(g *domain.GiftBox) error {
		g.Images = dedupe(urls)
		return nil
	})
}

// RemoveImages drops urls from the gallery.
func (s *GiftBoxService) RemoveImages(ctx context.Context, ref string, urls []string) (*domain.GiftBox, error) {
	if len(urls) == 0 {
		return nil, validator.FieldErrors{{Field: "images", Message: "must contain at least one URL"}}
	}
	remove := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		remove[u] = struct{}{}
	}
	return s.mutate(ctx, ref, func(g *domain.GiftBox) error {
		kept := []string{}
		for _, u := range g.Images {
			if _, drop := remove[u]; !drop {
				kept = append(kept, u)
			}
		}
		g.Images = kept
		return nil
	})
}

func (s *GiftBoxService) mutate(ctx context.Context, ref string, change func(*domain.GiftBox) error) (*domain.GiftBox, error) {
	g, err := s.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := change(g); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return g, nil
}

func (s *GiftBoxService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate browse cache", "error", err)
	}
}

// Export streams every gift box, oldest first, as CSV in template column
// order or as NDJSON cards.
func (s *GiftBoxService) Export(ctx context.Context, format string, writer StreamWriter) (int, error) {
	if format != FormatCSV && format != FormatNDJSON {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	start := time.Now()
	metrics.StartStreamingExport(domain.ResourceGiftBoxes)

	var (
		count int
		err   error
	)
	if format == FormatCSV {
		count, err = s.exportCSV(ctx, writer)
	} else {
		count, err = s.exportNDJSON(ctx, writer)
	}

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.EndStreamingExport(domain.ResourceGiftBoxes, format, result, time.Since(start).Seconds(), count)

	if err != nil {
		return count, fmt.Errorf("stream gift boxes: %w", err)
	}
	return count, nil
}

func (s *GiftBoxService) exportCSV(ctx context.Context, writer StreamWriter) (int, error) {
	var count int
	csvWriter := tabular.NewProductCSVWriter(streamAdapter{writer})
	if err := csvWriter.WriteHeader(); err != nil {
		return 0, err
	}

	err := s.repo.StreamAll(ctx, func(g domain.GiftBox) error {
		if err := csvWriter.Write(g.GiftBoxInput); err != nil {
			return err
		}
		count++
		if count%flushEvery == 0 {
			if err := csvWriter.Flush(); err != nil {
				return err
			}
			writer.Flush()
		}
		return nil
	})
	if err != nil {
		return count, err
	}
	if err := csvWriter.Flush(); err != nil {
		return count, err
	}
	writer.Flush()
	return count, nil
}

func (s *GiftBoxService) exportNDJSON(ctx context.Context, writer StreamWriter) (int, error) {
	var count int
	err := s.repo.StreamAll(ctx, func(g domain.GiftBox) error {
		data, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		if err := writer.Write(append(data, '\n')); err != nil {
			return err
		}
		count++
		if count%flushEvery == 0 {
			writer.Flush()
		}
		return nil
	})
	writer.Flush()
	return count, err
}

// flushEvery is the number of exported records between flushes.
const flushEvery = 100

// streamAdapter exposes a StreamWriter as an io.Writer.
type streamAdapter struct {
	w StreamWriter
}

func (a streamAdapter) Write(p []byte) (int, error) {
	if err := a.w.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// dedupe keeps the first occurrence of every string.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
