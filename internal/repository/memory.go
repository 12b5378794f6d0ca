package repository

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dev-modakk/modakk-backend/internal/domain"
)

// MemoryGiftBoxRepository is an in-process GiftBoxRepository. It backs the
// memory store driver and service tests.
type MemoryGiftBoxRepository struct {
	mu        sync.RWMutex
	items     map[string]domain.GiftBox
	byDisplay map[string]string
	sequences map[string]int
	now       func() time.Time

	lastCreated time.Time
}

// NewMemoryGiftBoxRepository creates an empty MemoryGiftBoxRepository.
func NewMemoryGiftBoxRepository() *MemoryGiftBoxRepository {
	return &MemoryGiftBoxRepository{
		items:     make(map[string]domain.GiftBox),
		byDisplay: make(map[string]string),
		sequences: make(map[string]int),
		now:       time.Now,
	}
}

// Create implements GiftBoxRepository.
func (r *MemoryGiftBoxRepository) Create(_ context.Context, g *domain.GiftBox) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.byDisplay[g.DisplayID]; dup {
		return fmt.Errorf("insert gift box %s: %w", g.DisplayID, domain.ErrDuplicateDisplayID)
	}
	if _, dup := r.items[g.ID]; dup {
		return fmt.Errorf("insert gift box %s: %w", g.ID, domain.ErrConflict)
	}

	// Creation times are strictly increasing so newest-first is stable.
	now := r.now()
	if !now.After(r.lastCreated) {
		now = r.lastCreated.Add(time.Microsecond)
	}
	r.lastCreated = now
	g.CreatedAt, g.UpdatedAt = now, now
	g.Images = cloneImages(g.Images)

	r.items[g.ID] = clone(*g)
	r.byDisplay[g.DisplayID] = g.ID
	return nil
}

// GetByID implements GiftBoxRepository.
func (r *MemoryGiftBoxRepository) GetByID(_ context.Context, id string) (*domain.GiftBox, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	out := clone(g)
	return &out, nil
}

// GetByDisplayID implements GiftBoxRepository.
func (r *MemoryGiftBoxRepository) GetByDisplayID(ctx context.Context, displayID string) (*domain.GiftBox, error) {
	r.mu.RLock()
	id, ok := r.byDisplay[displayID]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// List implements GiftBoxRepository.
func (r *MemoryGiftBoxRepository) List(_ context.Context, category domain.Category) ([]domain.GiftBox, error) {
	items := r.filter(func(g domain.GiftBox) bool {
		return category == "" || g.Category == category
	})
	sortGiftBoxes(items, domain.SortNewest)
	return items, nil
}

// Browse implements GiftBoxRepository.
func (r *MemoryGiftBoxRepository) Browse(_ context.Context, q domain.BrowseQuery) ([]domain.GiftBox, int, error) {
	needle := strings.ToLower(q.Query)
	items := r.filter(func(g domain.GiftBox) bool {
		if q.Category != "" && g.Category != q.Category {
			return false
		}
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(g.Name), needle) ||
			strings.Contains(strings.ToLower(g.Description), needle)
	})
	sortGiftBoxes(items, q.Sort)

	total := len(items)
	start := q.Offset()
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}
	return items[start:end], total, nil
}

// Update implements GiftBoxRepository.
func (r *MemoryGiftBoxRepository) Update(_ context.Context, g *domain.GiftBox) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[g.ID]
	if !ok {
		return domain.ErrNotFound
	}
	g.DisplayID = existing.DisplayID
	g.CreatedAt = existing.CreatedAt
	g.UpdatedAt = r.now()
	g.Images = cloneImages(g.Images)
	r.items[g.ID] = clone(*g)
	return nil
}

// Delete implements GiftBoxRepository.
func (r *MemoryGiftBoxRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	delete(r.byDisplay, g.DisplayID)
	return nil
}

// StreamAll implements GiftBoxRepository.
func (r *MemoryGiftBoxRepository) StreamAll(ctx context.Context, callback func(domain.GiftBox) error) error {
	items := r.filter(func(domain.GiftBox) bool { return true })
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	for _, g := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := callback(g); err != nil {
			return err
		}
	}
	return nil
}

// DisplayIDExists implements GiftBoxRepository.
func (r *MemoryGiftBoxRepository) DisplayIDExists(_ context.Context, displayID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byDisplay[displayID]
	return ok, nil
}

// NextSequence implements GiftBoxRepository.
func (r *MemoryGiftBoxRepository) NextSequence(_ context.Context, prefix string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, seeded := r.sequences[prefix]; !seeded {
		for displayID := range r.byDisplay {
			rest, ok := strings.CutPrefix(displayID, prefix+"-")
			if !ok || len(rest) != 4 {
				continue
			}
			if n, err := strconv.Atoi(rest); err == nil && n > r.sequences[prefix] {
				r.sequences[prefix] = n
			}
		}
	}
	r.sequences[prefix]++
	return r.sequences[prefix], nil
}

func (r *MemoryGiftBoxRepository) filter(keep func(domain.GiftBox) bool) []domain.GiftBox {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []domain.GiftBox{}
	for _, g := range r.items {
		if keep(g) {
			items = append(items, clone(g))
		}
	}
	return items
}

func sortGiftBoxes(items []domain.GiftBox, order domain.SortOrder) {
	newest := func(a, b domain.GiftBox) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch order {
		case domain.SortPriceAsc:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case domain.SortPriceDesc:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
		case domain.SortRatingDesc:
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			if a.Reviews != b.Reviews {
				return a.Reviews > b.Reviews
			}
		case domain.SortNewest:
		default:
			if a.IsWishlisted != b.IsWishlisted {
				return a.IsWishlisted
			}
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			if a.Reviews != b.Reviews {
				return a.Reviews > b.Reviews
			}
		}
		return newest(a, b)
	})
}

func clone(g domain.GiftBox) domain.GiftBox {
	g.Images = cloneImages(g.Images)
	if g.Badge != nil {
		badge := *g.Badge
		g.Badge = &badge
	}
	// NUMERIC(10,2) storage rounds prices to cents.
	g.Price = math.Round(g.Price*100) / 100
	return g
}

func cloneImages(images []string) []string {
	out := make([]string, len(images))
	copy(out, images)
	return out
}

// MemoryCarouselRepository is an in-process CarouselRepository.
type MemoryCarouselRepository struct {
	mu        sync.RWMutex
	carousels []domain.Carousel
	now       func() time.Time
}

// NewMemoryCarouselRepository creates an empty MemoryCarouselRepository.
func NewMemoryCarouselRepository() *MemoryCarouselRepository {
	return &MemoryCarouselRepository{now: time.Now}
}

// Latest implements CarouselRepository.
func (r *MemoryCarouselRepository) Latest(_ context.Context) (*domain.Carousel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.carousels) == 0 {
		return nil, nil
	}
	c := r.carousels[len(r.carousels)-1]
	c.Slides = append([]domain.Slide(nil), c.Slides...)
	return &c, nil
}

// Create implements CarouselRepository.
func (r *MemoryCarouselRepository) Create(_ context.Context, c *domain.Carousel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	c.CreatedAt, c.UpdatedAt = now, now
	stored := *c
	stored.Slides = append([]domain.Slide(nil), c.Slides...)
	r.carousels = append(r.carousels, stored)
	return nil
}

// UpdateSlides implements CarouselRepository.
func (r *MemoryCarouselRepository) UpdateSlides(_ context.Context, c *domain.Carousel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.carousels {
		if r.carousels[i].ID != c.ID {
			continue
		}
		r.carousels[i].Slides = append([]domain.Slide(nil), c.Slides...)
		r.carousels[i].UpdatedAt = r.now()
		c.CreatedAt, c.UpdatedAt = r.carousels[i].CreatedAt, r.carousels[i].UpdatedAt
		return nil
	}
	return domain.ErrNotFound
}

// MemoryImportRunRepository is an in-process ImportRunRepository.
type MemoryImportRunRepository struct {
	mu   sync.RWMutex
	runs map[string]domain.ImportRun
}

// NewMemoryImportRunRepository creates an empty MemoryImportRunRepository.
func NewMemoryImportRunRepository() *MemoryImportRunRepository {
	return &MemoryImportRunRepository{runs: make(map[string]domain.ImportRun)}
}

// CreateImportRun implements ImportRunRepository.
func (r *MemoryImportRunRepository) CreateImportRun(_ context.Context, run *domain.ImportRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.runs[run.ID]; dup {
		return fmt.Errorf("insert import run %s: %w", run.ID, domain.ErrConflict)
	}
	r.runs[run.ID] = *run
	return nil
}

// GetImportRun implements ImportRunRepository.
func (r *MemoryImportRunRepository) GetImportRun(_ context.Context, id string) (*domain.ImportRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, ok := r.runs[id]
	if !ok {
		return nil, nil
	}
	return &run, nil
}

// UpdateImportRun implements ImportRunRepository.
func (r *MemoryImportRunRepository) UpdateImportRun(_ context.Context, run *domain.ImportRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.runs[run.ID]; !ok {
		return domain.ErrNotFound
	}
	r.runs[run.ID] = *run
	return nil
}
