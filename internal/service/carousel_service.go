package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/logger"
	"github.com/dev-modakk/modakk-backend/internal/metrics"
	"github.com/dev-modakk/modakk-backend/internal/repository"
	"github.com/dev-modakk/modakk-backend/internal/tabular"
	"github.com/dev-modakk/modakk-backend/internal/validator"
)

// SlideError describes one rejected carousel row.
type SlideError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// SlideErrors is returned when one or more carousel rows fail validation.
// Nothing is stored in that case.
type SlideErrors []SlideError

func (e SlideErrors) Error() string {
	return fmt.Sprintf("%d invalid carousel rows", len(e))
}

// CarouselService manages the homepage carousel.
type CarouselService struct {
	repo      repository.CarouselRepository
	runs      repository.ImportRunRepository
	validator *validator.Validator

	// mu serializes writes so create-if-absent and upsert see a stable latest row.
	mu sync.Mutex
}

// NewCarouselService creates a new CarouselService.
func NewCarouselService(repo repository.CarouselRepository, runs repository.ImportRunRepository, v *validator.Validator) *CarouselService {
	return &CarouselService{repo: repo, runs: runs, validator: v}
}

// Get returns the current carousel.
func (s *CarouselService) Get(ctx context.Context) (*domain.Carousel, error) {
	c, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("get carousel: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Create stores the first carousel. It fails with domain.ErrConflict once
// one exists.
func (s *CarouselService) Create(ctx context.Context, slides []domain.Slide) (*domain.Carousel, error) {
	if err := s.validator.ValidateSlides(slides); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("get carousel: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	return s.create(ctx, slides)
}

// Put replaces the slides of the current carousel, creating it if absent.
// created reports which happened.
func (s *CarouselService) Put(ctx context.Context, slides []domain.Slide) (*domain.Carousel, bool, error) {
	if err := s.validator.ValidateSlides(slides); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsert(ctx, slides)
}

// Import reads slides from a CSV or XLSX file and upserts the carousel. Rows
// failing validation are returned as SlideErrors and nothing is stored.
func (s *CarouselService) Import(ctx context.Context, data []byte, fileName, requestID string) (*domain.Carousel, bool, error) {
	ctx = context.WithoutCancel(ctx)
	timer := metrics.NewTimer()

	run := newImportRun(domain.ResourceCarousel, fileName, requestID)
	if err := s.runs.CreateImportRun(ctx, run); err != nil {
		return nil, false, fmt.Errorf("create import run: %w", err)
	}
	log := logger.WithImportID(run.ID, requestID)
	metrics.StartImport(domain.ResourceCarousel)

	finish := func(status domain.JobStatus, total, success, failed int) {
		completeRun(ctx, s.runs, run, status, total, success, failed, log)
		metrics.EndImport(domain.ResourceCarousel, string(status), timer.Seconds(), success, failed)
	}

	slides, err := s.readSlides(data, fileName)
	if err != nil {
		msg := err.Error()
		run.ErrorMessage = &msg
		total := 0
		if se, ok := err.(SlideErrors); ok {
			total = len(se)
		}
		finish(domain.JobStatusFailed, total, 0, total)
		log.WarnContext(ctx, "Carousel import rejected", "error", err)
		return nil, false, err
	}

	s.mu.Lock()
	c, created, err := s.upsert(ctx, slides)
	s.mu.Unlock()
	if err != nil {
		msg := err.Error()
		run.ErrorMessage = &msg
		finish(domain.JobStatusFailed, len(slides), 0, len(slides))
		return nil, false, err
	}

	finish(domain.JobStatusCompleted, len(slides), len(slides), 0)
	log.InfoContext(ctx, "Carousel imported", "slides", len(slides), "created", created)
	return c, created, nil
}

func (s *CarouselService) readSlides(data []byte, fileName string) ([]domain.Slide, error) {
	kind, err := tabular.DetectFileKind(fileName)
	if err != nil {
		return nil, err
	}
	rows, err := tabular.ParseCarousel(data, kind)
	if err != nil {
		return nil, err
	}

	slides := make([]domain.Slide, 0, len(rows))
	var invalid SlideErrors
	for _, row := range rows {
		slide := domain.Slide{Image: row.Image, Title: row.Title, Description: row.Description}
		if err := s.validator.ValidateSlide(slide); err != nil {
			invalid = append(invalid, SlideError{Row: row.Line, Error: slideMessage(err)})
			continue
		}
		slides = append(slides, slide)
	}
	if len(invalid) > 0 {
		return nil, invalid
	}
	return slides, nil
}

func slideMessage(err error) string {
	fe, ok := err.(validator.FieldErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, len(fe))
	for i, e := range fe {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}

// upsert must be called with mu held.
func (s *CarouselService) upsert(ctx context.Context, slides []domain.Slide) (*domain.Carousel, bool, error) {
	existing, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("get carousel: %w", err)
	}
	if existing == nil {
		c, err := s.create(ctx, slides)
		return c, true, err
	}

	existing.Slides = slides
	if err := s.repo.UpdateSlides(ctx, existing); err != nil {
		return nil, false, fmt.Errorf("update carousel: %w", err)
	}
	return existing, false, nil
}

func (s *CarouselService) create(ctx context.Context, slides []domain.Slide) (*domain.Carousel, error) {
	c := &domain.Carousel{
		ID:     uuid.New().String(),
		Slides: slides,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create carousel: %w", err)
	}
	return c, nil
}
