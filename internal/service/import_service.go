package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dev-modakk/modakk-backend/internal/cache"
	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/identifier"
	"github.com/dev-modakk/modakk-backend/internal/logger"
	"github.com/dev-modakk/modakk-backend/internal/metrics"
	"github.com/dev-modakk/modakk-backend/internal/repository"
	"github.com/dev-modakk/modakk-backend/internal/tabular"
	"github.com/dev-modakk/modakk-backend/internal/validator"
)

const (
	// DefaultBatchSize is the number of rows processed per batch.
	DefaultBatchSize = 100
	// DefaultConcurrency bounds in-flight creates within a batch.
	DefaultConcurrency = 16

	// maxIDAttempts is the number of time-based IDs tried per row before the
	// timestamp fallback.
	maxIDAttempts = 3

	// ErrorSlicePreallocSize is the initial capacity for error slices.
	ErrorSlicePreallocSize = 64

	msgCreateFailed = "failed to create gift box"
)

// ImportService handles bulk gift box imports.
type ImportService struct {
	repo      repository.GiftBoxRepository
	runs      repository.ImportRunRepository
	ids       *identifier.Generator
	validator *validator.Validator
	cache     cache.BrowseCache

	batchSize   int
	concurrency int
}

// NewImportService creates a new ImportService. Non-positive sizes select
// the defaults.
func NewImportService(
	repo repository.GiftBoxRepository,
	runs repository.ImportRunRepository,
	ids *identifier.Generator,
	v *validator.Validator,
	browseCache cache.BrowseCache,
	batchSize int,
	concurrency int,
) *ImportService {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if browseCache == nil {
		browseCache = cache.Nop{}
	}
	return &ImportService{
		repo:        repo,
		runs:        runs,
		ids:         ids,
		validator:   v,
		cache:       browseCache,
		batchSize:   batchSize,
		concurrency: concurrency,
	}
}

// ImportGiftBoxes parses a CSV or XLSX file and creates one gift box per data
// row. File-level problems are returned as *tabular.FileError before any row
// is processed; row-level problems are collected in the report. The import
// runs to completion even if ctx is cancelled.
func (s *ImportService) ImportGiftBoxes(ctx context.Context, data []byte, fileName, requestID string) (*domain.ImportReport, error) {
	ctx = context.WithoutCancel(ctx)
	timer := metrics.NewTimer()

	run := newImportRun(domain.ResourceGiftBoxes, fileName, requestID)
	if err := s.runs.CreateImportRun(ctx, run); err != nil {
		return nil, fmt.Errorf("create import run: %w", err)
	}
	log := logger.WithImportID(run.ID, requestID)
	log.InfoContext(ctx, "Starting gift box import", "file_name", fileName, "bytes", len(data))

	metrics.StartImport(domain.ResourceGiftBoxes)

	rows, err := parseProductFile(data, fileName)
	if err != nil {
		metrics.EndImport(domain.ResourceGiftBoxes, string(domain.JobStatusFailed), timer.Seconds(), 0, 0)
		failRun(ctx, s.runs, run, err, log)
		return nil, err
	}

	report := &domain.ImportReport{
		ImportID:  run.ID,
		TotalRows: len(rows),
		Errors:    make([]domain.RowError, 0, ErrorSlicePreallocSize),
		Imported:  make([]domain.ImportedRow, 0, len(rows)),
	}

	for offset := 0; offset < len(rows); offset += s.batchSize {
		end := min(offset+s.batchSize, len(rows))
		batchTimer := metrics.NewTimer()
		s.processBatch(ctx, rows[offset:end], offset, report)
		metrics.ObserveBatchDuration(domain.ResourceGiftBoxes, batchTimer)
		log.DebugContext(ctx, "Batch processed", "offset", offset, "rows", end-offset)
	}

	report.Success = report.ErrorCount == 0
	report.Duration = int64(timer.Seconds() * 1000)

	if report.SuccessCount > 0 {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.WarnContext(ctx, "Failed to invalidate browse cache", "error", err)
		}
	}

	status := report.Status()
	completeRun(ctx, s.runs, run, status, report.TotalRows, report.SuccessCount, report.ErrorCount, log)
	metrics.EndImport(domain.ResourceGiftBoxes, string(status), timer.Seconds(), report.SuccessCount, report.ErrorCount)

	log.InfoContext(ctx, "Gift box import completed",
		"status", status,
		"total", report.TotalRows,
		"success", report.SuccessCount,
		"errors", report.ErrorCount,
		"elapsed_ms", report.Duration)

	return report, nil
}

// processBatch validates and creates every row of one batch concurrently.
// Outcomes are appended to report as they resolve.
func (s *ImportService) processBatch(ctx context.Context, batch []tabular.RawRow, offset int, report *domain.ImportReport) {
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(s.concurrency)

	for idx, row := range batch {
		rowNum := offset + idx + 2
		g.Go(func() error {
			created, rowErr := s.importRow(ctx, row)

			mu.Lock()
			defer mu.Unlock()
			if rowErr != nil {
				report.ErrorCount++
				report.Errors = append(report.Errors, domain.RowError{
					Row:   rowNum,
					Data:  row.Strings(),
					Error: rowErr.Error(),
				})
				return nil
			}
			report.SuccessCount++
			report.Imported = append(report.Imported, domain.ImportedRow{
				Row:       rowNum,
				ID:        created.ID,
				DisplayID: created.DisplayID,
				Name:      created.Name,
			})
			return nil
		})
	}
	_ = g.Wait()
}

// importRow returns a user-facing error describing why the row was rejected.
func (s *ImportService) importRow(ctx context.Context, row tabular.RawRow) (*domain.GiftBox, error) {
	in, fieldErrs := validator.ValidateProductRow(row)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	g := &domain.GiftBox{
		ID:           uuid.New().String(),
		GiftBoxInput: in,
	}
	if err := s.createWithTimeBasedID(ctx, g); err != nil {
		logger.ErrorContext(ctx, "Failed to create gift box", "line", row.Line, "error", err)
		return nil, errors.New(msgCreateFailed)
	}
	return g, nil
}

func (s *ImportService) createWithTimeBasedID(ctx context.Context, g *domain.GiftBox) error {
	var err error
	for attempt := 0; attempt <= maxIDAttempts; attempt++ {
		if attempt < maxIDAttempts {
			g.DisplayID = s.ids.TimeBased(g.Category)
		} else {
			g.DisplayID = s.ids.Timestamp()
		}
		err = s.repo.Create(ctx, g)
		if !errors.Is(err, domain.ErrDuplicateDisplayID) {
			return err
		}
		metrics.IDCollisions.WithLabelValues(string(s.ids.Scheme(g.DisplayID))).Inc()
	}
	return err
}

// GetImportRun returns a recorded import run.
func (s *ImportService) GetImportRun(ctx context.Context, id string) (*domain.ImportRun, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrNotFound
	}
	run, err := s.runs.GetImportRun(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get import run: %w", err)
	}
	if run == nil {
		return nil, domain.ErrNotFound
	}
	return run, nil
}

func parseProductFile(data []byte, fileName string) ([]tabular.RawRow, error) {
	kind, err := tabular.DetectFileKind(fileName)
	if err != nil {
		return nil, err
	}
	rows, err := tabular.Parse(data, kind)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &tabular.FileError{Message: tabular.MsgEmptyFile}
	}
	return rows, nil
}

func newImportRun(resourceType, fileName, requestID string) *domain.ImportRun {
	return &domain.ImportRun{
		ID:           uuid.New().String(),
		ResourceType: resourceType,
		FileName:     fileName,
		Status:       domain.JobStatusProcessing,
		RequestID:    requestID,
		CreatedAt:    time.Now().UTC(),
	}
}

// completeRun stores the final counters. Failures are logged, not returned:
// the caller already holds the outcome.
func completeRun(ctx context.Context, runs repository.ImportRunRepository, run *domain.ImportRun,
	status domain.JobStatus, total, success, failed int, log *slog.Logger) {
	now := time.Now().UTC()
	run.Status = status
	run.TotalRows = total
	run.SuccessCount = success
	run.ErrorCount = failed
	run.CompletedAt = &now
	if err := runs.UpdateImportRun(ctx, run); err != nil {
		log.ErrorContext(ctx, "Failed to update import run", "error", err)
	}
}

func failRun(ctx context.Context, runs repository.ImportRunRepository, run *domain.ImportRun, cause error, log *slog.Logger) {
	msg := cause.Error()
	run.ErrorMessage = &msg
	completeRun(ctx, runs, run, domain.JobStatusFailed, 0, 0, 0, log)
	log.WarnContext(ctx, "Import rejected", "error", cause)
}
