package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/repository"
	"github.com/dev-modakk/modakk-backend/internal/service"
	"github.com/dev-modakk/modakk-backend/internal/tabular"
	"github.com/dev-modakk/modakk-backend/internal/validator"
)

func newCarouselService() (*service.CarouselService, *repository.MemoryImportRunRepository) {
	runs := repository.NewMemoryImportRunRepository()
	return service.NewCarouselService(repository.NewMemoryCarouselRepository(), runs, validator.NewValidator()), runs
}

func slide(i int) domain.Slide {
	return domain.Slide{
		Image:       fmt.Sprintf("https://cdn.example.com/slide-%d.webp", i),
		Title:       fmt.Sprintf("Slide %d", i),
		Description: "Seasonal collection",
	}
}

func carouselCSV(slides ...domain.Slide) []byte {
	var b strings.Builder
	b.WriteString("Image URL,Title,Description\n")
	for _, s := range slides {
		fmt.Fprintf(&b, "%s,%s,%s\n", s.Image, s.Title, s.Description)
	}
	return []byte(b.String())
}

func TestCarouselService_CreateGetPut(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCarouselService()

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	created, err := svc.Create(ctx, []domain.Slide{slide(1), slide(2)})
	require.NoError(t, err)
	assert.Len(t, created.Slides, 2)

	_, err = svc.Create(ctx, []domain.Slide{slide(3)})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	replaced, wasCreated, err := svc.Put(ctx, []domain.Slide{slide(4)})
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, []domain.Slide{slide(4)}, replaced.Slides)
}

func TestCarouselService_PutCreatesWhenAbsent(t *testing.T) {
	svc, _ := newCarouselService()

	c, created, err := svc.Put(context.Background(), []domain.Slide{slide(1)})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, c.ID)
}

func TestCarouselService_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		slides []domain.Slide
	}{
		{name: "empty", slides: nil},
		{name: "too many", slides: []domain.Slide{slide(1), slide(2), slide(3), slide(4), slide(5), slide(6), slide(7), slide(8)}},
		{name: "non image url", slides: []domain.Slide{{Image: "https://cdn.example.com/page", Title: "t", Description: "d"}}},
		{name: "blank title", slides: []domain.Slide{{Image: "https://cdn.example.com/a.png", Description: "d"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCarouselService()
			_, err := svc.Create(ctx, tt.slides)
			var fe validator.FieldErrors
			assert.ErrorAs(t, err, &fe)
			_, _, err = svc.Put(ctx, tt.slides)
			assert.ErrorAs(t, err, &fe)
		})
	}
}

func TestCarouselService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("eight distinct slides are rejected", func(t *testing.T) {
		svc, _ := newCarouselService()
		var slides []domain.Slide
		for i := 1; i <= 8; i++ {
			slides = append(slides, slide(i))
		}

		_, _, err := svc.Import(ctx, carouselCSV(slides...), "carousel.csv", "req-c1")
		var fileErr *tabular.FileError
		require.ErrorAs(t, err, &fileErr)

		_, err = svc.Get(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate image collapses to seven slides", func(t *testing.T) {
		svc, _ := newCarouselService()
		var slides []domain.Slide
		for i := 1; i <= 7; i++ {
			slides = append(slides, slide(i))
		}
		dup := slide(3)
		dup.Title = "Repeated"
		slides = append(slides, dup)

		c, created, err := svc.Import(ctx, carouselCSV(slides...), "carousel.csv", "req-c2")
		require.NoError(t, err)
		assert.True(t, created)
		require.Len(t, c.Slides, 7)
		assert.Equal(t, "Slide 3", c.Slides[2].Title, "first occurrence wins")

		_, created, err = svc.Import(ctx, carouselCSV(slide(9)), "carousel.csv", "req-c3")
		require.NoError(t, err)
		assert.False(t, created)

		got, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Slide{slide(9)}, got.Slides)
	})

	t.Run("invalid rows are reported with line numbers", func(t *testing.T) {
		svc, _ := newCarouselService()
		bad := slide(2)
		bad.Image = "https://cdn.example.com/not-an-image"
		bad.Title = ""

		_, _, err := svc.Import(ctx, carouselCSV(slide(1), bad), "carousel.csv", "req-c4")
		var rowErrs service.SlideErrors
		require.ErrorAs(t, err, &rowErrs)
		require.Len(t, rowErrs, 1)
		assert.Equal(t, 3, rowErrs[0].Row)
		assert.Contains(t, rowErrs[0].Error, "image")
		assert.Contains(t, rowErrs[0].Error, "; title")

		_, err = svc.Get(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		svc, _ := newCarouselService()
		_, _, err := svc.Import(ctx, []byte("x"), "carousel.txt", "req-c5")
		var fileErr *tabular.FileError
		assert.ErrorAs(t, err, &fileErr)
	})
}
