package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/repository"
)

func newGiftBox(displayID, name string, price, rating float64) *domain.GiftBox {
	return &domain.GiftBox{
		ID:        uuid.New().String(),
		DisplayID: displayID,
		GiftBoxInput: domain.GiftBoxInput{
			Name:        name,
			Description: name + " description",
			Price:       price,
			Image:       "https://cdn.example.com/" + displayID + ".jpg",
			Rating:      rating,
			Category:    domain.CategoryGiftBox,
			Images:      []string{},
		},
	}
}

// runGiftBoxRepositoryTests exercises behavior shared by every GiftBoxRepository.
// fresh must return an empty repository.
func runGiftBoxRepositoryTests(t *testing.T, fresh func(t *testing.T) repository.GiftBoxRepository) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		repo := fresh(t)
		badge := "Bestseller"
		g := newGiftBox("MDK-GB-25I001", "Unicorn Dreams", 49.99, 4.8)
		g.Badge = &badge
		g.Images = []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}

		require.NoError(t, repo.Create(ctx, g))
		assert.False(t, g.CreatedAt.IsZero())

		byID, err := repo.GetByID(ctx, g.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, g.DisplayID, byID.DisplayID)
		assert.Equal(t, "Unicorn Dreams", byID.Name)
		assert.InDelta(t, 49.99, byID.Price, 0.001)
		require.NotNil(t, byID.Badge)
		assert.Equal(t, "Bestseller", *byID.Badge)
		assert.Equal(t, domain.CategoryGiftBox, byID.Category)
		assert.Equal(t, g.Images, byID.Images)

		byDisplay, err := repo.GetByDisplayID(ctx, g.DisplayID)
		require.NoError(t, err)
		require.NotNil(t, byDisplay)
		assert.Equal(t, g.ID, byDisplay.ID)
	})

	t.Run("missing record returns nil", func(t *testing.T) {
		repo := fresh(t)

		got, err := repo.GetByID(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.GetByDisplayID(ctx, "MDK-GB-25I999")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate display id", func(t *testing.T) {
		repo := fresh(t)
		require.NoError(t, repo.Create(ctx, newGiftBox("MDK-GB-25I002", "First", 10, 4)))

		err := repo.Create(ctx, newGiftBox("MDK-GB-25I002", "Second", 10, 4))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateDisplayID)

		exists, err := repo.DisplayIDExists(ctx, "MDK-GB-25I002")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.DisplayIDExists(ctx, "MDK-GB-25I003")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("list filters by category newest first", func(t *testing.T) {
		repo := fresh(t)
		first := newGiftBox("MDK-GB-25I010", "First", 10, 4)
		toy := newGiftBox("MDK-TY-25I011", "Toy", 10, 4)
		toy.Category = domain.CategoryToy
		second := newGiftBox("MDK-GB-25I012", "Second", 10, 4)
		for _, g := range []*domain.GiftBox{first, toy, second} {
			require.NoError(t, repo.Create(ctx, g))
			time.Sleep(2 * time.Millisecond)
		}

		all, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, second.ID, all[0].ID)

		gb, err := repo.List(ctx, domain.CategoryGiftBox)
		require.NoError(t, err)
		require.Len(t, gb, 2)
		assert.Equal(t, []string{second.ID, first.ID}, []string{gb[0].ID, gb[1].ID})
	})

	t.Run("browse searches sorts and paginates", func(t *testing.T) {
		repo := fresh(t)
		for i, price := range []float64{30, 10, 20, 50, 40} {
			g := newGiftBox(fmt.Sprintf("MDK-GB-25I1%02d", i), fmt.Sprintf("Box %d", i), price, 4)
			require.NoError(t, repo.Create(ctx, g))
		}
		other := newGiftBox("MDK-BK-25I199", "Story Book", 5, 3)
		other.Category = domain.CategoryBook
		require.NoError(t, repo.Create(ctx, other))

		items, total, err := repo.Browse(ctx, domain.BrowseQuery{
			Page: 1, PageSize: 2, Query: "box", Category: domain.CategoryGiftBox, Sort: domain.SortPriceAsc,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, items, 2)
		assert.InDelta(t, 10, items[0].Price, 0.001)
		assert.InDelta(t, 20, items[1].Price, 0.001)

		items, total, err = repo.Browse(ctx, domain.BrowseQuery{
			Page: 3, PageSize: 2, Query: "BOX", Sort: domain.SortPriceAsc,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, items, 1)
		assert.InDelta(t, 50, items[0].Price, 0.001)

		items, total, err = repo.Browse(ctx, domain.BrowseQuery{Page: 1, PageSize: 10, Query: "100%"})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, items)
	})

	t.Run("browse featured puts wishlisted first", func(t *testing.T) {
		repo := fresh(t)
		plain := newGiftBox("MDK-GB-25I201", "Plain", 10, 5)
		wished := newGiftBox("MDK-GB-25I202", "Wished", 10, 1)
		wished.IsWishlisted = true
		require.NoError(t, repo.Create(ctx, plain))
		require.NoError(t, repo.Create(ctx, wished))

		items, _, err := repo.Browse(ctx, domain.BrowseQuery{Page: 1, PageSize: 10, Sort: domain.SortFeatured})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, wished.ID, items[0].ID)
	})

	t.Run("update and delete", func(t *testing.T) {
		repo := fresh(t)
		g := newGiftBox("MDK-GB-25I301", "Before", 10, 4)
		require.NoError(t, repo.Create(ctx, g))

		g.Name = "After"
		g.Images = []string{"https://cdn.example.com/new.jpg"}
		require.NoError(t, repo.Update(ctx, g))

		got, err := repo.GetByID(ctx, g.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "After", got.Name)
		assert.Equal(t, []string{"https://cdn.example.com/new.jpg"}, got.Images)

		require.NoError(t, repo.Delete(ctx, g.ID))
		assert.ErrorIs(t, repo.Delete(ctx, g.ID), domain.ErrNotFound)
		assert.ErrorIs(t, repo.Update(ctx, g), domain.ErrNotFound)
	})

	t.Run("stream all oldest first", func(t *testing.T) {
		repo := fresh(t)
		var want []string
		for i := 0; i < 3; i++ {
			g := newGiftBox(fmt.Sprintf("MDK-GB-25I40%d", i), "Box", 10, 4)
			require.NoError(t, repo.Create(ctx, g))
			want = append(want, g.ID)
			time.Sleep(2 * time.Millisecond)
		}

		var got []string
		err := repo.StreamAll(ctx, func(g domain.GiftBox) error {
			got = append(got, g.ID)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("next sequence seeds from existing ids", func(t *testing.T) {
		repo := fresh(t)
		require.NoError(t, repo.Create(ctx, newGiftBox("MDK-GB-25I-0041", "Box", 10, 4)))

		first, err := repo.NextSequence(ctx, "MDK-GB-25I")
		require.NoError(t, err)
		assert.Equal(t, 42, first)

		second, err := repo.NextSequence(ctx, "MDK-GB-25I")
		require.NoError(t, err)
		assert.Equal(t, 43, second)

		other, err := repo.NextSequence(ctx, "MDK-TY-25I")
		require.NoError(t, err)
		assert.Equal(t, 1, other)
	})

	t.Run("next sequence is unique under concurrency", func(t *testing.T) {
		repo := fresh(t)
		var (
			mu   sync.Mutex
			seen = make(map[int]bool)
			wg   sync.WaitGroup
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				n, err := repo.NextSequence(ctx, "MDK-GM-25I")
				assert.NoError(t, err)
				mu.Lock()
				seen[n] = true
				mu.Unlock()
			}()
		}
		wg.Wait()
		assert.Len(t, seen, 20)
	})
}

func runCarouselRepositoryTests(t *testing.T, fresh func(t *testing.T) repository.CarouselRepository) {
	ctx := context.Background()

	t.Run("latest on empty store", func(t *testing.T) {
		repo := fresh(t)
		got, err := repo.Latest(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("create then replace slides", func(t *testing.T) {
		repo := fresh(t)
		c := &domain.Carousel{
			ID:     uuid.New().String(),
			Slides: []domain.Slide{{Image: "https://cdn.example.com/1.jpg", Title: "One", Description: "First"}},
		}
		require.NoError(t, repo.Create(ctx, c))

		got, err := repo.Latest(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, c.Slides, got.Slides)

		c.Slides = []domain.Slide{
			{Image: "https://cdn.example.com/2.jpg", Title: "Two", Description: "Second"},
			{Image: "https://cdn.example.com/3.jpg", Title: "Three", Description: "Third"},
		}
		require.NoError(t, repo.UpdateSlides(ctx, c))

		got, err = repo.Latest(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, c.ID, got.ID)
		assert.Len(t, got.Slides, 2)
	})

	t.Run("update unknown carousel", func(t *testing.T) {
		repo := fresh(t)
		err := repo.UpdateSlides(ctx, &domain.Carousel{ID: uuid.New().String()})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func runImportRunRepositoryTests(t *testing.T, fresh func(t *testing.T) repository.ImportRunRepository) {
	ctx := context.Background()

	t.Run("create get and complete", func(t *testing.T) {
		repo := fresh(t)
		run := &domain.ImportRun{
			ID:           uuid.New().String(),
			ResourceType: domain.ResourceGiftBoxes,
			FileName:     "boxes.csv",
			Status:       domain.JobStatusProcessing,
			RequestID:    "req-1",
			CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
		}
		require.NoError(t, repo.CreateImportRun(ctx, run))

		got, err := repo.GetImportRun(ctx, run.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.JobStatusProcessing, got.Status)
		assert.Equal(t, "boxes.csv", got.FileName)
		assert.Nil(t, got.CompletedAt)

		done := time.Now().UTC().Truncate(time.Millisecond)
		run.Status = domain.JobStatusCompletedWithErrors
		run.TotalRows, run.SuccessCount, run.ErrorCount = 3, 2, 1
		run.CompletedAt = &done
		require.NoError(t, repo.UpdateImportRun(ctx, run))

		got, err = repo.GetImportRun(ctx, run.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.JobStatusCompletedWithErrors, got.Status)
		assert.Equal(t, 3, got.TotalRows)
		assert.Equal(t, 2, got.SuccessCount)
		assert.Equal(t, 1, got.ErrorCount)
		require.NotNil(t, got.CompletedAt)
	})

	t.Run("unknown run", func(t *testing.T) {
		repo := fresh(t)
		got, err := repo.GetImportRun(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, got)

		err = repo.UpdateImportRun(ctx, &domain.ImportRun{ID: uuid.New().String()})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
