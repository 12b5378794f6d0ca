package service_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/identifier"
	"github.com/dev-modakk/modakk-backend/internal/repository"
	"github.com/dev-modakk/modakk-backend/internal/tabular"
)

var fixedNow = time.Date(2025, time.September, 14, 10, 0, 0, 0, time.UTC)

func newGenerator(store identifier.Store) *identifier.Generator {
	return identifier.New("MDK", store, identifier.WithClock(func() time.Time { return fixedNow }))
}

type fixture struct {
	repo  *repository.MemoryGiftBoxRepository
	runs  *repository.MemoryImportRunRepository
	ids   *identifier.Generator
	cache *recordingCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := repository.NewMemoryGiftBoxRepository()
	return &fixture{
		repo:  repo,
		runs:  repository.NewMemoryImportRunRepository(),
		ids:   newGenerator(repo),
		cache: &recordingCache{pages: map[domain.BrowseQuery]*domain.BrowsePage{}},
	}
}

// recordingCache is an in-process BrowseCache that counts calls.
type recordingCache struct {
	mu            sync.Mutex
	pages         map[domain.BrowseQuery]*domain.BrowsePage
	hits          int
	invalidations int
}

func (c *recordingCache) Get(_ context.Context, q domain.BrowseQuery) (*domain.BrowsePage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pages[q]
	if ok {
		c.hits++
	}
	return p, ok
}

func (c *recordingCache) Set(_ context.Context, q domain.BrowseQuery, page *domain.BrowsePage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[q] = page
}

func (c *recordingCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidations++
	c.pages = map[domain.BrowseQuery]*domain.BrowsePage{}
	return nil
}

// bufferWriter is a StreamWriter over a bytes.Buffer.
type bufferWriter struct {
	buf     bytes.Buffer
	flushes int
}

func (w *bufferWriter) Write(p []byte) error {
	_, err := w.buf.Write(p)
	return err
}

func (w *bufferWriter) Flush() { w.flushes++ }

func validInput(name string) domain.GiftBoxInput {
	return domain.GiftBoxInput{
		Name:        name,
		Description: "A box of " + name,
		Price:       499,
		Image:       "https://cdn.example.com/" + strings.ReplaceAll(strings.ToLower(name), " ", "-") + ".jpg",
		Rating:      4.2,
		Reviews:     10,
		Category:    domain.CategoryGiftBox,
		Images:      []string{},
	}
}

// productCSV renders rows under the canonical header.
func productCSV(rows ...[]string) []byte {
	var b bytes.Buffer
	b.WriteString(strings.Join(tabular.Header(), ",") + "\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r, ",") + "\n")
	}
	return b.Bytes()
}

func productRow(name string, price string) []string {
	return []string{
		name,
		"Description of " + name,
		price,
		"https://cdn.example.com/box.jpg",
		"",
		"4.5",
		"3",
		"false",
		"false",
		"GB",
		"",
	}
}

func numberedRows(n int, price func(i int) string) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = productRow(fmt.Sprintf("Box %03d", i), price(i))
	}
	return rows
}
