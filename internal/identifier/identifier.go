// Package identifier generates the human-readable display IDs carried by
// gift boxes.
//
// Four schemes are produced, each with its own shape so that the scheme of an
// existing ID can be recognized later:
//
//	time-based    MDK-GB-25IX4Q      bulk imports, no store round-trip
//	sequential    MDK-GB-25I-0042    single creates, sequence reserved in the store
//	alphanumeric  MDK-B08X4N5V       administrative use, existence checked
//	timestamp     MDK-1736241234567-0042  fallback when the others collide
package identifier

import (
	"context"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dev-modakk/modakk-backend/internal/domain"
)

// DefaultPrefix is used when no prefix is configured.
const DefaultPrefix = "MDK"

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	maxSequence             = 9999
	maxSequentialAttempts   = 5
	maxAlphanumericAttempts = 10
)

// Scheme names the generation scheme of an identifier.
type Scheme string

const (
	SchemeTimeBased    Scheme = "time-based"
	SchemeSequential   Scheme = "sequential"
	SchemeAlphanumeric Scheme = "alphanumeric"
	SchemeTimestamp    Scheme = "timestamp"
	SchemeUnknown      Scheme = "unknown"
)

// Store is the persistence the store-checked schemes depend on.
type Store interface {
	// DisplayIDExists reports whether a record already carries id.
	DisplayIDExists(ctx context.Context, id string) (bool, error)
	// NextSequence atomically reserves the next sequence number for a
	// sequential prefix such as "MDK-GB-25I".
	NextSequence(ctx context.Context, prefix string) (int, error)
}

// Rand is the random source used for suffixes.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Generator produces display IDs. It is safe for concurrent use as long as
// the injected Rand is.
type Generator struct {
	prefix      string
	store       Store
	now         func() time.Time
	rnd         Rand
	onCollision func(Scheme)

	timeBased    *regexp.Regexp
	sequential   *regexp.Regexp
	alphanumeric *regexp.Regexp
	timestamp    *regexp.Regexp
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRand replaces the global random source.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rnd = r }
}

// WithCollisionHook registers a callback invoked for every rejected candidate.
func WithCollisionHook(fn func(Scheme)) Option {
	return func(g *Generator) { g.onCollision = fn }
}

// New creates a Generator. An empty prefix selects DefaultPrefix.
func New(prefix string, store Store, opts ...Option) *Generator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	g := &Generator{
		prefix:      prefix,
		store:       store,
		now:         time.Now,
		rnd:         globalRand{},
		onCollision: func(Scheme) {},
	}
	for _, opt := range opts {
		opt(g)
	}

	p := regexp.QuoteMeta(prefix)
	g.timeBased = regexp.MustCompile(`^` + p + `-([A-Z]{2})-(\d{2})([A-L])[A-Z0-9]{3}$`)
	g.sequential = regexp.MustCompile(`^` + p + `-([A-Z]{2})-(\d{2})([A-L])-(\d{4})$`)
	g.alphanumeric = regexp.MustCompile(`^` + p + `-[A-Z0-9]{8}$`)
	g.timestamp = regexp.MustCompile(`^` + p + `-\d{13}-\d{4}$`)
	return g
}

// Prefix returns the configured prefix.
func (g *Generator) Prefix() string { return g.prefix }

// period renders "PREFIX-CC-YYM" for the current month.
func (g *Generator) period(category domain.Category) string {
	now := g.now().UTC()
	return fmt.Sprintf("%s-%s-%02d%c", g.prefix, category, now.Year()%100, 'A'+rune(now.Month()-1))
}

func (g *Generator) random(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[g.rnd.IntN(len(alphabet))])
	}
	return b.String()
}

// TimeBased returns PREFIX-CC-YYM plus three random characters. It does not
// consult the store; callers rely on the unique constraint to catch the rare
// collision.
func (g *Generator) TimeBased(category domain.Category) string {
	return g.period(category) + g.random(3)
}

// Sequential returns PREFIX-CC-YYM-NNNN using a sequence reserved from the
// store. An ID that already exists, or an exhausted sequence, falls back to
// Timestamp after a bounded number of attempts.
func (g *Generator) Sequential(ctx context.Context, category domain.Category) (string, error) {
	period := g.period(category)
	for attempt := 0; attempt < maxSequentialAttempts; attempt++ {
		seq, err := g.store.NextSequence(ctx, period)
		if err != nil {
			return "", fmt.Errorf("reserve sequence: %w", err)
		}
		if seq > maxSequence {
			break
		}

		id := fmt.Sprintf("%s-%04d", period, seq)
		exists, err := g.store.DisplayIDExists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check display id: %w", err)
		}
		if !exists {
			return id, nil
		}
		g.onCollision(SchemeSequential)
	}
	return g.Timestamp(), nil
}

// Alphanumeric returns PREFIX-XXXXXXXX, checked against the store up to ten
// times before falling back to Timestamp.
func (g *Generator) Alphanumeric(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAlphanumericAttempts; attempt++ {
		id := g.prefix + "-" + g.random(8)
		exists, err := g.store.DisplayIDExists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check display id: %w", err)
		}
		if !exists {
			return id, nil
		}
		g.onCollision(SchemeAlphanumeric)
	}
	return g.Timestamp(), nil
}

// Timestamp returns PREFIX-{unix millis}-NNNN.
func (g *Generator) Timestamp() string {
	return fmt.Sprintf("%s-%013d-%04d", g.prefix, g.now().UnixMilli(), g.rnd.IntN(10000))
}

// Scheme reports which scheme produced id.
func (g *Generator) Scheme(id string) Scheme {
	switch {
	case g.timeBased.MatchString(id):
		return SchemeTimeBased
	case g.sequential.MatchString(id):
		return SchemeSequential
	case g.alphanumeric.MatchString(id):
		return SchemeAlphanumeric
	case g.timestamp.MatchString(id):
		return SchemeTimestamp
	}
	return SchemeUnknown
}

// IsValidID reports whether id has the shape of any scheme.
func (g *Generator) IsValidID(id string) bool {
	return g.Scheme(id) != SchemeUnknown
}

// ParsedID holds the components of an identifier. Category, Year and Month
// are set for time-based and sequential IDs, Sequence for sequential ones.
type ParsedID struct {
	Scheme   Scheme          `json:"type"`
	Category domain.Category `json:"category,omitempty"`
	Year     int             `json:"year,omitempty"`
	Month    int             `json:"month,omitempty"`
	Sequence int             `json:"sequence,omitempty"`
}

// ParseID splits id into its components.
func (g *Generator) ParseID(id string) ParsedID {
	if m := g.sequential.FindStringSubmatch(id); m != nil {
		p := parsePeriod(m[1], m[2], m[3])
		p.Scheme = SchemeSequential
		p.Sequence, _ = strconv.Atoi(m[4])
		return p
	}
	if m := g.timeBased.FindStringSubmatch(id); m != nil {
		p := parsePeriod(m[1], m[2], m[3])
		p.Scheme = SchemeTimeBased
		return p
	}
	return ParsedID{Scheme: g.Scheme(id)}
}

func parsePeriod(category, year, month string) ParsedID {
	yy, _ := strconv.Atoi(year)
	return ParsedID{
		Category: domain.Category(category),
		Year:     2000 + yy,
		Month:    int(month[0]-'A') + 1,
	}
}

// CategoryName maps a category code to its display name.
func CategoryName(code string) string {
	return domain.Category(code).Name()
}
