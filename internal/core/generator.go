package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Person is the synthesized content of one record, before an id is minted.
type Person struct {
	Name    string
	Address string
	Phone   string
}

// Source is a seeded synthesis stream. Implementations must produce the same
// sequence of draws for the same seed.
type Source interface {
	// Intn returns a uniform draw in [0, n).
	Intn(n int) int
	// Person synthesizes locale-aware content for region.
	Person(region Region) (Person, error)
}

// SourceFactory opens a fresh Source seeded with seed.
type SourceFactory func(seed int64) (Source, error)

// IDSource mints record identifiers.
type IDSource func() (uuid.UUID, error)

// Generator produces reproducible batches of records.
// It holds no random state between calls; every call opens its own Source.
type Generator struct {
	open     SourceFactory
	newID    IDSource
	policy   RegionPolicy
	maxCount int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRegionPolicy sets how regions are assigned to records.
func WithRegionPolicy(p RegionPolicy) GeneratorOption {
	return func(g *Generator) {
		g.policy = p
	}
}

// WithMaxCount sets the largest batch a single call may generate.
func WithMaxCount(n int) GeneratorOption {
	return func(g *Generator) {
		if n > 0 {
			g.maxCount = n
		}
	}
}

// WithIDSource replaces the identifier source (uuid v4 by default).
func WithIDSource(src IDSource) GeneratorOption {
	return func(g *Generator) {
		if src != nil {
			g.newID = src
		}
	}
}

// NewGenerator creates a Generator that synthesizes content from open.
func NewGenerator(open SourceFactory, opts ...GeneratorOption) *Generator {
	g := &Generator{
		open:     open,
		newID:    uuid.NewRandom,
		policy:   PolicyPerRecord,
		maxCount: DefaultMaxCount,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Policy returns the region assignment policy in use.
func (g *Generator) Policy() RegionPolicy {
	return g.policy
}

// MaxCount returns the largest accepted count.
func (g *Generator) MaxCount() int {
	return g.maxCount
}

// Generate returns count records whose regions are drawn from regions.
//
// The source is opened from seed once per call, so two calls with the same
// seed, region set and count yield the same names, addresses, phones and
// regions in the same order. Identifiers are minted fresh on every call.
func (g *Generator) Generate(seed int64, regions []Region, count int) ([]Record, error) {
	if err := validateCount(count, g.maxCount); err != nil {
		return nil, err
	}
	set, err := normalizeRegions(regions)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []Record{}, nil
	}
	if g.open == nil {
		return nil, fmt.Errorf("%w: no synthesis source configured", ErrProviderUnavailable)
	}

	src, err := g.open(seed)
	if err != nil {
		return nil, providerError("open source", err)
	}

	var fixed Region
	if g.policy == PolicySingle {
		fixed = set[src.Intn(len(set))]
	}

	records := make([]Record, 0, count)
	seen := make(map[uuid.UUID]struct{}, count)

	for i := 0; i < count; i++ {
		region := fixed
		if g.policy != PolicySingle {
			region = set[src.Intn(len(set))]
		}

		p, err := src.Person(region)
		if err != nil {
			return nil, providerError(fmt.Sprintf("synthesize record %d", i), err)
		}

		id, err := g.newID()
		if err != nil {
			return nil, providerError("mint id", err)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s at record %d", ErrInvariantViolation, id, i)
		}
		seen[id] = struct{}{}

		records = append(records, Record{
			ID:      id,
			Name:    p.Name,
			Address: p.Address,
			Phone:   p.Phone,
			Region:  region,
		})
	}

	return records, nil
}

// normalizeRegions validates the set and drops duplicates, keeping first-seen order.
func normalizeRegions(regions []Region) ([]Region, error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: region set is empty", ErrInvalidArgument)
	}
	set := make([]Region, 0, len(regions))
	seen := make(map[Region]bool, len(regions))
	for _, r := range regions {
		if !r.Valid() {
			return nil, fmt.Errorf("%w: unknown region %q", ErrInvalidArgument, r)
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		set = append(set, r)
	}
	return set, nil
}

func providerError(op string, err error) error {
	if errors.Is(err, ErrProviderUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrProviderUnavailable, err)
}
