package core

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"
)

// NoiseFactory opens a noise source for a derived seed.
type NoiseFactory func(seed int64) NoiseSource

// ServiceConfig holds tuning for a Service. Zero values fall back to defaults.
type ServiceConfig struct {
	CacheSize     int           // Clean baselines kept in memory (default: 16)
	MaxConcurrent int           // Parallel generation calls (default: 4)
	MaxWaitTime   time.Duration // Wait for a generation slot (default: 5s)
}

// Service composes generation, region filtering and noise into views.
//
// Clean baselines are cached separately from views. Every view is corrupted
// from the pristine baseline, so tweaking region or error rate never
// accumulates edits.
type Service struct {
	gen      *Generator
	noise    NoiseFactory
	baseline *baselineCache
	limiter  *Limiter
	now      func() time.Time
}

// View is what a caller sees for one request: the filtered, corrupted records.
type View struct {
	Request     Request      `json:"-"`
	Policy      RegionPolicy `json:"policy"`
	Total       int          `json:"total"` // size of the clean baseline before filtering
	Records     []Record     `json:"records"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// NewService creates a Service around gen. noise opens the source used to
// corrupt views; it is seeded from the request so a view is reproducible.
func NewService(gen *Generator, noise NoiseFactory, cfg ServiceConfig) *Service {
	return &Service{
		gen:      gen,
		noise:    noise,
		baseline: newBaselineCache(cfg.CacheSize),
		limiter:  NewLimiter(cfg.MaxConcurrent, cfg.MaxWaitTime),
		now:      time.Now,
	}
}

// Generator returns the underlying generator.
func (s *Service) Generator() *Generator {
	return s.gen
}

// View validates req, fetches or generates the clean baseline, filters it by
// region and applies noise to the filtered records.
func (s *Service) View(ctx context.Context, req Request) (*View, error) {
	if err := req.Validate(s.gen.MaxCount()); err != nil {
		return nil, err
	}

	base, err := s.Baseline(ctx, req.Seed, req.Count, req.Region)
	if err != nil {
		return nil, err
	}

	filtered := FilterRecords(base.Records, req.Region)

	records := filtered
	if req.ErrorRate > 0 {
		if s.noise == nil {
			return nil, fmt.Errorf("%w: no noise source configured", ErrProviderUnavailable)
		}
		src := s.noise(NoiseSeed(req.Seed, req.Region, req.ErrorRate))
		records, err = ApplyNoiseAll(filtered, req.ErrorRate, src)
		if err != nil {
			return nil, err
		}
	}

	return &View{
		Request:     req,
		Policy:      s.gen.Policy(),
		Total:       len(base.Records),
		Records:     records,
		GeneratedAt: base.GeneratedAt,
	}, nil
}

// Baseline returns the clean records for (seed, count) covering filter,
// generating them on a cache miss.
func (s *Service) Baseline(ctx context.Context, seed int64, count int, filter RegionFilter) (*Baseline, error) {
	regions := s.generationRegions(filter)
	key := newBaselineKey(seed, count, regions)

	if b, ok := s.baseline.get(key); ok {
		return b, nil
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	start := s.now()
	records, err := s.gen.Generate(seed, regions, count)
	if err != nil {
		return nil, err
	}

	b := s.baseline.put(key, &Baseline{
		Seed:        seed,
		Count:       count,
		Regions:     regions,
		Records:     records,
		GeneratedAt: start,
	})

	slog.Debug("baseline generated",
		"key", key.String(),
		"records", len(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return b, nil
}

// Regenerate discards every cached baseline for req.Seed and returns a fresh
// view. The new baseline carries new identifiers.
func (s *Service) Regenerate(ctx context.Context, req Request) (*View, error) {
	if err := req.Validate(s.gen.MaxCount()); err != nil {
		return nil, err
	}
	dropped := s.baseline.dropSeed(req.Seed)
	slog.Debug("baselines dropped", "seed", req.Seed, "count", dropped)
	return s.View(ctx, req)
}

// LimiterStatus reports generation slot usage.
func (s *Service) LimiterStatus() LimiterStatus {
	return s.limiter.Status()
}

// WaitForGenerations blocks until in-flight generations finish or ctx ends.
func (s *Service) WaitForGenerations(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}

// generationRegions picks the region set a baseline is generated over.
// With per-record assignment one baseline over every region serves all
// filters; with a single batch region the filter's own set is generated.
func (s *Service) generationRegions(filter RegionFilter) []Region {
	if s.gen.Policy() == PolicySingle {
		return filter.Set()
	}
	return Regions()
}

// FilterRecords returns the records matching filter, in their original order.
func FilterRecords(records []Record, filter RegionFilter) []Record {
	if filter.IsAll() {
		out := make([]Record, len(records))
		copy(out, records)
		return out
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if filter.Match(r.Region) {
			out = append(out, r)
		}
	}
	return out
}

// NoiseSeed derives the noise stream seed for a view, so the same
// (seed, region, error rate) always corrupts the same way.
func NoiseSeed(seed int64, filter RegionFilter, errorRate int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%d", seed, filter, errorRate)
	return int64(h.Sum64())
}
