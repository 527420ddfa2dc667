// Package faker synthesizes locale-aware personal data for the generator.
//
// It wraps a seeded gofakeit Faker, so every draw (names, streets, phone
// digits, region picks, noise decisions) comes from one reproducible stream.
// USA content uses gofakeit's built-in data; Poland and Georgia use the
// tables in locales.go.
package faker

import (
	"fmt"
	"math/rand"

	"github.com/JonMunkholm/fakerecords/internal/core"
	"github.com/brianvoe/gofakeit/v6"
)

// Source is a seeded synthesis stream. It satisfies both core.Source and
// core.NoiseSource. A Source is not safe for concurrent use.
type Source struct {
	*gofakeit.Faker
}

// Open returns a Source seeded with seed. Seed 0 is as deterministic as any other.
func Open(seed int64) *Source {
	src := rand.NewSource(seed).(rand.Source64)
	return &Source{Faker: gofakeit.NewCustom(src)}
}

// Factory opens a Source for the generator.
func Factory(seed int64) (core.Source, error) {
	return Open(seed), nil
}

// NoiseFactory opens a Source for noise injection.
func NoiseFactory(seed int64) core.NoiseSource {
	return Open(seed)
}

// Intn returns a uniform draw in [0, n).
func (s *Source) Intn(n int) int {
	return s.Rand.Intn(n)
}

// Float64 returns a uniform draw in [0, 1). It shadows gofakeit's Float64,
// which spans the whole positive float64 range.
func (s *Source) Float64() float64 {
	return s.Rand.Float64()
}

// Person synthesizes a name, address and phone number for region.
func (s *Source) Person(region core.Region) (core.Person, error) {
	loc, ok := locales[region]
	if !ok {
		return core.Person{}, fmt.Errorf("%w: no locale data for %q", core.ErrProviderUnavailable, region)
	}

	return core.Person{
		Name:    loc.name(s.Faker),
		Address: loc.address(s.Faker),
		Phone:   loc.phone(s.Faker),
	}, nil
}
