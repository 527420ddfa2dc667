package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// fakeSource is a deterministic Source over math/rand with recognizable content.
type fakeSource struct {
	rng *rand.Rand
	err error
}

func openFake(seed int64) (Source, error) {
	return &fakeSource{rng: rand.New(rand.NewSource(seed))}, nil
}

func (f *fakeSource) Intn(n int) int {
	return f.rng.Intn(n)
}

func (f *fakeSource) Person(r Region) (Person, error) {
	if f.err != nil {
		return Person{}, f.err
	}
	return Person{
		Name:    fmt.Sprintf("%s Person%d", r, f.rng.Intn(1000000)),
		Address: fmt.Sprintf("%d Street, City%d, %s", f.rng.Intn(1000), f.rng.Intn(100), r),
		Phone:   fmt.Sprintf("+%07d", f.rng.Intn(10000000)),
	}, nil
}

// mathNoise is a NoiseSource over math/rand.
type mathNoise struct {
	rng *rand.Rand
}

func newMathNoise(seed int64) NoiseSource {
	return &mathNoise{rng: rand.New(rand.NewSource(seed))}
}

func (m *mathNoise) Float64() float64 { return m.rng.Float64() }

func (m *mathNoise) Number(min, max int) int { return min + m.rng.Intn(max-min+1) }

func (m *mathNoise) Letter() string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return string(letters[m.rng.Intn(len(letters))])
}

// scriptedNoise replays fixed draws; it panics when a script runs out so
// tests notice unexpected draws.
type scriptedNoise struct {
	floats  []float64
	numbers []int
	letter  string
	drawn   int
}

func (s *scriptedNoise) Float64() float64 {
	s.drawn++
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedNoise) Number(min, max int) int {
	s.drawn++
	n := s.numbers[0]
	s.numbers = s.numbers[1:]
	if n < min || n > max {
		panic(fmt.Sprintf("scripted number %d outside [%d,%d]", n, min, max))
	}
	return n
}

func (s *scriptedNoise) Letter() string {
	s.drawn++
	return s.letter
}

var errProviderDown = errors.New("upstream faker exploded")

// isSingleEdit reports whether b is a or differs from it by exactly one
// rune deletion, one rune insertion or one adjacent transposition.
func isSingleEdit(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	switch len(rb) - len(ra) {
	case 0:
		var diff []int
		for i := range ra {
			if ra[i] != rb[i] {
				diff = append(diff, i)
			}
		}
		if len(diff) == 0 {
			return true
		}
		return len(diff) == 2 && diff[1] == diff[0]+1 &&
			ra[diff[0]] == rb[diff[1]] && ra[diff[1]] == rb[diff[0]]
	case 1:
		return removesOne(rb, ra)
	case -1:
		return removesOne(ra, rb)
	}
	return false
}

// removesOne reports whether short equals long with one rune removed.
func removesOne(long, short []rune) bool {
	for i := range long {
		if string(long[:i])+string(long[i+1:]) == string(short) {
			return true
		}
	}
	return false
}
