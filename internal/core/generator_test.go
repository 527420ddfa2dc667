package core

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestGenerate_CountBounds(t *testing.T) {
	gen := NewGenerator(openFake, WithMaxCount(100))

	tests := []struct {
		name    string
		count   int
		wantLen int
		wantErr error
	}{
		{name: "zero count returns empty", count: 0, wantLen: 0},
		{name: "positive count", count: 7, wantLen: 7},
		{name: "at maximum", count: 100, wantLen: 100},
		{name: "negative count", count: -1, wantErr: ErrInvalidArgument},
		{name: "above maximum", count: 101, wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gen.Generate(123, Regions(), tt.count)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("records = %v, want nil on error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if got == nil {
				t.Fatal("Generate() returned nil slice, want empty")
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestGenerate_InvalidRegions(t *testing.T) {
	gen := NewGenerator(openFake)

	if _, err := gen.Generate(1, nil, 5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty set: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := gen.Generate(1, []Region{"Mars"}, 5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown region: error = %v, want ErrInvalidArgument", err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	gen := NewGenerator(openFake)

	for _, seed := range []int64{0, 1, 123, -42} {
		first, err := gen.Generate(seed, Regions(), 50)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		second, err := gen.Generate(seed, Regions(), 50)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		for i := range first {
			a, b := first[i], second[i]
			if a.Name != b.Name || a.Address != b.Address || a.Phone != b.Phone || a.Region != b.Region {
				t.Fatalf("seed %d record %d differs:\n  %+v\n  %+v", seed, i, a, b)
			}
		}
	}
}

func TestGenerate_IndependentOfPriorCalls(t *testing.T) {
	gen := NewGenerator(openFake)

	fresh, _ := gen.Generate(99, Regions(), 10)
	_, _ = gen.Generate(7, Regions(), 30)
	again, _ := gen.Generate(99, Regions(), 10)

	for i := range fresh {
		if fresh[i].Name != again[i].Name {
			t.Fatalf("record %d: %q != %q after unrelated call", i, fresh[i].Name, again[i].Name)
		}
	}
}

func TestGenerate_IDsFreshAndUnique(t *testing.T) {
	gen := NewGenerator(openFake)

	first, _ := gen.Generate(5, Regions(), 200)
	second, _ := gen.Generate(5, Regions(), 200)

	seen := make(map[uuid.UUID]bool)
	for _, r := range append(first, second...) {
		if r.ID == uuid.Nil {
			t.Fatal("record has nil id")
		}
		if seen[r.ID] {
			t.Fatalf("id %s reused", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestGenerate_PerRecordPolicyUsesWholeSet(t *testing.T) {
	gen := NewGenerator(openFake, WithRegionPolicy(PolicyPerRecord))

	records, err := gen.Generate(123, Regions(), 300)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	counts := make(map[Region]int)
	for _, r := range records {
		counts[r.Region]++
	}
	for _, region := range Regions() {
		// Uniform over 3 regions: 100 expected, far outside this only if broken
		if counts[region] < 60 || counts[region] > 140 {
			t.Errorf("region %s count = %d, want roughly 100", region, counts[region])
		}
	}
}

func TestGenerate_SinglePolicyAssignsOneRegion(t *testing.T) {
	gen := NewGenerator(openFake, WithRegionPolicy(PolicySingle))

	for seed := int64(0); seed < 10; seed++ {
		records, err := gen.Generate(seed, Regions(), 20)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		for _, r := range records {
			if r.Region != records[0].Region {
				t.Fatalf("seed %d: mixed regions %s and %s", seed, records[0].Region, r.Region)
			}
		}
	}

	records, _ := gen.Generate(1, []Region{RegionGeorgia}, 5)
	for _, r := range records {
		if r.Region != RegionGeorgia {
			t.Errorf("Region = %s, want Georgia", r.Region)
		}
	}
}

func TestGenerate_DuplicateRegionsDoNotSkew(t *testing.T) {
	gen := NewGenerator(openFake)

	a, _ := gen.Generate(3, []Region{RegionUSA, RegionPoland}, 20)
	b, _ := gen.Generate(3, []Region{RegionUSA, RegionUSA, RegionPoland}, 20)

	for i := range a {
		if a[i].Region != b[i].Region {
			t.Fatalf("record %d region %s != %s", i, a[i].Region, b[i].Region)
		}
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	failing := func(seed int64) (Source, error) {
		src, _ := openFake(seed)
		src.(*fakeSource).err = errProviderDown
		return src, nil
	}
	gen := NewGenerator(failing)

	_, err := gen.Generate(1, Regions(), 3)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("error = %v, want ErrProviderUnavailable", err)
	}
	if !errors.Is(err, errProviderDown) {
		t.Errorf("error = %v, want original provider error preserved", err)
	}

	openFails := func(int64) (Source, error) { return nil, errProviderDown }
	if _, err := NewGenerator(openFails).Generate(1, Regions(), 3); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("open failure: error = %v, want ErrProviderUnavailable", err)
	}
}

func TestGenerate_IDCollisionFailsLoudly(t *testing.T) {
	fixed := uuid.MustParse("00000000-0000-4000-8000-000000000001")
	gen := NewGenerator(openFake, WithIDSource(func() (uuid.UUID, error) {
		return fixed, nil
	}))

	_, err := gen.Generate(1, Regions(), 2)
	if !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("error = %v, want ErrInvariantViolation", err)
	}
}

func TestGenerate_IDSourceFailure(t *testing.T) {
	gen := NewGenerator(openFake, WithIDSource(func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("entropy exhausted")
	}))

	_, err := gen.Generate(1, Regions(), 1)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("error = %v, want ErrProviderUnavailable", err)
	}
}
