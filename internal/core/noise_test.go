package core

import (
	"errors"
	"math"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
)

func sampleRecord() Record {
	return Record{
		ID:      uuid.MustParse("7d0b6c1e-4c6a-4a8e-9a52-1f2f3e4d5c6b"),
		Name:    "Zofia Wiśniewska",
		Address: "ul. Długa 12, Gdańsk, Poland",
		Phone:   "+48 512 345 678",
		Region:  RegionPoland,
	}
}

func TestApplyNoise_ZeroRateIsIdentity(t *testing.T) {
	src := &scriptedNoise{}
	rec := sampleRecord()

	got, err := ApplyNoise(rec, 0, src)
	if err != nil {
		t.Fatalf("ApplyNoise() error = %v", err)
	}
	if got != rec {
		t.Errorf("ApplyNoise(r, 0) = %+v, want %+v", got, rec)
	}
	if src.drawn != 0 {
		t.Errorf("drew %d values at rate 0, want none", src.drawn)
	}
}

func TestApplyNoise_RejectsOutOfRange(t *testing.T) {
	for _, rate := range []int{-1, 11, 100} {
		if _, err := ApplyNoise(sampleRecord(), rate, newMathNoise(1)); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("rate %d: error = %v, want ErrInvalidArgument", rate, err)
		}
	}
	if _, err := ApplyNoiseAll([]Record{sampleRecord()}, 11, newMathNoise(1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ApplyNoiseAll rate 11: error = %v, want ErrInvalidArgument", err)
	}
}

func TestApplyNoise_FieldsDecidedIndependently(t *testing.T) {
	// rate 5: threshold 0.5. Only the address draw falls below it.
	src := &scriptedNoise{
		floats:  []float64{0.9, 0.1, 0.5},
		numbers: []int{int(OpInsert), 0},
		letter:  "Q",
	}
	rec := sampleRecord()

	got, err := ApplyNoise(rec, 5, src)
	if err != nil {
		t.Fatalf("ApplyNoise() error = %v", err)
	}
	if got.Name != rec.Name {
		t.Errorf("Name = %q, want unchanged", got.Name)
	}
	if got.Address != "Q"+rec.Address {
		t.Errorf("Address = %q, want %q", got.Address, "Q"+rec.Address)
	}
	if got.Phone != rec.Phone {
		t.Errorf("Phone = %q, want unchanged (0.5 is not < 0.5)", got.Phone)
	}
}

func TestApplyNoise_KeysImmutable(t *testing.T) {
	src := newMathNoise(11)
	rec := sampleRecord()
	for rate := 0; rate <= MaxErrorRate; rate++ {
		for i := 0; i < 100; i++ {
			got, err := ApplyNoise(rec, rate, src)
			if err != nil {
				t.Fatalf("ApplyNoise() error = %v", err)
			}
			if got.ID != rec.ID || got.Region != rec.Region {
				t.Fatalf("rate %d changed keys: %+v", rate, got)
			}
		}
	}
}

func TestApplyNoise_BoundedCorruption(t *testing.T) {
	src := newMathNoise(3)
	rec := sampleRecord()

	for i := 0; i < 2000; i++ {
		got, _ := ApplyNoise(rec, MaxErrorRate, src)
		for _, pair := range [][2]string{
			{rec.Name, got.Name},
			{rec.Address, got.Address},
			{rec.Phone, got.Phone},
		} {
			before, after := utf8.RuneCountInString(pair[0]), utf8.RuneCountInString(pair[1])
			if d := after - before; d < -1 || d > 1 {
				t.Fatalf("length changed by %d: %q -> %q", d, pair[0], pair[1])
			}
			if !isSingleEdit(pair[0], pair[1]) {
				t.Fatalf("more than one edit: %q -> %q", pair[0], pair[1])
			}
			if !utf8.ValidString(pair[1]) {
				t.Fatalf("invalid UTF-8 after corruption: %q", pair[1])
			}
		}
	}
}

func TestApplyNoise_NoAccumulationFromBaseline(t *testing.T) {
	src := newMathNoise(21)
	clean := sampleRecord()

	// Each pass starts from the clean record, so every result is within one edit of it.
	for pass := 0; pass < 50; pass++ {
		got, _ := ApplyNoise(clean, MaxErrorRate, src)
		if !isSingleEdit(clean.Name, got.Name) || !isSingleEdit(clean.Address, got.Address) || !isSingleEdit(clean.Phone, got.Phone) {
			t.Fatalf("pass %d accumulated edits: %+v", pass, got)
		}
	}
	if clean != sampleRecord() {
		t.Error("clean record was mutated")
	}
}

func TestApplyNoise_CorruptionFrequency(t *testing.T) {
	const trials = 10000

	tests := []struct {
		rate int
		want float64
	}{
		{rate: 9, want: 0.9},
		{rate: 3, want: 0.3},
		{rate: 10, want: 1.0},
	}

	// Distinct characters guarantee every applied edit is visible.
	rec := Record{Name: "abcdefgh", Address: "ijklmnop", Phone: "0123456789"}

	for _, tt := range tests {
		src := newMathNoise(int64(tt.rate))
		var changed [3]int
		for i := 0; i < trials; i++ {
			got, _ := ApplyNoise(rec, tt.rate, src)
			if got.Name != rec.Name {
				changed[0]++
			}
			if got.Address != rec.Address {
				changed[1]++
			}
			if got.Phone != rec.Phone {
				changed[2]++
			}
		}
		for field, n := range changed {
			freq := float64(n) / trials
			if math.Abs(freq-tt.want) > 0.02 {
				t.Errorf("rate %d field %d: frequency %.4f, want %.2f ± 0.02", tt.rate, field, freq, tt.want)
			}
		}
	}
}

func TestApplyNoiseAll_LeavesInputUntouched(t *testing.T) {
	clean := []Record{sampleRecord(), sampleRecord()}
	clean[1].ID = uuid.New()

	out, err := ApplyNoiseAll(clean, MaxErrorRate, newMathNoise(8))
	if err != nil {
		t.Fatalf("ApplyNoiseAll() error = %v", err)
	}
	if len(out) != len(clean) {
		t.Fatalf("len = %d, want %d", len(out), len(clean))
	}
	for i := range clean {
		if clean[i].Name != sampleRecord().Name {
			t.Errorf("input %d mutated: %q", i, clean[i].Name)
		}
		if out[i].ID != clean[i].ID {
			t.Errorf("output %d id = %s, want %s", i, out[i].ID, clean[i].ID)
		}
	}
}

func TestApplyEdit(t *testing.T) {
	tests := []struct {
		name    string
		op      EditOp
		input   string
		numbers []int
		letter  string
		want    string
	}{
		{name: "delete middle", op: OpDelete, input: "abcd", numbers: []int{1}, want: "acd"},
		{name: "delete last", op: OpDelete, input: "abcd", numbers: []int{3}, want: "abc"},
		{name: "delete single char is no-op", op: OpDelete, input: "a", want: "a"},
		{name: "delete empty is no-op", op: OpDelete, input: "", want: ""},
		{name: "delete multibyte", op: OpDelete, input: "Łódź", numbers: []int{1}, want: "Łdź"},
		{name: "insert front", op: OpInsert, input: "abc", numbers: []int{0}, letter: "X", want: "Xabc"},
		{name: "insert end", op: OpInsert, input: "abc", numbers: []int{3}, letter: "X", want: "abcX"},
		{name: "insert into empty", op: OpInsert, input: "", numbers: []int{0}, letter: "z", want: "z"},
		{name: "insert into single", op: OpInsert, input: "a", numbers: []int{1}, letter: "b", want: "ab"},
		{name: "swap first pair", op: OpSwap, input: "abcd", numbers: []int{0}, want: "bacd"},
		{name: "swap last pair", op: OpSwap, input: "abcd", numbers: []int{2}, want: "abdc"},
		{name: "swap single char is no-op", op: OpSwap, input: "a", want: "a"},
		{name: "swap multibyte", op: OpSwap, input: "źd", numbers: []int{0}, want: "dź"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedNoise{numbers: tt.numbers, letter: tt.letter}
			if got := applyEdit(tt.op, tt.input, src); got != tt.want {
				t.Errorf("applyEdit(%s, %q) = %q, want %q", tt.op, tt.input, got, tt.want)
			}
		})
	}
}

func TestCorruptText_ChoosesEachOperation(t *testing.T) {
	src := newMathNoise(5)
	seen := make(map[int]int) // length delta -> occurrences
	for i := 0; i < 3000; i++ {
		got := CorruptText("abcdef", src)
		seen[len(got)-6]++
	}
	// delete (-1), insert (+1) and swap (0) should each appear about a third of the time
	for _, delta := range []int{-1, 0, 1} {
		if seen[delta] < 800 || seen[delta] > 1200 {
			t.Errorf("length delta %d seen %d times, want about 1000", delta, seen[delta])
		}
	}
}

func TestEditOp_String(t *testing.T) {
	if OpDelete.String() != "delete" || OpInsert.String() != "insert" || OpSwap.String() != "swap" {
		t.Error("unexpected EditOp names")
	}
	if got := EditOp(9).String(); got != "EditOp(9)" {
		t.Errorf("EditOp(9).String() = %q", got)
	}
}
