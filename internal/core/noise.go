package core

// noise.go implements controlled corruption of record text fields.
//
// Each mutable field (Name, Address, Phone) is corrupted independently with
// probability errorRate/10. A corrupted field receives exactly one edit:
//
//	delete  remove one rune           (no-op when the field has fewer than 2 runes)
//	insert  add one ASCII letter      (always applies, including on empty fields)
//	swap    exchange adjacent runes   (no-op when the field has fewer than 2 runes)
//
// A no-op edit is a valid outcome, not an error. Noise is always applied to a
// clean record; callers never feed corrupted output back in.

import "fmt"

// NoiseSource supplies the random draws used by noise injection.
// *gofakeit.Faker satisfies it.
type NoiseSource interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Number returns a uniform integer in [min, max].
	Number(min, max int) int
	// Letter returns a single random ASCII letter.
	Letter() string
}

// EditOp is a single character-level corruption.
type EditOp int

const (
	OpDelete EditOp = iota
	OpInsert
	OpSwap
)

// editOps is the set CorruptText chooses from uniformly.
var editOps = []EditOp{OpDelete, OpInsert, OpSwap}

func (op EditOp) String() string {
	switch op {
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpSwap:
		return "swap"
	default:
		return fmt.Sprintf("EditOp(%d)", int(op))
	}
}

// ApplyNoise returns a copy of rec with each text field corrupted with
// probability errorRate/10. ID and Region are passed through unchanged.
// An errorRate of 0 returns rec as-is without drawing from src.
func ApplyNoise(rec Record, errorRate int, src NoiseSource) (Record, error) {
	if err := validateErrorRate(errorRate); err != nil {
		return Record{}, err
	}
	if errorRate == 0 {
		return rec, nil
	}

	threshold := float64(errorRate) / MaxErrorRate

	out := rec
	if src.Float64() < threshold {
		out.Name = CorruptText(rec.Name, src)
	}
	if src.Float64() < threshold {
		out.Address = CorruptText(rec.Address, src)
	}
	if src.Float64() < threshold {
		out.Phone = CorruptText(rec.Phone, src)
	}
	return out, nil
}

// ApplyNoiseAll corrupts every record of clean into a new slice.
// clean itself is never modified.
func ApplyNoiseAll(clean []Record, errorRate int, src NoiseSource) ([]Record, error) {
	if err := validateErrorRate(errorRate); err != nil {
		return nil, err
	}
	out := make([]Record, len(clean))
	for i, rec := range clean {
		noisy, err := ApplyNoise(rec, errorRate, src)
		if err != nil {
			return nil, err
		}
		out[i] = noisy
	}
	return out, nil
}

// CorruptText applies one uniformly chosen edit operation to s.
func CorruptText(s string, src NoiseSource) string {
	op := editOps[src.Number(0, len(editOps)-1)]
	return applyEdit(op, s, src)
}

// applyEdit works on runes so multi-byte characters are never split.
func applyEdit(op EditOp, s string, src NoiseSource) string {
	runes := []rune(s)

	switch op {
	case OpDelete:
		if len(runes) < 2 {
			return s
		}
		i := src.Number(0, len(runes)-1)
		return string(runes[:i]) + string(runes[i+1:])

	case OpInsert:
		i := src.Number(0, len(runes))
		letter := src.Letter()
		return string(runes[:i]) + letter + string(runes[i:])

	case OpSwap:
		if len(runes) < 2 {
			return s
		}
		i := src.Number(0, len(runes)-2)
		runes[i], runes[i+1] = runes[i+1], runes[i]
		return string(runes)
	}

	return s
}
