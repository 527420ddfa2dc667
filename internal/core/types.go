// Package core provides the record generation and noise injection logic.
// This package has no UI dependencies and can be used by any frontend.
package core

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// DefaultCount is the number of records generated when a request does not say.
	DefaultCount = 90

	// DefaultMaxCount bounds the CPU cost of a single generation call.
	DefaultMaxCount = 10000

	// MaxErrorRate is the highest error rate; a field is corrupted with probability rate/10.
	MaxErrorRate = 10
)

// Columns is the export header, in the order Record.Row emits values.
var Columns = []string{"ID", "Name", "Address", "Phone"}

// Record is one synthetic person.
// ID and Region are never touched by noise injection.
type Record struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
	Region  Region    `json:"region"`
}

// Row returns the record's exported fields in Columns order.
func (r Record) Row() []string {
	return []string{r.ID.String(), r.Name, r.Address, r.Phone}
}

// Request describes one view of the data: which baseline, which slice of it,
// and how dirty it should be.
type Request struct {
	Seed      int64
	Region    RegionFilter
	Count     int
	ErrorRate int
}

// NewRequest returns a request for seed with the default count, all regions and no noise.
func NewRequest(seed int64) Request {
	return Request{Seed: seed, Count: DefaultCount}
}

// Validate rejects counts outside [0, maxCount] and error rates outside [0, 10].
// A non-positive maxCount falls back to DefaultMaxCount.
func (r Request) Validate(maxCount int) error {
	if err := validateCount(r.Count, maxCount); err != nil {
		return err
	}
	return validateErrorRate(r.ErrorRate)
}

func validateCount(count, maxCount int) error {
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}
	if count < 0 {
		return fmt.Errorf("%w: count %d is negative", ErrInvalidArgument, count)
	}
	if count > maxCount {
		return fmt.Errorf("%w: count %d exceeds maximum %d", ErrInvalidArgument, count, maxCount)
	}
	return nil
}

func validateErrorRate(rate int) error {
	if rate < 0 || rate > MaxErrorRate {
		return fmt.Errorf("%w: error rate %d must be between 0 and %d", ErrInvalidArgument, rate, MaxErrorRate)
	}
	return nil
}
