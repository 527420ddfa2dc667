package core

import (
	"fmt"
	"strings"
)

// Region is the locale tag a record was generated for.
type Region string

const (
	RegionUSA     Region = "USA"
	RegionPoland  Region = "Poland"
	RegionGeorgia Region = "Georgia"
)

// allRegions is ordered as the region selector shows them.
var allRegions = []Region{RegionUSA, RegionPoland, RegionGeorgia}

// Regions returns every supported region in display order.
func Regions() []Region {
	out := make([]Region, len(allRegions))
	copy(out, allRegions)
	return out
}

// Valid reports whether r is one of the supported regions.
func (r Region) Valid() bool {
	for _, known := range allRegions {
		if r == known {
			return true
		}
	}
	return false
}

// Label returns the text shown in the region selector.
func (r Region) Label() string {
	if r == RegionUSA {
		return "AQSh"
	}
	return string(r)
}

// ParseRegion resolves a region name case-insensitively.
func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	for _, known := range allRegions {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: unknown region %q", ErrInvalidArgument, s)
}

// RegionAll selects every region when used as a filter.
const RegionAll = "all"

// RegionFilter selects which records of a baseline are shown.
// The zero value matches every region.
type RegionFilter struct {
	region Region
}

// AllRegions returns a filter matching every region.
func AllRegions() RegionFilter {
	return RegionFilter{}
}

// OnlyRegion returns a filter matching a single region.
func OnlyRegion(r Region) RegionFilter {
	return RegionFilter{region: r}
}

// ParseRegionFilter accepts a region name or "all". Empty input means all.
func ParseRegionFilter(s string) (RegionFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, RegionAll) {
		return AllRegions(), nil
	}
	r, err := ParseRegion(s)
	if err != nil {
		return RegionFilter{}, err
	}
	return OnlyRegion(r), nil
}

// IsAll reports whether the filter matches every region.
func (f RegionFilter) IsAll() bool {
	return f.region == ""
}

// Region returns the selected region, or "" for the all filter.
func (f RegionFilter) Region() Region {
	return f.region
}

// Match reports whether r passes the filter.
func (f RegionFilter) Match(r Region) bool {
	return f.IsAll() || f.region == r
}

// Set returns the regions the filter admits.
func (f RegionFilter) Set() []Region {
	if f.IsAll() {
		return Regions()
	}
	return []Region{f.region}
}

func (f RegionFilter) String() string {
	if f.IsAll() {
		return RegionAll
	}
	return string(f.region)
}

// RegionPolicy decides how a generation call assigns regions to records.
type RegionPolicy string

const (
	// PolicyPerRecord draws a region uniformly for every record.
	PolicyPerRecord RegionPolicy = "per-record"
	// PolicySingle draws one region per call and applies it to the whole batch.
	PolicySingle RegionPolicy = "single"
)

// ParseRegionPolicy resolves a policy name. Empty input yields PolicyPerRecord.
func ParseRegionPolicy(s string) (RegionPolicy, error) {
	switch RegionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyPerRecord:
		return PolicyPerRecord, nil
	case PolicySingle:
		return PolicySingle, nil
	}
	return "", fmt.Errorf("%w: unknown region policy %q", ErrInvalidArgument, s)
}
