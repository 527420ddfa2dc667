// Package core provides the business logic for synthetic record generation.
//
// This package contains all domain logic independent of any UI or transport
// layer. It can be used by web handlers, CLI tools, or tests without
// modification.
//
// # Generation
//
// A [Generator] turns (seed, region set, count) into a slice of [Record].
// Content comes from a [Source] opened from the seed once per call, so the
// same seed always yields the same names, addresses, phones and regions.
// Identifiers are minted fresh on every call and are never reused.
//
// Regions are assigned according to a [RegionPolicy]:
//
//   - [PolicyPerRecord]: every record draws its region uniformly from the set.
//   - [PolicySingle]: one region is drawn per call and applied to the batch.
//
// # Noise
//
// [ApplyNoise] corrupts each of Name, Address and Phone independently with
// probability errorRate/10, applying one delete, insert or swap edit per
// corrupted field. ID and Region are never touched.
//
// # Views
//
// [Service] caches clean baselines and derives views from them:
//
//	view, err := svc.View(ctx, core.Request{
//	    Seed:      123,
//	    Region:    core.OnlyRegion(core.RegionPoland),
//	    Count:     core.DefaultCount,
//	    ErrorRate: 3,
//	})
//
// Every view is corrupted from the pristine baseline, never from a previous
// view, so repeated parameter changes do not accumulate edits.
//
// # Error Handling
//
// Operations return the sentinels [ErrInvalidArgument],
// [ErrProviderUnavailable] and [ErrInvariantViolation] wrapped with detail.
// [MapError] converts any error into a user-facing message with a code.
package core
