package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "nil error returns empty", err: nil, wantCode: ""},
		{name: "negative count", err: validateCount(-1, 10), wantCode: "REQ001"},
		{name: "count above max", err: validateCount(11, 10), wantCode: "REQ002"},
		{name: "error rate", err: validateErrorRate(12), wantCode: "REQ003"},
		{name: "unknown region", err: func() error { _, err := ParseRegion("Mars"); return err }(), wantCode: "REQ004"},
		{name: "generic invalid argument", err: fmt.Errorf("%w: region set is empty", ErrInvalidArgument), wantCode: "REQ000"},
		{name: "provider unavailable", err: providerError("open source", errors.New("boom")), wantCode: "GEN001"},
		{name: "invariant violation", err: fmt.Errorf("%w: duplicate id", ErrInvariantViolation), wantCode: "GEN002"},
		{name: "busy", err: ErrTooManyGenerations, wantCode: "GEN003"},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), wantCode: "DB001"},
		{name: "rate limit", err: errors.New("rate limit exceeded"), wantCode: "RATE001"},
		{name: "case insensitive", err: errors.New("PROVIDER UNAVAILABLE"), wantCode: "GEN001"},
		{name: "unknown error returns default", err: errors.New("some random internal error"), wantCode: "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapError(tt.err); got.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, got.Code, tt.wantCode)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}

	got := FormatUserError(validateCount(-1, 10))
	want := "Number of records cannot be negative (Code: REQ001). Enter a count of zero or more"
	if got != want {
		t.Errorf("FormatUserError() = %q, want %q", got, want)
	}
}

func TestIsUserFacing(t *testing.T) {
	if IsUserFacing(nil) {
		t.Error("nil should not be user facing")
	}
	if !IsUserFacing(ErrTooManyGenerations) {
		t.Error("busy error should be user facing")
	}
	if IsUserFacing(errors.New("segfault")) {
		t.Error("unknown error should not be user facing")
	}
}

func TestNewUserError(t *testing.T) {
	if NewUserError(nil) != nil {
		t.Error("NewUserError(nil) should be nil")
	}

	base := validateErrorRate(-3)
	ue := NewUserError(base)
	if ue.User.Code != "REQ003" {
		t.Errorf("Code = %q, want REQ003", ue.User.Code)
	}
	if !errors.Is(ue, ErrInvalidArgument) {
		t.Error("UserError does not unwrap to ErrInvalidArgument")
	}
	if ue.Error() != ue.User.Message {
		t.Errorf("Error() = %q, want user message", ue.Error())
	}
}
