package core

// error_messages.go maps technical errors to user-facing messages with codes
// for support reference. Codes are grouped by category:
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Negative count: Number of records cannot be negative
//	         Patterns: "is negative"
//	REQ002 - Count too large: Too many records requested
//	         Patterns: "exceeds maximum"
//	REQ003 - Bad error rate: Error rate must be between 0 and 10
//	         Patterns: "error rate"
//	REQ004 - Unknown region: Region is not supported
//	         Patterns: "unknown region"
//	REQ005 - Bad seed: Seed must be a whole number
//	         Patterns: "invalid seed"
//	REQ000 - Invalid request (fallback for any ErrInvalidArgument)
//	         Patterns: "invalid argument"
//
// # Generation Errors (GEN001-GEN099)
//
//	GEN001 - Provider unavailable: Data synthesis failed
//	         Patterns: "provider unavailable"
//	GEN002 - Invariant violation: Internal consistency check failed
//	         Patterns: "invariant violation"
//	GEN003 - System busy: Too many generations in progress
//	         Patterns: "too many concurrent generations"
//
// # Export Errors (EXP001-EXP099)
//
//	EXP001 - Unknown format: Export format is not supported
//	         Patterns: "unknown export format"
//	EXP002 - Database export disabled: No database configured
//	         Patterns: "database not configured"
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Connection refused   Patterns: "connection refused"
//	DB002 - Connection reset     Patterns: "connection reset"
//	DB003 - Duplicate key        Patterns: "duplicate key"
//
// # Transport Errors
//
//	UPL004 - Request cancelled   Patterns: "context canceled"
//	UPL005 - Request timeout     Patterns: "context deadline exceeded"
//	RATE001 - Rate limited       Patterns: "rate limit"
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches. Check application logs for the
// original technical error when users report ERR000.
//
// Patterns are matched case-insensitively using strings.Contains and the
// first matching pattern wins, so specific patterns precede general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// =========================================================================
	// Request Errors (REQ001-REQ005, REQ000)
	// =========================================================================
	{
		pattern: "is negative",
		msg: UserMessage{
			Message: "Number of records cannot be negative",
			Action:  "Enter a count of zero or more",
			Code:    "REQ001",
		},
	},
	{
		pattern: "exceeds maximum",
		msg: UserMessage{
			Message: "Too many records requested",
			Action:  "Request fewer records at a time",
			Code:    "REQ002",
		},
	},
	{
		pattern: "error rate",
		msg: UserMessage{
			Message: "Error rate must be between 0 and 10",
			Action:  "Move the slider to a value from 0 to 10",
			Code:    "REQ003",
		},
	},
	{
		pattern: "unknown region",
		msg: UserMessage{
			Message: "Region is not supported",
			Action:  "Choose USA, Poland or Georgia",
			Code:    "REQ004",
		},
	},
	{
		pattern: "invalid seed",
		msg: UserMessage{
			Message: "Seed must be a whole number",
			Action:  "Enter an integer seed value",
			Code:    "REQ005",
		},
	},
	{
		pattern: "invalid argument",
		msg: UserMessage{
			Message: "The request parameters are invalid",
			Action:  "Check the seed, region, count and error rate",
			Code:    "REQ000",
		},
	},

	// =========================================================================
	// Generation Errors (GEN001-GEN003)
	// =========================================================================
	{
		pattern: "provider unavailable",
		msg: UserMessage{
			Message: "Data synthesis is unavailable",
			Action:  "Please try again or contact support",
			Code:    "GEN001",
		},
	},
	{
		pattern: "invariant violation",
		msg: UserMessage{
			Message: "An internal consistency check failed",
			Action:  "Regenerate the data set and report the seed to support",
			Code:    "GEN002",
		},
	},
	{
		pattern: "too many concurrent generations",
		msg: UserMessage{
			Message: "System is busy generating other data sets",
			Action:  "Please wait a moment and try again",
			Code:    "GEN003",
		},
	},

	// =========================================================================
	// Export Errors (EXP001-EXP002)
	// =========================================================================
	{
		pattern: "unknown export format",
		msg: UserMessage{
			Message: "Export format is not supported",
			Action:  "Use csv, legacy or json",
			Code:    "EXP001",
		},
	},
	{
		pattern: "database not configured",
		msg: UserMessage{
			Message: "Database export is not enabled",
			Action:  "Set DATABASE_URL and restart the server",
			Code:    "EXP002",
		},
	},

	// =========================================================================
	// Database Errors (DB001-DB003)
	// =========================================================================
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB002",
		},
	},
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "These records were already exported",
			Action:  "Regenerate the data set before exporting again",
			Code:    "DB003",
		},
	},

	// =========================================================================
	// Transport Errors (UPL004-UPL005, RATE001)
	// =========================================================================
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "UPL004",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Request fewer records or try again later",
			Code:    "UPL005",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It returns the first pattern match, or ERR000 if nothing matches.
//
// Example:
//
//	err := fmt.Errorf("%w: count -1 is negative", ErrInvalidArgument)
//	msg := MapError(err)
//	// msg.Code == "REQ001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than the
// generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-friendly message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
