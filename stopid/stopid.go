// Package stopid derives the public code and numeric ID of a stop.
//
// The RTC feed publishes numeric stop codes. The stop code doubles as the
// stop ID, and the raw stop_id is only used as a display fallback when the
// code is missing.
package stopid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNonNumericCode is matched by every ParseError.
var ErrNonNumericCode = errors.New("stop code is not numeric")

// ParseError reports a stop code that cannot be used as a numeric stop ID.
type ParseError struct {
	Code   string
	StopID string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("stop %q: code %q is not numeric: %v", e.StopID, e.Code, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrNonNumericCode }

// Identity is a resolved stop identity.
type Identity struct {
	Code string // public code used by real-time lookups
	ID   int    // numeric stop ID, parsed from the stop code
}

// ResolveCode returns code when it is non-empty after trimming, otherwise id.
// The chosen value is returned verbatim.
func ResolveCode(code, id string) string {
	if strings.TrimSpace(code) != "" {
		return code
	}
	return id
}

// ParseID parses the stop code as the numeric stop ID.
func ParseID(code, id string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return 0, &ParseError{Code: code, StopID: id, Err: err}
	}
	return n, nil
}

// Resolve returns the identity of a stop. The numeric ID always comes from
// code, never from id, so a stop with an empty code fails even though its
// display code falls back to id.
func Resolve(code, id string) (Identity, error) {
	n, err := ParseID(code, id)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Code: ResolveCode(code, id), ID: n}, nil
}
