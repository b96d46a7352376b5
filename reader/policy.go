package reader

import (
	"fmt"
	"strings"

	"github.com/c360/linestream/errors"
)

// Policy selects how the reader handles malformed lines.
type Policy int

const (
	// PolicyWarn logs a malformed line with its context, emits no record
	// for it, and continues with the next line. This is the default.
	PolicyWarn Policy = iota
	// PolicyFail aborts the entire read on the first malformed line; no
	// further lines are consumed.
	PolicyFail
)

// String returns the string representation of Policy
func (p Policy) String() string {
	switch p {
	case PolicyFail:
		return "fail"
	default:
		return "warn"
	}
}

// ParsePolicy parses a policy name, case-insensitively. The empty string
// selects the warn default.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "warn":
		return PolicyWarn, nil
	case "fail":
		return PolicyFail, nil
	default:
		return PolicyWarn, fmt.Errorf("%w: %q", errors.ErrUnknownPolicy, s)
	}
}
