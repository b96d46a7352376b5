package lineprotocol

import (
	"fmt"
	"strconv"
	"time"

	"github.com/c360/linestream/errors"
)

// Precision is the unit a stream's integer timestamps are expressed in.
// Parsed values are never unit-converted; the precision only selects how
// an injected "current time" default is rendered for lines that omit the
// timestamp.
type Precision int

const (
	// PrecisionNanosecond is the line protocol default
	PrecisionNanosecond Precision = iota
	// PrecisionMicrosecond timestamps
	PrecisionMicrosecond
	// PrecisionMillisecond timestamps
	PrecisionMillisecond
	// PrecisionSecond timestamps
	PrecisionSecond
)

// String returns the string representation of Precision
func (p Precision) String() string {
	switch p {
	case PrecisionMicrosecond:
		return "us"
	case PrecisionMillisecond:
		return "ms"
	case PrecisionSecond:
		return "s"
	default:
		return "ns"
	}
}

// ParsePrecision parses a precision name. The empty string selects the
// nanosecond default.
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "", "ns":
		return PrecisionNanosecond, nil
	case "us":
		return PrecisionMicrosecond, nil
	case "ms":
		return PrecisionMillisecond, nil
	case "s":
		return PrecisionSecond, nil
	default:
		return PrecisionNanosecond, fmt.Errorf("%w: %q", errors.ErrUnknownPrecision, s)
	}
}

// Truncate renders a wall-clock instant as an integer timestamp in this
// precision. Used for the injected default when a line has no timestamp.
func (p Precision) Truncate(t time.Time) int64 {
	switch p {
	case PrecisionMicrosecond:
		return t.UnixMicro()
	case PrecisionMillisecond:
		return t.UnixMilli()
	case PrecisionSecond:
		return t.Unix()
	default:
		return t.UnixNano()
	}
}

// ParseTimestamp parses the optional trailing timestamp token. An empty
// token means the line carries no timestamp. A non-empty token must be all
// digits with an optional leading '-' and fit in a signed 64-bit integer.
func ParseTimestamp(token string) (ts int64, ok bool, err error) {
	if token == "" {
		return 0, false, nil
	}

	digits := token
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false, fmt.Errorf("%w: %q", ErrBadTimestamp, token)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false, fmt.Errorf("%w: %q", ErrBadTimestamp, token)
		}
	}

	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrBadTimestamp, token)
	}
	return n, true, nil
}
