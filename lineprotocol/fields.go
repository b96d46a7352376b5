package lineprotocol

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseFields parses a field set section into ordered key/typed-value
// pairs. Keys must be unique and the set must not be empty.
func ParseFields(fieldset string) ([]Field, error) {
	pairs, err := splitFieldPairs(fieldset)
	if err != nil {
		return nil, err
	}

	fields := make([]Field, 0, len(pairs))
	seen := make(map[string]struct{}, len(pairs))
	for _, pair := range pairs {
		rawKey, rawValue, err := cutFieldPair(pair)
		if err != nil {
			return nil, err
		}

		key, err := unescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", pair, err)
		}
		if key == "" {
			return nil, fmt.Errorf("field %q: %w", pair, ErrEmptyKey)
		}
		if rawValue == "" {
			return nil, fmt.Errorf("field %q: %w", key, ErrEmptyValue)
		}

		value, err := parseFieldValue(rawValue)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}

		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("field %q: %w", key, ErrDuplicateKey)
		}
		seen[key] = struct{}{}

		fields = append(fields, Field{Key: key, Value: value})
	}
	return fields, nil
}

// splitFieldPairs splits a field set on unescaped commas outside quoted
// string values.
func splitFieldPairs(fieldset string) ([]string, error) {
	var parts []string
	start := 0
	esc, inQuote := false, false
	for i := 0; i < len(fieldset); i++ {
		c := fieldset[i]
		if esc {
			esc = false
			continue
		}
		switch c {
		case '\\':
			esc = true
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				parts = append(parts, fieldset[start:i])
				start = i + 1
			}
		}
	}
	if inQuote {
		return nil, ErrUnterminatedQuote
	}
	if esc {
		return nil, ErrDanglingEscape
	}
	return append(parts, fieldset[start:]), nil
}

// cutFieldPair splits key=value around the first unescaped '='. A quote
// can never start a valid key, so scanning stops there.
func cutFieldPair(pair string) (rawKey, rawValue string, err error) {
	esc := false
	for i := 0; i < len(pair); i++ {
		c := pair[i]
		if esc {
			esc = false
			continue
		}
		if c == '\\' {
			esc = true
			continue
		}
		if c == '=' {
			return pair[:i], pair[i+1:], nil
		}
		if c == '"' {
			break
		}
	}
	return "", "", fmt.Errorf("field %q: %w", pair, ErrMissingSeparator)
}

// parseFieldValue infers the type of one field value token. Detection
// order: quoted string, "i" integer suffix, "u" unsigned suffix, boolean
// word, IEEE-754 double.
func parseFieldValue(token string) (Value, error) {
	if token[0] == '"' {
		s, err := unquoteString(token)
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	}

	switch token[len(token)-1] {
	case 'i':
		n, err := strconv.ParseInt(token[:len(token)-1], 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrBadFieldValue, token)
		}
		return IntegerValue(n), nil
	case 'u':
		n, err := strconv.ParseUint(token[:len(token)-1], 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrBadFieldValue, token)
		}
		return UIntegerValue(n), nil
	}

	switch token {
	case "true", "t", "True", "TRUE":
		return BooleanValue(true), nil
	case "false", "f", "False", "FALSE":
		return BooleanValue(false), nil
	}

	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, fmt.Errorf("%w: %q", ErrBadFieldValue, token)
	}
	return FloatValue(f), nil
}

// unquoteString resolves a double-quoted string value. Only \" and \\ are
// escapes inside quotes; any other backslash is literal.
func unquoteString(token string) (string, error) {
	var b strings.Builder
	b.Grow(len(token))
	for i := 1; i < len(token); i++ {
		c := token[i]
		if c == '\\' {
			if i == len(token)-1 {
				return "", ErrUnterminatedQuote
			}
			switch next := token[i+1]; next {
			case '"', '\\':
				b.WriteByte(next)
			default:
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			i++
			continue
		}
		if c == '"' {
			if i != len(token)-1 {
				return "", fmt.Errorf("%w: %q", ErrBadFieldValue, token)
			}
			return b.String(), nil
		}
		b.WriteByte(c)
	}
	return "", ErrUnterminatedQuote
}
