package lineprotocol

import (
	"fmt"
	"strings"
)

// Sections holds the four raw substrings of one physical line. Escapes are
// still intact; the section parsers resolve them.
type Sections struct {
	Measurement string
	TagSet      string
	FieldSet    string
	Timestamp   string
}

// Skip reports whether a physical line carries no data at all: blank,
// whitespace-only, or a comment starting with '#'. Skipped lines produce
// neither a record nor an error.
func Skip(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// Tokenize splits one physical line into its measurement, tag set, field
// set, and timestamp sections. The scan tracks backslash-escape state
// throughout and quoted-string state within the field set only. The first
// unescaped space ends the measurement/tag section, the next unescaped
// space outside quotes ends the field set, and the remainder must be a
// single timestamp token.
func Tokenize(line string) (Sections, error) {
	var s Sections

	head := -1
	esc := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if esc {
			esc = false
			continue
		}
		if c == '\\' {
			esc = true
			continue
		}
		if c == ' ' {
			head = i
			break
		}
	}
	if head < 0 {
		if esc {
			return s, ErrDanglingEscape
		}
		return s, ErrMissingFields
	}

	measurement, tagset, hasTags := cutEscaped(line[:head], ',')
	if measurement == "" {
		return s, ErrEmptyMeasurement
	}
	if hasTags && tagset == "" {
		return s, fmt.Errorf("tag set: %w", ErrEmptyKey)
	}
	s.Measurement = measurement
	s.TagSet = tagset

	rest := line[head+1:]
	fs := -1
	esc = false
	inQuote := false
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if esc {
			esc = false
			continue
		}
		switch c {
		case '\\':
			esc = true
		case '"':
			inQuote = !inQuote
		case ' ':
			if !inQuote {
				fs = i
			}
		}
		if fs >= 0 {
			break
		}
	}
	if fs < 0 {
		if inQuote {
			return s, ErrUnterminatedQuote
		}
		if esc {
			return s, ErrDanglingEscape
		}
		if rest == "" {
			return s, ErrMissingFields
		}
		s.FieldSet = rest
		return s, nil
	}
	if rest[:fs] == "" {
		return s, ErrMissingFields
	}
	s.FieldSet = rest[:fs]

	ts := rest[fs+1:]
	if ts == "" || strings.ContainsRune(ts, ' ') {
		return s, ErrStrayWhitespace
	}
	s.Timestamp = ts
	return s, nil
}
