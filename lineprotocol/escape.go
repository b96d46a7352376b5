package lineprotocol

import "strings"

// unescape resolves backslash escapes in measurement names, tag keys and
// values, and field keys. A backslash before comma, space, equals, or
// backslash yields the literal character. A backslash before any other
// character is kept verbatim, matching InfluxDB behavior.
func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i == len(s)-1 {
			return "", ErrDanglingEscape
		}
		switch next := s[i+1]; next {
		case ',', ' ', '=', '\\':
			b.WriteByte(next)
		default:
			b.WriteByte('\\')
			b.WriteByte(next)
		}
		i++
	}
	return b.String(), nil
}

// splitEscaped splits s on every unescaped occurrence of sep. Escapes are
// left intact for a later unescape pass.
func splitEscaped(s string, sep byte) []string {
	var parts []string
	start := 0
	esc := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc {
			esc = false
			continue
		}
		if c == '\\' {
			esc = true
			continue
		}
		if c == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// cutEscaped splits s around the first unescaped occurrence of sep.
func cutEscaped(s string, sep byte) (before, after string, found bool) {
	esc := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc {
			esc = false
			continue
		}
		if c == '\\' {
			esc = true
			continue
		}
		if c == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
