package lineprotocol

import "fmt"

// ParseTags parses a tag set section into ordered key/value pairs. Keys
// must be unique and neither keys nor values may be empty. An empty tag
// set yields no tags.
func ParseTags(tagset string) ([]Tag, error) {
	if tagset == "" {
		return nil, nil
	}

	pairs := splitEscaped(tagset, ',')
	tags := make([]Tag, 0, len(pairs))
	seen := make(map[string]struct{}, len(pairs))
	for _, pair := range pairs {
		rawKey, rawValue, found := cutEscaped(pair, '=')
		if !found {
			return nil, fmt.Errorf("tag %q: %w", pair, ErrMissingSeparator)
		}

		key, err := unescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", pair, err)
		}
		value, err := unescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", pair, err)
		}

		if key == "" {
			return nil, fmt.Errorf("tag %q: %w", pair, ErrEmptyKey)
		}
		if value == "" {
			return nil, fmt.Errorf("tag %q: %w", key, ErrEmptyValue)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("tag %q: %w", key, ErrDuplicateKey)
		}
		seen[key] = struct{}{}

		tags = append(tags, Tag{Key: key, Value: value})
	}
	return tags, nil
}
