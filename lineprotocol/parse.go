package lineprotocol

// ParsePoint parses one physical line into a Point. Callers are expected
// to have filtered comment and blank lines with Skip first.
func ParsePoint(line string) (*Point, error) {
	sections, err := Tokenize(line)
	if err != nil {
		return nil, err
	}

	measurement, err := unescape(sections.Measurement)
	if err != nil {
		return nil, err
	}

	tags, err := ParseTags(sections.TagSet)
	if err != nil {
		return nil, err
	}

	fields, err := ParseFields(sections.FieldSet)
	if err != nil {
		return nil, err
	}

	ts, hasTS, err := ParseTimestamp(sections.Timestamp)
	if err != nil {
		return nil, err
	}

	return &Point{
		Measurement:  measurement,
		Tags:         tags,
		Fields:       fields,
		Timestamp:    ts,
		HasTimestamp: hasTS,
	}, nil
}
