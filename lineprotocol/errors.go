package lineprotocol

import "errors"

// Grammar errors shared by the tokenizer and the section parsers.
var (
	ErrEmptyMeasurement  = errors.New("empty measurement")
	ErrMissingFields     = errors.New("missing field set")
	ErrStrayWhitespace   = errors.New("stray whitespace after field set")
	ErrDanglingEscape    = errors.New("dangling escape")
	ErrUnterminatedQuote = errors.New("unterminated string value")
	ErrEmptyKey          = errors.New("empty key")
	ErrEmptyValue        = errors.New("empty value")
	ErrMissingSeparator  = errors.New("missing '=' separator")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrBadFieldValue     = errors.New("unparsable field value")
	ErrBadTimestamp      = errors.New("unparsable timestamp")
)
