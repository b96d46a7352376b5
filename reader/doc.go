// Package reader drives line protocol parsing over a byte source and
// exposes the result as a lazy, single-pass, pull-based record sequence.
//
// A Reader owns its source for the lifetime of one session: the source is
// released on normal completion, on a FAIL-policy abort, and on early
// Close. Each call to Next consumes input one physical line at a time,
// never materializing the stream, so arbitrarily large files stream in
// constant memory.
//
// Malformed lines are handled per the configured Policy. Under PolicyFail
// the first violation aborts the whole read and every later Next returns
// the same error. Under PolicyWarn the violation is logged with its line
// context, counted, and skipped; the emitted record count may then be
// lower than the physical line count.
package reader
