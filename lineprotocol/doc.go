// Package lineprotocol implements parsing of the InfluxDB Line Protocol
// text format:
//
//	measurement[,tag_set] field_set [timestamp]
//
// The package works one physical line at a time. Tokenize splits a line
// into its four sections while honoring backslash escapes and quoted
// string field values; ParseTags, ParseFields, and ParseTimestamp turn the
// sections into typed data; ParsePoint composes all of them into a Point.
//
// Field value types are inferred deterministically: double-quoted values
// are strings, an "i" suffix marks a signed integer, a "u" suffix marks an
// unsigned integer, the bare words true/t/True/TRUE and false/f/False/FALSE
// are booleans, and anything else must parse as an IEEE-754 double.
//
// The package has no opinion on error policy. Every violation of the
// grammar is returned as an error wrapping one of the package sentinels;
// the reader decides whether that aborts the stream or skips the line.
package lineprotocol
