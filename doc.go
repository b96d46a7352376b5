// Package linestream converts InfluxDB Line Protocol text into structured
// records for record-oriented stream processing.
//
// # Architecture
//
// The module is organized leaf-first:
//
//	┌─────────────────────────────────────┐
//	│            reader.Reader            │  Pull-based record sequence,
//	│  (charset, policy, metrics, logs)   │  FAIL/WARN error policy
//	└─────────────────────────────────────┘
//	           ↓ drives per line
//	┌─────────────────────────────────────┐
//	│    lineprotocol (tokenize, parse)   │  Grammar, escaping, type
//	│    record (schema, assembly)        │  inference, schema accumulation
//	└─────────────────────────────────────┘
//
// The lineprotocol package owns the text grammar: tokenizing one physical
// line into measurement, tag set, field set, and timestamp sections under
// backslash escaping and quoted string values, then parsing each section
// into typed values. The record package maintains the append-only schema a
// stream reveals line by line and assembles output records against schema
// snapshots. The reader package orchestrates both behind a lazy, single-pass
// pull iterator that owns its byte source.
//
// Parsing is deterministic: the same valid line always yields the same
// parsed point, and the schema only ever grows. Already-emitted records are
// never revised when later lines introduce new columns; consumers observe
// new columns through subsequent records and the evolving Schema snapshot.
//
// linestream MUST NOT contain:
//   - Transport or networking (inputs feed the reader an io.Reader)
//   - Persistence of parsed records
//   - Hosting-framework discovery or plugin mechanics
package linestream
