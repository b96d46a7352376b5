// Package record maintains the evolving output schema of a line protocol
// stream and assembles parsed points into records against schema snapshots.
//
// A stream's shape is not known in advance: each line may introduce tag and
// field keys never seen before. SchemaAccumulator keeps the append-only
// union of observed columns for one reader session. Columns are never
// removed and never change kind; the only permitted type revision is
// widening an Integer column to Float. Records emitted before a column was
// discovered are never revised - stream order determines which records
// carry nulls for late columns.
package record
