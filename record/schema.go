package record

import (
	"fmt"
	"maps"
	"slices"

	"github.com/c360/linestream/lineprotocol"
)

// ColumnKind distinguishes columns created by tag observations from
// columns created by field observations.
type ColumnKind int

const (
	// KindTag columns are always String-typed
	KindTag ColumnKind = iota
	// KindField columns carry the observed field value type
	KindField
)

// String returns the string representation of ColumnKind
func (ck ColumnKind) String() string {
	switch ck {
	case KindTag:
		return "tag"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// Column is one named slot of the output schema. Every column is nullable:
// records parsed before the column was discovered, and records that simply
// omit the key, carry null in its slot.
type Column struct {
	Name     string
	Type     lineprotocol.FieldType
	Kind     ColumnKind
	Nullable bool
}

// Schema is an immutable snapshot of the accumulated column set. Column
// order is discovery order.
type Schema struct {
	columns []Column
}

// NewSchema builds a schema from an explicit column list. Mostly useful in
// tests; readers obtain schemas from a SchemaAccumulator.
func NewSchema(columns []Column) Schema {
	return Schema{columns: slices.Clone(columns)}
}

// Len returns the number of columns
func (s Schema) Len() int { return len(s.columns) }

// Columns returns a copy of the column list in discovery order
func (s Schema) Columns() []Column { return slices.Clone(s.columns) }

// Column returns the i-th column
func (s Schema) Column(i int) Column { return s.columns[i] }

// Lookup finds a column by name
func (s Schema) Lookup(name string) (Column, bool) {
	for _, c := range s.columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ConflictError reports a column observation no widening rule can absorb.
type ConflictError struct {
	Column   string
	Existing lineprotocol.FieldType
	Observed lineprotocol.FieldType
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return fmt.Sprintf("column %q: incompatible types %s and %s", e.Column, e.Existing, e.Observed)
}

// SchemaAccumulator maintains the append-only union of tag and field
// columns observed across one reader session. It is owned by a single
// session and must not be shared across goroutines.
type SchemaAccumulator struct {
	columns []Column
	index   map[string]int
}

// NewSchemaAccumulator creates an empty accumulator
func NewSchemaAccumulator() *SchemaAccumulator {
	return &SchemaAccumulator{index: make(map[string]int)}
}

// Observe folds one successfully parsed point into the schema. Tag keys
// become nullable String columns; field keys become columns of the
// observed value type. Integer vs Float resolves by widening the column to
// Float; any other mismatch returns a ConflictError naming the column.
// Observation is atomic: a conflicting point leaves the schema untouched.
func (a *SchemaAccumulator) Observe(p *lineprotocol.Point) error {
	cols := slices.Clone(a.columns)
	idx := maps.Clone(a.index)

	observe := func(name string, typ lineprotocol.FieldType, kind ColumnKind) error {
		i, ok := idx[name]
		if !ok {
			idx[name] = len(cols)
			cols = append(cols, Column{Name: name, Type: typ, Kind: kind, Nullable: true})
			return nil
		}
		switch existing := cols[i].Type; {
		case existing == typ:
		case existing == lineprotocol.Integer && typ == lineprotocol.Float:
			cols[i].Type = lineprotocol.Float
		case existing == lineprotocol.Float && typ == lineprotocol.Integer:
			// already wide enough, value coerces at assembly
		default:
			return &ConflictError{Column: name, Existing: existing, Observed: typ}
		}
		return nil
	}

	for _, t := range p.Tags {
		if err := observe(t.Key, lineprotocol.String, KindTag); err != nil {
			return err
		}
	}
	for _, f := range p.Fields {
		if err := observe(f.Key, f.Value.Type(), KindField); err != nil {
			return err
		}
	}

	a.columns = cols
	a.index = idx
	return nil
}

// Schema returns an immutable snapshot of the current column set
func (a *SchemaAccumulator) Schema() Schema {
	return Schema{columns: slices.Clone(a.columns)}
}

// Len returns the current number of columns
func (a *SchemaAccumulator) Len() int { return len(a.columns) }
