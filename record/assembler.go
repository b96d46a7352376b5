package record

import (
	"encoding/json"
	"time"

	"github.com/c360/linestream/lineprotocol"
)

// OutputRecord is one assembled record: the measurement, a timestamp in
// the session precision, and one value slot per schema column at assembly
// time. Absent columns are nil.
type OutputRecord struct {
	Measurement string
	Timestamp   int64
	Schema      Schema
	Values      []any
}

// Value returns the slot for the named column
func (r *OutputRecord) Value(name string) (any, bool) {
	for i, c := range r.Schema.columns {
		if c.Name == name {
			return r.Values[i], true
		}
	}
	return nil, false
}

// AsMap returns the column slots keyed by column name. Null slots are
// included with nil values.
func (r *OutputRecord) AsMap() map[string]any {
	m := make(map[string]any, len(r.Values))
	for i, c := range r.Schema.columns {
		m[c.Name] = r.Values[i]
	}
	return m
}

// MarshalJSON renders the record as an object with measurement, timestamp,
// and a values object keyed by column name.
func (r *OutputRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Measurement string         `json:"measurement"`
		Timestamp   int64          `json:"timestamp"`
		Values      map[string]any `json:"values"`
	}{
		Measurement: r.Measurement,
		Timestamp:   r.Timestamp,
		Values:      r.AsMap(),
	})
}

// Assembler combines parsed points with schema snapshots into output
// records. The now function supplies the timestamp default for lines that
// omit one; it is injected so sessions are reproducible in tests.
type Assembler struct {
	precision lineprotocol.Precision
	now       func() time.Time
}

// NewAssembler creates an assembler for one session. A nil now function
// defaults to time.Now.
func NewAssembler(precision lineprotocol.Precision, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{precision: precision, now: now}
}

// Assemble emits one record for a parsed point against a schema snapshot.
// Present tags and fields fill their slots, with Integer values coerced to
// float64 when the column has widened past Integer; absent columns are nil.
func (a *Assembler) Assemble(p *lineprotocol.Point, schema Schema) *OutputRecord {
	values := make([]any, schema.Len())
	for i, col := range schema.columns {
		values[i] = slotValue(p, col)
	}

	ts := p.Timestamp
	if !p.HasTimestamp {
		ts = a.precision.Truncate(a.now())
	}

	return &OutputRecord{
		Measurement: p.Measurement,
		Timestamp:   ts,
		Schema:      schema,
		Values:      values,
	}
}

// slotValue resolves one column against the point, preferring the source
// matching the column's kind when a tag and a field share a name.
func slotValue(p *lineprotocol.Point, col Column) any {
	tagFirst := col.Kind == KindTag
	if tagFirst {
		if v, ok := p.TagValue(col.Name); ok {
			return v
		}
	}
	if v, ok := p.FieldValue(col.Name); ok {
		return coerce(v, col.Type)
	}
	if !tagFirst {
		if v, ok := p.TagValue(col.Name); ok {
			return v
		}
	}
	return nil
}

// coerce adapts a field value to a widened column type. The only widening
// the schema performs is Integer to Float.
func coerce(v lineprotocol.Value, columnType lineprotocol.FieldType) any {
	if columnType == lineprotocol.Float && v.Type() == lineprotocol.Integer {
		return float64(v.Int())
	}
	return v.Any()
}
