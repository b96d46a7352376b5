package record

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/linestream/lineprotocol"
)

func fixedNow() time.Time {
	return time.Unix(1700000000, 123456789)
}

func TestAssemble(t *testing.T) {
	t.Run("canonical example", func(t *testing.T) {
		acc := NewSchemaAccumulator()
		p := mustPoint(t, "cpu,host=server01 value=0.64 1434055562000000000")
		require.NoError(t, acc.Observe(p))

		asm := NewAssembler(lineprotocol.PrecisionNanosecond, fixedNow)
		rec := asm.Assemble(p, acc.Schema())

		assert.Equal(t, "cpu", rec.Measurement)
		assert.Equal(t, int64(1434055562000000000), rec.Timestamp)

		host, ok := rec.Value("host")
		require.True(t, ok)
		assert.Equal(t, "server01", host)

		value, ok := rec.Value("value")
		require.True(t, ok)
		assert.Equal(t, 0.64, value)
	})

	t.Run("absent columns are null", func(t *testing.T) {
		acc := NewSchemaAccumulator()
		require.NoError(t, acc.Observe(mustPoint(t, "cpu,host=a idle=0.5")))
		late := mustPoint(t, "cpu user=0.2")
		require.NoError(t, acc.Observe(late))

		asm := NewAssembler(lineprotocol.PrecisionNanosecond, fixedNow)
		rec := asm.Assemble(late, acc.Schema())

		require.Len(t, rec.Values, 3)
		host, _ := rec.Value("host")
		assert.Nil(t, host)
		idle, _ := rec.Value("idle")
		assert.Nil(t, idle)
		user, _ := rec.Value("user")
		assert.Equal(t, 0.2, user)
	})

	t.Run("integer coerces to widened float column", func(t *testing.T) {
		acc := NewSchemaAccumulator()
		require.NoError(t, acc.Observe(mustPoint(t, "cpu value=1.5")))
		p := mustPoint(t, "cpu value=2i")
		require.NoError(t, acc.Observe(p))

		asm := NewAssembler(lineprotocol.PrecisionNanosecond, fixedNow)
		rec := asm.Assemble(p, acc.Schema())

		v, ok := rec.Value("value")
		require.True(t, ok)
		assert.Equal(t, 2.0, v)
	})

	t.Run("unwidened types pass through", func(t *testing.T) {
		acc := NewSchemaAccumulator()
		p := mustPoint(t, `srv count=3i,load=0.9,up=t,name="db",seq=7u`)
		require.NoError(t, acc.Observe(p))

		asm := NewAssembler(lineprotocol.PrecisionNanosecond, fixedNow)
		rec := asm.Assemble(p, acc.Schema())

		m := rec.AsMap()
		assert.Equal(t, int64(3), m["count"])
		assert.Equal(t, 0.9, m["load"])
		assert.Equal(t, true, m["up"])
		assert.Equal(t, "db", m["name"])
		assert.Equal(t, uint64(7), m["seq"])
	})

	t.Run("missing timestamp uses injected now", func(t *testing.T) {
		acc := NewSchemaAccumulator()
		p := mustPoint(t, "cpu value=1")
		require.NoError(t, acc.Observe(p))

		tests := []struct {
			precision lineprotocol.Precision
			want      int64
		}{
			{lineprotocol.PrecisionNanosecond, 1700000000123456789},
			{lineprotocol.PrecisionMicrosecond, 1700000000123456},
			{lineprotocol.PrecisionMillisecond, 1700000000123},
			{lineprotocol.PrecisionSecond, 1700000000},
		}
		for _, tt := range tests {
			asm := NewAssembler(tt.precision, fixedNow)
			rec := asm.Assemble(p, acc.Schema())
			assert.Equal(t, tt.want, rec.Timestamp)
		}
	})

	t.Run("emitted record unaffected by later schema growth", func(t *testing.T) {
		acc := NewSchemaAccumulator()
		first := mustPoint(t, "cpu value=1")
		require.NoError(t, acc.Observe(first))

		asm := NewAssembler(lineprotocol.PrecisionNanosecond, fixedNow)
		rec := asm.Assemble(first, acc.Schema())

		require.NoError(t, acc.Observe(mustPoint(t, "cpu,host=a value=2")))
		assert.Len(t, rec.Values, 1)
		assert.Equal(t, 1, rec.Schema.Len())
	})
}

func TestOutputRecordJSON(t *testing.T) {
	acc := NewSchemaAccumulator()
	p := mustPoint(t, "cpu,host=a value=1i 42")
	require.NoError(t, acc.Observe(p))

	asm := NewAssembler(lineprotocol.PrecisionNanosecond, fixedNow)
	rec := asm.Assemble(p, acc.Schema())

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded struct {
		Measurement string         `json:"measurement"`
		Timestamp   int64          `json:"timestamp"`
		Values      map[string]any `json:"values"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "cpu", decoded.Measurement)
	assert.Equal(t, int64(42), decoded.Timestamp)
	assert.Equal(t, "a", decoded.Values["host"])
	assert.Equal(t, float64(1), decoded.Values["value"])
}
