package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	assert.Equal(t, "configuration", ErrorConfiguration.String())
	assert.Equal(t, "malformed", ErrorMalformed.String())
	assert.Equal(t, "conflict", ErrorConflict.String())
	assert.Equal(t, "stream", ErrorStream.String())
	assert.Equal(t, "unknown", ErrorClass(99).String())
}

func TestWrapFormat(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(base, "reader", "Next", "tokenizing")
	require.Error(t, err)
	assert.Equal(t, "reader.Next: tokenizing failed: boom", err.Error())
	assert.ErrorIs(t, err, base)

	assert.NoError(t, Wrap(nil, "reader", "Next", "tokenizing"))
}

func TestClassifiedWrappers(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name  string
		wrap  func(error, string, string, string) error
		class ErrorClass
		check func(error) bool
	}{
		{"configuration", WrapConfiguration, ErrorConfiguration, IsConfiguration},
		{"malformed", WrapMalformed, ErrorMalformed, IsMalformed},
		{"conflict", WrapConflict, ErrorConflict, IsConflict},
		{"stream", WrapStream, ErrorStream, IsStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wrap(base, "reader", "Next", "parsing")
			require.Error(t, err)

			var ce *ClassifiedError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.class, ce.Class)
			assert.Equal(t, "reader", ce.Component)
			assert.Equal(t, "Next", ce.Operation)

			assert.True(t, tt.check(err))
			assert.Equal(t, tt.class, Classify(err))
			assert.ErrorIs(t, err, base)

			assert.NoError(t, tt.wrap(nil, "reader", "Next", "parsing"))
		})
	}
}

func TestSentinelClassification(t *testing.T) {
	assert.True(t, IsConfiguration(fmt.Errorf("charset %q: %w", "X-BOGUS", ErrUnknownCharset)))
	assert.True(t, IsConfiguration(ErrUnknownPolicy))
	assert.True(t, IsConfiguration(ErrUnknownPrecision))
	assert.True(t, IsStream(ErrReadFailed))
	assert.True(t, IsStream(ErrReaderClosed))

	assert.False(t, IsConfiguration(nil))
	assert.False(t, IsMalformed(nil))
	assert.False(t, IsConflict(nil))
	assert.False(t, IsStream(nil))
}

func TestIsRecoverable(t *testing.T) {
	base := errors.New("boom")

	assert.True(t, IsRecoverable(WrapMalformed(base, "reader", "Next", "parsing")))
	assert.True(t, IsRecoverable(WrapConflict(base, "reader", "Next", "schema")))
	assert.False(t, IsRecoverable(WrapConfiguration(base, "reader", "New", "charset")))
	assert.False(t, IsRecoverable(WrapStream(base, "reader", "Next", "read")))
	assert.False(t, IsRecoverable(base))
}

func TestClassifyDefaultsToStream(t *testing.T) {
	// Unknown errors must abort the read, never be skipped.
	assert.Equal(t, ErrorStream, Classify(errors.New("unexpected")))
}
