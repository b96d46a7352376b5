package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/linestream/errors"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want Policy
	}{
		{"", PolicyWarn},
		{"warn", PolicyWarn},
		{"WARN", PolicyWarn},
		{"fail", PolicyFail},
		{"Fail", PolicyFail},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	_, err := ParsePolicy("panic")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownPolicy)
	assert.True(t, errors.IsConfiguration(err))
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "warn", PolicyWarn.String())
	assert.Equal(t, "fail", PolicyFail.String())
}

func TestLookupCharset(t *testing.T) {
	t.Run("utf-8 aliases need no transcoding", func(t *testing.T) {
		for _, name := range []string{"", "UTF-8", "utf-8", "UTF8"} {
			enc, err := LookupCharset(name)
			require.NoError(t, err, "name %q", name)
			assert.Nil(t, enc, "name %q", name)
		}
	})

	t.Run("known charsets resolve", func(t *testing.T) {
		for _, name := range []string{"ISO-8859-1", "windows-1252", "US-ASCII"} {
			enc, err := LookupCharset(name)
			require.NoError(t, err, "name %q", name)
			assert.NotNil(t, enc, "name %q", name)
		}
	})

	t.Run("unknown charset", func(t *testing.T) {
		_, err := LookupCharset("X-NO-SUCH")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUnknownCharset)
	})
}
