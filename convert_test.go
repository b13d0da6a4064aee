// FILE: lixenwraith/confstore/convert_test.go
package confstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter(t *testing.T) {
	conv := NewConverter()

	t.Run("Convert", func(t *testing.T) {
		var i int
		require.NoError(t, conv.Convert("0b101", &i))
		assert.Equal(t, 5, i)

		require.NoError(t, conv.Convert("0010", &i))
		assert.Equal(t, 10, i)

		var d time.Duration
		require.NoError(t, conv.Convert("250ms", &d))
		assert.Equal(t, 250*time.Millisecond, d)

		var b bool
		require.NoError(t, conv.Convert("Yes", &b))
		assert.True(t, b)

		var s string
		require.NoError(t, conv.Convert("  as is ", &s))
		assert.Equal(t, "  as is ", s)
	})

	t.Run("Rejects", func(t *testing.T) {
		var i int8
		assert.Error(t, conv.Convert("128", &i))
		assert.Error(t, conv.Convert("", &i))
		assert.Error(t, conv.Convert("   ", &i))
		assert.Error(t, conv.Convert("1_0", &i))

		var b bool
		assert.Error(t, conv.Convert("", &b))
		assert.Error(t, conv.Convert("2", &b))

		var f float64
		assert.Error(t, conv.Convert("1,5", &f))

		assert.Error(t, conv.Convert("1", i))
		assert.Error(t, conv.Convert("1", nil))
	})

	t.Run("Format", func(t *testing.T) {
		assert.Equal(t, "text", conv.Format("text"))
		assert.Equal(t, "42", conv.Format(42))
		assert.Equal(t, "1.1", conv.Format(float32(1.1)))
		assert.Equal(t, "0.1", conv.Format(0.1))
		assert.Equal(t, "true", conv.Format(true))
		assert.Equal(t, "1m30s", conv.Format(90*time.Second))
	})
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"1", "true", "TRUE", "t", "yes", "Y", "on", " on "} {
		b, err := ParseBool(s)
		require.NoError(t, err, s)
		assert.True(t, b, s)
	}
	for _, s := range []string{"0", "false", "F", "no", "n", "OFF"} {
		b, err := ParseBool(s)
		require.NoError(t, err, s)
		assert.False(t, b, s)
	}
	for _, s := range []string{"", "2", "enabled", "truthy"} {
		_, err := ParseBool(s)
		assert.Error(t, err, s)
	}
}
