package normalize

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Run("replaces smart punctuation", func(t *testing.T) {
		assert.Equal(t, `it's a "test" - really - 'quoted'`,
			Text("it’s a “test” – really — ‘quoted’"))
	})

	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "Wooden Blocks", Text("Wooden Blocks"))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", Text(""))
	})
}

func TestBool(t *testing.T) {
	truthy := []string{"true", "TRUE", "t", "1", "yes", "Y", " yes "}
	for _, in := range truthy {
		v, ok := Bool(in)
		assert.True(t, ok, "input %q should parse", in)
		assert.True(t, v, "input %q should be true", in)
	}

	falsy := []string{"false", "F", "0", "no", "N", " False "}
	for _, in := range falsy {
		v, ok := Bool(in)
		assert.True(t, ok, "input %q should parse", in)
		assert.False(t, v, "input %q should be false", in)
	}

	t.Run("unrecognized input is absent, not false", func(t *testing.T) {
		for _, in := range []string{"", "maybe", "2", "on?"} {
			_, ok := Bool(in)
			assert.False(t, ok, "input %q should be absent", in)
		}
	})
}

func TestFloat(t *testing.T) {
	t.Run("strips currency and thousands separators", func(t *testing.T) {
		v, ok := Float("$1,234.50")
		require.True(t, ok)
		assert.Equal(t, 1234.5, v)
	})

	t.Run("plain decimal", func(t *testing.T) {
		v, ok := Float(" 4.8 ")
		require.True(t, ok)
		assert.Equal(t, 4.8, v)
	})

	t.Run("blank is absent", func(t *testing.T) {
		_, ok := Float("   ")
		assert.False(t, ok)
	})

	t.Run("garbage is absent", func(t *testing.T) {
		_, ok := Float("call for price")
		assert.False(t, ok)
	})
}

func TestInt(t *testing.T) {
	t.Run("truncates fractional input", func(t *testing.T) {
		v, ok := Int("17.9")
		require.True(t, ok)
		assert.Equal(t, int64(17), v)
	})

	t.Run("handles separators", func(t *testing.T) {
		v, ok := Int("1,200")
		require.True(t, ok)
		assert.Equal(t, int64(1200), v)
	})

	t.Run("blank and garbage are absent", func(t *testing.T) {
		_, ok := Int("")
		assert.False(t, ok)
		_, ok = Int("n/a")
		assert.False(t, ok)
	})
}

// Coercion must be stable once a value has round-tripped through text:
// parsing the formatted result yields the same value.
func TestNumericRoundTripStability(t *testing.T) {
	inputs := []string{"$19.99", "1,234.50", "42", "0.125", "17.9"}

	for _, in := range inputs {
		f, ok := Float(in)
		require.True(t, ok, "input %q", in)

		again, ok := Float(strconv.FormatFloat(f, 'f', -1, 64))
		require.True(t, ok)
		assert.Equal(t, f, again, "input %q", in)
	}

	for _, in := range inputs {
		i, ok := Int(in)
		require.True(t, ok, "input %q", in)

		again, ok := Int(strconv.FormatInt(i, 10))
		require.True(t, ok)
		assert.Equal(t, i, again, "input %q", in)
	}
}

func TestMulti(t *testing.T) {
	t.Run("trims, dedupes, keeps first-seen order", func(t *testing.T) {
		assert.Equal(t, "b, a, c", Multi(" b , a ,b, c ,a"))
	})

	t.Run("drops empty tokens", func(t *testing.T) {
		assert.Equal(t, "a, b", Multi("a,,b,"))
	})

	t.Run("blank input is blank", func(t *testing.T) {
		assert.Equal(t, "", Multi("  "))
	})

	t.Run("dedupe is case-exact", func(t *testing.T) {
		assert.Equal(t, "STEM, stem", Multi("STEM, stem"))
	})
}

func TestSplitMulti(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitMulti("a, b"))

	t.Run("blank yields empty non-nil slice", func(t *testing.T) {
		tokens := SplitMulti("")
		require.NotNil(t, tokens)
		assert.Empty(t, tokens)
	})
}
