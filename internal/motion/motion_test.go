package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedMotions_Endpoints(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			f, ok := Lookup(name)
			require.True(t, ok)
			assert.InDelta(t, 0, f(0), 1e-9, "f(0)")
			assert.InDelta(t, 1, f(1), 1e-9, "f(1)")
		})
	}
}

func TestLinear(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.Equal(t, p, Linear(p))
	}
}

func TestQuadFamily(t *testing.T) {
	assert.InDelta(t, 0.25, QuadEaseIn(0.5), 1e-9)
	assert.InDelta(t, 0.75, QuadEaseOut(0.5), 1e-9)
	// easeInOut is symmetric around the midpoint
	assert.InDelta(t, 0.5, QuadEaseInOut(0.5), 1e-9)
	assert.InDelta(t, 0.125, QuadEaseInOut(0.25), 1e-9)
	assert.InDelta(t, 0.875, QuadEaseInOut(0.75), 1e-9)
}

func TestCirc(t *testing.T) {
	// 1 - sin(acos(0.6)) = 1 - 0.8
	assert.InDelta(t, 0.2, Circ(0.6), 1e-9)
	assert.InDelta(t, 0.8, CircEaseOut(0.4), 1e-9)
}

func TestAliases(t *testing.T) {
	for alias, target := range map[string]string{
		"easeIn":    "quadEaseIn",
		"easeOut":   "quadEaseOut",
		"easeInOut": "quadEaseInOut",
	} {
		a, _ := Lookup(alias)
		b, _ := Lookup(target)
		for _, p := range []float64{0.1, 0.3, 0.6, 0.9} {
			assert.Equal(t, b(p), a(p), "%s(%v)", alias, p)
		}
	}
}

func TestLookup_Unresolved(t *testing.T) {
	for _, name := range []string{"", NoEffect, "wobble"} {
		f, ok := Lookup(name)
		assert.False(t, ok, name)
		assert.Nil(t, f, name)
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(""))
	assert.True(t, Known(NoEffect))
	assert.True(t, Known("circEaseOut"))
	assert.False(t, Known("circEaseOutt"))
}

func TestSpring_MonotonicAndBounded(t *testing.T) {
	prev := 0.0
	for i := 0; i <= 100; i++ {
		v := Spring(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev-1e-12, "step %d", i)
		assert.LessOrEqual(t, v, 1.0)
		prev = v
	}
	// ease-out: ahead of linear at the midpoint
	assert.Greater(t, Spring(0.5), 0.5)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "circEaseOut", Suggest("circEasOut"))
	assert.Equal(t, "linear", Suggest("liner"))
	assert.Equal(t, "", Suggest("zzz"))
}
