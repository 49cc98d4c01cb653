// Package motion provides the easing functions used to interpolate panel
// transitions.
//
// Every function maps progress in [0,1] to eased progress with f(0)=0 and
// f(1)=1. The quad and circ curves are ease-in shapes; EaseOut and EaseInOut
// derive the other variants from them.
package motion

import (
	"math"
	"sort"

	"github.com/agnivade/levenshtein"
)

// Func maps raw progress in [0,1] to eased progress.
type Func func(progress float64) float64

// NoEffect is the explicit name for "no motion": moves are applied instantly.
const NoEffect = "noeffect"

// Linear returns progress unchanged.
func Linear(progress float64) float64 {
	return progress
}

// Quad is the quadratic ease-in curve.
func Quad(progress float64) float64 {
	return math.Pow(progress, 2)
}

// Circ is the quarter-circle ease-in curve.
func Circ(progress float64) float64 {
	return 1 - math.Sin(math.Acos(progress))
}

// EaseIn returns f unchanged; it exists so the named table reads uniformly.
func EaseIn(f Func) Func {
	return func(progress float64) float64 {
		return f(progress)
	}
}

// EaseOut mirrors an ease-in curve so it starts fast and ends slow.
func EaseOut(f Func) Func {
	return func(progress float64) float64 {
		return 1 - f(1-progress)
	}
}

// EaseInOut runs the ease-in curve over the first half and its mirror over
// the second half.
func EaseInOut(f Func) Func {
	return func(progress float64) float64 {
		if progress < 0.5 {
			return f(2*progress) / 2
		}
		return (2 - f(2*(1-progress))) / 2
	}
}

var (
	QuadEaseIn    = EaseIn(Quad)
	QuadEaseOut   = EaseOut(Quad)
	QuadEaseInOut = EaseInOut(Quad)
	CircEaseIn    = EaseIn(Circ)
	CircEaseOut   = EaseOut(Circ)
	CircEaseInOut = EaseInOut(Circ)
)

// named holds every motion reachable by name. easeIn/easeOut/easeInOut are
// aliases for the quad family.
var named = map[string]Func{
	"linear":        Linear,
	"easeIn":        QuadEaseIn,
	"easeOut":       QuadEaseOut,
	"easeInOut":     QuadEaseInOut,
	"quadEaseIn":    QuadEaseIn,
	"quadEaseOut":   QuadEaseOut,
	"quadEaseInOut": QuadEaseInOut,
	"circEaseIn":    CircEaseIn,
	"circEaseOut":   CircEaseOut,
	"circEaseInOut": CircEaseInOut,
	"spring":        Spring,
}

// Lookup resolves a motion by name. Empty, NoEffect and unknown names return
// (nil, false), which callers treat as an instant move.
func Lookup(name string) (Func, bool) {
	f, ok := named[name]
	return f, ok
}

// Known reports whether name is a registered motion or NoEffect.
func Known(name string) bool {
	if name == "" || name == NoEffect {
		return true
	}
	_, ok := named[name]
	return ok
}

// Names returns the registered motion names, sorted.
func Names() []string {
	out := make([]string, 0, len(named))
	for n := range named {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Suggest returns the registered name closest to name by edit distance.
// Returns "" when nothing is reasonably close.
func Suggest(name string) string {
	best := ""
	bestDist := -1
	for _, n := range Names() {
		d := levenshtein.ComputeDistance(name, n)
		if bestDist < 0 || d < bestDist {
			best, bestDist = n, d
		}
	}
	// More than half the word rewritten is not a typo.
	if bestDist < 0 || bestDist > (len(best)+1)/2 {
		return ""
	}
	return best
}
