package colorscheme

import (
	"math/rand"

	"github.com/ironsheep/fractal-render/internal/fractal"
)

// RandomTableSize is the number of entries in a Random scheme's table.
const RandomTableSize = 2048

// Random colors outside points by looking up i mod RandomTableSize in a table
// of uniformly drawn colors. The table is generated once and shared by
// reference; copies of a Random value color identically.
type Random struct {
	table *[RandomTableSize]Color
}

// NewRandom draws a fresh table from the process-wide random source. Tables
// are not reproducible across runs.
func NewRandom() Random {
	return newRandomFrom(rand.Float64)
}

func newRandomFrom(float func() float64) Random {
	var table [RandomTableSize]Color
	for i := range table {
		table[i] = Color{R: float(), G: float(), B: float()}
	}
	return Random{table: &table}
}

// Color implements Scheme.
func (s Random) Color(r fractal.Result) Color {
	if r.Inside || s.table == nil {
		return Black
	}
	return s.table[r.Iterations%RandomTableSize]
}

// Kind implements Scheme.
func (Random) Kind() Kind { return KindRandom }

func (Random) sealed() {}
