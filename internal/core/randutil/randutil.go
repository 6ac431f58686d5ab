// Package randutil is the deterministic sampling kernel for the generator.
// Every draw flows through a single *rand.Rand so that a fixed seed
// reproduces the dataset bit-for-bit.
package randutil

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// New returns a rand.Rand seeded for a generation run.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Weighted is a categorical distribution over string values.
// Weights are normalized at construction; construction fails on
// non-normalizable tables so bad configuration is caught before sampling.
type Weighted struct {
	values []string
	cum    []float64
}

// NewWeighted builds a categorical distribution from parallel value/weight
// slices. Weights need not sum to 1 but must be non-negative with a
// positive total.
func NewWeighted(values []string, weights []float64) (*Weighted, error) {
	if len(values) == 0 || len(values) != len(weights) {
		return nil, fmt.Errorf("weighted distribution needs matching values and weights, got %d/%d", len(values), len(weights))
	}
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("invalid weight %v for %q", w, values[i])
		}
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("weight table sums to %v, cannot normalize", total)
	}

	cum := make([]float64, len(weights))
	acc := 0.0
	for i, w := range weights {
		acc += w / total
		cum[i] = acc
	}
	cum[len(cum)-1] = 1.0 // absorb float drift

	return &Weighted{values: append([]string(nil), values...), cum: cum}, nil
}

// MustWeighted is NewWeighted for known-good literal tables.
func MustWeighted(values []string, weights []float64) *Weighted {
	w, err := NewWeighted(values, weights)
	if err != nil {
		panic(err)
	}
	return w
}

// Sample draws one value.
func (w *Weighted) Sample(r *rand.Rand) string {
	u := r.Float64()
	for i, c := range w.cum {
		if u <= c {
			return w.values[i]
		}
	}
	return w.values[len(w.values)-1]
}

// Values returns the distribution's support.
func (w *Weighted) Values() []string {
	return append([]string(nil), w.values...)
}

// Choice draws a uniform element from a non-empty slice.
func Choice(r *rand.Rand, values []string) string {
	return values[r.Intn(len(values))]
}

// ClippedNormalInt draws from N(mean, stddev) and clips to [min, max],
// truncating to an integer. Matches numpy's clip-then-int behavior.
func ClippedNormalInt(r *rand.Rand, mean, stddev float64, min, max int) int {
	v := r.NormFloat64()*stddev + mean
	if v < float64(min) {
		v = float64(min)
	}
	if v > float64(max) {
		v = float64(max)
	}
	return int(v)
}

// Beta draws from Beta(a, b) via two gamma variates.
func Beta(r *rand.Rand, a, b float64) float64 {
	x := gamma(r, a)
	y := gamma(r, b)
	if x+y == 0 {
		return 0
	}
	return x / (x + y)
}

// gamma draws from Gamma(shape, 1) using Marsaglia-Tsang squeeze, with the
// standard boost for shape < 1.
func gamma(r *rand.Rand, shape float64) float64 {
	if shape < 1 {
		u := r.Float64()
		for u == 0 {
			u = r.Float64()
		}
		return gamma(r, shape+1) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		x := r.NormFloat64()
		v := 1.0 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := r.Float64()
		if u < 1.0-0.0331*x*x*x*x {
			return d * v
		}
		if u > 0 && math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v
		}
	}
}

// Digits returns n random decimal digits.
func Digits(r *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + r.Intn(10))
	}
	return string(buf)
}

// UpperLetter returns one random uppercase ASCII letter.
func UpperLetter(r *rand.Rand) string {
	return string(rune('A' + r.Intn(26)))
}

// IntBetween draws a uniform integer in [min, max] inclusive.
func IntBetween(r *rand.Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}

// Curve shapes the day distribution inside a date window.
type Curve int

const (
	// CurveUniform spreads dates evenly across the window.
	CurveUniform Curve = iota
	// CurveEarlyHeavy clusters dates toward the window start (Beta(2,5)).
	CurveEarlyHeavy
	// CurveLateHeavy clusters dates toward the window end (Beta(5,2)).
	CurveLateHeavy
)

// DateInWindow draws a calendar date in [start, end] with the given curve.
func DateInWindow(r *rand.Rand, start, end time.Time, curve Curve) time.Time {
	totalDays := int(end.Sub(start).Hours() / 24)
	if totalDays <= 0 {
		return start
	}

	var days int
	switch curve {
	case CurveEarlyHeavy:
		days = int(Beta(r, 2, 5) * float64(totalDays))
	case CurveLateHeavy:
		days = int(Beta(r, 5, 2) * float64(totalDays))
	default:
		days = r.Intn(totalDays + 1)
	}
	if days > totalDays {
		days = totalDays
	}
	return start.AddDate(0, 0, days)
}

// AddDays returns the date shifted by a whole number of days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
