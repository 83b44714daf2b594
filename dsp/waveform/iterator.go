package waveform

import (
	"math"

	"github.com/cwbudde/algo-wavegen/dsp/core"
	"github.com/cwbudde/algo-wavegen/dsp/periodic"
)

// Iterator is a sampling cursor over a [Waveform]. Sample k is taken at
// time base + k*period with base zero until the time range wraps, so the
// first sample is at time zero. Time is derived from a step count rather than
// accumulated, so it carries no per-step rounding drift.
type Iterator[F core.Float, S core.Sample] struct {
	components []periodic.Function[F]
	period     F
	base       F
	steps      uint64
}

// Next returns the sample at the current time and advances by one step.
// ok is false when the sum has no representation in S, which only happens
// for NaN with integer sample types. Time advances either way, so a later
// call may succeed again.
func (it *Iterator[F, S]) Next() (s S, ok bool) {
	v := sum(it.components, it.at(it.steps))
	it.advance(1)
	return core.Saturate[F, S](v)
}

// Nth skips n steps and then behaves like [Iterator.Next]. Nth(n) yields the
// same sample as calling Next n+1 times.
func (it *Iterator[F, S]) Nth(n uint64) (s S, ok bool) {
	if n > 0 {
		it.advance(n)
	}
	return it.Next()
}

// Fill writes consecutive samples into dst and returns how many were written.
// It stops early at the first sample that cannot be represented in S.
func (it *Iterator[F, S]) Fill(dst []S) int {
	for i := range dst {
		s, ok := it.Next()
		if !ok {
			return i
		}
		dst[i] = s
	}
	return len(dst)
}

// SizeHint reports the remaining length: at least math.MaxUint64 samples and
// no known upper bound.
func (it *Iterator[F, S]) SizeHint() (lower uint64, upper uint64, bounded bool) {
	return math.MaxUint64, 0, false
}

// Time returns the elapsed time in seconds of the next sample.
func (it *Iterator[F, S]) Time() F { return it.at(it.steps) }

// at is the only place a time is computed, so every path to a given step
// count yields the same bits.
func (it *Iterator[F, S]) at(steps uint64) F {
	return F(it.base + F(steps)*it.period)
}

// advance moves forward by n steps. If the time would overflow it wraps
// around, keeping the iterator usable at the cost of a phase jump.
func (it *Iterator[F, S]) advance(n uint64) {
	if n <= math.MaxUint64-it.steps && core.IsFinite(it.at(it.steps+n)) {
		it.steps += n
		return
	}
	it.base = it.period - (core.MaxFinite[F]() - it.at(it.steps))
	it.steps = 0
}
